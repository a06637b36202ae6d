package directory

import (
	"errors"
	"testing"
)

func testGroups() []Group {
	return []Group{
		{ID: "group-animation", Name: "Commission Animation", AdminIDs: []string{"user-1", "user-4"}},
		{ID: "group-cm2", Name: "Classe CM2", AdminIDs: []string{"user-1"}},
	}
}

func TestIsEffectiveAdminGlobalAdmin(t *testing.T) {
	admin := User{ID: "user-1", Role: RoleGlobalAdmin}
	if !IsEffectiveAdmin(admin, "group-cm2", testGroups()) {
		t.Fatalf("expected global admin to be effective admin everywhere")
	}
	if !IsEffectiveAdmin(admin, "group-unknown", testGroups()) {
		t.Fatalf("expected global admin to be effective admin of unknown groups too")
	}
}

func TestIsEffectiveAdminPerGroup(t *testing.T) {
	user := User{ID: "user-4", Role: RoleParent}
	if !IsEffectiveAdmin(user, "group-animation", testGroups()) {
		t.Fatalf("expected user-4 to be admin of group-animation")
	}
	if IsEffectiveAdmin(user, "group-cm2", testGroups()) {
		t.Fatalf("expected user-4 not to be admin of group-cm2")
	}
}

func TestIsEffectiveAdminUnknownGroup(t *testing.T) {
	user := User{ID: "user-4", Role: RoleParent}
	if IsEffectiveAdmin(user, "group-missing", testGroups()) {
		t.Fatalf("expected unknown group to grant nothing")
	}
}

func TestGroupAdminRoleAloneGrantsNothing(t *testing.T) {
	// The GROUP_ADMIN role is informational; rights come from AdminIDs only.
	user := User{ID: "user-9", Role: RoleGroupAdmin}
	if IsEffectiveAdmin(user, "group-cm2", testGroups()) {
		t.Fatalf("expected GROUP_ADMIN role alone to grant no access")
	}
}

func TestEmailRecipients(t *testing.T) {
	users := []User{
		{ID: "user-1", Groups: []string{"group-cm2"}, EmailNotifications: true},
		{ID: "user-2", Groups: []string{"group-cm2"}, EmailNotifications: false},
		{ID: "user-3", Groups: []string{"group-ce1"}, EmailNotifications: true},
	}
	recipients := EmailRecipients("group-cm2", users)
	if len(recipients) != 1 || recipients[0].ID != "user-1" {
		t.Fatalf("expected only user-1, got %+v", recipients)
	}
}

func TestCreateUserAssignsID(t *testing.T) {
	users, created, err := CreateUser(nil, User{Name: "  Paul Durand  "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Name != "Paul Durand" {
		t.Fatalf("expected name trimmed, got %q", created.Name)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Role != RoleParent {
		t.Fatalf("expected default parent role, got %q", created.Role)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	_, err := UpdateUser([]User{{ID: "user-1", Name: "Alice"}}, User{ID: "user-9", Name: "Bob"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUserDoesNotMutateInput(t *testing.T) {
	users := []User{{ID: "user-1", Name: "Alice"}}
	updated, err := UpdateUser(users, User{ID: "user-1", Name: "Alicia"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if users[0].Name != "Alice" {
		t.Fatalf("expected input slice untouched, got %q", users[0].Name)
	}
	if updated[0].Name != "Alicia" {
		t.Fatalf("expected updated name, got %q", updated[0].Name)
	}
}

func TestDeleteGroupCascade(t *testing.T) {
	groups := testGroups()
	users := []User{
		{ID: "user-1", Groups: []string{"group-animation", "group-cm2"}},
		{ID: "user-2", Groups: []string{"group-cm2"}},
	}
	selected := []string{"group-animation", "group-cm2"}

	remaining, updatedUsers, updatedSelection, err := DeleteGroup(groups, users, selected, "group-animation")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != "group-cm2" {
		t.Fatalf("expected only group-cm2 to remain, got %+v", remaining)
	}
	if len(updatedUsers[0].Groups) != 1 || updatedUsers[0].Groups[0] != "group-cm2" {
		t.Fatalf("expected group stripped from user-1, got %+v", updatedUsers[0].Groups)
	}
	if len(updatedSelection) != 1 || updatedSelection[0] != "group-cm2" {
		t.Fatalf("expected group removed from selection, got %+v", updatedSelection)
	}
	// original slices untouched
	if len(users[0].Groups) != 2 {
		t.Fatalf("expected input users untouched, got %+v", users[0].Groups)
	}
}

func TestDeleteGroupNotFound(t *testing.T) {
	_, _, _, err := DeleteGroup(testGroups(), nil, nil, "group-missing")
	if !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

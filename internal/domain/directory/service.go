package directory

import (
	"strings"

	"github.com/google/uuid"
)

func UserByID(users []User, id string) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func GroupByID(groups []Group, id string) (Group, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// IsEffectiveAdmin reports whether user may administer the given group: global
// admins everywhere, otherwise membership in that group's AdminIDs. An unknown
// group id grants nothing. RoleGroupAdmin by itself grants nothing either.
func IsEffectiveAdmin(user User, groupID string, groups []Group) bool {
	if user.Role == RoleGlobalAdmin {
		return true
	}
	group, ok := GroupByID(groups, groupID)
	if !ok {
		return false
	}
	return group.HasAdmin(user.ID)
}

// EmailRecipients lists the members of a group who opted into email
// notifications.
func EmailRecipients(groupID string, users []User) []User {
	recipients := make([]User, 0)
	for _, u := range users {
		if u.InGroup(groupID) && u.EmailNotifications {
			recipients = append(recipients, u)
		}
	}
	return recipients
}

func CreateUser(users []User, input User) ([]User, User, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return users, User{}, ErrNameRequired
	}
	if input.ID == "" {
		input.ID = "user-" + uuid.NewString()
	}
	if input.Role == "" {
		input.Role = RoleParent
	}
	if input.Groups == nil {
		input.Groups = []string{}
	}
	if input.Children == nil {
		input.Children = []Child{}
	}

	updated := make([]User, 0, len(users)+1)
	updated = append(updated, users...)
	updated = append(updated, input)
	return updated, input, nil
}

func UpdateUser(users []User, input User) ([]User, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return users, ErrNameRequired
	}

	updated := make([]User, len(users))
	found := false
	for i, u := range users {
		if u.ID == input.ID {
			updated[i] = input
			found = true
			continue
		}
		updated[i] = u
	}
	if !found {
		return users, ErrUserNotFound
	}
	return updated, nil
}

func DeleteUser(users []User, userID string) ([]User, error) {
	updated := make([]User, 0, len(users))
	found := false
	for _, u := range users {
		if u.ID == userID {
			found = true
			continue
		}
		updated = append(updated, u)
	}
	if !found {
		return users, ErrUserNotFound
	}
	return updated, nil
}

func CreateGroup(groups []Group, input Group) ([]Group, Group, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return groups, Group{}, ErrNameRequired
	}
	if input.ID == "" {
		input.ID = "group-" + uuid.NewString()
	}
	if input.AdminIDs == nil {
		input.AdminIDs = []string{}
	}

	updated := make([]Group, 0, len(groups)+1)
	updated = append(updated, groups...)
	updated = append(updated, input)
	return updated, input, nil
}

func UpdateGroup(groups []Group, input Group) ([]Group, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return groups, ErrNameRequired
	}

	updated := make([]Group, len(groups))
	found := false
	for i, g := range groups {
		if g.ID == input.ID {
			updated[i] = input
			found = true
			continue
		}
		updated[i] = g
	}
	if !found {
		return groups, ErrGroupNotFound
	}
	return updated, nil
}

// DeleteGroup removes a group and strips its id from every user's group set
// and from the active selection. Messages and inscription tables that
// reference the deleted group are deliberately left orphaned.
func DeleteGroup(groups []Group, users []User, selected []string, groupID string) ([]Group, []User, []string, error) {
	remaining := make([]Group, 0, len(groups))
	found := false
	for _, g := range groups {
		if g.ID == groupID {
			found = true
			continue
		}
		remaining = append(remaining, g)
	}
	if !found {
		return groups, users, selected, ErrGroupNotFound
	}

	updatedUsers := make([]User, len(users))
	for i, u := range users {
		memberships := make([]string, 0, len(u.Groups))
		for _, id := range u.Groups {
			if id != groupID {
				memberships = append(memberships, id)
			}
		}
		u.Groups = memberships
		updatedUsers[i] = u
	}

	updatedSelection := make([]string, 0, len(selected))
	for _, id := range selected {
		if id != groupID {
			updatedSelection = append(updatedSelection, id)
		}
	}

	return remaining, updatedUsers, updatedSelection, nil
}

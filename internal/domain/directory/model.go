package directory

type Role string

const (
	RoleGlobalAdmin Role = "GLOBAL_ADMIN"
	RoleGroupAdmin  Role = "GROUP_ADMIN"
	RoleParent      Role = "PARENT"
)

// Child is a pupil attached to a parent account; ClassGroupID points at the
// class group the child belongs to.
type Child struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ClassGroupID string `json:"classGroupId"`
}

// User is a portal account. Role is informational except for GLOBAL_ADMIN:
// per-group admin rights come from Group.AdminIDs, never from RoleGroupAdmin.
type User struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	AvatarURL             string   `json:"avatarUrl"`
	Role                  Role     `json:"role"`
	IsPremium             bool     `json:"isPremium"`
	OptOutOfActivities    bool     `json:"optOutOfActivities"`
	EmailNotifications    bool     `json:"emailNotifications"`
	NotificationStartTime string   `json:"notificationStartTime"`
	NotificationEndTime   string   `json:"notificationEndTime"`
	Children              []Child  `json:"children"`
	Groups                []string `json:"groups"`
}

type Group struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AdminIDs    []string `json:"adminIds"`
}

func (u User) InGroup(groupID string) bool {
	for _, id := range u.Groups {
		if id == groupID {
			return true
		}
	}
	return false
}

func (g Group) HasAdmin(userID string) bool {
	for _, id := range g.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

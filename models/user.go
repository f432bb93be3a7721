package models

import "strings"

// Role determines what a user may do on the forum.
type Role string

const (
	RoleFounder   Role = "founder"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleMember    Role = "member"
	RoleBanned    Role = "banned"
)

// ValidRole reports whether r names a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleFounder, RoleAdmin, RoleModerator, RoleMember, RoleBanned:
		return true
	}
	return false
}

// User represents a registered forum user. The JSON field names are part of
// the stored-data contract and must not change.
type User struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Role     Role   `json:"role"`
	IsBanned bool   `json:"isBanned"`
}

// NewUser builds a user record with the derived avatar letter and the ban
// flag in sync with the role.
func NewUser(username, nickname string, role Role) User {
	return User{
		Username: username,
		Nickname: nickname,
		Avatar:   AvatarLetter(username),
		Role:     role,
		IsBanned: role == RoleBanned,
	}
}

// AvatarLetter derives the single-letter avatar from a username.
func AvatarLetter(username string) string {
	for _, r := range username {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// IsAdmin reports whether the user holds an administrative role.
func (u *User) IsAdmin() bool {
	return u != nil && (u.Role == RoleFounder || u.Role == RoleAdmin)
}

// CanModerate reports whether the user may ban and unban accounts.
func (u *User) CanModerate() bool {
	return u.IsAdmin() || (u != nil && u.Role == RoleModerator)
}

// CanPost reports whether the user may create posts.
func (u *User) CanPost() bool {
	return u != nil && !u.IsBanned
}

// CanCreateCategory reports whether the user may create new boards.
func (u *User) CanCreateCategory() bool {
	return u.IsAdmin()
}

// Normalize coerces a record decoded from untrusted storage into a valid
// shape. The role is authoritative: the ban flag is re-derived from it and
// unknown role strings degrade to member. It reports false when the record
// has no username and should be dropped.
func (u *User) Normalize() bool {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return false
	}
	if u.Nickname == "" {
		u.Nickname = u.Username
	}
	if u.Avatar == "" {
		u.Avatar = AvatarLetter(u.Username)
	}
	if !ValidRole(u.Role) {
		u.Role = RoleMember
	}
	u.IsBanned = u.Role == RoleBanned
	return true
}

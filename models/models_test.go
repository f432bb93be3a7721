package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Discussions":     "discussions",
		"Game Modes":      "game-modes",
		"  Trade  Hub  ":  "trade-hub",
		"FAQ":             "faq",
		"clan\twars":      "clan-wars",
		"already-slugged": "already-slugged",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestAvatarLetter(t *testing.T) {
	assert.Equal(t, "A", AvatarLetter("alice"))
	assert.Equal(t, "B", AvatarLetter("Bob"))
	assert.Equal(t, "?", AvatarLetter(""))
}

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleFounder, RoleAdmin, RoleModerator, RoleMember, RoleBanned} {
		assert.True(t, ValidRole(r))
	}
	assert.False(t, ValidRole("owner"))
	assert.False(t, ValidRole(""))
}

func TestRolePredicates(t *testing.T) {
	founder := NewUser("f", "F", RoleFounder)
	admin := NewUser("a", "A", RoleAdmin)
	mod := NewUser("m", "M", RoleModerator)
	member := NewUser("u", "U", RoleMember)
	banned := NewUser("b", "B", RoleBanned)

	assert.True(t, founder.IsAdmin())
	assert.True(t, admin.IsAdmin())
	assert.False(t, mod.IsAdmin())
	assert.False(t, member.IsAdmin())

	assert.True(t, founder.CanModerate())
	assert.True(t, mod.CanModerate())
	assert.False(t, member.CanModerate())
	assert.False(t, banned.CanModerate())

	assert.True(t, member.CanPost())
	assert.False(t, banned.CanPost())

	assert.True(t, admin.CanCreateCategory())
	assert.False(t, mod.CanCreateCategory())
}

func TestPredicatesNilSafe(t *testing.T) {
	var u *User
	assert.False(t, u.IsAdmin())
	assert.False(t, u.CanModerate())
	assert.False(t, u.CanPost())
	assert.False(t, u.CanCreateCategory())
}

func TestNewUserSyncsBanFlag(t *testing.T) {
	assert.False(t, NewUser("u", "U", RoleMember).IsBanned)
	assert.True(t, NewUser("b", "B", RoleBanned).IsBanned)
}

func TestUserNormalize(t *testing.T) {
	u := User{Username: "  alice  ", Role: "wizard", IsBanned: true}
	assert.True(t, u.Normalize())
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice", u.Nickname)
	assert.Equal(t, "A", u.Avatar)
	assert.Equal(t, RoleMember, u.Role)
	// role is authoritative: a non-banned role clears a stray ban flag
	assert.False(t, u.IsBanned)

	b := User{Username: "bob", Role: RoleBanned}
	assert.True(t, b.Normalize())
	assert.True(t, b.IsBanned)

	empty := User{Username: "   "}
	assert.False(t, empty.Normalize())
}

func TestPostNormalize(t *testing.T) {
	p := Post{ID: "1", Author: User{Username: "admin"}}
	assert.True(t, p.Normalize())
	assert.Equal(t, RoleMember, p.Author.Role)

	assert.False(t, (&Post{}).Normalize())
}

func TestCategoryNormalize(t *testing.T) {
	c := Category{ID: " news "}
	assert.True(t, c.Normalize())
	assert.Equal(t, "news", c.ID)
	assert.Equal(t, "news", c.Name)

	assert.False(t, (&Category{}).Normalize())
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	assert.Len(t, cats, 5)
	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"discussions", "announcements", "news", "faq", "support"}, ids)
}

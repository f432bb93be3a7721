package forum

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"serverhub/models"
	"serverhub/storage"
)

func newTestService(t *testing.T) (*Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	svc, err := New(store, zap.NewNop().Sugar())
	require.NoError(t, err)
	return svc, store
}

// reload builds a fresh service over the same store, simulating a restart.
func reload(t *testing.T, store *storage.MemoryStore) *Service {
	t.Helper()
	svc, err := New(store, zap.NewNop().Sugar())
	require.NoError(t, err)
	return svc
}

func TestFirstRunSeedsDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	cats := svc.Categories()
	require.Len(t, cats, 5)
	require.Equal(t, "discussions", cats[0].ID)

	posts := svc.Posts()
	require.Len(t, posts, 1)
	require.Equal(t, "announcements", posts[0].Category)
	require.True(t, posts[0].IsPinned)
	require.Equal(t, 5, posts[0].Replies)
	require.Equal(t, 120, posts[0].Views)

	require.Empty(t, svc.Users())
	require.Nil(t, svc.CurrentUser())
}

func TestSeedsSurviveReload(t *testing.T) {
	svc, store := newTestService(t)
	seeded := svc.Posts()

	svc2 := reload(t, store)
	posts := svc2.Posts()
	require.Len(t, posts, 1)
	require.Equal(t, seeded[0].ID, posts[0].ID)
	require.True(t, seeded[0].Timestamp.Equal(posts[0].Timestamp))
	require.Len(t, svc2.Categories(), 5)
}

func TestLoadDropsAndRepairsBadRecords(t *testing.T) {
	store := storage.NewMemoryStore()
	// one empty key, one unknown role, one ban flag to re-derive, one duplicate
	require.NoError(t, store.Save(storage.KeyAllUsers, []models.User{
		{Username: "alice", Nickname: "Alice", Role: models.RoleFounder},
		{Username: ""},
		{Username: "bob", Role: "wizard"},
		{Username: "carl", Role: models.RoleBanned},
		{Username: "alice", Role: models.RoleMember},
	}))

	svc, err := New(store, zap.NewNop().Sugar())
	require.NoError(t, err)

	users := svc.Users()
	require.Len(t, users, 3)
	require.Equal(t, models.RoleFounder, users[0].Role)
	require.Equal(t, models.RoleMember, users[1].Role)
	require.True(t, users[2].IsBanned)
}

func TestSessionSurvivesReload(t *testing.T) {
	svc, store := newTestService(t)
	_, err := svc.Register("alice", "pw", "Alice")
	require.NoError(t, err)

	svc2 := reload(t, store)
	u := svc2.CurrentUser()
	require.NotNil(t, u)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, models.RoleFounder, u.Role)
}

func TestSessionRebindsToRosterOnReload(t *testing.T) {
	svc, store := newTestService(t)
	alice, err := svc.Register("alice", "pw", "Alice")
	require.NoError(t, err)
	_, err = svc.Register("bob", "pw", "Bob")
	require.NoError(t, err)

	// session is bob; promote him, then restart
	_, err = svc.ChangeRole(alice, "bob", models.RoleModerator)
	require.NoError(t, err)

	svc2 := reload(t, store)
	u := svc2.CurrentUser()
	require.NotNil(t, u)
	require.Equal(t, "bob", u.Username)
	require.Equal(t, models.RoleModerator, u.Role)
}

package forum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryRequiresAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	_, member := founderAndMember(t, svc)

	_, err := svc.CreateCategory(member, "Events", "Calendar", "Server events")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.CreateCategory(nil, "Events", "Calendar", "Server events")
	assert.ErrorIs(t, err, ErrForbidden)

	assert.Len(t, svc.Categories(), 5)
}

func TestCreateCategoryValidation(t *testing.T) {
	svc, _ := newTestService(t)
	founder, _ := founderAndMember(t, svc)

	_, err := svc.CreateCategory(founder, "   ", "Calendar", "desc")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	svc, _ := newTestService(t)
	founder, _ := founderAndMember(t, svc)

	cat, err := svc.CreateCategory(founder, "Game Modes", "Swords", "PvP, PvE and more")
	require.NoError(t, err)
	assert.Equal(t, "game-modes", cat.ID)
	assert.Equal(t, "Game Modes", cat.Name)

	cats := svc.Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, "game-modes", cats[5].ID) // appended, not prepended
}

func TestCreateCategoryRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newTestService(t)
	founder, _ := founderAndMember(t, svc)

	// "News" slugs to the built-in "news" board
	_, err := svc.CreateCategory(founder, "News", "Newspaper", "dup")
	assert.ErrorIs(t, err, ErrDuplicateCategory)

	_, err = svc.CreateCategory(founder, "Events", "Calendar", "ok")
	require.NoError(t, err)
	_, err = svc.CreateCategory(founder, "  events ", "Calendar", "dup")
	assert.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestCreateCategoryWritesThrough(t *testing.T) {
	svc, store := newTestService(t)
	founder, _ := founderAndMember(t, svc)

	_, err := svc.CreateCategory(founder, "Events", "Calendar", "Server events")
	require.NoError(t, err)

	svc2 := reload(t, store)
	cats := svc2.Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, "events", cats[5].ID)
	assert.Equal(t, "Server events", cats[5].Description)
}

func TestCreatedCategoryAcceptsPosts(t *testing.T) {
	svc, _ := newTestService(t)
	founder, _ := founderAndMember(t, svc)

	_, err := svc.CreateCategory(founder, "Events", "Calendar", "Server events")
	require.NoError(t, err)

	post, err := svc.CreatePost(founder, "Summer cup", "sign up here", "events")
	require.NoError(t, err)
	got := svc.ListByCategory("events")
	require.Len(t, got, 1)
	assert.Equal(t, post.ID, got[0].ID)
}

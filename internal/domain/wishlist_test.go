package domain

import (
	"testing"

	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestWishlistDomain(db *gorm.DB) WishlistDomain {
	return NewWishlistDomain(
		repository.NewWishlistRepository(),
		repository.NewSideQuestRepository(),
		repository.NewQuestStepRepository(),
		newTestQuestDomain(db),
	)
}

func Test_wishlistDomain_AddAndGet(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestWishlistDomain(db)
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	_, err := d.Add(ctx, &model.AddToWishlistRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	// Adding the same quest twice keeps a single entry.
	_, err = d.Add(ctx, &model.AddToWishlistRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	list, err := d.GetList(ctx, &model.GetWishlistRequest{})
	require.NoError(t, err)
	require.Len(t, list.Quests, 1)
	require.Equal(t, testutil.Quest1.Name, list.Quests[0].Name)

	_, err = d.Add(ctx, &model.AddToWishlistRequest{QuestID: "no-such-quest"})
	require.Error(t, err)
}

func Test_wishlistDomain_Remove(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestWishlistDomain(db)
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	_, err := d.Add(ctx, &model.AddToWishlistRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	_, err = d.Remove(ctx, &model.RemoveFromWishlistRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	list, err := d.GetList(ctx, &model.GetWishlistRequest{})
	require.NoError(t, err)
	require.Empty(t, list.Quests)
}

func Test_wishlistDomain_StartQuest(t *testing.T) {
	db := testutil.CreateFixtureDb()
	questDomain := newTestQuestDomain(db)
	d := NewWishlistDomain(
		repository.NewWishlistRepository(),
		repository.NewSideQuestRepository(),
		repository.NewQuestStepRepository(),
		questDomain,
	)
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	// Starting a quest that is not wishlisted fails.
	_, err := d.StartQuest(ctx, &model.StartQuestRequest{QuestID: testutil.Quest1.ID})
	require.Error(t, err)

	_, err = d.Add(ctx, &model.AddToWishlistRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	started, err := d.StartQuest(ctx, &model.StartQuestRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.NotEmpty(t, started.ID)

	// The quest moved from the wishlist to the active list.
	list, err := d.GetList(ctx, &model.GetWishlistRequest{})
	require.NoError(t, err)
	require.Empty(t, list.Quests)

	mine, err := questDomain.GetMyQuests(ctx, &model.GetMyQuestsRequest{})
	require.NoError(t, err)
	require.Len(t, mine.Quests, 1)
}

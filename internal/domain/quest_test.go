package domain

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/pubsub"
	"github.com/sidequests/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestQuestDomain(db *gorm.DB) QuestDomain {
	return NewQuestDomain(
		repository.NewSideQuestRepository(),
		repository.NewQuestStepRepository(),
		repository.NewStepProgressRepository(),
		repository.NewCategoryRepository(),
		&testutil.MockSearchCaller{},
		&testutil.MockRedisClient{},
		&testutil.MockPublisher{},
	)
}

func Test_questDomain_Create(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestQuestDomain(db)
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	resp, err := d.Create(ctx, &model.CreateQuestRequest{
		Name:          "Bake sourdough",
		Description:   "From starter to loaf",
		CategoryID:    "skill",
		Difficulty:    3,
		Uniqueness:    2,
		LocationType:  "anywhere",
		DurationValue: 2,
		DurationUnit:  "days",
		Steps: []model.QuestStep{
			{Title: "Feed the starter"},
			{Title: "Bake"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	got, err := d.Get(ctx, &model.GetQuestRequest{ID: resp.ID})
	require.NoError(t, err)
	require.Equal(t, "Bake sourdough", got.Name)
	require.Equal(t, testutil.User1.ID, got.CreatedBy)
	require.True(t, got.IsPublic)
	require.Len(t, got.Steps, 2)
	require.Equal(t, 1, got.Steps[0].StepOrder)

	// An explicit is_public wins over the default.
	private := false
	resp, err = d.Create(ctx, &model.CreateQuestRequest{
		Name:          "Keep a dream journal",
		Description:   "Write every morning",
		CategoryID:    "self-discovery",
		Difficulty:    1,
		Uniqueness:    2,
		LocationType:  "anywhere",
		DurationValue: 1,
		DurationUnit:  "weeks",
		IsPublic:      &private,
	})
	require.NoError(t, err)

	got, err = d.Get(ctx, &model.GetQuestRequest{ID: resp.ID})
	require.NoError(t, err)
	require.False(t, got.IsPublic)
}

func Test_questDomain_Create_Invalid(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestQuestDomain(db)
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	base := model.CreateQuestRequest{
		Name:          "Valid name",
		Description:   "Valid description",
		Difficulty:    3,
		Uniqueness:    3,
		LocationType:  "anywhere",
		DurationValue: 1,
		DurationUnit:  "hours",
	}

	noName := base
	noName.Name = ""
	_, err := d.Create(ctx, &noName)
	require.Error(t, err)

	badDifficulty := base
	badDifficulty.Difficulty = 6
	_, err = d.Create(ctx, &badDifficulty)
	require.Error(t, err)

	badLocation := base
	badLocation.LocationType = "teleport"
	_, err = d.Create(ctx, &badLocation)
	require.Error(t, err)

	badUnit := base
	badUnit.DurationUnit = "fortnights"
	_, err = d.Create(ctx, &badUnit)
	require.Error(t, err)

	badCategory := base
	badCategory.CategoryID = "not-a-category"
	_, err = d.Create(ctx, &badCategory)
	require.Error(t, err)
}

func Test_questDomain_AddToMyQuests(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestQuestDomain(db)
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	resp, err := d.AddToMyQuests(ctx, &model.AddToMyQuestsRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.False(t, resp.AlreadyAdded)
	require.NotEqual(t, testutil.Quest1.ID, resp.ID)

	// The copy is personal and carries the template's steps.
	copied, err := d.Get(ctx, &model.GetQuestRequest{ID: resp.ID})
	require.NoError(t, err)
	require.False(t, copied.IsPublic)
	require.Equal(t, testutil.User1.ID, copied.CreatedBy)
	require.Equal(t, testutil.Quest1.ID, copied.SourceQuestID)
	require.Len(t, copied.Steps, len(testutil.Quest1Steps))

	// Adding the same template again returns the existing copy.
	again, err := d.AddToMyQuests(ctx, &model.AddToMyQuestsRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.True(t, again.AlreadyAdded)
	require.Equal(t, resp.ID, again.ID)

	mine, err := d.GetMyQuests(ctx, &model.GetMyQuestsRequest{})
	require.NoError(t, err)
	require.Len(t, mine.Quests, 1)

	// Another user is unaffected.
	ctx2 := testutil.NewMockContextWithUserID(db, testutil.User2.ID)
	other, err := d.AddToMyQuests(ctx2, &model.AddToMyQuestsRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.False(t, other.AlreadyAdded)
	require.NotEqual(t, resp.ID, other.ID)
}

func Test_questDomain_Complete(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestQuestDomain(db)
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	added, err := d.AddToMyQuests(ctx, &model.AddToMyQuestsRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	// Completion without notes is rejected and nothing changes.
	_, err = d.Complete(ctx, &model.CompleteQuestRequest{ID: added.ID})
	require.Error(t, err)

	_, err = d.Complete(ctx, &model.CompleteQuestRequest{ID: added.ID, CompletionNotes: "   "})
	require.Error(t, err)

	mine, err := d.GetMyQuests(ctx, &model.GetMyQuestsRequest{})
	require.NoError(t, err)
	require.Len(t, mine.Quests, 1)

	_, err = d.Complete(ctx, &model.CompleteQuestRequest{
		ID:              added.ID,
		CompletionNotes: "Crane folded on the third try",
	})
	require.NoError(t, err)

	// The quest moves from active to the journal.
	mine, err = d.GetMyQuests(ctx, &model.GetMyQuestsRequest{})
	require.NoError(t, err)
	require.Empty(t, mine.Quests)

	journal, err := d.GetJournal(ctx, &model.GetJournalRequest{})
	require.NoError(t, err)
	require.Len(t, journal.Quests, 1)
	require.Equal(t, "Crane folded on the third try", journal.Quests[0].CompletionNotes)

	// Completing twice is rejected.
	_, err = d.Complete(ctx, &model.CompleteQuestRequest{
		ID:              added.ID,
		CompletionNotes: "again",
	})
	require.Error(t, err)
}

func Test_questDomain_Complete_PublishesEvent(t *testing.T) {
	db := testutil.CreateFixtureDb()

	published := 0
	publisher := &testutil.MockPublisher{
		PublishFunc: func(_ context.Context, topic string, pack *pubsub.Pack) error {
			published++
			return nil
		},
	}

	d := NewQuestDomain(
		repository.NewSideQuestRepository(),
		repository.NewQuestStepRepository(),
		repository.NewStepProgressRepository(),
		repository.NewCategoryRepository(),
		&testutil.MockSearchCaller{},
		&testutil.MockRedisClient{},
		publisher,
	)

	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)
	added, err := d.AddToMyQuests(ctx, &model.AddToMyQuestsRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	_, err = d.Complete(ctx, &model.CompleteQuestRequest{
		ID:              added.ID,
		CompletionNotes: "done",
	})
	require.NoError(t, err)
	require.Equal(t, 1, published)
}

func Test_questDomain_GetList_ExcludeOwned(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestQuestDomain(db)
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	all, err := d.GetList(ctx, &model.GetListQuestRequest{})
	require.NoError(t, err)
	require.Len(t, all.Quests, 3)

	_, err = d.AddToMyQuests(ctx, &model.AddToMyQuestsRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	feed, err := d.GetList(ctx, &model.GetListQuestRequest{ExcludeOwned: true})
	require.NoError(t, err)
	require.Len(t, feed.Quests, 2)
	for _, quest := range feed.Quests {
		require.NotEqual(t, testutil.Quest1.Name, quest.Name)
	}
}

func Test_questDomain_GetList_FeedFilters(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestQuestDomain(db)
	ctx := testutil.NewMockContextWithDb(db)

	easy, err := d.GetList(ctx, &model.GetListQuestRequest{Filters: "easy"})
	require.NoError(t, err)
	require.Len(t, easy.Quests, 1)
	require.Equal(t, testutil.Quest1.Name, easy.Quests[0].Name)

	hardOnline, err := d.GetList(ctx, &model.GetListQuestRequest{Filters: "hard,online"})
	require.NoError(t, err)
	require.Empty(t, hardOnline.Quests)
}

func Test_questDomain_GetNearby(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestQuestDomain(db)
	ctx := testutil.NewMockContextWithDb(db)

	// A second address quest about 5km from the query point, farther than
	// the summit hike.
	err := db.Create(&entity.SideQuest{
		Base:          entity.Base{ID: "quest-beach"},
		Name:          "Tidepool walk",
		Description:   "Catalog what lives in three pools",
		CategoryID:    sql.NullString{Valid: true, String: "local-gem"},
		Difficulty:    1,
		Uniqueness:    3,
		LocationType:  entity.LocationAddress,
		LocationText:  "Stinson Beach, CA",
		Latitude:      sql.NullFloat64{Valid: true, Float64: 37.9010},
		Longitude:     sql.NullFloat64{Valid: true, Float64: -122.6440},
		DurationValue: 2,
		DurationUnit:  entity.DurationHours,
		IsPublic:      true,
	}).Error
	require.NoError(t, err)

	// Nearest first; only address quests with coordinates are candidates.
	resp, err := d.GetNearby(ctx, &model.GetNearbyQuestsRequest{
		Latitude:  37.92,
		Longitude: -122.59,
		RadiusKm:  10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Quests, 2)
	require.Equal(t, testutil.Quest2.Name, resp.Quests[0].Name)
	require.Equal(t, "Tidepool walk", resp.Quests[1].Name)

	limited, err := d.GetNearby(ctx, &model.GetNearbyQuestsRequest{
		Latitude:  37.92,
		Longitude: -122.59,
		RadiusKm:  10,
		Limit:     1,
	})
	require.NoError(t, err)
	require.Len(t, limited.Quests, 1)
	require.Equal(t, testutil.Quest2.Name, limited.Quests[0].Name)

	// A one kilometer radius leaves only the summit hike.
	tight, err := d.GetNearby(ctx, &model.GetNearbyQuestsRequest{
		Latitude:  37.92,
		Longitude: -122.59,
		RadiusKm:  1,
	})
	require.NoError(t, err)
	require.Len(t, tight.Quests, 1)
	require.Equal(t, testutil.Quest2.Name, tight.Quests[0].Name)

	far, err := d.GetNearby(ctx, &model.GetNearbyQuestsRequest{
		Latitude:  40.7128,
		Longitude: -74.0060,
		RadiusKm:  10,
	})
	require.NoError(t, err)
	require.Empty(t, far.Quests)

	_, err = d.GetNearby(ctx, &model.GetNearbyQuestsRequest{Latitude: 95, Longitude: 0})
	require.Error(t, err)
}

func Test_questDomain_Filter(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestQuestDomain(db)
	ctx := testutil.NewMockContextWithDb(db)

	byDifficulty, err := d.Filter(ctx, &model.FilterQuestsRequest{Type: "difficulty", Value: "4"})
	require.NoError(t, err)
	require.Len(t, byDifficulty.Quests, 1)
	require.Equal(t, testutil.Quest2.Name, byDifficulty.Quests[0].Name)

	byDuration, err := d.Filter(ctx, &model.FilterQuestsRequest{Type: "duration", Value: "under-1hour"})
	require.NoError(t, err)
	require.Len(t, byDuration.Quests, 1)
	require.Equal(t, testutil.Quest1.Name, byDuration.Quests[0].Name)

	_, err = d.Filter(ctx, &model.FilterQuestsRequest{Type: "color", Value: "red"})
	require.Error(t, err)
}

func Test_questDomain_StepProgress(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestQuestDomain(db)
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	added, err := d.AddToMyQuests(ctx, &model.AddToMyQuestsRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	_, err = d.CompleteStep(ctx, &model.CompleteQuestStepRequest{
		UserQuestID: added.ID, StepOrder: 1,
	})
	require.NoError(t, err)

	// Completing the same step again must not fail or duplicate.
	_, err = d.CompleteStep(ctx, &model.CompleteQuestStepRequest{
		UserQuestID: added.ID, StepOrder: 1,
	})
	require.NoError(t, err)

	progress, err := d.GetStepProgress(ctx, &model.GetStepProgressRequest{UserQuestID: added.ID})
	require.NoError(t, err)
	require.Len(t, progress.Progress, 1)
	require.NotEmpty(t, progress.Progress[0].CompletedAt)

	_, err = d.UncompleteStep(ctx, &model.UncompleteQuestStepRequest{
		UserQuestID: added.ID, StepOrder: 1,
	})
	require.NoError(t, err)

	progress, err = d.GetStepProgress(ctx, &model.GetStepProgressRequest{UserQuestID: added.ID})
	require.NoError(t, err)
	require.Len(t, progress.Progress, 1)
	require.Empty(t, progress.Progress[0].CompletedAt)

	// A step that does not exist on the quest is rejected.
	_, err = d.CompleteStep(ctx, &model.CompleteQuestStepRequest{
		UserQuestID: added.ID, StepOrder: 99,
	})
	require.Error(t, err)
}

func Test_questDomain_Remove(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestQuestDomain(db)
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	added, err := d.AddToMyQuests(ctx, &model.AddToMyQuestsRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	// Only the owner can remove a copy.
	ctx2 := testutil.NewMockContextWithUserID(db, testutil.User2.ID)
	_, err = d.Remove(ctx2, &model.RemoveQuestRequest{ID: added.ID})
	require.Error(t, err)

	_, err = d.Remove(ctx, &model.RemoveQuestRequest{ID: added.ID})
	require.NoError(t, err)

	mine, err := d.GetMyQuests(ctx, &model.GetMyQuestsRequest{})
	require.NoError(t, err)
	require.Empty(t, mine.Quests)

	// The public template is untouched.
	_, err = d.Get(ctx, &model.GetQuestRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
}

func Test_questDomain_Get_PrivateQuest(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestQuestDomain(db)
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	added, err := d.AddToMyQuests(ctx, &model.AddToMyQuestsRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	ctx2 := testutil.NewMockContextWithUserID(db, testutil.User2.ID)
	_, err = d.Get(ctx2, &model.GetQuestRequest{ID: added.ID})
	require.Error(t, err)
}

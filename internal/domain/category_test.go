package domain

import (
	"testing"

	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestCategoryDomain() CategoryDomain {
	return NewCategoryDomain(repository.NewCategoryRepository(), repository.NewSideQuestRepository())
}

func Test_categoryDomain_GetList(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestCategoryDomain()
	ctx := testutil.NewMockContextWithDb(db)

	resp, err := d.GetList(ctx, &model.GetListCategoryRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Categories)
}

func Test_categoryDomain_GetCategoryQuests(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestCategoryDomain()
	ctx := testutil.NewMockContextWithDb(db)

	resp, err := d.GetCategoryQuests(ctx, &model.GetCategoryQuestsRequest{CategoryID: "skill"})
	require.NoError(t, err)
	require.Len(t, resp.Quests, 1)
	require.Equal(t, testutil.Quest1.Name, resp.Quests[0].Name)

	_, err = d.GetCategoryQuests(ctx, &model.GetCategoryQuestsRequest{CategoryID: "nope"})
	require.Error(t, err)

	_, err = d.GetCategoryQuests(ctx, &model.GetCategoryQuestsRequest{CategoryID: "skill", Limit: -1})
	require.Error(t, err)

	_, err = d.GetCategoryQuests(ctx, &model.GetCategoryQuestsRequest{CategoryID: "skill", Limit: 1000})
	require.Error(t, err)
}

func Test_categoryDomain_GetCategoryQuests_HidesOwned(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestCategoryDomain()
	questDomain := newTestQuestDomain(db)

	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)
	_, err := questDomain.AddToMyQuests(ctx, &model.AddToMyQuestsRequest{QuestID: testutil.Quest1.ID})
	require.NoError(t, err)

	resp, err := d.GetCategoryQuests(ctx, &model.GetCategoryQuestsRequest{CategoryID: "skill"})
	require.NoError(t, err)
	require.Empty(t, resp.Quests)

	// Other callers still see the template.
	ctx2 := testutil.NewMockContextWithDb(db)
	resp, err = d.GetCategoryQuests(ctx2, &model.GetCategoryQuestsRequest{CategoryID: "skill"})
	require.NoError(t, err)
	require.Len(t, resp.Quests, 1)
}

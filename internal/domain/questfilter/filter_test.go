package questfilter

import (
	"testing"

	"github.com/sidequests/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func quest(id string, difficulty int, location entity.LocationType) entity.SideQuest {
	return entity.SideQuest{
		Base:         entity.Base{ID: id},
		Name:         "quest " + id,
		Description:  "description " + id,
		Difficulty:   difficulty,
		LocationType: location,
	}
}

func TestApplyFeedFilters_EmptyFilterIsIdentity(t *testing.T) {
	quests := []entity.SideQuest{
		quest("1", 1, entity.LocationOnline),
		quest("2", 3, entity.LocationAddress),
		quest("3", 5, entity.LocationAnywhere),
	}

	require.Equal(t, quests, ApplyFeedFilters(quests, nil))
	require.Equal(t, quests, ApplyFeedFilters(quests, []string{}))

	require.Empty(t, ApplyFeedFilters(nil, []string{"easy"}))
}

func TestApplyFeedFilters_BothChecksMustPass(t *testing.T) {
	online := quest("1", 2, entity.LocationOnline)
	address := quest("2", 2, entity.LocationAddress)

	got := ApplyFeedFilters([]entity.SideQuest{online, address}, []string{"easy", "online"})
	require.Equal(t, []entity.SideQuest{online}, got)
}

func TestApplyFeedFilters_LocationFamilyIsUnion(t *testing.T) {
	quests := []entity.SideQuest{
		quest("1", 1, entity.LocationOnline),
		quest("2", 1, entity.LocationAddress),
		quest("3", 1, entity.LocationAnywhere),
	}

	got := ApplyFeedFilters(quests, []string{"online", "anywhere"})
	require.Len(t, got, 2)
	require.Equal(t, "1", got[0].ID)
	require.Equal(t, "3", got[1].ID)
}

func TestApplyFeedFilters_DifficultyBands(t *testing.T) {
	quests := []entity.SideQuest{}
	for i := 1; i <= 5; i++ {
		quests = append(quests, quest(string(rune('0'+i)), i, entity.LocationAnywhere))
	}

	easy := ApplyFeedFilters(quests, []string{"easy"})
	medium := ApplyFeedFilters(quests, []string{"medium"})
	hard := ApplyFeedFilters(quests, []string{"hard"})

	require.Len(t, easy, 2)
	require.Len(t, medium, 1)
	require.Len(t, hard, 2)

	// Bands are mutually exclusive and jointly exhaustive over 1..5.
	for _, q := range quests {
		count := 0
		for _, band := range [][]entity.SideQuest{easy, medium, hard} {
			for _, match := range band {
				if match.ID == q.ID {
					count++
				}
			}
		}
		require.Equal(t, 1, count, "difficulty %d must match exactly one band", q.Difficulty)
	}
}

func TestApplyFeedFilters_PreservesInputOrder(t *testing.T) {
	quests := []entity.SideQuest{
		quest("3", 1, entity.LocationOnline),
		quest("1", 2, entity.LocationOnline),
		quest("2", 5, entity.LocationOnline),
	}

	got := ApplyFeedFilters(quests, []string{"easy"})
	require.Equal(t, "3", got[0].ID)
	require.Equal(t, "1", got[1].ID)
}

func TestApplyFeedFilters_IgnoresUnknownTags(t *testing.T) {
	quests := []entity.SideQuest{quest("1", 3, entity.LocationOnline)}
	require.Equal(t, quests, ApplyFeedFilters(quests, []string{"unknown-tag"}))
}

func TestNewCriterion_Invalid(t *testing.T) {
	_, err := NewCriterion(map[string]any{"type": "color", "value": "red"})
	require.Error(t, err)

	_, err = NewCriterion(map[string]any{"type": "difficulty", "value": "hardest"})
	require.Error(t, err)

	_, err = NewCriterion(map[string]any{"type": "duration", "value": "under-1year"})
	require.Error(t, err)
}

func TestCriterion_ExactDifficultyMatch(t *testing.T) {
	quests := []entity.SideQuest{
		quest("1", 1, entity.LocationOnline),
		quest("2", 2, entity.LocationOnline),
		quest("3", 3, entity.LocationOnline),
	}

	criterion, err := NewCriterion(map[string]any{"type": "difficulty", "value": "2"})
	require.NoError(t, err)

	// Exact match only: difficulty 1 is not included even though the feed's
	// "easy" band would cover it.
	got := criterion.Apply(quests)
	require.Len(t, got, 1)
	require.Equal(t, "2", got[0].ID)
}

func TestCriterion_ExactUniquenessMatch(t *testing.T) {
	q1 := quest("1", 1, entity.LocationOnline)
	q1.Uniqueness = 5
	q2 := quest("2", 1, entity.LocationOnline)
	q2.Uniqueness = 3

	criterion, err := NewCriterion(map[string]any{"type": "uniqueness", "value": "5"})
	require.NoError(t, err)

	got := criterion.Apply([]entity.SideQuest{q1, q2})
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].ID)
}

func TestCriterion_LocationMatch(t *testing.T) {
	quests := []entity.SideQuest{
		quest("1", 1, entity.LocationAddress),
		quest("2", 1, entity.LocationOnline),
	}

	criterion, err := NewCriterion(map[string]any{"type": "location", "value": "address"})
	require.NoError(t, err)

	got := criterion.Apply(quests)
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].ID)
}

func TestCriterion_DurationBands(t *testing.T) {
	fortyFiveMin := quest("1", 1, entity.LocationAnywhere)
	fortyFiveMin.DurationValue = 45
	fortyFiveMin.DurationUnit = entity.DurationMinutes

	twoHours := quest("2", 1, entity.LocationAnywhere)
	twoHours.DurationValue = 2
	twoHours.DurationUnit = entity.DurationHours

	criterion, err := NewCriterion(map[string]any{"type": "duration", "value": "under-1hour"})
	require.NoError(t, err)

	got := criterion.Apply([]entity.SideQuest{fortyFiveMin, twoHours})
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].ID)

	// A quest satisfying under-1hour also satisfies under-1day.
	criterion, err = NewCriterion(map[string]any{"type": "duration", "value": "under-1day"})
	require.NoError(t, err)
	got = criterion.Apply([]entity.SideQuest{fortyFiveMin, twoHours})
	require.Len(t, got, 2)
}

func TestCriterion_LongerBand(t *testing.T) {
	oneMonth := quest("1", 1, entity.LocationAnywhere)
	oneMonth.DurationValue = 1
	oneMonth.DurationUnit = entity.DurationMonths

	twoMonths := quest("2", 1, entity.LocationAnywhere)
	twoMonths.DurationValue = 2
	twoMonths.DurationUnit = entity.DurationMonths

	criterion, err := NewCriterion(map[string]any{"type": "duration", "value": "longer"})
	require.NoError(t, err)

	// under-1month is an inclusive bound, so exactly one month is not longer.
	got := criterion.Apply([]entity.SideQuest{oneMonth, twoMonths})
	require.Len(t, got, 1)
	require.Equal(t, "2", got[0].ID)
}

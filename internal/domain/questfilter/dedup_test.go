package questfilter

import (
	"testing"

	"github.com/sidequests/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func namedQuest(id, name, description string) entity.SideQuest {
	return entity.SideQuest{
		Base:        entity.Base{ID: id},
		Name:        name,
		Description: description,
	}
}

func TestExcludeOwned(t *testing.T) {
	candidates := []entity.SideQuest{
		namedQuest("1", "Learn origami", "Fold a paper crane"),
		namedQuest("2", "Try a new cafe", "Order something you never had"),
	}
	owned := []entity.SideQuest{
		namedQuest("99", "Learn origami", "Fold a paper crane"),
	}

	got := ExcludeOwned(candidates, owned)
	require.Len(t, got, 1)
	require.Equal(t, "2", got[0].ID)
}

func TestExcludeOwned_MatchesByNameAndDescription(t *testing.T) {
	candidates := []entity.SideQuest{
		namedQuest("1", "Learn origami", "Fold a paper crane"),
		namedQuest("2", "Learn origami", "Fold a paper frog"),
	}
	owned := []entity.SideQuest{
		namedQuest("99", "Learn origami", "Fold a paper crane"),
	}

	// Same name with a different description is a different quest.
	got := ExcludeOwned(candidates, owned)
	require.Len(t, got, 1)
	require.Equal(t, "2", got[0].ID)
}

func TestExcludeOwned_NoOwned(t *testing.T) {
	candidates := []entity.SideQuest{
		namedQuest("1", "Learn origami", "Fold a paper crane"),
	}

	require.Equal(t, candidates, ExcludeOwned(candidates, nil))
}

func TestExcludeOwned_Idempotent(t *testing.T) {
	candidates := []entity.SideQuest{
		namedQuest("1", "Learn origami", "Fold a paper crane"),
		namedQuest("2", "Try a new cafe", "Order something you never had"),
		namedQuest("3", "Stargazing night", "Find three constellations"),
	}
	owned := []entity.SideQuest{
		namedQuest("99", "Try a new cafe", "Order something you never had"),
	}

	once := ExcludeOwned(candidates, owned)
	twice := ExcludeOwned(once, owned)
	require.Equal(t, once, twice)
}

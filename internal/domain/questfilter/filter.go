package questfilter

import (
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/sidequests/backend/internal/entity"
	"golang.org/x/exp/slices"
)

// Feed filter tags. Location tags and difficulty tags are disjoint families;
// within a family an empty selection means "no restriction".
var (
	locationTags = map[string]entity.LocationType{
		"online":   entity.LocationOnline,
		"anywhere": entity.LocationAnywhere,
		"address":  entity.LocationAddress,
	}

	difficultyTags = []string{"easy", "medium", "hard"}
)

// ApplyFeedFilters filters a quest snapshot by the active feed filter tags.
// A quest is retained iff it passes the location check and the difficulty
// check; input order is preserved. An empty tag set returns the input
// unchanged. Unknown tags are ignored.
func ApplyFeedFilters(quests []entity.SideQuest, activeFilterIDs []string) []entity.SideQuest {
	var locations []entity.LocationType
	var difficulties []string
	for _, id := range activeFilterIDs {
		if loc, ok := locationTags[id]; ok {
			locations = append(locations, loc)
		} else if slices.Contains(difficultyTags, id) {
			difficulties = append(difficulties, id)
		}
	}

	if len(locations) == 0 && len(difficulties) == 0 {
		return quests
	}

	result := []entity.SideQuest{}
	for _, quest := range quests {
		if len(locations) > 0 && !slices.Contains(locations, quest.LocationType) {
			continue
		}

		if len(difficulties) > 0 && !matchesAnyDifficultyBand(quest.Difficulty, difficulties) {
			continue
		}

		result = append(result, quest)
	}

	return result
}

// The three bands partition 1..5: each difficulty value satisfies exactly one
// of easy/medium/hard.
func matchesAnyDifficultyBand(difficulty int, bands []string) bool {
	for _, band := range bands {
		switch band {
		case "easy":
			if difficulty <= 2 {
				return true
			}
		case "medium":
			if difficulty == 3 {
				return true
			}
		case "hard":
			if difficulty >= 4 {
				return true
			}
		}
	}

	return false
}

type CriterionType string

var (
	CriterionLocation   = CriterionType("location")
	CriterionDifficulty = CriterionType("difficulty")
	CriterionDuration   = CriterionType("duration")
	CriterionUniqueness = CriterionType("uniqueness")
)

// Criterion is the single selection of the filter-results flow. Note that its
// difficulty rule is exact integer equality, unlike the banded rule of
// ApplyFeedFilters; both behaviors ship in the app and are kept divergent on
// purpose.
type Criterion struct {
	Type  CriterionType `mapstructure:"type"`
	Value string        `mapstructure:"value"`
}

func NewCriterion(data map[string]any) (*Criterion, error) {
	criterion := Criterion{}
	if err := mapstructure.Decode(data, &criterion); err != nil {
		return nil, err
	}

	if _, err := criterion.match(entity.SideQuest{}); err != nil {
		return nil, err
	}

	return &criterion, nil
}

// Apply returns the quests satisfying the criterion, in input order.
func (c *Criterion) Apply(quests []entity.SideQuest) []entity.SideQuest {
	result := []entity.SideQuest{}
	for _, quest := range quests {
		ok, err := c.match(quest)
		if err != nil {
			// Validated in NewCriterion, unreachable.
			return result
		}

		if ok {
			result = append(result, quest)
		}
	}

	return result
}

func (c *Criterion) match(quest entity.SideQuest) (bool, error) {
	switch c.Type {
	case CriterionLocation:
		loc, ok := locationTags[c.Value]
		if !ok {
			return false, errInvalidValue(c)
		}
		return quest.LocationType == loc, nil

	case CriterionDifficulty:
		level, err := strconv.Atoi(c.Value)
		if err != nil {
			return false, errInvalidValue(c)
		}
		return quest.Difficulty == level, nil

	case CriterionUniqueness:
		level, err := strconv.Atoi(c.Value)
		if err != nil {
			return false, errInvalidValue(c)
		}
		return quest.Uniqueness == level, nil

	case CriterionDuration:
		band, err := toDurationBand(c.Value)
		if err != nil {
			return false, errInvalidValue(c)
		}
		return band.matches(ToMinutes(quest.DurationValue, quest.DurationUnit)), nil
	}

	return false, errInvalidType(c)
}

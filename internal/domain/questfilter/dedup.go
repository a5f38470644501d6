package questfilter

import (
	"fmt"

	"github.com/sidequests/backend/internal/entity"
)

func errInvalidType(c *Criterion) error {
	return fmt.Errorf("unknown criterion type %s", c.Type)
}

func errInvalidValue(c *Criterion) error {
	return fmt.Errorf("invalid value %q for criterion %s", c.Value, c.Type)
}

// Fingerprint is the identity key relating a public template to a user's
// copy. There is no foreign key between them: exact (name, description)
// equality, case-sensitive and untrimmed, decides ownership.
type Fingerprint struct {
	Name        string
	Description string
}

func FingerprintOf(quest entity.SideQuest) Fingerprint {
	return Fingerprint{Name: quest.Name, Description: quest.Description}
}

// ExcludeOwned drops every candidate whose fingerprint matches any owned
// quest, whether or not the owned copy is completed. Idempotent: filtering an
// already filtered list against the same owned set is a no-op.
func ExcludeOwned(candidates, owned []entity.SideQuest) []entity.SideQuest {
	if len(owned) == 0 {
		return candidates
	}

	ownedSet := make(map[Fingerprint]struct{}, len(owned))
	for _, quest := range owned {
		ownedSet[FingerprintOf(quest)] = struct{}{}
	}

	result := []entity.SideQuest{}
	for _, quest := range candidates {
		if _, ok := ownedSet[FingerprintOf(quest)]; ok {
			continue
		}

		result = append(result, quest)
	}

	return result
}

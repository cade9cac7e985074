package directory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultSeed returns the activities the service starts with when no seed file is configured.
func DefaultSeed() map[string]Activity {
	return map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

// LoadSeed reads a seed set from a JSON file shaped like the GET /activities response.
func LoadSeed(path string) (map[string]Activity, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed map[string]Activity
	if err := json.Unmarshal(content, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	if err := ValidateSeed(seed); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return seed, nil
}

// ValidateSeed checks the invariants every activity must satisfy before it enters a directory.
func ValidateSeed(seed map[string]Activity) error {
	for name, a := range seed {
		if name == "" {
			return errors.New("activity with empty name")
		}
		if a.MaxParticipants <= 0 {
			return fmt.Errorf("activity %q: max_participants must be positive, got %d", name, a.MaxParticipants)
		}
		seen := make(map[string]struct{}, len(a.Participants))
		for _, p := range a.Participants {
			if _, dup := seen[p]; dup {
				return fmt.Errorf("activity %q: duplicate participant %s", name, p)
			}
			seen[p] = struct{}{}
		}
	}
	return nil
}

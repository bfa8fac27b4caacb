package round

import "fmt"

// Round is one matchday of a league season.
type Round struct {
	Round int    `json:"round"`
	Name  string `json:"name,omitempty"`
	Slug  string `json:"slug,omitempty"`
}

func (r Round) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("Round %d", r.Round)
}

// Set is the provider's rounds document for a league season.
type Set struct {
	CurrentRound Round   `json:"currentRound"`
	Rounds       []Round `json:"rounds"`
}

func (s Set) Validate() error {
	if len(s.Rounds) == 0 {
		return fmt.Errorf("rounds list is empty")
	}
	for _, r := range s.Rounds {
		if r.Round == s.CurrentRound.Round {
			return nil
		}
	}
	return fmt.Errorf("current round %d not present in rounds", s.CurrentRound.Round)
}

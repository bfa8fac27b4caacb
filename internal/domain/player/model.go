package player

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
)

const (
	MinRating = 1
	MaxRating = 5
)

// TeamRef is the team embedded in a player row.
type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Player is an athlete imported from the provider.
type Player struct {
	ID          int64              `json:"id"`
	ExternalID  refdata.ExternalID `json:"external_id"`
	Name        string             `json:"name"`
	Position    string             `json:"position"`
	Nationality string             `json:"nationality"`
	Image       string             `json:"image"`
	TeamID      int64              `json:"team_id"`
	Team        *TeamRef           `json:"team,omitempty"`
	Rating      int                `json:"player_rating"`
	Status      refdata.Status     `json:"status"`
}

func (p Player) StatusOf() refdata.Status {
	return p.Status
}

func (p Player) Key() int64 {
	return p.ID
}

func (p Player) TeamName() string {
	if p.Team == nil {
		return ""
	}
	return p.Team.Name
}

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("player rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}
	return nil
}

// Filter narrows a page of players locally. Zero fields match everything.
type Filter struct {
	Search   string
	TeamID   int64
	Position string
	Status   *refdata.Status
}

func (f Filter) Match(p Player) bool {
	if f.TeamID != 0 && p.TeamID != f.TeamID {
		return false
	}
	if f.Position != "" && !strings.EqualFold(p.Position, f.Position) {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.TeamName()), term) ||
		strings.Contains(strings.ToLower(p.Position), term)
}

func (f Filter) Apply(items []Player) []Player {
	out := make([]Player, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

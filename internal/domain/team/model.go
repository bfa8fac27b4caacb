package team

import (
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
)

// Team is a club imported from the sports data provider.
type Team struct {
	ID           int64              `json:"id"`
	ExternalID   refdata.ExternalID `json:"external_id"`
	Name         string             `json:"name"`
	Code         string             `json:"code"`
	Logo         string             `json:"logo"`
	Country      string             `json:"country"`
	League       string             `json:"league"`
	LeagueID     int64              `json:"league_id"`
	Status       refdata.Status     `json:"status"`
	PlayersCount int                `json:"players_count"`
}

func (t Team) StatusOf() refdata.Status {
	return t.Status
}

func (t Team) Key() int64 {
	return t.ID
}

// Filter narrows a page of teams locally.
type Filter struct {
	Search string
}

// Match reports whether the team name, league or country contains the search term.
func (f Filter) Match(t Team) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), term) ||
		strings.Contains(strings.ToLower(t.League), term) ||
		strings.Contains(strings.ToLower(t.Country), term)
}

func (f Filter) Apply(items []Team) []Team {
	out := make([]Team, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

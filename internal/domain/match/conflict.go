package match

import (
	"fmt"
	"strings"
)

// ConflictError is the structured rejection of a create request whose
// players already have matches on the fixture date.
type ConflictError struct {
	PlayerIDs []int64 `json:"conflicting_players"`
	Message   string  `json:"message"`
	MatchDate string  `json:"match_date"`
}

func (e *ConflictError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "conflicting matches"
	}
	return fmt.Sprintf("%s (players %v, date %s)", msg, e.PlayerIDs, e.MatchDate)
}

// Describe renders the conflict with player ids mapped to names.
func (e *ConflictError) Describe(nameOf func(int64) string) string {
	names := make([]string, 0, len(e.PlayerIDs))
	for _, id := range e.PlayerIDs {
		names = append(names, nameOf(id))
	}
	msg := e.Message
	if msg == "" {
		msg = "Some players already have a match"
	}
	out := fmt.Sprintf("%s: %s", msg, strings.Join(names, ", "))
	if e.MatchDate != "" {
		out += " on " + e.MatchDate
	}
	return out
}

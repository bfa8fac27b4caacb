package fixture

import (
	"fmt"
	"time"

	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
)

// Fixture is a scheduled real-world match sourced from the provider.
type Fixture struct {
	ID         int64              `json:"id" validate:"required,gt=0"`
	ExternalID refdata.ExternalID `json:"external_id"`
	LeagueID   int64              `json:"league_id"`
	Season     string             `json:"season"`
	Round      string             `json:"round,omitempty"`
	Date       string             `json:"date"`
	Timestamp  int64              `json:"timestamp"`
	Status     string             `json:"status"`

	VenueID   int64  `json:"venue_id"`
	VenueName string `json:"venue_name"`
	VenueCity string `json:"venue_city"`

	HomeTeamID   int64  `json:"home_team_id" validate:"required,gt=0"`
	HomeTeamName string `json:"home_team_name"`
	HomeTeamLogo string `json:"home_team_logo"`
	AwayTeamID   int64  `json:"away_team_id" validate:"required,gt=0,nefield=HomeTeamID"`
	AwayTeamName string `json:"away_team_name"`
	AwayTeamLogo string `json:"away_team_logo"`

	GoalsHome    *int `json:"goals_home"`
	GoalsAway    *int `json:"goals_away"`
	HalftimeHome *int `json:"halftime_home"`
	HalftimeAway *int `json:"halftime_away"`
	FulltimeHome *int `json:"fulltime_home"`
	FulltimeAway *int `json:"fulltime_away"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

const dayLayout = "2006-01-02"

// Kickoff resolves the start time from the unix timestamp, falling back to the
// date string. A date without a time resolves to midnight UTC.
func (f Fixture) Kickoff() (time.Time, error) {
	kickoff, _, err := f.kickoff()
	return kickoff, err
}

func (f Fixture) kickoff() (t time.Time, dateOnly bool, err error) {
	if f.Timestamp > 0 {
		return time.Unix(f.Timestamp, 0).UTC(), false, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, f.Date); err == nil {
			return t.UTC(), false, nil
		}
	}
	if t, err := time.Parse(dayLayout, f.Date); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("fixture %d has no parsable kickoff (date=%q)", f.ID, f.Date)
}

// IsUpcoming reports whether the fixture starts at or after now. A date-only
// fixture counts as upcoming for the whole of its calendar day.
func (f Fixture) IsUpcoming(now time.Time) bool {
	kickoff, dateOnly, err := f.kickoff()
	if err != nil {
		return false
	}
	if dateOnly {
		now = now.UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return !kickoff.Before(today)
	}
	return !kickoff.Before(now)
}

func (f Fixture) Title() string {
	return fmt.Sprintf("%s vs %s", f.HomeTeamName, f.AwayTeamName)
}

func (f Fixture) Score() string {
	if f.GoalsHome == nil || f.GoalsAway == nil {
		return "-"
	}
	return fmt.Sprintf("%d - %d", *f.GoalsHome, *f.GoalsAway)
}

// Upcoming keeps fixtures starting at or after now, in input order.
func Upcoming(fixtures []Fixture, now time.Time) []Fixture {
	out := make([]Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if f.IsUpcoming(now) {
			out = append(out, f)
		}
	}
	return out
}

package season

import (
	"context"

	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
)

// Season is one edition of a league.
type Season struct {
	ID         int64              `json:"id"`
	LeagueID   int64              `json:"league_id"`
	ExternalID refdata.ExternalID `json:"external_id"`
	Name       string             `json:"name"`
	Year       string             `json:"year"`
	IsCurrent  int                `json:"is_current"`
}

// Current returns the season flagged current, falling back to the first one.
func Current(seasons []Season) (Season, bool) {
	if len(seasons) == 0 {
		return Season{}, false
	}
	for _, s := range seasons {
		if s.IsCurrent == 1 {
			return s, true
		}
	}
	return seasons[0], true
}

// Repository describes the season endpoints use cases depend on.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
}

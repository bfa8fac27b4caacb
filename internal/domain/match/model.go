package match

import (
	"context"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/player"
	"github.com/riskibarqy/starpick-admin/internal/domain/team"
)

// Match pairs one player with the team they face in a fixture.
type Match struct {
	ID          int64          `json:"id"`
	UUID        string         `json:"uuid"`
	PlayerID    int64          `json:"player_id"`
	TeamID      int64          `json:"team_id"`
	FixtureID   int64          `json:"fixture_id"`
	LeagueID    int64          `json:"league_id"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	IsCompleted int            `json:"is_completed"`
	Player      *player.Player `json:"player,omitempty"`
	Team        *team.Team     `json:"team,omitempty"`
	CreatedAt   string         `json:"created_at"`
}

func (m Match) Completed() bool {
	return m.IsCompleted == 1
}

// Entry is one player/opponent tuple of a create request.
type Entry struct {
	PlayerID    int64 `json:"playerId" validate:"required,gt=0"`
	AgainstTeam int64 `json:"againstTeam" validate:"required,gt=0"`
	FixtureID   int64 `json:"fixtureId" validate:"required,gt=0"`
}

// Repository describes the match endpoints use cases depend on.
type Repository interface {
	List(ctx context.Context, query pagination.Query) (pagination.Page[Match], error)
	Create(ctx context.Context, req CreateRequest) error
}

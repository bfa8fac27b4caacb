package player

import (
	"context"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
)

// RosterQuery selects the players of one team.
type RosterQuery struct {
	Page    int    `query:"page,omitempty"`
	Search  string `query:"search,omitempty"`
	Playing bool   `query:"playing,omitempty"`
}

// Repository describes the player endpoints use cases depend on.
type Repository interface {
	List(ctx context.Context, query pagination.Query) (pagination.Page[Player], error)
	ListByTeam(ctx context.Context, teamID int64, query RosterQuery) (pagination.Page[Player], error)
	SetStatus(ctx context.Context, playerID int64, status refdata.Status) error
	SetRating(ctx context.Context, playerID int64, rating int) error
}

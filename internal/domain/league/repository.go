package league

import (
	"context"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
	"github.com/riskibarqy/starpick-admin/internal/domain/season"
	"github.com/riskibarqy/starpick-admin/internal/domain/team"
)

// Repository describes the league endpoints use cases depend on.
type Repository interface {
	List(ctx context.Context, query pagination.Query) (pagination.Page[League], error)
	ListActive(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID int64) (League, error)
	Seasons(ctx context.Context, leagueID int64) ([]season.Season, error)
	Teams(ctx context.Context, leagueID int64) ([]team.Team, error)
	SetStatus(ctx context.Context, leagueID int64, status refdata.Status) error
}

package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/starpick-admin/internal/domain/league"
	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
	"github.com/riskibarqy/starpick-admin/internal/domain/season"
	"github.com/riskibarqy/starpick-admin/internal/domain/team"
	basecache "github.com/riskibarqy/starpick-admin/internal/platform/cache"
)

// LeagueRepository caches the read-mostly league lookups used by the league
// detail and rounds screens. Paginated lists always go to the backend.
type LeagueRepository struct {
	next    league.Repository
	active  *basecache.Store[[]league.League]
	byID    *basecache.Store[league.League]
	seasons *basecache.Store[[]season.Season]
	teams   *basecache.Store[[]team.Team]
}

func NewLeagueRepository(next league.Repository, ttl time.Duration) *LeagueRepository {
	return &LeagueRepository{
		next:    next,
		active:  basecache.NewStore[[]league.League](ttl),
		byID:    basecache.NewStore[league.League](ttl),
		seasons: basecache.NewStore[[]season.Season](ttl),
		teams:   basecache.NewStore[[]team.Team](ttl),
	}
}

func (r *LeagueRepository) List(ctx context.Context, query pagination.Query) (pagination.Page[league.League], error) {
	return r.next.List(ctx, query)
}

func (r *LeagueRepository) ListActive(ctx context.Context) ([]league.League, error) {
	items, err := r.active.GetOrLoad(ctx, "league:active", r.next.ListActive)
	if err != nil {
		return nil, err
	}
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, error) {
	return r.byID.GetOrLoad(ctx, leagueKey(leagueID), func(ctx context.Context) (league.League, error) {
		return r.next.GetByID(ctx, leagueID)
	})
}

func (r *LeagueRepository) Seasons(ctx context.Context, leagueID int64) ([]season.Season, error) {
	items, err := r.seasons.GetOrLoad(ctx, leagueKey(leagueID), func(ctx context.Context) ([]season.Season, error) {
		return r.next.Seasons(ctx, leagueID)
	})
	if err != nil {
		return nil, err
	}
	return append([]season.Season(nil), items...), nil
}

func (r *LeagueRepository) Teams(ctx context.Context, leagueID int64) ([]team.Team, error) {
	items, err := r.teams.GetOrLoad(ctx, leagueKey(leagueID), func(ctx context.Context) ([]team.Team, error) {
		return r.next.Teams(ctx, leagueID)
	})
	if err != nil {
		return nil, err
	}
	return append([]team.Team(nil), items...), nil
}

// SetStatus writes through and drops every cached view of the league.
func (r *LeagueRepository) SetStatus(ctx context.Context, leagueID int64, status refdata.Status) error {
	if err := r.next.SetStatus(ctx, leagueID, status); err != nil {
		return err
	}
	key := leagueKey(leagueID)
	r.active.Delete("league:active")
	r.byID.Delete(key)
	r.seasons.Delete(key)
	r.teams.Delete(key)
	return nil
}

// dropTeams forgets every cached league team list.
func (r *LeagueRepository) dropTeams() {
	r.teams.DeletePrefix("league:")
}

// TeamRepository passes team calls through and keeps the league team lists
// cached by leagues in step with team status changes.
type TeamRepository struct {
	next    team.Repository
	leagues *LeagueRepository
}

func NewTeamRepository(next team.Repository, leagues *LeagueRepository) *TeamRepository {
	return &TeamRepository{next: next, leagues: leagues}
}

func (r *TeamRepository) List(ctx context.Context, query pagination.Query) (pagination.Page[team.Team], error) {
	return r.next.List(ctx, query)
}

func (r *TeamRepository) SetStatus(ctx context.Context, teamID int64, status refdata.Status) error {
	if err := r.next.SetStatus(ctx, teamID, status); err != nil {
		return err
	}
	if r.leagues != nil {
		r.leagues.dropTeams()
	}
	return nil
}

func leagueKey(leagueID int64) string {
	return "league:" + strconv.FormatInt(leagueID, 10)
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store[[]season.Season]
}

func NewSeasonRepository(next season.Repository, ttl time.Duration) *SeasonRepository {
	return &SeasonRepository{next: next, cache: basecache.NewStore[[]season.Season](ttl)}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	items, err := r.cache.GetOrLoad(ctx, "season:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]season.Season(nil), items...), nil
}

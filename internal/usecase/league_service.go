package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/starpick-admin/internal/domain/league"
	"github.com/riskibarqy/starpick-admin/internal/domain/season"
	"github.com/riskibarqy/starpick-admin/internal/domain/team"
)

// LeagueDetail is everything the league page shows.
type LeagueDetail struct {
	League        league.League
	Seasons       []season.Season
	Teams         []team.Team
	CurrentSeason *season.Season
}

type LeagueService struct {
	leagueRepo league.Repository
}

func NewLeagueService(leagueRepo league.Repository) *LeagueService {
	return &LeagueService{leagueRepo: leagueRepo}
}

func (s *LeagueService) ListActive(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListActive")
	defer span.End()

	items, err := s.leagueRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active leagues: %w", err)
	}
	return items, nil
}

// Detail loads the league, its seasons and its teams concurrently. The
// first failure cancels the other requests.
func (s *LeagueService) Detail(ctx context.Context, leagueID int64) (LeagueDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Detail")
	defer span.End()

	if leagueID <= 0 {
		return LeagueDetail{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	var out LeagueDetail
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		item, err := s.leagueRepo.GetByID(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("get league %d: %w", leagueID, err)
		}
		out.League = item
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.leagueRepo.Seasons(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("list seasons of league %d: %w", leagueID, err)
		}
		out.Seasons = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.leagueRepo.Teams(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("list teams of league %d: %w", leagueID, err)
		}
		out.Teams = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return LeagueDetail{}, err
	}

	if current, ok := season.Current(out.Seasons); ok {
		out.CurrentSeason = &current
	}
	return out, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/starpick-admin/internal/domain/fixture"
	"github.com/riskibarqy/starpick-admin/internal/domain/match"
	"github.com/riskibarqy/starpick-admin/internal/domain/player"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
)

// MatchComposer runs the match-creation workflow for one operator session.
type MatchComposer struct {
	fixtures fixture.Repository
	players  player.Repository
	matches  match.Repository
	notifier Notifier
	logger   *logging.Logger
	now      func() time.Time

	mu          sync.Mutex
	composition *match.Composition
}

func NewMatchComposer(
	fixtures fixture.Repository,
	players player.Repository,
	matches match.Repository,
	notifier Notifier,
	logger *logging.Logger,
) *MatchComposer {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchComposer{
		fixtures:    fixtures,
		players:     players,
		matches:     matches,
		notifier:    notifierOrNop(notifier),
		logger:      logger,
		now:         time.Now,
		composition: match.NewComposition(),
	}
}

// UpcomingFixtures lists fixtures that have not kicked off yet.
func (s *MatchComposer) UpcomingFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchComposer.UpcomingFixtures")
	defer span.End()

	items, err := s.fixtures.List(ctx)
	if err != nil {
		s.notifier.Notify(failure("Error", "Failed to load fixtures."))
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	return fixture.Upcoming(items, s.now().UTC()), nil
}

// SelectFixture starts a composition for f and loads both rosters in
// parallel. A missing roster raises a warning but the workflow continues.
func (s *MatchComposer) SelectFixture(ctx context.Context, f fixture.Fixture) (match.MissingRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchComposer.SelectFixture")
	defer span.End()

	if f.ID <= 0 || f.HomeTeamID <= 0 || f.AwayTeamID <= 0 {
		return match.MissingNone, fmt.Errorf("%w: fixture must carry id and both team ids", ErrInvalidInput)
	}

	s.mu.Lock()
	err := s.composition.SelectFixture(f)
	s.mu.Unlock()
	if err != nil {
		return match.MissingNone, err
	}

	var home, away []player.Player
	var wg conc.WaitGroup
	wg.Go(func() { home = s.loadRoster(ctx, f.HomeTeamID, f.HomeTeamName) })
	wg.Go(func() { away = s.loadRoster(ctx, f.AwayTeamID, f.AwayTeamName) })
	wg.Wait()

	if ctx.Err() != nil {
		return match.MissingNone, ctx.Err()
	}

	s.mu.Lock()
	current, ok := s.composition.Fixture()
	if !ok || current.ID != f.ID {
		s.mu.Unlock()
		return match.MissingNone, nil
	}
	missing, err := s.composition.LoadRosters(home, away)
	s.mu.Unlock()
	if err != nil {
		return match.MissingNone, err
	}

	if missing != match.MissingNone {
		s.notifier.Notify(warning("Missing players", missing.Warning(f)))
	}
	return missing, nil
}

// loadRoster returns every playing player of a team. A failed fetch is
// reported and yields an empty roster.
func (s *MatchComposer) loadRoster(ctx context.Context, teamID int64, teamName string) []player.Player {
	out := make([]player.Player, 0, 32)
	for page := 1; ; page++ {
		result, err := s.players.ListByTeam(ctx, teamID, player.RosterQuery{Page: page, Playing: true})
		if err != nil {
			if ctx.Err() == nil {
				s.logger.WarnContext(ctx, "load roster failed", "team_id", teamID, "page", page, "error", err)
				s.notifier.Notify(failure("Error", fmt.Sprintf("Failed to load players for %s.", teamName)))
			}
			return out
		}
		out = append(out, result.Data...)
		if result.CurrentPage >= result.LastPage || len(result.Data) == 0 {
			return out
		}
	}
}

func (s *MatchComposer) Candidates(search string) []player.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composition.Candidates(search)
}

// Add tags a player. Adding a selected player again is a no-op.
func (s *MatchComposer) Add(playerID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composition.Add(playerID)
}

func (s *MatchComposer) Remove(playerID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composition.Remove(playerID)
}

func (s *MatchComposer) Selected() []player.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composition.Selection().Players()
}

func (s *MatchComposer) State() match.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composition.State()
}

// Preview returns the payload Submit would post.
func (s *MatchComposer) Preview() (match.CreateRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composition.Request()
}

// Submit posts the selection as one batch. Success clears the form. A
// conflict keeps the selection and names the conflicting players.
func (s *MatchComposer) Submit(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchComposer.Submit")
	defer span.End()

	s.mu.Lock()
	req, err := s.composition.BeginSubmit()
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := validateStruct(ctx, req); err != nil {
		s.fail()
		s.notifier.Notify(failure("Invalid selection", err.Error()))
		return err
	}

	err = s.matches.Create(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.composition.Succeed()
		s.notifier.Notify(success("Matches created", fmt.Sprintf("%d match(es) created for %s.", len(req.Matches), req.Fixture.Title())))
		return nil
	}

	s.composition.Fail()
	var conflict *match.ConflictError
	if errors.As(err, &conflict) {
		s.notifier.Notify(failure("Conflict", conflict.Describe(s.composition.PlayerName)))
		return fmt.Errorf("%w: %w", ErrConflict, conflict)
	}
	if !isUnauthorized(err) {
		s.notifier.Notify(failure("Error", "Failed to create matches. Please try again."))
	}
	s.logger.WarnContext(ctx, "create matches failed", "fixture_id", req.Fixture.ID, "error", err)
	return fmt.Errorf("create matches: %w", err)
}

func (s *MatchComposer) fail() {
	s.mu.Lock()
	s.composition.Fail()
	s.mu.Unlock()
}

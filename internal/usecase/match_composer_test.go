package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/starpick-admin/internal/domain/fixture"
	"github.com/riskibarqy/starpick-admin/internal/domain/match"
	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/player"
	fixturemock "github.com/riskibarqy/starpick-admin/internal/mocks/domain/fixture"
	matchmock "github.com/riskibarqy/starpick-admin/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/starpick-admin/internal/mocks/domain/player"
)

func composerFixture() fixture.Fixture {
	return fixture.Fixture{ID: 10, HomeTeamID: 1, HomeTeamName: "Home FC", AwayTeamID: 2, AwayTeamName: "Away FC"}
}

func rosterPage(players []player.Player, current, last int) pagination.Page[player.Player] {
	return pagination.Page[player.Player]{Data: players, CurrentPage: current, LastPage: last}
}

func newComposerUnderTest(t *testing.T) (*MatchComposer, *playermock.Repository, *matchmock.Repository, *RecordingNotifier) {
	t.Helper()
	players := playermock.NewRepository(t)
	matches := matchmock.NewRepository(t)
	notifier := &RecordingNotifier{}
	composer := NewMatchComposer(fixturemock.NewRepository(t), players, matches, notifier, nil)
	return composer, players, matches, notifier
}

func expectRosters(players *playermock.Repository, home, away []player.Player) {
	players.
		On("ListByTeam", mock.Anything, int64(1), player.RosterQuery{Page: 1, Playing: true}).
		Return(rosterPage(home, 1, 1), nil).
		Once()
	players.
		On("ListByTeam", mock.Anything, int64(2), player.RosterQuery{Page: 1, Playing: true}).
		Return(rosterPage(away, 1, 1), nil).
		Once()
}

func TestMatchComposer_EndToEnd(t *testing.T) {
	t.Parallel()

	composer, players, matches, notifier := newComposerUnderTest(t)
	expectRosters(players,
		[]player.Player{{ID: 100, Name: "Home Striker", Position: "F", TeamID: 1}},
		[]player.Player{{ID: 200, Name: "Away Keeper", Position: "G", TeamID: 2}},
	)

	missing, err := composer.SelectFixture(context.Background(), composerFixture())
	if err != nil {
		t.Fatalf("select fixture: %v", err)
	}
	if missing != match.MissingNone {
		t.Fatalf("unexpected missing roster %q", missing)
	}
	if got := composer.State(); got != match.StateRostersLoaded {
		t.Fatalf("expected rosters loaded, got %s", got)
	}

	for _, id := range []int64{100, 200, 100} {
		if _, err := composer.Add(id); err != nil {
			t.Fatalf("add %d: %v", id, err)
		}
	}
	if n := len(composer.Selected()); n != 2 {
		t.Fatalf("expected 2 selected players, got %d", n)
	}

	matches.
		On("Create", mock.Anything, mock.MatchedBy(func(req match.CreateRequest) bool {
			if req.Fixture.ID != 10 || len(req.Matches) != 2 {
				return false
			}
			return req.Matches[0] == match.Entry{PlayerID: 100, AgainstTeam: 2, FixtureID: 10} &&
				req.Matches[1] == match.Entry{PlayerID: 200, AgainstTeam: 1, FixtureID: 10}
		})).
		Return(nil).
		Once()

	if err := composer.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := composer.State(); got != match.StateNoFixtureSelected {
		t.Fatalf("success must clear the form, got %s", got)
	}
	if len(composer.Selected()) != 0 {
		t.Fatalf("selection must be cleared after success")
	}
	toast, _ := notifier.Last()
	if toast.Kind != ToastSuccess {
		t.Fatalf("expected success toast, got %+v", toast)
	}
}

func TestMatchComposer_ConflictKeepsSelection(t *testing.T) {
	t.Parallel()

	composer, players, matches, notifier := newComposerUnderTest(t)
	expectRosters(players,
		[]player.Player{{ID: 100, Name: "Home Striker"}},
		[]player.Player{{ID: 200, Name: "Away Keeper"}},
	)
	if _, err := composer.SelectFixture(context.Background(), composerFixture()); err != nil {
		t.Fatalf("select fixture: %v", err)
	}
	if _, err := composer.Add(200); err != nil {
		t.Fatalf("add: %v", err)
	}

	conflict := &match.ConflictError{PlayerIDs: []int64{200}, Message: "Players already have a match", MatchDate: "2026-03-01"}
	matches.On("Create", mock.Anything, mock.Anything).Return(conflict).Once()

	err := composer.Submit(context.Background())
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	var got *match.ConflictError
	if !errors.As(err, &got) || got.PlayerIDs[0] != 200 {
		t.Fatalf("expected conflict details, got %v", err)
	}
	if state := composer.State(); state != match.StatePlayersSelected {
		t.Fatalf("conflict must return to players selected, got %s", state)
	}
	if len(composer.Selected()) != 1 {
		t.Fatalf("selection must survive a conflict")
	}
	toast, _ := notifier.Last()
	if toast.Kind != ToastError || !strings.Contains(toast.Description, "Away Keeper") || !strings.Contains(toast.Description, "2026-03-01") {
		t.Fatalf("conflict toast must name players and date, got %+v", toast)
	}
}

func TestMatchComposer_GenericFailureToasts(t *testing.T) {
	t.Parallel()

	composer, players, matches, notifier := newComposerUnderTest(t)
	expectRosters(players, []player.Player{{ID: 100, Name: "H"}}, []player.Player{{ID: 200, Name: "A"}})
	if _, err := composer.SelectFixture(context.Background(), composerFixture()); err != nil {
		t.Fatalf("select fixture: %v", err)
	}
	if _, err := composer.Add(100); err != nil {
		t.Fatalf("add: %v", err)
	}
	matches.On("Create", mock.Anything, mock.Anything).Return(ErrDependencyUnavailable).Once()

	if err := composer.Submit(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	toast, _ := notifier.Last()
	if toast.Description != "Failed to create matches. Please try again." {
		t.Fatalf("unexpected toast: %+v", toast)
	}
	if composer.State() != match.StatePlayersSelected {
		t.Fatalf("unexpected state %s", composer.State())
	}
}

func TestMatchComposer_MissingRosterWarnsAndContinues(t *testing.T) {
	t.Parallel()

	composer, players, _, notifier := newComposerUnderTest(t)
	players.
		On("ListByTeam", mock.Anything, int64(1), mock.Anything).
		Return(pagination.Page[player.Player]{}, errors.New("boom")).
		Once()
	players.
		On("ListByTeam", mock.Anything, int64(2), player.RosterQuery{Page: 1, Playing: true}).
		Return(rosterPage([]player.Player{{ID: 201}}, 1, 2), nil).
		Once()
	players.
		On("ListByTeam", mock.Anything, int64(2), player.RosterQuery{Page: 2, Playing: true}).
		Return(rosterPage([]player.Player{{ID: 202}}, 2, 2), nil).
		Once()

	missing, err := composer.SelectFixture(context.Background(), composerFixture())
	if err != nil {
		t.Fatalf("select fixture: %v", err)
	}
	if missing != match.MissingHome {
		t.Fatalf("expected home roster missing, got %q", missing)
	}
	if n := len(composer.Candidates("")); n != 2 {
		t.Fatalf("expected both away pages to be merged, got %d candidates", n)
	}
	if notifier.Count(ToastError) != 1 || notifier.Count(ToastWarning) != 1 {
		t.Fatalf("expected one error and one warning toast, got %+v", notifier.Toasts())
	}
	if _, err := composer.Add(202); err != nil {
		t.Fatalf("workflow must continue with one roster: %v", err)
	}
}

func TestMatchComposer_SubmitWithoutSelection(t *testing.T) {
	t.Parallel()

	composer, _, _, _ := newComposerUnderTest(t)
	if err := composer.Submit(context.Background()); !errors.Is(err, ErrInvalidInput) || !errors.Is(err, match.ErrNoFixture) {
		t.Fatalf("expected invalid input wrapping ErrNoFixture, got %v", err)
	}
}

func TestMatchComposer_UpcomingFixtures(t *testing.T) {
	t.Parallel()

	fixtures := fixturemock.NewRepository(t)
	composer := NewMatchComposer(fixtures, playermock.NewRepository(t), matchmock.NewRepository(t), nil, nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	composer.now = func() time.Time { return now }

	fixtures.On("List", mock.Anything).Return([]fixture.Fixture{
		{ID: 1, Timestamp: now.Add(-time.Hour).Unix()},
		{ID: 2, Timestamp: now.Add(time.Hour).Unix()},
	}, nil).Once()

	got, err := composer.UpcomingFixtures(context.Background())
	if err != nil {
		t.Fatalf("upcoming fixtures: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only fixture 2, got %+v", got)
	}
}

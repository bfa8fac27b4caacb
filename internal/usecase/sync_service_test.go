package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/starpick-admin/internal/domain/providersync"
	"github.com/riskibarqy/starpick-admin/internal/domain/round"
	providersyncmock "github.com/riskibarqy/starpick-admin/internal/mocks/domain/providersync"
)

type countingRefresher struct {
	calls atomic.Int32
}

func (r *countingRefresher) Refetch(context.Context) error {
	r.calls.Add(1)
	return nil
}

func TestSyncService_SyncCountriesForwardsSelection(t *testing.T) {
	t.Parallel()

	provider := providersyncmock.NewProvider(t)
	backend := providersyncmock.NewRepository(t)
	notifier := &RecordingNotifier{}
	svc := NewSyncService(provider, backend, notifier, nil, SyncConfig{})

	provider.On("Categories", mock.Anything).Return([]providersync.Category{
		{ID: 1, Name: "England"},
		{ID: 32, Name: "Spain"},
		{ID: 47, Name: "Indonesia"},
	}, nil).Once()
	backend.
		On("ImportCountries", mock.Anything, mock.MatchedBy(func(items []providersync.Category) bool {
			return len(items) == 2 && items[0].ID == 1 && items[1].ID == 47
		})).
		Return(nil).
		Once()

	refresh := &countingRefresher{}
	if err := svc.SyncCountries(context.Background(), []int64{47, 1}, refresh); err != nil {
		t.Fatalf("sync countries: %v", err)
	}
	if refresh.calls.Load() != 1 {
		t.Fatalf("expected list refetch after sync")
	}
	if notifier.Count(ToastSuccess) != 1 {
		t.Fatalf("expected success toast, got %+v", notifier.Toasts())
	}
}

func TestSyncService_BackendFailureSkipsRefetch(t *testing.T) {
	t.Parallel()

	backend := providersyncmock.NewRepository(t)
	notifier := &RecordingNotifier{}
	svc := NewSyncService(nil, backend, notifier, nil, SyncConfig{})

	backend.On("RefetchFixtures", mock.Anything, int64(39)).Return(ErrDependencyUnavailable).Once()

	refresh := &countingRefresher{}
	if err := svc.SyncFixtures(context.Background(), 39, refresh); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if refresh.calls.Load() != 0 {
		t.Fatalf("failed sync must not refetch")
	}
	if toast, _ := notifier.Last(); toast.Description != "Failed to sync fixtures." {
		t.Fatalf("unexpected toast: %+v", toast)
	}
}

func TestSyncService_RejectsMissingScope(t *testing.T) {
	t.Parallel()

	svc := NewSyncService(nil, providersyncmock.NewRepository(t), nil, nil, SyncConfig{})
	ctx := context.Background()

	if err := svc.SyncLeagues(ctx, 0, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("leagues: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.SyncTeams(ctx, -1, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("teams: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.SyncPlayers(ctx, 0, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("players: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.SyncSeasons(ctx, "17", nil); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("seasons without provider: expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestSyncService_SyncRoundsForwardsProviderSet(t *testing.T) {
	t.Parallel()

	provider := providersyncmock.NewProvider(t)
	backend := providersyncmock.NewRepository(t)
	svc := NewSyncService(provider, backend, nil, nil, SyncConfig{})

	set := round.Set{CurrentRound: round.Round{Round: 2}, Rounds: []round.Round{{Round: 1}, {Round: 2}}}
	provider.On("Rounds", mock.Anything, "17", "61627").Return(set, nil).Once()
	backend.On("ImportRounds", mock.Anything, "17", "61627", set).Return(nil).Once()

	if err := svc.SyncRounds(context.Background(), " 17 ", "61627", nil); err != nil {
		t.Fatalf("sync rounds: %v", err)
	}
}

func TestSyncService_SyncSeasonsForLeaguesReportsPerLeague(t *testing.T) {
	t.Parallel()

	provider := providersyncmock.NewProvider(t)
	backend := providersyncmock.NewRepository(t)
	notifier := &RecordingNotifier{}
	svc := NewSyncService(provider, backend, notifier, nil, SyncConfig{MaxWorkers: 2})

	doc := providersync.SeasonsDocument{Seasons: []providersync.Season{{ID: 1}, {ID: 2}}}
	provider.On("Seasons", mock.Anything, "17").Return(doc, nil).Once()
	provider.On("Seasons", mock.Anything, "8").Return(doc, nil).Once()
	provider.On("Seasons", mock.Anything, "23").Return(providersync.SeasonsDocument{}, ErrNotFound).Once()
	backend.On("ImportSeasons", mock.Anything, "17", doc).Return(nil).Once()
	backend.On("ImportSeasons", mock.Anything, "8", doc).Return(nil).Once()

	refresh := &countingRefresher{}
	result, err := svc.SyncSeasonsForLeagues(context.Background(), []string{"23", "17", "8", "17", ""}, refresh)
	if err != nil {
		t.Fatalf("batch sync: %v", err)
	}
	if result.TaskCount != 3 || result.SuccessCount != 2 || result.FailedCount != 1 || result.WorkerCount != 2 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.Tasks[0].TournamentID != "17" || result.Tasks[1].TournamentID != "23" || result.Tasks[2].TournamentID != "8" {
		t.Fatalf("tasks must be sorted by tournament id: %+v", result.Tasks)
	}
	if result.Tasks[1].Status != syncStatusFailed || result.Tasks[0].Seasons != 2 {
		t.Fatalf("unexpected task rows: %+v", result.Tasks)
	}
	if refresh.calls.Load() != 1 {
		t.Fatalf("expected one refetch after partial success")
	}
	if toast, _ := notifier.Last(); toast.Kind != ToastWarning {
		t.Fatalf("partial batch must warn, got %+v", toast)
	}
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/starpick-admin/internal/domain/providersync"
	"github.com/riskibarqy/starpick-admin/internal/domain/round"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
)

const (
	syncStatusSuccess = "success"
	syncStatusFailed  = "failed"
)

type SyncConfig struct {
	// MaxWorkers bounds the batch season sync pool.
	MaxWorkers int
}

// SyncService triggers backend imports of provider data. Browser-side flows
// read the provider first and forward what they read.
type SyncService struct {
	provider providersync.Provider
	backend  providersync.Repository
	notifier Notifier
	logger   *logging.Logger
	cfg      SyncConfig
}

// NewSyncService builds the service. provider may be nil when provider reads
// are disabled; backend-only refetches still work.
func NewSyncService(
	provider providersync.Provider,
	backend providersync.Repository,
	notifier Notifier,
	logger *logging.Logger,
	cfg SyncConfig,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncService{
		provider: provider,
		backend:  backend,
		notifier: notifierOrNop(notifier),
		logger:   logger,
		cfg:      cfg,
	}
}

// ProviderCategories lists provider categories for the operator to pick from.
func (s *SyncService) ProviderCategories(ctx context.Context) ([]providersync.Category, error) {
	if err := s.requireProvider(); err != nil {
		return nil, err
	}
	items, err := s.provider.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("read provider categories: %w", err)
	}
	return items, nil
}

func (s *SyncService) ProviderTournaments(ctx context.Context, categoryID int64) ([]providersync.Tournament, error) {
	if err := s.requireProvider(); err != nil {
		return nil, err
	}
	if categoryID <= 0 {
		return nil, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}
	items, err := s.provider.Tournaments(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("read provider tournaments of category %d: %w", categoryID, err)
	}
	return items, nil
}

func (s *SyncService) ProviderSeasons(ctx context.Context, tournamentID string) (providersync.SeasonsDocument, error) {
	if err := s.requireProvider(); err != nil {
		return providersync.SeasonsDocument{}, err
	}
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return providersync.SeasonsDocument{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	doc, err := s.provider.Seasons(ctx, tournamentID)
	if err != nil {
		return providersync.SeasonsDocument{}, fmt.Errorf("read provider seasons of tournament %s: %w", tournamentID, err)
	}
	return doc, nil
}

// ProviderRounds reads the rounds of a provider season for preview.
func (s *SyncService) ProviderRounds(ctx context.Context, tournamentID, seasonID string) (round.Set, error) {
	if err := s.requireProvider(); err != nil {
		return round.Set{}, err
	}
	tournamentID, seasonID = strings.TrimSpace(tournamentID), strings.TrimSpace(seasonID)
	if tournamentID == "" || seasonID == "" {
		return round.Set{}, fmt.Errorf("%w: tournament id and season id are required", ErrInvalidInput)
	}
	set, err := s.provider.Rounds(ctx, tournamentID, seasonID)
	if err != nil {
		return round.Set{}, fmt.Errorf("read provider rounds: %w", err)
	}
	return set, nil
}

// SyncCountries forwards the selected provider categories. An empty
// selection forwards every category the provider lists.
func (s *SyncService) SyncCountries(ctx context.Context, selected []int64, refresh Refresher) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncCountries")
	defer span.End()

	categories, err := s.ProviderCategories(ctx)
	if err != nil {
		return s.reportFailure(ctx, "countries", err)
	}
	categories = pickCategories(categories, selected)
	if len(categories) == 0 {
		return fmt.Errorf("%w: no provider category matches the selection", ErrInvalidInput)
	}

	return s.run(ctx, "countries", refresh, func(ctx context.Context) error {
		return s.backend.ImportCountries(ctx, categories)
	})
}

func (s *SyncService) SyncLeagues(ctx context.Context, countryID int64, refresh Refresher) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncLeagues")
	defer span.End()

	if countryID <= 0 {
		return fmt.Errorf("%w: country id is required", ErrInvalidInput)
	}
	return s.run(ctx, "leagues", refresh, func(ctx context.Context) error {
		return s.backend.RefetchLeagues(ctx, countryID)
	})
}

// SyncSeasons reads the seasons of a provider tournament and forwards them.
func (s *SyncService) SyncSeasons(ctx context.Context, tournamentID string, refresh Refresher) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncSeasons")
	defer span.End()

	doc, err := s.ProviderSeasons(ctx, tournamentID)
	if err != nil {
		return s.reportFailure(ctx, "seasons", err)
	}
	return s.run(ctx, "seasons", refresh, func(ctx context.Context) error {
		return s.backend.ImportSeasons(ctx, strings.TrimSpace(tournamentID), doc)
	})
}

// SyncRounds reads the rounds of a provider season and forwards them.
func (s *SyncService) SyncRounds(ctx context.Context, tournamentID, seasonID string, refresh Refresher) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncRounds")
	defer span.End()

	set, err := s.ProviderRounds(ctx, tournamentID, seasonID)
	if err != nil {
		return s.reportFailure(ctx, "rounds", err)
	}
	tournamentID, seasonID = strings.TrimSpace(tournamentID), strings.TrimSpace(seasonID)
	return s.run(ctx, "rounds", refresh, func(ctx context.Context) error {
		return s.backend.ImportRounds(ctx, tournamentID, seasonID, set)
	})
}

func (s *SyncService) SyncFixtures(ctx context.Context, leagueID int64, refresh Refresher) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncFixtures")
	defer span.End()

	if leagueID <= 0 {
		return fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	return s.run(ctx, "fixtures", refresh, func(ctx context.Context) error {
		return s.backend.RefetchFixtures(ctx, leagueID)
	})
}

func (s *SyncService) SyncTeams(ctx context.Context, leagueID int64, refresh Refresher) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncTeams")
	defer span.End()

	if leagueID <= 0 {
		return fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	return s.run(ctx, "teams", refresh, func(ctx context.Context) error {
		return s.backend.RefetchTeams(ctx, leagueID)
	})
}

func (s *SyncService) SyncPlayers(ctx context.Context, teamID int64, refresh Refresher) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncPlayers")
	defer span.End()

	if teamID <= 0 {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	return s.run(ctx, "players", refresh, func(ctx context.Context) error {
		return s.backend.RefetchPlayers(ctx, teamID)
	})
}

type BatchSyncResult struct {
	TaskCount    int              `json:"task_count"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	WorkerCount  int              `json:"worker_count"`
	Tasks        []SyncTaskResult `json:"tasks"`
}

type SyncTaskResult struct {
	TournamentID string `json:"tournament_id"`
	Status       string `json:"status"`
	Seasons      int    `json:"seasons"`
	DurationMs   int64  `json:"duration_ms"`
	Message      string `json:"message,omitempty"`
}

// SyncSeasonsForLeagues imports the seasons of many provider tournaments
// over a bounded worker pool. Per-tournament failures are reported in the
// result and never abort the batch.
func (s *SyncService) SyncSeasonsForLeagues(ctx context.Context, tournamentIDs []string, refresh Refresher) (BatchSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncSeasonsForLeagues")
	defer span.End()

	if err := s.requireProvider(); err != nil {
		return BatchSyncResult{}, err
	}
	ids := normalizeTournamentIDs(tournamentIDs)
	if len(ids) == 0 {
		return BatchSyncResult{}, fmt.Errorf("%w: at least one tournament id is required", ErrInvalidInput)
	}

	workerCount := normalizeSyncWorkerCount(s.cfg.MaxWorkers, len(ids))
	result := BatchSyncResult{
		TaskCount:   len(ids),
		WorkerCount: workerCount,
		Tasks:       make([]SyncTaskResult, 0, len(ids)),
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchSyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan SyncTaskResult, len(ids))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, id := range ids {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := SyncTaskResult{TournamentID: id, Status: syncStatusSuccess}
			seasons, err := s.importSeasons(ctx, id)
			row.Seasons = seasons
			row.DurationMs = time.Since(start).Milliseconds()
			if err != nil {
				row.Status = syncStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "season sync failed", "tournament_id", id, "error", err)
			} else {
				successCount.Add(1)
			}
			results <- row
		}); err != nil {
			workers.Done()
			return BatchSyncResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].TournamentID < result.Tasks[j].TournamentID
	})
	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	switch {
	case result.FailedCount == 0:
		s.notifier.Notify(success("Sync complete", fmt.Sprintf("Seasons synced for %d league(s).", result.SuccessCount)))
	case result.SuccessCount == 0:
		s.notifier.Notify(failure("Sync failed", fmt.Sprintf("Seasons failed for all %d league(s).", result.FailedCount)))
	default:
		s.notifier.Notify(warning("Sync partially complete", fmt.Sprintf("%d succeeded, %d failed.", result.SuccessCount, result.FailedCount)))
	}

	if result.SuccessCount > 0 {
		refetchAfterWrite(ctx, s.logger, refresh, "seasons")
	}
	return result, nil
}

func (s *SyncService) importSeasons(ctx context.Context, tournamentID string) (int, error) {
	doc, err := s.provider.Seasons(ctx, tournamentID)
	if err != nil {
		return 0, fmt.Errorf("read provider seasons: %w", err)
	}
	if err := s.backend.ImportSeasons(ctx, tournamentID, doc); err != nil {
		return 0, fmt.Errorf("import seasons: %w", err)
	}
	return len(doc.Seasons), nil
}

// run posts one sync action, toasts the outcome and re-issues the list fetch
// of the view that triggered it.
func (s *SyncService) run(ctx context.Context, resource string, refresh Refresher, send func(ctx context.Context) error) error {
	if err := send(ctx); err != nil {
		return s.reportFailure(ctx, resource, err)
	}
	s.notifier.Notify(success("Sync started", fmt.Sprintf("%s sync requested successfully.", capitalize(resource))))
	refetchAfterWrite(ctx, s.logger, refresh, resource)
	return nil
}

func (s *SyncService) reportFailure(ctx context.Context, resource string, err error) error {
	s.logger.WarnContext(ctx, "sync failed", "resource", resource, "error", err)
	if ctx.Err() == nil && !isUnauthorized(err) {
		s.notifier.Notify(failure("Error", fmt.Sprintf("Failed to sync %s.", resource)))
	}
	return fmt.Errorf("sync %s: %w", resource, err)
}

func (s *SyncService) requireProvider() error {
	if s.provider == nil {
		return fmt.Errorf("%w: provider reads are disabled (SOFASCORE_ENABLED=false)", ErrDependencyUnavailable)
	}
	return nil
}

func pickCategories(all []providersync.Category, selected []int64) []providersync.Category {
	if len(selected) == 0 {
		return all
	}
	want := make(map[int64]struct{}, len(selected))
	for _, id := range selected {
		want[id] = struct{}{}
	}
	out := make([]providersync.Category, 0, len(selected))
	for _, c := range all {
		if _, ok := want[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

func normalizeTournamentIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func normalizeSyncWorkerCount(value, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}

func capitalize(v string) string {
	if v == "" {
		return v
	}
	return strings.ToUpper(v[:1]) + v[1:]
}

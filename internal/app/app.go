package app

import (
	"context"
	"fmt"
	"io"

	"github.com/riskibarqy/starpick-admin/external/sofascore"
	"github.com/riskibarqy/starpick-admin/internal/config"
	"github.com/riskibarqy/starpick-admin/internal/domain/providersync"
	"github.com/riskibarqy/starpick-admin/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/starpick-admin/internal/infrastructure/sessionstore"
	"github.com/riskibarqy/starpick-admin/internal/infrastructure/starpick"
	"github.com/riskibarqy/starpick-admin/internal/interfaces/cli"
	"github.com/riskibarqy/starpick-admin/internal/observability"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
	"github.com/riskibarqy/starpick-admin/internal/platform/resilience"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

// IO overrides the console streams; zero values use the process streams.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// App is the wired admin console.
type App struct {
	CLI      *cli.CLI
	shutdown func(context.Context) error
}

// New wires the backend client, the provider client and the use cases behind
// the console.
func New(cfg config.Config, logger *logging.Logger, streams IO) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	shutdownTelemetry, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}

	console := cli.New(cli.Services{}, cli.Config{
		SearchDebounce: cfg.SearchDebounce,
		Logger:         logger,
		Stdin:          streams.Stdin,
		Stdout:         streams.Stdout,
		Stderr:         streams.Stderr,
	})

	sessions := sessionstore.NewFileStore(cfg.SessionFile)
	client := starpick.NewClient(starpick.ClientConfig{
		BaseURL:        cfg.APIBaseURL,
		Timeout:        cfg.HTTPTimeout,
		Sessions:       sessions,
		OnUnauthorized: console.Navigate,
		Logger:         logger.Named("starpick"),
	})

	var provider providersync.Provider
	if cfg.SofaScoreEnabled {
		provider = sofascore.NewClient(sofascore.ClientConfig{
			BaseURL:  cfg.SofaScoreBaseURL,
			Timeout:  cfg.SofaScoreTimeout,
			CacheTTL: cfg.SofaScoreCacheTTL,
			Logger:   logger.Named("sofascore"),
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SofaScoreCircuitEnabled,
				FailureThreshold: cfg.SofaScoreCircuitFailureCount,
				OpenTimeout:      cfg.SofaScoreCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SofaScoreCircuitHalfOpenMaxReq,
			},
		})
	}

	var (
		countryRepo    = starpick.NewCountryRepository(client)
		leagueRepo     = cache.NewLeagueRepository(starpick.NewLeagueRepository(client), cfg.ReferenceCacheTTL)
		seasonRepo     = cache.NewSeasonRepository(starpick.NewSeasonRepository(client), cfg.ReferenceCacheTTL)
		teamRepo       = cache.NewTeamRepository(starpick.NewTeamRepository(client), leagueRepo)
		playerRepo     = starpick.NewPlayerRepository(client)
		fixtureRepo    = starpick.NewFixtureRepository(client)
		matchRepo      = starpick.NewMatchRepository(client)
		tournamentRepo = starpick.NewTournamentRepository(client)
		withdrawalRepo = starpick.NewWithdrawalRepository(client)
		syncRepo       = starpick.NewSyncRepository(client)
	)

	console.SetServices(cli.Services{
		Countries:   countryRepo,
		Leagues:     leagueRepo,
		Seasons:     seasonRepo,
		Teams:       teamRepo,
		Players:     playerRepo,
		Fixtures:    fixtureRepo,
		Matches:     matchRepo,
		Tournaments: tournamentRepo,
		Withdrawals: withdrawalRepo,
		SyncLogs:    starpick.NewSyncLogRepository(client),
		Rooms:       starpick.NewRoomRepository(client),
		Users:       starpick.NewUserRepository(client),
		Dashboard:   starpick.NewDashboardRepository(client),

		Auth:          usecase.NewAuthService(starpick.NewAuthenticator(client), sessions, console, logger),
		LeagueDetail:  usecase.NewLeagueService(leagueRepo),
		Composer:      usecase.NewMatchComposer(fixtureRepo, playerRepo, matchRepo, console, logger),
		Sync:          usecase.NewSyncService(provider, syncRepo, console, logger, usecase.SyncConfig{MaxWorkers: cfg.SyncMaxWorkers}),
		TournamentSvc: usecase.NewTournamentService(tournamentRepo, console),
		WithdrawalSvc: usecase.NewWithdrawalService(withdrawalRepo, console),
		PlayerSvc:     usecase.NewPlayerService(playerRepo, console),
	})

	return &App{CLI: console, shutdown: shutdownTelemetry}, nil
}

// Run executes one console command.
func (a *App) Run(ctx context.Context, args []string) error {
	return a.CLI.Run(ctx, args)
}

// Shutdown flushes telemetry.
func (a *App) Shutdown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	return a.shutdown(ctx)
}

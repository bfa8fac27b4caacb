package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/starpick-admin/internal/domain/country"
	"github.com/riskibarqy/starpick-admin/internal/domain/dashboard"
	"github.com/riskibarqy/starpick-admin/internal/domain/fixture"
	"github.com/riskibarqy/starpick-admin/internal/domain/league"
	"github.com/riskibarqy/starpick-admin/internal/domain/match"
	"github.com/riskibarqy/starpick-admin/internal/domain/player"
	"github.com/riskibarqy/starpick-admin/internal/domain/room"
	"github.com/riskibarqy/starpick-admin/internal/domain/season"
	"github.com/riskibarqy/starpick-admin/internal/domain/synclog"
	"github.com/riskibarqy/starpick-admin/internal/domain/team"
	"github.com/riskibarqy/starpick-admin/internal/domain/tournament"
	"github.com/riskibarqy/starpick-admin/internal/domain/user"
	"github.com/riskibarqy/starpick-admin/internal/domain/withdrawal"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

// Services are the repositories and use cases the console drives.
type Services struct {
	Countries   country.Repository
	Leagues     league.Repository
	Seasons     season.Repository
	Teams       team.Repository
	Players     player.Repository
	Fixtures    fixture.Repository
	Matches     match.Repository
	Tournaments tournament.Repository
	Withdrawals withdrawal.Repository
	SyncLogs    synclog.Repository
	Rooms       room.Repository
	Users       user.Repository
	Dashboard   dashboard.Repository

	Auth          *usecase.AuthService
	LeagueDetail  *usecase.LeagueService
	Composer      *usecase.MatchComposer
	Sync          *usecase.SyncService
	TournamentSvc *usecase.TournamentService
	WithdrawalSvc *usecase.WithdrawalService
	PlayerSvc     *usecase.PlayerService
}

type Config struct {
	SearchDebounce time.Duration
	Logger         *logging.Logger
	Stdin          io.Reader
	Stdout         io.Writer
	Stderr         io.Writer
}

// CLI is the terminal front end of the admin console.
type CLI struct {
	svc      Services
	debounce time.Duration
	logger   *logging.Logger
	in       io.Reader

	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer

	navMu    sync.Mutex
	location string

	// signingIn suppresses the sign-in hint while a login is in flight.
	signingIn atomic.Bool
}

func New(svc Services, cfg Config) *CLI {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.SearchDebounce <= 0 {
		cfg.SearchDebounce = usecase.DefaultSearchDebounce
	}
	return &CLI{
		svc:      svc,
		debounce: cfg.SearchDebounce,
		logger:   cfg.Logger,
		in:       cfg.Stdin,
		out:      cfg.Stdout,
		errOut:   cfg.Stderr,
		location: "/",
	}
}

// Notify prints a toast on stderr.
func (c *CLI) Notify(t usecase.Toast) {
	line := fmt.Sprintf("[%s] %s", t.Kind, t.Title)
	if strings.TrimSpace(t.Description) != "" {
		line += ": " + t.Description
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.errOut, line)
}

// Navigate moves the console to path. Navigating to the login route prints
// the sign-in hint unless a login is already under way.
func (c *CLI) Navigate(path string) {
	c.navMu.Lock()
	c.location = normalizePath(path)
	c.navMu.Unlock()

	if Resolve(path).Route.Pattern == "/" && !c.signingIn.Load() {
		c.mu.Lock()
		fmt.Fprintln(c.errOut, "Session ended. Sign in again with: starpick-admin login -email <email> -password <password>")
		c.mu.Unlock()
	}
}

// Location is the route the console is on.
func (c *CLI) Location() string {
	c.navMu.Lock()
	defer c.navMu.Unlock()
	return c.location
}

// SetServices installs the services once they are built; the services need
// the CLI as their notifier and navigator first.
func (c *CLI) SetServices(svc Services) {
	c.svc = svc
}

func (c *CLI) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) stdout() (io.Writer, func()) {
	c.mu.Lock()
	return c.out, c.mu.Unlock
}

// Run executes one command line.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.usage()
		return nil
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		c.usage()
		return fmt.Errorf("unknown command %q", name)
	}
	if !cmd.public {
		if err := c.requireSession(ctx); err != nil {
			return err
		}
	}
	err := cmd.run(c, ctx, rest)
	if errors.Is(err, usecase.ErrUnauthorized) && c.Location() != "/" {
		c.Navigate("/")
	}
	return err
}

func (c *CLI) requireSession(ctx context.Context) error {
	if _, err := c.svc.Auth.Current(ctx); err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			c.Navigate("/")
		}
		return err
	}
	return nil
}

func (c *CLI) usage() {
	w, unlock := c.stdout()
	defer unlock()
	fmt.Fprintln(w, "usage: starpick-admin <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-18s %s\n", name, commands[name].summary)
	}
}

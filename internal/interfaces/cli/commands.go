package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/starpick-admin/internal/domain/fixture"
	"github.com/riskibarqy/starpick-admin/internal/domain/match"
	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/withdrawal"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

type command struct {
	public  bool
	summary string
	run     func(c *CLI, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"routes":            {public: true, summary: "list the screens of the console", run: (*CLI).runRoutes},
	"login":             {public: true, summary: "sign in: -email <email> -password <password>", run: (*CLI).runLogin},
	"logout":            {public: true, summary: "sign out and forget the session", run: (*CLI).runLogout},
	"whoami":            {summary: "show the signed-in staff member", run: (*CLI).runWhoAmI},
	"open":              {summary: "render a screen: open <path> [-page N] [-search S] [filters]", run: (*CLI).runOpen},
	"browse":            {summary: "page through a list interactively: browse <path> [filters]", run: (*CLI).runBrowse},
	"toggle":            {summary: "flip the status of a row: toggle <path> <id> [-page N] [-search S]", run: (*CLI).runToggle},
	"rate":              {summary: "set a player rating: rate <player id> <1-5>", run: (*CLI).runRate},
	"provider":          {summary: "read provider data: provider categories|tournaments|seasons|rounds", run: (*CLI).runProvider},
	"sync":              {summary: "import provider data: sync countries|leagues|seasons|seasons-batch|rounds|fixtures|teams|players", run: (*CLI).runSync},
	"match-create":      {summary: "create matches: match-create [-fixture <id>] [-players <id,id,...>] [-dry-run]", run: (*CLI).runMatchCreate},
	"tournament-create": {summary: "create a tournament: tournament-create -name <name> -amount <amount>", run: (*CLI).runTournamentCreate},
	"withdraw":          {summary: "settle a withdrawal: withdraw approve <id> | withdraw reject <id> -reason <text>", run: (*CLI).runWithdraw},
}

var commandOrder = []string{
	"routes", "login", "logout", "whoami", "open", "browse", "toggle", "rate",
	"provider", "sync", "match-create", "tournament-create", "withdraw",
}

func (c *CLI) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	return fs
}

// parseInterleaved parses flags placed before, between or after positional
// arguments and returns the positionals.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func bindViewFlags(fs *flag.FlagSet, opts *viewOptions) {
	fs.IntVar(&opts.page, "page", 1, "page number")
	fs.StringVar(&opts.search, "search", "", "server-side search term")
	fs.StringVar(&opts.filter, "filter", "", "narrow the rows of the page locally")
	fs.Int64Var(&opts.countryID, "country", 0, "leagues: country id")
	fs.Int64Var(&opts.teamID, "team", 0, "players: team id")
	fs.StringVar(&opts.position, "position", "", "players: position")
	fs.StringVar(&opts.status, "status", "", "status filter (active|inactive, or pending|paid|rejected for withdrawals)")
	fs.StringVar(&opts.tournament, "tournament", "", "rounds: provider tournament id")
	fs.StringVar(&opts.season, "season", "", "rounds: provider season id")
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, what, raw)
	}
	return id, nil
}

func parseIDList(raw, what string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := parseID(part, what)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *CLI) runRoutes(_ context.Context, _ []string) error {
	w, unlock := c.stdout()
	defer unlock()
	rows := make([][]string, 0, len(routes))
	for _, r := range Routes() {
		access := "signed in"
		if r.Public {
			access = "public"
		}
		rows = append(rows, []string{r.Pattern, r.Title, access})
	}
	return writeTable(w, []string{"PATH", "SCREEN", "ACCESS"}, rows)
}

func (c *CLI) runLogin(ctx context.Context, args []string) error {
	fs := c.newFlagSet("login")
	email := fs.String("email", "", "staff email")
	password := fs.String("password", "", "password")
	if _, err := parseInterleaved(fs, args); err != nil {
		return err
	}

	c.signingIn.Store(true)
	p, err := c.svc.Auth.Login(ctx, *email, *password)
	c.signingIn.Store(false)
	if err != nil {
		c.printFieldErrors(err)
		return err
	}
	c.Navigate("/dashboard")
	c.printf("Signed in as %s <%s>\n", orDash(p.Name), p.Email)
	return nil
}

func (c *CLI) runLogout(ctx context.Context, _ []string) error {
	if err := c.svc.Auth.Logout(ctx); err != nil {
		return err
	}
	c.Navigate("/")
	return nil
}

func (c *CLI) runWhoAmI(ctx context.Context, _ []string) error {
	return c.showWhoAmI(ctx)
}

func (c *CLI) runOpen(ctx context.Context, args []string) error {
	fs := c.newFlagSet("open")
	var opts viewOptions
	bindViewFlags(fs, &opts)
	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: open takes exactly one path", usecase.ErrInvalidInput)
	}
	return c.open(ctx, positional[0], opts)
}

// open renders the screen at path once.
func (c *CLI) open(ctx context.Context, path string, opts viewOptions) error {
	m := Resolve(path)
	if m.Route.Pattern == "/" {
		// Signed-in staff landing on the login screen go to the dashboard.
		path, m = "/dashboard", Resolve("/dashboard")
	}
	c.Navigate(path)

	v, ok, err := c.listFor(m, opts)
	if err != nil {
		return err
	}
	if !ok {
		return c.showDetail(ctx, m, opts)
	}
	defer v.Close()

	if err := v.Open(ctx, opts.page, opts.search); err != nil {
		return err
	}
	w, unlock := c.stdout()
	defer unlock()
	return v.Render(w)
}

func (c *CLI) runToggle(ctx context.Context, args []string) error {
	fs := c.newFlagSet("toggle")
	var opts viewOptions
	bindViewFlags(fs, &opts)
	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return fmt.Errorf("%w: toggle takes a list path and a row id", usecase.ErrInvalidInput)
	}
	id, err := parseID(positional[1], "id")
	if err != nil {
		return err
	}

	m := Resolve(positional[0])
	v, ok, err := c.listFor(m, opts)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s is not a list", usecase.ErrInvalidInput, positional[0])
	}
	defer v.Close()
	c.Navigate(positional[0])

	if err := v.Open(ctx, opts.page, opts.search); err != nil {
		return err
	}
	if err := v.Toggle(ctx, id); err != nil {
		return err
	}
	w, unlock := c.stdout()
	defer unlock()
	return v.Render(w)
}

func (c *CLI) runRate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: rate takes a player id and a rating", usecase.ErrInvalidInput)
	}
	id, err := parseID(args[0], "player id")
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return fmt.Errorf("%w: invalid rating %q", usecase.ErrInvalidInput, args[1])
	}
	if err := c.svc.PlayerSvc.SetRating(ctx, id, rating, nil); err != nil {
		c.printFieldErrors(err)
		return err
	}
	return nil
}

func (c *CLI) runProvider(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: provider needs categories, tournaments, seasons or rounds", usecase.ErrInvalidInput)
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "categories":
		items, err := c.svc.Sync.ProviderCategories(ctx)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, []string{itoa(item.ID), item.Name, orDash(item.Slug), orDash(item.Alpha2)})
		}
		return c.table([]string{"ID", "NAME", "SLUG", "CODE"}, rows)

	case "tournaments":
		if len(rest) != 1 {
			return fmt.Errorf("%w: provider tournaments takes a category id", usecase.ErrInvalidInput)
		}
		categoryID, err := parseID(rest[0], "category id")
		if err != nil {
			return err
		}
		items, err := c.svc.Sync.ProviderTournaments(ctx, categoryID)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, []string{itoa(item.ID), item.Name, orDash(item.Category.Name)})
		}
		return c.table([]string{"ID", "NAME", "CATEGORY"}, rows)

	case "seasons":
		if len(rest) != 1 {
			return fmt.Errorf("%w: provider seasons takes a tournament id", usecase.ErrInvalidInput)
		}
		doc, err := c.svc.Sync.ProviderSeasons(ctx, rest[0])
		if err != nil {
			return err
		}
		w, unlock := c.stdout()
		defer unlock()
		return writeProviderSeasons(w, rest[0], doc)

	case "rounds":
		if len(rest) != 2 {
			return fmt.Errorf("%w: provider rounds takes a tournament id and a season id", usecase.ErrInvalidInput)
		}
		return c.showRounds(ctx, viewOptions{tournament: rest[0], season: rest[1]})
	}
	return fmt.Errorf("%w: unknown provider read %q", usecase.ErrInvalidInput, sub)
}

func (c *CLI) table(header []string, rows [][]string) error {
	w, unlock := c.stdout()
	defer unlock()
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No records found.")
		return err
	}
	return writeTable(w, header, rows)
}

func (c *CLI) runSync(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: sync needs a resource", usecase.ErrInvalidInput)
	}
	sub, rest := args[0], args[1:]

	oneID := func(what string) (int64, error) {
		if len(rest) != 1 {
			return 0, fmt.Errorf("%w: sync %s takes a %s", usecase.ErrInvalidInput, sub, what)
		}
		return parseID(rest[0], what)
	}

	switch sub {
	case "countries":
		ids, err := parseIDList(strings.Join(rest, ","), "category id")
		if err != nil {
			return err
		}
		return c.syncAndShow(ctx, "/countries", func(r usecase.Refresher) error {
			return c.svc.Sync.SyncCountries(ctx, ids, r)
		})
	case "leagues":
		countryID, err := oneID("country id")
		if err != nil {
			return err
		}
		return c.syncAndShow(ctx, "/leagues", func(r usecase.Refresher) error {
			return c.svc.Sync.SyncLeagues(ctx, countryID, r)
		})
	case "seasons":
		if len(rest) != 1 {
			return fmt.Errorf("%w: sync seasons takes a tournament id", usecase.ErrInvalidInput)
		}
		return c.svc.Sync.SyncSeasons(ctx, rest[0], nil)
	case "seasons-batch":
		return c.runSyncSeasonsBatch(ctx, rest)
	case "rounds":
		if len(rest) != 2 {
			return fmt.Errorf("%w: sync rounds takes a tournament id and a season id", usecase.ErrInvalidInput)
		}
		return c.svc.Sync.SyncRounds(ctx, rest[0], rest[1], nil)
	case "fixtures":
		leagueID, err := oneID("league id")
		if err != nil {
			return err
		}
		return c.svc.Sync.SyncFixtures(ctx, leagueID, nil)
	case "teams":
		leagueID, err := oneID("league id")
		if err != nil {
			return err
		}
		return c.syncAndShow(ctx, "/teams", func(r usecase.Refresher) error {
			return c.svc.Sync.SyncTeams(ctx, leagueID, r)
		})
	case "players":
		teamID, err := oneID("team id")
		if err != nil {
			return err
		}
		return c.syncAndShow(ctx, fmt.Sprintf("/teams/%d/players", teamID), func(r usecase.Refresher) error {
			return c.svc.Sync.SyncPlayers(ctx, teamID, r)
		})
	}
	return fmt.Errorf("%w: unknown sync resource %q", usecase.ErrInvalidInput, sub)
}

// syncAndShow runs a sync with the list at path as its refresher and renders
// the refreshed list.
func (c *CLI) syncAndShow(ctx context.Context, path string, sync func(usecase.Refresher) error) error {
	v, ok, err := c.listFor(Resolve(path), viewOptions{page: 1})
	if err != nil {
		return err
	}
	if !ok {
		return sync(nil)
	}
	defer v.Close()
	c.Navigate(path)

	if err := sync(v); err != nil {
		return err
	}
	w, unlock := c.stdout()
	defer unlock()
	return v.Render(w)
}

func (c *CLI) runSyncSeasonsBatch(ctx context.Context, ids []string) error {
	result, err := c.svc.Sync.SyncSeasonsForLeagues(ctx, ids, nil)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		rows = append(rows, []string{task.TournamentID, task.Status, strconv.Itoa(task.Seasons), fmt.Sprintf("%dms", task.DurationMs), orDash(task.Message)})
	}
	w, unlock := c.stdout()
	defer unlock()
	if err := writeTable(w, []string{"TOURNAMENT", "STATUS", "SEASONS", "DURATION", "MESSAGE"}, rows); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d task(s): %d succeeded, %d failed, %d worker(s)\n",
		result.TaskCount, result.SuccessCount, result.FailedCount, result.WorkerCount)
	return err
}

func (c *CLI) runMatchCreate(ctx context.Context, args []string) error {
	fs := c.newFlagSet("match-create")
	fixtureID := fs.Int64("fixture", 0, "upcoming fixture id; prompted for when omitted")
	players := fs.String("players", "", "comma-separated player ids; compose interactively when omitted")
	dryRun := fs.Bool("dry-run", false, "print the payload instead of posting it")
	if _, err := parseInterleaved(fs, args); err != nil {
		return err
	}
	c.Navigate("/match-create")

	upcoming, err := c.svc.Composer.UpcomingFixtures(ctx)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(c.in)
	if *fixtureID == 0 {
		if *fixtureID, err = c.promptFixture(scanner, upcoming); err != nil {
			return err
		}
	}
	var chosen *fixture.Fixture
	for i := range upcoming {
		if upcoming[i].ID == *fixtureID {
			chosen = &upcoming[i]
			break
		}
	}
	if chosen == nil {
		return fmt.Errorf("%w: fixture %d is not an upcoming fixture", usecase.ErrNotFound, *fixtureID)
	}

	missing, err := c.svc.Composer.SelectFixture(ctx, *chosen)
	if err != nil {
		return err
	}
	if missing == match.MissingBoth {
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, missing.Warning(*chosen))
	}

	if strings.TrimSpace(*players) == "" {
		return c.compose(ctx, scanner, *chosen)
	}

	ids, err := parseIDList(*players, "player id")
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := c.svc.Composer.Add(id); err != nil {
			return err
		}
	}

	if *dryRun {
		return c.printMatchPayload()
	}
	if err := c.svc.Composer.Submit(ctx); err != nil {
		c.printFieldErrors(err)
		return err
	}
	return c.open(ctx, "/matches", viewOptions{page: 1})
}

func (c *CLI) printMatchPayload() error {
	req, err := c.svc.Composer.Preview()
	if err != nil {
		return fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}
	raw, err := sonic.ConfigDefault.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("encode match payload: %w", err)
	}
	c.printf("%s\n", raw)
	return nil
}

func (c *CLI) runTournamentCreate(ctx context.Context, args []string) error {
	fs := c.newFlagSet("tournament-create")
	name := fs.String("name", "", "tournament name")
	amount := fs.Float64("amount", 0, "entry amount")
	if _, err := parseInterleaved(fs, args); err != nil {
		return err
	}

	v, _, err := c.listFor(Resolve("/tournaments"), viewOptions{page: 1})
	if err != nil {
		return err
	}
	defer v.Close()
	c.Navigate("/tournaments")

	if _, err := c.svc.TournamentSvc.Create(ctx, *name, *amount, v); err != nil {
		c.printFieldErrors(err)
		return err
	}
	w, unlock := c.stdout()
	defer unlock()
	return v.Render(w)
}

func (c *CLI) runWithdraw(ctx context.Context, args []string) error {
	fs := c.newFlagSet("withdraw")
	reason := fs.String("reason", "", "rejection reason")
	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 2 || (positional[0] != "approve" && positional[0] != "reject") {
		return fmt.Errorf("%w: usage is withdraw approve|reject <id>", usecase.ErrInvalidInput)
	}
	id, err := parseID(positional[1], "withdrawal id")
	if err != nil {
		return err
	}
	c.Navigate("/withdrawals")

	pager := usecase.NewPager(func(ctx context.Context, q pagination.Query) (pagination.Page[withdrawal.Request], error) {
		return c.svc.Withdrawals.List(ctx, withdrawal.Query{Page: q.Page, Search: q.Search, Status: withdrawal.StatusPending})
	}, usecase.PagerConfig{Resource: "withdrawals", Notifier: c, Logger: c.logger})
	defer pager.Close()

	req, err := findPending(ctx, pager, id)
	if err != nil {
		return err
	}

	svc := c.svc.WithdrawalSvc
	if positional[0] == "approve" {
		err = svc.Approve(ctx, req, pager)
	} else {
		err = svc.Reject(ctx, req, *reason, pager)
	}
	if err != nil {
		c.printFieldErrors(err)
		return err
	}
	status := withdrawal.StatusPaid
	if positional[0] == "reject" {
		status = withdrawal.StatusRejected
	}
	c.printf("Withdrawal %d is now %s.\n", id, status)
	return nil
}

// findPending walks the pending withdrawals page by page until id shows up.
func findPending(ctx context.Context, pager *usecase.Pager[withdrawal.Request], id int64) (withdrawal.Request, error) {
	if err := pager.Open(ctx, 1, ""); err != nil {
		return withdrawal.Request{}, err
	}
	for {
		if req, ok := pager.Find(func(r withdrawal.Request) bool { return r.ID == id }); ok {
			return req, nil
		}
		if !pager.State().Page.HasNext() {
			return withdrawal.Request{}, fmt.Errorf("%w: no pending withdrawal %d", usecase.ErrNotFound, id)
		}
		if err := pager.Next(ctx); err != nil {
			return withdrawal.Request{}, err
		}
	}
}

// printFieldErrors lists per-field validation messages under the form.
func (c *CLI) printFieldErrors(err error) {
	var fields *usecase.FieldErrors
	if !errors.As(err, &fields) || len(fields.Fields) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	writeFieldErrors(c.errOut, fields)
}

func writeFieldErrors(w io.Writer, fields *usecase.FieldErrors) {
	for _, line := range strings.Split(fields.Error(), ", ") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

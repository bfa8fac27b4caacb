package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/domain/dashboard"
	"github.com/riskibarqy/starpick-admin/internal/domain/fixture"
	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/providersync"
	"github.com/riskibarqy/starpick-admin/internal/domain/season"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

// showDetail renders a screen that is not a paginated list.
func (c *CLI) showDetail(ctx context.Context, m Match, opts viewOptions) error {
	switch m.Route.Pattern {
	case "/":
		return c.showWhoAmI(ctx)
	case "/dashboard":
		return c.showDashboard(ctx)
	case "/rooms/:id":
		id, err := m.IntParam("id")
		if err != nil {
			return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		return c.showRoom(ctx, id)
	case "/leagues/:leagueId":
		id, err := m.IntParam("leagueId")
		if err != nil {
			return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		return c.showLeague(ctx, id)
	case "/fixtures":
		return c.showFixtures(ctx, false)
	case "/match-create":
		return c.showFixtures(ctx, true)
	case "/seasons":
		return c.showSeasons(ctx)
	case "/rounds":
		return c.showRounds(ctx, opts)
	}
	return c.showNotFound(m)
}

func (c *CLI) showNotFound(m Match) error {
	c.printf("404 Page not found: %s\nRun \"starpick-admin routes\" for the screens available.\n", orDash(m.Params["path"]))
	return fmt.Errorf("%w: no screen at this path", usecase.ErrNotFound)
}

func (c *CLI) showWhoAmI(ctx context.Context) error {
	p, err := c.svc.Auth.Current(ctx)
	if err != nil {
		return err
	}
	w, unlock := c.stdout()
	defer unlock()
	return writeFields(w, "ID", itoa(p.ID), "Name", orDash(p.Name), "Email", p.Email, "Role", orDash(p.Role))
}

func (c *CLI) showDashboard(ctx context.Context) error {
	q := usecase.NewQuery(c.svc.Dashboard.Stats)
	stats, err := q.Load(ctx)
	if err != nil {
		c.Notify(usecase.Toast{Kind: usecase.ToastError, Title: "Error", Description: "Failed to load dashboard."})
		return err
	}
	w, unlock := c.stdout()
	defer unlock()
	return writeDashboard(w, stats)
}

func writeDashboard(w io.Writer, s dashboard.Stats) error {
	fmt.Fprintln(w, "Dashboard")
	return writeFields(w,
		"Active teams", strconv.Itoa(s.ActiveTeams),
		"Active players", strconv.Itoa(s.ActivePlayers),
		"Active rooms", strconv.Itoa(s.ActiveRooms),
		"Registered users", strconv.Itoa(s.RegisteredUsers),
		"Pending withdrawals", strconv.Itoa(s.PendingWithdrawals),
		"Upcoming fixtures", strconv.Itoa(s.UpcomingFixtures),
	)
}

func (c *CLI) showRoom(ctx context.Context, id int64) error {
	d, err := c.svc.Rooms.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load room %d: %w", id, err)
	}
	w, unlock := c.stdout()
	defer unlock()

	r := d.Room
	fmt.Fprintf(w, "Room %s\n", r.Name)
	if err := writeFields(w,
		"ID", itoa(r.ID),
		"Category", orDash(r.Category),
		"Status", orDash(r.Status),
		"Owner", orDash(r.Owner),
		"Prize", orDash(r.Prize),
		"Participants", fmt.Sprintf("%d/%d", r.Participants, r.MaxParticipants),
		"Ends", orDash(r.EndDate),
	); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if len(d.Members) == 0 {
		fmt.Fprintln(w, "No members yet.")
		return nil
	}
	rows := make([][]string, 0, len(d.Members))
	for _, m := range d.Members {
		name := m.Name
		if m.IsOwner {
			name += " (owner)"
		}
		rows = append(rows, []string{strconv.Itoa(m.Rank), name, strconv.Itoa(m.Score), orDash(m.JoinedAt)})
	}
	return writeTable(w, []string{"RANK", "MEMBER", "SCORE", "JOINED"}, rows)
}

func (c *CLI) showLeague(ctx context.Context, id int64) error {
	d, err := c.svc.LeagueDetail.Detail(ctx, id)
	if err != nil {
		c.Notify(usecase.Toast{Kind: usecase.ToastError, Title: "Error", Description: "Failed to load league."})
		return err
	}
	w, unlock := c.stdout()
	defer unlock()

	current := "-"
	if d.CurrentSeason != nil {
		current = seasonLabel(*d.CurrentSeason)
	}
	fmt.Fprintf(w, "League %s\n", d.League.Name)
	if err := writeFields(w,
		"ID", itoa(d.League.ID),
		"External ID", orDash(d.League.ExternalID.String()),
		"Country", orDash(d.League.Country),
		"Type", orDash(d.League.Type),
		"Status", d.League.Status.Label(),
		"Current season", current,
	); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nSeasons (%d)\n", len(d.Seasons))
	rows := make([][]string, 0, len(d.Seasons))
	for _, s := range d.Seasons {
		mark := ""
		if d.CurrentSeason != nil && s.ID == d.CurrentSeason.ID {
			mark = "*"
		}
		rows = append(rows, []string{itoa(s.ID), orDash(s.ExternalID.String()), s.Name, orDash(s.Year), mark})
	}
	if err := writeTable(w, []string{"ID", "EXTERNAL", "NAME", "YEAR", "CURRENT"}, rows); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTeams (%d)\n", len(d.Teams))
	rows = rows[:0]
	for _, t := range d.Teams {
		rows = append(rows, teamRow(t))
	}
	return writeTable(w, []string{"ID", "NAME", "CODE", "LEAGUE", "COUNTRY", "PLAYERS", "STATUS"}, rows)
}

func seasonLabel(s season.Season) string {
	if s.Year != "" && !strings.Contains(s.Name, s.Year) {
		return fmt.Sprintf("%s (%s)", s.Name, s.Year)
	}
	return s.Name
}

// showFixtures lists fixtures. upcoming narrows to fixtures that have not
// kicked off, which are the ones matches can be created for.
func (c *CLI) showFixtures(ctx context.Context, upcoming bool) error {
	var (
		items []fixture.Fixture
		err   error
		title = "Fixtures"
	)
	if upcoming {
		title = "Upcoming fixtures"
		items, err = c.svc.Composer.UpcomingFixtures(ctx)
	} else {
		items, err = c.svc.Fixtures.List(ctx)
	}
	if err != nil {
		return err
	}

	w, unlock := c.stdout()
	defer unlock()
	fmt.Fprintln(w, title)
	if len(items) == 0 {
		fmt.Fprintln(w, "No records found.")
		return nil
	}
	rows := make([][]string, 0, len(items))
	for _, f := range items {
		rows = append(rows, fixtureRow(f))
	}
	if err := writeTable(w, fixtureHeader, rows); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, pageFooter(pageMeta(pagination.Single(items))))
	return err
}

var fixtureHeader = []string{"ID", "MATCH", "HOME", "AWAY", "DATE", "ROUND", "SCORE", "STATUS"}

func fixtureRow(f fixture.Fixture) []string {
	date := f.Date
	if kickoff, err := f.Kickoff(); err == nil {
		date = kickoff.Format("2006-01-02 15:04")
	}
	return []string{itoa(f.ID), f.Title(), itoa(f.HomeTeamID), itoa(f.AwayTeamID), orDash(date), orDash(f.Round), f.Score(), orDash(f.Status)}
}

func (c *CLI) showSeasons(ctx context.Context) error {
	items, err := c.svc.Seasons.List(ctx)
	if err != nil {
		return fmt.Errorf("list seasons: %w", err)
	}
	w, unlock := c.stdout()
	defer unlock()
	fmt.Fprintln(w, "Seasons")
	if len(items) == 0 {
		fmt.Fprintln(w, "No records found.")
		return nil
	}
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		current := "no"
		if s.IsCurrent == 1 {
			current = "yes"
		}
		rows = append(rows, []string{itoa(s.ID), itoa(s.LeagueID), orDash(s.ExternalID.String()), s.Name, orDash(s.Year), current})
	}
	return writeTable(w, []string{"ID", "LEAGUE", "EXTERNAL", "NAME", "YEAR", "CURRENT"}, rows)
}

// showRounds walks the rounds cascade: active leagues, then the provider
// seasons of the chosen league, then the rounds of the chosen season.
func (c *CLI) showRounds(ctx context.Context, opts viewOptions) error {
	if opts.tournament == "" {
		leagues, err := c.svc.LeagueDetail.ListActive(ctx)
		if err != nil {
			return err
		}
		w, unlock := c.stdout()
		defer unlock()
		fmt.Fprintln(w, "Rounds: pick a league with -tournament <external id>")
		rows := make([][]string, 0, len(leagues))
		for _, l := range leagues {
			rows = append(rows, []string{orDash(l.ExternalID.String()), l.Name, orDash(l.Country)})
		}
		return writeTable(w, []string{"EXTERNAL", "LEAGUE", "COUNTRY"}, rows)
	}

	if opts.season == "" {
		doc, err := c.svc.Sync.ProviderSeasons(ctx, opts.tournament)
		if err != nil {
			return err
		}
		w, unlock := c.stdout()
		defer unlock()
		return writeProviderSeasons(w, opts.tournament, doc)
	}

	set, err := c.svc.Sync.ProviderRounds(ctx, opts.tournament, opts.season)
	if err != nil {
		return err
	}
	w, unlock := c.stdout()
	defer unlock()
	fmt.Fprintf(w, "Rounds of tournament %s season %s\n", opts.tournament, opts.season)
	rows := make([][]string, 0, len(set.Rounds))
	for _, r := range set.Rounds {
		mark := ""
		if r.Round == set.CurrentRound.Round {
			mark = "*"
		}
		rows = append(rows, []string{strconv.Itoa(r.Round), r.Label(), mark})
	}
	return writeTable(w, []string{"ROUND", "NAME", "CURRENT"}, rows)
}

func writeProviderSeasons(w io.Writer, tournamentID string, doc providersync.SeasonsDocument) error {
	fmt.Fprintf(w, "Provider seasons of tournament %s: pick one with -season <id>\n", tournamentID)
	rows := make([][]string, 0, len(doc.Seasons))
	for _, s := range doc.Seasons {
		rows = append(rows, []string{itoa(s.ID), s.Name, orDash(s.Year)})
	}
	return writeTable(w, []string{"ID", "NAME", "YEAR"}, rows)
}

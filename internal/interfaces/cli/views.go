package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/domain/country"
	"github.com/riskibarqy/starpick-admin/internal/domain/league"
	"github.com/riskibarqy/starpick-admin/internal/domain/match"
	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/player"
	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
	"github.com/riskibarqy/starpick-admin/internal/domain/room"
	"github.com/riskibarqy/starpick-admin/internal/domain/synclog"
	"github.com/riskibarqy/starpick-admin/internal/domain/team"
	"github.com/riskibarqy/starpick-admin/internal/domain/tournament"
	"github.com/riskibarqy/starpick-admin/internal/domain/user"
	"github.com/riskibarqy/starpick-admin/internal/domain/withdrawal"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

// viewOptions are the query and filter flags shared by screens.
type viewOptions struct {
	page       int
	search     string
	filter     string
	countryID  int64
	teamID     int64
	position   string
	status     string
	tournament string
	season     string
}

func (o viewOptions) refStatus() (*refdata.Status, error) {
	if strings.TrimSpace(o.status) == "" {
		return nil, nil
	}
	s, err := refdata.ParseStatus(o.status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return &s, nil
}

// listFor builds the paginated screen of m. ok is false for screens that are
// not paginated lists.
func (c *CLI) listFor(m Match, opts viewOptions) (lister, bool, error) {
	switch m.Route.Pattern {
	case "/countries":
		v := newListView(c, "Countries", "countries", c.svc.Countries.List,
			[]string{"ID", "NAME", "CODE", "STATUS"},
			func(x country.Country) []string {
				return []string{itoa(x.ID), x.Name, orDash(x.Alpha2), x.Status.Label()}
			})
		v.withFilter(func(items []country.Country) []country.Country {
			out := make([]country.Country, 0, len(items))
			for _, item := range items {
				if country.MatchName(item, opts.filter) {
					out = append(out, item)
				}
			}
			return out
		})
		return withToggle(v, "Country", c.svc.Countries.SetStatus, c), true, nil

	case "/leagues":
		status, err := opts.refStatus()
		if err != nil {
			return nil, true, err
		}
		filter := league.Filter{Search: opts.filter, CountryID: opts.countryID, Status: status}
		v := newListView(c, "Leagues", "leagues", c.svc.Leagues.List,
			[]string{"ID", "EXTERNAL", "NAME", "COUNTRY", "TYPE", "STATUS"},
			func(x league.League) []string {
				return []string{itoa(x.ID), orDash(string(x.ExternalID)), x.Name, orDash(x.Country), orDash(x.Type), x.Status.Label()}
			}).withFilter(filter.Apply)
		return withToggle(v, "League", c.svc.Leagues.SetStatus, c), true, nil

	case "/teams":
		filter := team.Filter{Search: opts.filter}
		v := newListView(c, "Teams", "teams", c.svc.Teams.List,
			[]string{"ID", "NAME", "CODE", "LEAGUE", "COUNTRY", "PLAYERS", "STATUS"},
			teamRow).withFilter(filter.Apply)
		return withToggle(v, "Team", c.svc.Teams.SetStatus, c), true, nil

	case "/players", "/teams/:teamId/players":
		status, err := opts.refStatus()
		if err != nil {
			return nil, true, err
		}
		filter := player.Filter{Search: opts.filter, TeamID: opts.teamID, Position: opts.position, Status: status}
		title, fetch := "Players", usecase.PageFetcher[player.Player](c.svc.Players.List)
		if m.Route.Pattern != "/players" {
			teamID, err := m.IntParam("teamId")
			if err != nil {
				return nil, true, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
			}
			title = fmt.Sprintf("Players of team %d", teamID)
			fetch = func(ctx context.Context, q pagination.Query) (pagination.Page[player.Player], error) {
				return c.svc.Players.ListByTeam(ctx, teamID, player.RosterQuery{Page: q.Page, Search: q.Search})
			}
		}
		v := newListView(c, title, "players", fetch,
			[]string{"ID", "NAME", "POSITION", "TEAM", "RATING", "STATUS"},
			playerRow).withFilter(filter.Apply)
		return withToggle(v, "Player", c.svc.Players.SetStatus, c), true, nil

	case "/matches":
		return newListView(c, "Matches", "matches", c.svc.Matches.List,
			[]string{"ID", "PLAYER", "TEAM", "FIXTURE", "DATE", "TIME", "COMPLETED"},
			matchRow), true, nil

	case "/rooms":
		return newListView(c, "Rooms", "rooms", c.svc.Rooms.List,
			[]string{"ID", "NAME", "CATEGORY", "OWNER", "PARTICIPANTS", "END", "STATUS"},
			func(x room.Room) []string {
				return []string{itoa(x.ID), x.Name, orDash(x.Category), orDash(x.Owner),
					fmt.Sprintf("%d/%d", x.Participants, x.MaxParticipants), orDash(x.EndDate), orDash(x.Status)}
			}), true, nil

	case "/users":
		return newListView(c, "Users", "users", c.svc.Users.List,
			[]string{"ID", "NAME", "EMAIL", "BALANCE", "ROOMS", "STATUS", "JOINED"},
			func(x user.Account) []string {
				return []string{itoa(x.ID), x.Name, x.Email, money(x.Balance), fmt.Sprint(x.Rooms), orDash(x.Status), orDash(x.CreatedAt)}
			}), true, nil

	case "/sync-logs":
		return newListView(c, "Sync logs", "sync logs", c.svc.SyncLogs.List,
			[]string{"ID", "OPERATION", "STATUS", "RECORDS", "DURATION", "MESSAGE", "AT"},
			func(x synclog.Log) []string {
				return []string{itoa(x.ID), x.Operation, x.Status, fmt.Sprint(x.Records), orDash(x.Duration), orDash(x.Message), x.CreatedAt}
			}), true, nil

	case "/tournaments":
		return newListView(c, "Tournaments", "tournaments", c.svc.Tournaments.List,
			[]string{"ID", "NAME", "AMOUNT", "STATUS", "CREATED"},
			func(x tournament.Tournament) []string {
				return []string{itoa(x.ID), x.Name, money(x.Amount), orDash(x.Status), orDash(x.CreatedAt)}
			}), true, nil

	case "/withdrawals":
		status, err := withdrawal.ParseStatus(opts.status)
		if err != nil {
			return nil, true, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		fetch := func(ctx context.Context, q pagination.Query) (pagination.Page[withdrawal.Request], error) {
			return c.svc.Withdrawals.List(ctx, withdrawal.Query{Page: q.Page, Search: q.Search, Status: status})
		}
		return newListView(c, "Withdrawals", "withdrawals", fetch,
			[]string{"ID", "USER", "AMOUNT", "BANK", "ACCOUNT", "STATUS", "REQUESTED"},
			withdrawalRow), true, nil
	}
	return nil, false, nil
}

func teamRow(x team.Team) []string {
	return []string{itoa(x.ID), x.Name, orDash(x.Code), orDash(x.League), orDash(x.Country), fmt.Sprint(x.PlayersCount), x.Status.Label()}
}

func playerRow(x player.Player) []string {
	return []string{itoa(x.ID), x.Name, orDash(x.Position), orDash(x.TeamName()), stars(x.Rating), x.Status.Label()}
}

func matchRow(x match.Match) []string {
	playerName, teamName := itoa(x.PlayerID), itoa(x.TeamID)
	if x.Player != nil {
		playerName = x.Player.Name
	}
	if x.Team != nil {
		teamName = x.Team.Name
	}
	done := "no"
	if x.Completed() {
		done = "yes"
	}
	return []string{itoa(x.ID), playerName, teamName, itoa(x.FixtureID), orDash(x.Date), orDash(x.Time), done}
}

func withdrawalRow(x withdrawal.Request) []string {
	return []string{itoa(x.ID), orDash(x.User.Name), money(x.Amount), orDash(x.BankName),
		fmt.Sprintf("%s %s", x.AccountName, x.AccountNumber), string(x.Status), orDash(x.CreatedAt)}
}

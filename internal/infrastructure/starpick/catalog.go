package starpick

import (
	"context"
	"fmt"

	"github.com/riskibarqy/starpick-admin/internal/domain/country"
	"github.com/riskibarqy/starpick-admin/internal/domain/league"
	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/player"
	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
	"github.com/riskibarqy/starpick-admin/internal/domain/season"
	"github.com/riskibarqy/starpick-admin/internal/domain/team"
	"github.com/riskibarqy/starpick-admin/internal/platform/querybuilder"
)

type statusPayload struct {
	Status refdata.Status `json:"status"`
}

func (c *Client) list(ctx context.Context, path string, query any) ([]byte, error) {
	values, err := querybuilder.Values(query)
	if err != nil {
		return nil, fmt.Errorf("encode %s query: %w", path, err)
	}
	return c.get(ctx, path, values)
}

func (c *Client) setStatus(ctx context.Context, resource string, id int64, status refdata.Status) error {
	_, err := c.patch(ctx, fmt.Sprintf("/admin/%s/%d/status", resource, id), statusPayload{Status: status})
	return err
}

type TeamRepository struct {
	client *Client
}

func NewTeamRepository(client *Client) *TeamRepository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) List(ctx context.Context, query pagination.Query) (pagination.Page[team.Team], error) {
	raw, err := r.client.list(ctx, "/admin/teams", query)
	if err != nil {
		return pagination.Page[team.Team]{}, err
	}
	return decodeList[team.Team](raw, "data", "teams")
}

func (r *TeamRepository) SetStatus(ctx context.Context, teamID int64, status refdata.Status) error {
	return r.client.setStatus(ctx, "teams", teamID, status)
}

type PlayerRepository struct {
	client *Client
}

func NewPlayerRepository(client *Client) *PlayerRepository {
	return &PlayerRepository{client: client}
}

func (r *PlayerRepository) List(ctx context.Context, query pagination.Query) (pagination.Page[player.Player], error) {
	raw, err := r.client.list(ctx, "/admin/players", query)
	if err != nil {
		return pagination.Page[player.Player]{}, err
	}
	return decodeList[player.Player](raw, "data", "players")
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64, query player.RosterQuery) (pagination.Page[player.Player], error) {
	raw, err := r.client.list(ctx, fmt.Sprintf("/admin/teams/%d/players", teamID), query)
	if err != nil {
		return pagination.Page[player.Player]{}, err
	}
	return decodeList[player.Player](raw, "data", "players")
}

func (r *PlayerRepository) SetStatus(ctx context.Context, playerID int64, status refdata.Status) error {
	return r.client.setStatus(ctx, "players", playerID, status)
}

func (r *PlayerRepository) SetRating(ctx context.Context, playerID int64, rating int) error {
	body := struct {
		Rating int `json:"player_rating"`
	}{Rating: rating}
	_, err := r.client.patch(ctx, fmt.Sprintf("/admin/players/%d/rating", playerID), body)
	return err
}

type LeagueRepository struct {
	client *Client
}

func NewLeagueRepository(client *Client) *LeagueRepository {
	return &LeagueRepository{client: client}
}

func (r *LeagueRepository) List(ctx context.Context, query pagination.Query) (pagination.Page[league.League], error) {
	raw, err := r.client.list(ctx, "/admin/leagues", query)
	if err != nil {
		return pagination.Page[league.League]{}, err
	}
	return decodeList[league.League](raw, "data", "leagues")
}

func (r *LeagueRepository) ListActive(ctx context.Context) ([]league.League, error) {
	raw, err := r.client.get(ctx, "/admin/leagues/active-leagues", nil)
	if err != nil {
		return nil, err
	}
	return decodeSlice[league.League](raw, "data", "leagues")
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, error) {
	raw, err := r.client.get(ctx, fmt.Sprintf("/admin/leagues/%d", leagueID), nil)
	if err != nil {
		return league.League{}, err
	}
	var out league.League
	if err := decodeAt(raw, &out, "data"); err != nil {
		return league.League{}, err
	}
	return out, nil
}

func (r *LeagueRepository) Seasons(ctx context.Context, leagueID int64) ([]season.Season, error) {
	raw, err := r.client.get(ctx, fmt.Sprintf("/admin/leagues/season/%d", leagueID), nil)
	if err != nil {
		return nil, err
	}
	return decodeSlice[season.Season](raw, "data", "seasons")
}

func (r *LeagueRepository) Teams(ctx context.Context, leagueID int64) ([]team.Team, error) {
	raw, err := r.client.get(ctx, fmt.Sprintf("/admin/leagues/%d/teams", leagueID), nil)
	if err != nil {
		return nil, err
	}
	return decodeSlice[team.Team](raw, "data", "teams")
}

func (r *LeagueRepository) SetStatus(ctx context.Context, leagueID int64, status refdata.Status) error {
	return r.client.setStatus(ctx, "leagues", leagueID, status)
}

type SeasonRepository struct {
	client *Client
}

func NewSeasonRepository(client *Client) *SeasonRepository {
	return &SeasonRepository{client: client}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	raw, err := r.client.get(ctx, "/admin/seasons", nil)
	if err != nil {
		return nil, err
	}
	return decodeSlice[season.Season](raw, "data", "seasons")
}

type CountryRepository struct {
	client *Client
}

func NewCountryRepository(client *Client) *CountryRepository {
	return &CountryRepository{client: client}
}

func (r *CountryRepository) List(ctx context.Context, query pagination.Query) (pagination.Page[country.Country], error) {
	raw, err := r.client.list(ctx, "/admin/countries", query)
	if err != nil {
		return pagination.Page[country.Country]{}, err
	}
	return decodeList[country.Country](raw, "data", "countries")
}

func (r *CountryRepository) SetStatus(ctx context.Context, countryID int64, status refdata.Status) error {
	return r.client.setStatus(ctx, "countries", countryID, status)
}

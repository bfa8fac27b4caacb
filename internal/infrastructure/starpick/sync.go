package starpick

import (
	"context"
	"strconv"

	"github.com/riskibarqy/starpick-admin/internal/domain/providersync"
	"github.com/riskibarqy/starpick-admin/internal/domain/round"
)

// SyncRepository drives the backend endpoints that import provider data.
type SyncRepository struct {
	client *Client
}

func NewSyncRepository(client *Client) *SyncRepository {
	return &SyncRepository{client: client}
}

func (r *SyncRepository) ImportCountries(ctx context.Context, categories []providersync.Category) error {
	body := struct {
		Countries []providersync.Category `json:"countries"`
	}{Countries: categories}
	_, err := r.client.post(ctx, "/admin/sofa/countries", body)
	return err
}

func (r *SyncRepository) RefetchLeagues(ctx context.Context, countryID int64) error {
	body := struct {
		CountryID int64 `json:"country_id"`
	}{CountryID: countryID}
	_, err := r.client.post(ctx, "/admin/leagues/refetch", body)
	return err
}

func (r *SyncRepository) ImportSeasons(ctx context.Context, tournamentID string, doc providersync.SeasonsDocument) error {
	body := struct {
		LeagueID string                       `json:"league_id"`
		Seasons  providersync.SeasonsDocument `json:"seasons"`
	}{LeagueID: tournamentID, Seasons: doc}
	_, err := r.client.post(ctx, "/admin/sofa/seasons", body)
	return err
}

func (r *SyncRepository) ImportRounds(ctx context.Context, tournamentID, seasonID string, set round.Set) error {
	body := struct {
		LeagueID string    `json:"league_id"`
		SeasonID string    `json:"season_id"`
		Rounds   round.Set `json:"rounds"`
		Current  int       `json:"current"`
	}{LeagueID: tournamentID, SeasonID: seasonID, Rounds: set, Current: set.CurrentRound.Round}
	_, err := r.client.post(ctx, "/admin/sofa/rounds", body)
	return err
}

func (r *SyncRepository) RefetchFixtures(ctx context.Context, leagueID int64) error {
	body := struct {
		League string `json:"league"`
	}{League: strconv.FormatInt(leagueID, 10)}
	_, err := r.client.post(ctx, "/admin/fixtures/refetch", body)
	return err
}

func (r *SyncRepository) RefetchTeams(ctx context.Context, leagueID int64) error {
	body := struct {
		LeagueID int64 `json:"league_id"`
	}{LeagueID: leagueID}
	_, err := r.client.post(ctx, "/admin/teams/refetch", body)
	return err
}

func (r *SyncRepository) RefetchPlayers(ctx context.Context, teamID int64) error {
	body := struct {
		TeamID int64 `json:"team_id"`
	}{TeamID: teamID}
	_, err := r.client.post(ctx, "/admin/players/refetch", body)
	return err
}

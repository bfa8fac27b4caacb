package starpick

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/starpick-admin/internal/domain/fixture"
	"github.com/riskibarqy/starpick-admin/internal/domain/match"
	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/tournament"
)

type FixtureRepository struct {
	client *Client
}

func NewFixtureRepository(client *Client) *FixtureRepository {
	return &FixtureRepository{client: client}
}

func (r *FixtureRepository) List(ctx context.Context) ([]fixture.Fixture, error) {
	raw, err := r.client.get(ctx, "/admin/fixtures", nil)
	if err != nil {
		return nil, err
	}
	return decodeSlice[fixture.Fixture](raw, "data", "fixtures")
}

type MatchRepository struct {
	client *Client
}

func NewMatchRepository(client *Client) *MatchRepository {
	return &MatchRepository{client: client}
}

func (r *MatchRepository) List(ctx context.Context, query pagination.Query) (pagination.Page[match.Match], error) {
	raw, err := r.client.list(ctx, "/admin/match", query)
	if err != nil {
		return pagination.Page[match.Match]{}, err
	}
	return decodeList[match.Match](raw, "data", "matches")
}

// Create posts the batch. A 409 or 422 carrying conflicting_players is
// returned as *match.ConflictError.
func (r *MatchRepository) Create(ctx context.Context, req match.CreateRequest) error {
	raw, err := r.client.post(ctx, "/admin/match", req)
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if !crerr.As(err, &apiErr) {
		return err
	}
	if apiErr.StatusCode != http.StatusConflict && apiErr.StatusCode != http.StatusUnprocessableEntity {
		return err
	}
	if conflict := parseConflict(raw); conflict != nil {
		return crerr.WithSecondaryError(conflict, apiErr)
	}
	return err
}

func parseConflict(raw []byte) *match.ConflictError {
	var body struct {
		match.ConflictError
		Data *match.ConflictError `json:"data"`
	}
	if err := sonic.Unmarshal(raw, &body); err != nil {
		return nil
	}
	if len(body.PlayerIDs) > 0 {
		out := body.ConflictError
		return &out
	}
	if body.Data != nil && len(body.Data.PlayerIDs) > 0 {
		return body.Data
	}
	return nil
}

type TournamentRepository struct {
	client *Client
}

func NewTournamentRepository(client *Client) *TournamentRepository {
	return &TournamentRepository{client: client}
}

func (r *TournamentRepository) List(ctx context.Context, query pagination.Query) (pagination.Page[tournament.Tournament], error) {
	raw, err := r.client.list(ctx, "/admin/tournament", query)
	if err != nil {
		return pagination.Page[tournament.Tournament]{}, err
	}
	return decodeList[tournament.Tournament](raw, "data", "tournaments")
}

func (r *TournamentRepository) Create(ctx context.Context, req tournament.CreateRequest) (tournament.Tournament, error) {
	raw, err := r.client.post(ctx, "/admin/tournament", req)
	if err != nil {
		return tournament.Tournament{}, err
	}
	var out tournament.Tournament
	if err := decodeAt(raw, &out, "data", "tournament"); err != nil {
		return tournament.Tournament{}, fmt.Errorf("decode created tournament: %w", err)
	}
	return out, nil
}

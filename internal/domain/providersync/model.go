package providersync

import (
	"context"

	"github.com/riskibarqy/starpick-admin/internal/domain/round"
)

// Category is a provider country grouping, forwarded to the backend as-is.
type Category struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Alpha2 string `json:"alpha2,omitempty"`
	Flag   string `json:"flag,omitempty"`
}

// Tournament is a provider competition inside a category.
type Tournament struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Category struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"category"`
}

// Season is a provider season of a tournament.
type Season struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Year string `json:"year"`
}

// SeasonsDocument is the provider's seasons payload, forwarded whole.
type SeasonsDocument struct {
	Seasons []Season `json:"seasons"`
}

// Provider reads reference data from the sports data provider.
type Provider interface {
	Categories(ctx context.Context) ([]Category, error)
	Tournaments(ctx context.Context, categoryID int64) ([]Tournament, error)
	Seasons(ctx context.Context, tournamentID string) (SeasonsDocument, error)
	Rounds(ctx context.Context, tournamentID, seasonID string) (round.Set, error)
}

// Repository is the set of backend endpoints that import provider data.
type Repository interface {
	ImportCountries(ctx context.Context, categories []Category) error
	RefetchLeagues(ctx context.Context, countryID int64) error
	ImportSeasons(ctx context.Context, tournamentID string, doc SeasonsDocument) error
	ImportRounds(ctx context.Context, tournamentID, seasonID string, set round.Set) error
	RefetchFixtures(ctx context.Context, leagueID int64) error
	RefetchTeams(ctx context.Context, leagueID int64) error
	RefetchPlayers(ctx context.Context, teamID int64) error
}

package country

import (
	"context"
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
)

// Country is a provider category that groups leagues.
type Country struct {
	ID     int64          `json:"id"`
	Name   string         `json:"name"`
	Alpha2 string         `json:"alpha2"`
	Flag   string         `json:"flag"`
	Status refdata.Status `json:"status"`
}

func (c Country) StatusOf() refdata.Status {
	return c.Status
}

func (c Country) Key() int64 {
	return c.ID
}

func MatchName(c Country, search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	return term == "" || strings.Contains(strings.ToLower(c.Name), term) || strings.EqualFold(c.Alpha2, term)
}

// Repository describes the country endpoints use cases depend on.
type Repository interface {
	List(ctx context.Context, query pagination.Query) (pagination.Page[Country], error)
	SetStatus(ctx context.Context, countryID int64, status refdata.Status) error
}

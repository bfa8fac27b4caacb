package league

import (
	"encoding/json"
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
)

// League is a competition (a provider "unique tournament").
type League struct {
	ID            int64              `json:"id"`
	ExternalID    refdata.ExternalID `json:"external_id"`
	Name          string             `json:"name"`
	Type          string             `json:"type"`
	Logo          string             `json:"logo"`
	CountryID     int64              `json:"country_id"`
	Country       string             `json:"country"`
	Status        refdata.Status     `json:"status"`
	CurrentSeason json.RawMessage    `json:"current_season,omitempty"`
}

func (l League) StatusOf() refdata.Status {
	return l.Status
}

func (l League) Key() int64 {
	return l.ID
}

// Filter narrows a page of leagues locally. Zero fields match everything.
type Filter struct {
	Search    string
	CountryID int64
	Status    *refdata.Status
}

func (f Filter) Match(l League) bool {
	if f.CountryID != 0 && l.CountryID != f.CountryID {
		return false
	}
	if f.Status != nil && l.Status != *f.Status {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	return term == "" || strings.Contains(strings.ToLower(l.Name), term)
}

func (f Filter) Apply(items []League) []League {
	out := make([]League, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

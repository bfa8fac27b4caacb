package match

import "github.com/riskibarqy/starpick-admin/internal/domain/fixture"

// CreateRequest is the batch posted to create matches for one fixture. The
// full fixture travels along for traceability.
type CreateRequest struct {
	Matches []Entry         `json:"matches" validate:"required,min=1,dive"`
	Fixture fixture.Fixture `json:"fixture" validate:"required"`
}

package tournament

import (
	"context"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
)

const StatusOpen = "open"

// Tournament is a paid-entry competition players join.
type Tournament struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

func (t Tournament) IsOpen() bool {
	return t.Status == StatusOpen
}

// CreateRequest is the payload of a new tournament.
type CreateRequest struct {
	Name   string  `json:"name" validate:"required,min=3,max=120"`
	Amount float64 `json:"amount" validate:"gt=0"`
}

// Repository describes the tournament endpoints use cases depend on.
type Repository interface {
	List(ctx context.Context, query pagination.Query) (pagination.Page[Tournament], error)
	Create(ctx context.Context, req CreateRequest) (Tournament, error)
}

package team

import (
	"context"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
)

// Repository describes the team endpoints use cases depend on.
type Repository interface {
	List(ctx context.Context, query pagination.Query) (pagination.Page[Team], error)
	SetStatus(ctx context.Context, teamID int64, status refdata.Status) error
}

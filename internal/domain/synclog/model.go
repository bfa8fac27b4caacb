package synclog

import (
	"context"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusWarning = "warning"
)

// Log is one provider synchronisation run recorded by the backend.
type Log struct {
	ID        int64  `json:"id"`
	Operation string `json:"operation"`
	Status    string `json:"status"`
	Records   int    `json:"records"`
	Duration  string `json:"duration"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type Repository interface {
	List(ctx context.Context, query pagination.Query) (pagination.Page[Log], error)
}

package withdrawal

import (
	"context"
	"fmt"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusRejected Status = "rejected"
)

func ParseStatus(v string) (Status, error) {
	switch Status(v) {
	case StatusPending, StatusPaid, StatusRejected:
		return Status(v), nil
	case "":
		return "", nil
	default:
		return "", fmt.Errorf("invalid withdrawal status %q", v)
	}
}

// Requester is the user asking for a payout.
type Requester struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Request is a user's payout request.
type Request struct {
	ID            int64     `json:"id"`
	User          Requester `json:"user"`
	Amount        float64   `json:"amount"`
	BankName      string    `json:"bank_name"`
	AccountName   string    `json:"account_name"`
	AccountNumber string    `json:"account_number"`
	Status        Status    `json:"status"`
	Reason        string    `json:"reason,omitempty"`
	CreatedAt     string    `json:"created_at"`
}

// CanTransition reports whether a request in status from may move to to.
// Only pending requests can be settled.
func CanTransition(from, to Status) bool {
	return from == StatusPending && (to == StatusPaid || to == StatusRejected)
}

// Decision is the payload of an approve or reject action.
type Decision struct {
	Status Status `json:"status" validate:"required,oneof=paid rejected"`
	Reason string `json:"reason,omitempty" validate:"required_if=Status rejected,max=500"`
}

// Query filters the withdrawal list.
type Query struct {
	Page   int    `query:"page,omitempty"`
	Search string `query:"search,omitempty"`
	Status Status `query:"status,omitempty"`
}

// Repository describes the withdrawal endpoints use cases depend on.
type Repository interface {
	List(ctx context.Context, query Query) (pagination.Page[Request], error)
	Decide(ctx context.Context, requestID int64, decision Decision) error
}

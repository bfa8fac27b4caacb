package user

import (
	"context"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
)

// Principal is the signed-in staff member.
type Principal struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Account is a registered platform user as listed to staff.
type Account struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Status    string  `json:"status"`
	Balance   float64 `json:"balance"`
	Rooms     int     `json:"rooms_count"`
	CreatedAt string  `json:"created_at"`
}

// Credentials is the admin login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type Repository interface {
	List(ctx context.Context, query pagination.Query) (pagination.Page[Account], error)
}

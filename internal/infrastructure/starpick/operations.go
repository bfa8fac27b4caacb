package starpick

import (
	"context"
	"fmt"

	"github.com/riskibarqy/starpick-admin/internal/domain/dashboard"
	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/room"
	"github.com/riskibarqy/starpick-admin/internal/domain/synclog"
	"github.com/riskibarqy/starpick-admin/internal/domain/user"
	"github.com/riskibarqy/starpick-admin/internal/domain/withdrawal"
)

type WithdrawalRepository struct {
	client *Client
}

func NewWithdrawalRepository(client *Client) *WithdrawalRepository {
	return &WithdrawalRepository{client: client}
}

func (r *WithdrawalRepository) List(ctx context.Context, query withdrawal.Query) (pagination.Page[withdrawal.Request], error) {
	raw, err := r.client.list(ctx, "/admin/withdraw", query)
	if err != nil {
		return pagination.Page[withdrawal.Request]{}, err
	}
	return decodeList[withdrawal.Request](raw, "data", "withdrawals")
}

func (r *WithdrawalRepository) Decide(ctx context.Context, requestID int64, decision withdrawal.Decision) error {
	_, err := r.client.patch(ctx, fmt.Sprintf("/admin/withdraw/%d", requestID), decision)
	return err
}

type SyncLogRepository struct {
	client *Client
}

func NewSyncLogRepository(client *Client) *SyncLogRepository {
	return &SyncLogRepository{client: client}
}

func (r *SyncLogRepository) List(ctx context.Context, query pagination.Query) (pagination.Page[synclog.Log], error) {
	raw, err := r.client.list(ctx, "/admin/sync-logs", query)
	if err != nil {
		return pagination.Page[synclog.Log]{}, err
	}
	return decodeList[synclog.Log](raw, "data", "logs")
}

type RoomRepository struct {
	client *Client
}

func NewRoomRepository(client *Client) *RoomRepository {
	return &RoomRepository{client: client}
}

func (r *RoomRepository) List(ctx context.Context, query pagination.Query) (pagination.Page[room.Room], error) {
	raw, err := r.client.list(ctx, "/admin/rooms", query)
	if err != nil {
		return pagination.Page[room.Room]{}, err
	}
	return decodeList[room.Room](raw, "data", "rooms")
}

func (r *RoomRepository) Get(ctx context.Context, roomID int64) (room.Detail, error) {
	raw, err := r.client.get(ctx, fmt.Sprintf("/admin/rooms/%d", roomID), nil)
	if err != nil {
		return room.Detail{}, err
	}
	var out room.Detail
	if err := decodeAt(raw, &out, "data"); err != nil {
		return room.Detail{}, err
	}
	if out.Members == nil {
		out.Members = []room.Member{}
	}
	return out, nil
}

type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) List(ctx context.Context, query pagination.Query) (pagination.Page[user.Account], error) {
	raw, err := r.client.list(ctx, "/admin/users", query)
	if err != nil {
		return pagination.Page[user.Account]{}, err
	}
	return decodeList[user.Account](raw, "data", "users")
}

type DashboardRepository struct {
	client *Client
}

func NewDashboardRepository(client *Client) *DashboardRepository {
	return &DashboardRepository{client: client}
}

func (r *DashboardRepository) Stats(ctx context.Context) (dashboard.Stats, error) {
	raw, err := r.client.get(ctx, "/admin/dashboard", nil)
	if err != nil {
		return dashboard.Stats{}, err
	}
	var out dashboard.Stats
	if err := decodeAt(raw, &out, "data"); err != nil {
		return dashboard.Stats{}, err
	}
	return out, nil
}

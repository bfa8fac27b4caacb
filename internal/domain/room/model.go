package room

import (
	"context"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
)

// Room is a prediction room users join to compete.
type Room struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Status          string `json:"status"`
	Owner           string `json:"owner"`
	Prize           string `json:"prize"`
	Participants    int    `json:"participants"`
	MaxParticipants int    `json:"max_participants"`
	EndDate         string `json:"end_date"`
	CreatedAt       string `json:"created_at"`
}

// Member is a user inside a room with their standing.
type Member struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
	IsOwner  bool   `json:"is_owner"`
	JoinedAt string `json:"joined_at"`
}

// Detail is a room with its members.
type Detail struct {
	Room    Room     `json:"room"`
	Members []Member `json:"users"`
}

type Repository interface {
	List(ctx context.Context, query pagination.Query) (pagination.Page[Room], error)
	Get(ctx context.Context, roomID int64) (Detail, error)
}

package dashboard

import "context"

// Stats are the headline counters of the dashboard.
type Stats struct {
	ActiveTeams        int `json:"active_teams"`
	ActivePlayers      int `json:"active_players"`
	ActiveRooms        int `json:"active_rooms"`
	RegisteredUsers    int `json:"registered_users"`
	PendingWithdrawals int `json:"pending_withdrawals"`
	UpcomingFixtures   int `json:"upcoming_fixtures"`
}

type Repository interface {
	Stats(ctx context.Context) (Stats, error)
}

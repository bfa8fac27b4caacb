package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/starpick-admin/internal/domain/player"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
)

type PlayerService struct {
	repo     player.Repository
	notifier Notifier
	logger   *logging.Logger
}

func NewPlayerService(repo player.Repository, notifier Notifier) *PlayerService {
	return &PlayerService{repo: repo, notifier: notifierOrNop(notifier), logger: logging.Default()}
}

// SetRating stores a 1..5 star rating and reloads the list on success.
func (s *PlayerService) SetRating(ctx context.Context, playerID int64, rating int, refresh Refresher) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SetRating")
	defer span.End()

	if playerID <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if err := player.ValidateRating(rating); err != nil {
		fields := &FieldErrors{Message: "validation failed"}
		fields.Add("player_rating", fmt.Sprintf("must be between %d and %d", player.MinRating, player.MaxRating))
		return fields
	}

	if err := s.repo.SetRating(ctx, playerID, rating); err != nil {
		if !isUnauthorized(err) {
			s.notifier.Notify(failure("Error", "Failed to update player rating."))
		}
		return fmt.Errorf("set rating of player %d: %w", playerID, err)
	}

	s.notifier.Notify(success("Rating Updated", fmt.Sprintf("Player rating set to %d.", rating)))
	refetchAfterWrite(ctx, s.logger, refresh, "players")
	return nil
}

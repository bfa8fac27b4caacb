package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/domain/tournament"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
)

type TournamentService struct {
	repo     tournament.Repository
	notifier Notifier
	logger   *logging.Logger
	form     FormRequest
}

func NewTournamentService(repo tournament.Repository, notifier Notifier) *TournamentService {
	return &TournamentService{repo: repo, notifier: notifierOrNop(notifier), logger: logging.Default()}
}

// Create validates and posts a new tournament, then reloads the list.
func (s *TournamentService) Create(ctx context.Context, name string, amount float64, refresh Refresher) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Create")
	defer span.End()

	req := tournament.CreateRequest{Name: strings.TrimSpace(name), Amount: amount}
	var created tournament.Tournament
	err := s.form.Submit(ctx, req, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, req)
		return err
	})
	if err != nil {
		if !isUnauthorized(err) {
			s.notifier.Notify(failure("Error", "Failed to create tournament."))
		}
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}

	s.notifier.Notify(success("Tournament Created", fmt.Sprintf("%s created successfully.", created.Name)))
	refetchAfterWrite(ctx, s.logger, refresh, "tournaments")
	return created, nil
}

func (s *TournamentService) FieldErrors() *FieldErrors {
	return s.form.FieldErrors()
}

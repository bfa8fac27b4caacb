package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/starpick-admin/internal/domain/player"
	"github.com/riskibarqy/starpick-admin/internal/domain/tournament"
	playermock "github.com/riskibarqy/starpick-admin/internal/mocks/domain/player"
	tournamentmock "github.com/riskibarqy/starpick-admin/internal/mocks/domain/tournament"
)

func TestTournamentService_Create(t *testing.T) {
	t.Parallel()

	repo := tournamentmock.NewRepository(t)
	notifier := &RecordingNotifier{}
	svc := NewTournamentService(repo, notifier)

	repo.
		On("Create", mock.Anything, tournament.CreateRequest{Name: "Weekend Cup", Amount: 25000}).
		Return(tournament.Tournament{ID: 4, Name: "Weekend Cup", Amount: 25000, Status: tournament.StatusOpen}, nil).
		Once()

	refresh := &countingRefresher{}
	created, err := svc.Create(context.Background(), " Weekend Cup ", 25000, refresh)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 4 || !created.IsOpen() {
		t.Fatalf("unexpected tournament: %+v", created)
	}
	if refresh.calls.Load() != 1 || notifier.Count(ToastSuccess) != 1 {
		t.Fatalf("expected refetch and success toast")
	}
}

func TestTournamentService_CreateValidates(t *testing.T) {
	t.Parallel()

	svc := NewTournamentService(tournamentmock.NewRepository(t), nil)

	_, err := svc.Create(context.Background(), "ab", 0, nil)
	var fields *FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if fields.First("name") == "" || fields.First("amount") == "" {
		t.Fatalf("expected name and amount errors, got %+v", fields.Fields)
	}
	if svc.FieldErrors() == nil {
		t.Fatalf("form must keep field errors")
	}
}

func TestPlayerService_SetRating(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	svc := NewPlayerService(repo, nil)

	var fields *FieldErrors
	if err := svc.SetRating(context.Background(), 9, player.MaxRating+1, nil); !errors.As(err, &fields) {
		t.Fatalf("expected rating field error, got %v", err)
	}

	repo.On("SetRating", mock.Anything, int64(9), 4).Return(nil).Once()
	refresh := &countingRefresher{}
	if err := svc.SetRating(context.Background(), 9, 4, refresh); err != nil {
		t.Fatalf("set rating: %v", err)
	}
	if refresh.calls.Load() != 1 {
		t.Fatalf("expected refetch after rating update")
	}
}

package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/starpick-admin/internal/domain/withdrawal"
	withdrawalmock "github.com/riskibarqy/starpick-admin/internal/mocks/domain/withdrawal"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
)

func TestWithdrawalService_ApproveAndRefetch(t *testing.T) {
	t.Parallel()

	repo := withdrawalmock.NewRepository(t)
	notifier := &RecordingNotifier{}
	svc := NewWithdrawalService(repo, notifier)

	repo.On("Decide", mock.Anything, int64(12), withdrawal.Decision{Status: withdrawal.StatusPaid}).Return(nil).Once()

	refresh := &countingRefresher{}
	req := withdrawal.Request{ID: 12, Status: withdrawal.StatusPending}
	if err := svc.Approve(context.Background(), req, refresh); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if refresh.calls.Load() != 1 {
		t.Fatalf("expected refetch after approve")
	}
	if toast, _ := notifier.Last(); toast.Title != "Withdrawal Approved" {
		t.Fatalf("unexpected toast: %+v", toast)
	}
}

func TestWithdrawalService_RejectRequiresReason(t *testing.T) {
	t.Parallel()

	svc := NewWithdrawalService(withdrawalmock.NewRepository(t), nil)
	req := withdrawal.Request{ID: 12, Status: withdrawal.StatusPending}

	err := svc.Reject(context.Background(), req, "  ", nil)
	var fields *FieldErrors
	if !errors.As(err, &fields) || fields.First("reason") == "" {
		t.Fatalf("expected reason field error, got %v", err)
	}
}

func TestWithdrawalService_OnlyPendingCanBeSettled(t *testing.T) {
	t.Parallel()

	svc := NewWithdrawalService(withdrawalmock.NewRepository(t), nil)
	req := withdrawal.Request{ID: 3, Status: withdrawal.StatusPaid}

	if err := svc.Reject(context.Background(), req, "duplicate", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

type failingRefresher struct{}

func (failingRefresher) Refetch(context.Context) error {
	return errors.New("list unavailable")
}

func TestWithdrawalService_RefetchFailureIsLoggedNotReturned(t *testing.T) {
	t.Parallel()

	repo := withdrawalmock.NewRepository(t)
	var logs bytes.Buffer
	svc := NewWithdrawalService(repo, &RecordingNotifier{})
	svc.logger = logging.NewConsole(logging.LevelDebug, &logs)

	repo.On("Decide", mock.Anything, int64(12), withdrawal.Decision{Status: withdrawal.StatusPaid}).Return(nil).Once()

	req := withdrawal.Request{ID: 12, Status: withdrawal.StatusPending}
	if err := svc.Approve(context.Background(), req, failingRefresher{}); err != nil {
		t.Fatalf("approve must succeed once the decision is stored, got %v", err)
	}
	if !strings.Contains(logs.String(), "refetch after write failed") || !strings.Contains(logs.String(), "list unavailable") {
		t.Fatalf("expected refetch failure in logs, got %q", logs.String())
	}
}

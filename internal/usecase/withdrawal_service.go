package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/domain/withdrawal"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
)

type WithdrawalService struct {
	repo     withdrawal.Repository
	notifier Notifier
	logger   *logging.Logger
	form     FormRequest
}

func NewWithdrawalService(repo withdrawal.Repository, notifier Notifier) *WithdrawalService {
	return &WithdrawalService{repo: repo, notifier: notifierOrNop(notifier), logger: logging.Default()}
}

// Approve marks a pending request as paid.
func (s *WithdrawalService) Approve(ctx context.Context, req withdrawal.Request, refresh Refresher) error {
	return s.decide(ctx, req, withdrawal.Decision{Status: withdrawal.StatusPaid}, refresh)
}

// Reject declines a pending request. reason is required.
func (s *WithdrawalService) Reject(ctx context.Context, req withdrawal.Request, reason string, refresh Refresher) error {
	return s.decide(ctx, req, withdrawal.Decision{Status: withdrawal.StatusRejected, Reason: strings.TrimSpace(reason)}, refresh)
}

func (s *WithdrawalService) decide(ctx context.Context, req withdrawal.Request, decision withdrawal.Decision, refresh Refresher) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.WithdrawalService.Decide")
	defer span.End()

	if !withdrawal.CanTransition(req.Status, decision.Status) {
		return fmt.Errorf("%w: withdrawal %d is %s and cannot become %s", ErrInvalidInput, req.ID, req.Status, decision.Status)
	}

	err := s.form.Submit(ctx, decision, func(ctx context.Context) error {
		return s.repo.Decide(ctx, req.ID, decision)
	})
	if err != nil {
		if !isUnauthorized(err) {
			s.notifier.Notify(failure("Error", "Failed to update withdrawal request."))
		}
		return fmt.Errorf("decide withdrawal %d: %w", req.ID, err)
	}

	title := "Withdrawal Approved"
	if decision.Status == withdrawal.StatusRejected {
		title = "Withdrawal Rejected"
	}
	s.notifier.Notify(success(title, fmt.Sprintf("Request #%d updated successfully.", req.ID)))
	refetchAfterWrite(ctx, s.logger, refresh, "withdrawals")
	return nil
}

// FieldErrors returns the field errors of the last decision.
func (s *WithdrawalService) FieldErrors() *FieldErrors {
	return s.form.FieldErrors()
}

package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
)

// Toggleable is a list row with a 1/0 activation status.
type Toggleable interface {
	Key() int64
	StatusOf() refdata.Status
}

// StatusSetter persists a new status for one row.
type StatusSetter func(ctx context.Context, id int64, status refdata.Status) error

// StatusToggler flips the status of a row on the current page and reloads
// the page, so the badge shown always reflects the server.
type StatusToggler[T Toggleable] struct {
	kind     string
	pager    *Pager[T]
	set      StatusSetter
	notifier Notifier
}

// NewStatusToggler builds a toggler. kind is the singular label used in
// toasts, e.g. "League".
func NewStatusToggler[T Toggleable](kind string, pager *Pager[T], set StatusSetter, notifier Notifier) *StatusToggler[T] {
	return &StatusToggler[T]{
		kind:     kind,
		pager:    pager,
		set:      set,
		notifier: notifierOrNop(notifier),
	}
}

// Toggle sends the inverse of the row's status and refetches the page. It
// returns the status requested from the server.
func (t *StatusToggler[T]) Toggle(ctx context.Context, id int64) (refdata.Status, error) {
	row, ok := t.pager.Find(func(item T) bool { return item.Key() == id })
	if !ok {
		return refdata.StatusInactive, fmt.Errorf("%w: %s %d is not on the current page", ErrNotFound, t.kind, id)
	}

	next := row.StatusOf().Inverse()
	if err := t.set(ctx, id, next); err != nil {
		t.notifier.Notify(failure("Error", fmt.Sprintf("Failed to update %s status.", t.kind)))
		return row.StatusOf(), fmt.Errorf("set %s %d status: %w", t.kind, id, err)
	}

	verb := "Deactivated"
	if next.IsActive() {
		verb = "Activated"
	}
	t.notifier.Notify(success(fmt.Sprintf("%s %s", t.kind, verb), fmt.Sprintf("%s status updated successfully.", t.kind)))

	if err := t.pager.Refetch(ctx); err != nil {
		return next, fmt.Errorf("refetch after %s status change: %w", t.kind, err)
	}
	return next, nil
}

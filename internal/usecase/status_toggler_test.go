package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/riskibarqy/starpick-admin/internal/domain/league"
	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/domain/refdata"
)

func leaguePager(status *atomic.Int32, fetches *atomic.Int32) *Pager[league.League] {
	return NewPager(func(context.Context, pagination.Query) (pagination.Page[league.League], error) {
		fetches.Add(1)
		return pagination.Page[league.League]{
			Data: []league.League{
				{ID: 39, Name: "Premier League", Status: refdata.Status(status.Load())},
				{ID: 140, Name: "La Liga", Status: refdata.StatusInactive},
			},
			CurrentPage: 1,
			LastPage:    1,
		}, nil
	}, PagerConfig{Resource: "leagues"})
}

func TestStatusToggler_SendsInverseAndRefetches(t *testing.T) {
	t.Parallel()

	var status, fetches atomic.Int32
	status.Store(int32(refdata.StatusActive))
	pager := leaguePager(&status, &fetches)
	defer pager.Close()
	if err := pager.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	var sent []refdata.Status
	set := func(_ context.Context, id int64, next refdata.Status) error {
		if id != 39 {
			t.Fatalf("unexpected id %d", id)
		}
		sent = append(sent, next)
		status.Store(int32(next))
		return nil
	}

	notifier := &RecordingNotifier{}
	toggler := NewStatusToggler("League", pager, set, notifier)

	next, err := toggler.Toggle(context.Background(), 39)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if next != refdata.StatusInactive || len(sent) != 1 || sent[0] != refdata.StatusInactive {
		t.Fatalf("expected inverse status 0 to be sent, got next=%v sent=%v", next, sent)
	}
	if fetches.Load() != 2 {
		t.Fatalf("expected a refetch after toggle, fetches=%d", fetches.Load())
	}
	row, _ := pager.Find(func(l league.League) bool { return l.ID == 39 })
	if row.Status != refdata.StatusInactive {
		t.Fatalf("badge must reflect the refetched status, got %v", row.Status)
	}
	toast, _ := notifier.Last()
	if toast.Kind != ToastSuccess || toast.Title != "League Deactivated" {
		t.Fatalf("unexpected toast: %+v", toast)
	}

	if _, err := toggler.Toggle(context.Background(), 39); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if sent[1] != refdata.StatusActive {
		t.Fatalf("second toggle must activate, sent=%v", sent)
	}
	if toast, _ := notifier.Last(); toast.Title != "League Activated" {
		t.Fatalf("unexpected toast: %+v", toast)
	}
}

func TestStatusToggler_FailureLeavesListUntouched(t *testing.T) {
	t.Parallel()

	var status, fetches atomic.Int32
	status.Store(int32(refdata.StatusActive))
	pager := leaguePager(&status, &fetches)
	defer pager.Close()
	if err := pager.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	boom := errors.New("500")
	notifier := &RecordingNotifier{}
	toggler := NewStatusToggler("League", pager, func(context.Context, int64, refdata.Status) error { return boom }, notifier)

	if _, err := toggler.Toggle(context.Background(), 39); !errors.Is(err, boom) {
		t.Fatalf("expected set error, got %v", err)
	}
	if fetches.Load() != 1 {
		t.Fatalf("failed toggle must not refetch, fetches=%d", fetches.Load())
	}
	if notifier.Count(ToastError) != 1 {
		t.Fatalf("expected one error toast, got %+v", notifier.Toasts())
	}
}

func TestStatusToggler_UnknownRow(t *testing.T) {
	t.Parallel()

	var status, fetches atomic.Int32
	pager := leaguePager(&status, &fetches)
	defer pager.Close()
	if err := pager.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	toggler := NewStatusToggler("League", pager, func(context.Context, int64, refdata.Status) error {
		t.Fatalf("set must not be called")
		return nil
	}, nil)
	if _, err := toggler.Toggle(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

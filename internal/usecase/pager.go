package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
)

const DefaultSearchDebounce = 500 * time.Millisecond

// PageFetcher loads one page of a list resource.
type PageFetcher[T any] func(ctx context.Context, query pagination.Query) (pagination.Page[T], error)

// Refresher re-issues the last request of a view.
type Refresher interface {
	Refetch(ctx context.Context) error
}

// refetchAfterWrite reloads the view behind a successful write. The write
// already succeeded, so a failed reload is logged and not returned.
func refetchAfterWrite(ctx context.Context, logger *logging.Logger, refresh Refresher, resource string) {
	if refresh == nil {
		return
	}
	if err := refresh.Refetch(ctx); err != nil {
		logger.DebugContext(ctx, "refetch after write failed", "resource", resource, "error", err)
	}
}

type PagerConfig struct {
	// Resource names the list in toasts and logs, e.g. "teams".
	Resource string
	Debounce time.Duration
	Notifier Notifier
	Logger   *logging.Logger
	// OnChange is called after every settled load with the new state.
	OnChange func()
}

// PagerState is a snapshot of a Pager.
type PagerState[T any] struct {
	Page         pagination.Page[T]
	Loaded       bool
	Search       string
	IsRefetching bool
	Err          error
}

// Pager drives a paginated list: page navigation, debounced search and
// last-request-wins loading. A failed load keeps the previous page visible.
type Pager[T any] struct {
	fetch    PageFetcher[T]
	resource string
	notifier Notifier
	logger   *logging.Logger
	onChange func()
	debounce func(f func())

	baseCtx    context.Context
	baseCancel context.CancelFunc

	mu         sync.Mutex
	page       pagination.Page[T]
	loaded     bool
	current    int
	search     string
	pending    string
	loading    bool
	err        error
	cancel     context.CancelFunc
	generation uint64
	settled    chan struct{}
}

func NewPager[T any](fetch PageFetcher[T], cfg PagerConfig) *Pager[T] {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultSearchDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	resource := strings.TrimSpace(cfg.Resource)
	if resource == "" {
		resource = "items"
	}

	baseCtx, baseCancel := context.WithCancel(context.Background())
	return &Pager[T]{
		fetch:      fetch,
		resource:   resource,
		notifier:   notifierOrNop(cfg.Notifier),
		logger:     logger,
		onChange:   cfg.OnChange,
		debounce:   debounce.New(cfg.Debounce),
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
		current:    1,
		settled:    make(chan struct{}),
	}
}

// Load fetches the current page with the current search.
func (p *Pager[T]) Load(ctx context.Context) error {
	p.mu.Lock()
	page, search := p.current, p.search
	p.mu.Unlock()
	return p.load(ctx, page, search)
}

// Open loads page n with term directly, as when following a link. Unlike
// GoTo it is not bounded by the page on screen.
func (p *Pager[T]) Open(ctx context.Context, n int, term string) error {
	return p.load(ctx, max(n, 1), strings.TrimSpace(term))
}

// Refetch reloads the page on screen.
func (p *Pager[T]) Refetch(ctx context.Context) error {
	return p.Load(ctx)
}

// GoTo loads page n. Pages outside 1..last_page are rejected without a request.
func (p *Pager[T]) GoTo(ctx context.Context, n int) error {
	p.mu.Lock()
	guard := p.page.Guard(n)
	search := p.search
	p.mu.Unlock()
	if guard != nil {
		return guard
	}
	return p.load(ctx, n, search)
}

func (p *Pager[T]) Next(ctx context.Context) error {
	return p.GoTo(ctx, p.State().Page.CurrentPage+1)
}

func (p *Pager[T]) Prev(ctx context.Context) error {
	return p.GoTo(ctx, p.State().Page.CurrentPage-1)
}

// SetSearch schedules a debounced load of page 1 for term. Rapid calls
// coalesce into one request carrying the last term.
func (p *Pager[T]) SetSearch(term string) {
	p.mu.Lock()
	p.pending = strings.TrimSpace(term)
	p.mu.Unlock()

	p.debounce(func() {
		p.mu.Lock()
		next := p.pending
		p.mu.Unlock()
		_ = p.load(p.baseCtx, 1, next)
	})
}

// Settled returns a channel closed when the next load settles.
func (p *Pager[T]) Settled() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settled
}

// Close cancels in-flight and pending debounced loads.
func (p *Pager[T]) Close() {
	p.baseCancel()
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
}

func (p *Pager[T]) State() PagerState[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PagerState[T]{
		Page:         p.page,
		Loaded:       p.loaded,
		Search:       p.search,
		IsRefetching: p.loading,
		Err:          p.err,
	}
}

// Find returns the row of the current page matching pred.
func (p *Pager[T]) Find(pred func(T) bool) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, item := range p.page.Data {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (p *Pager[T]) load(ctx context.Context, page int, search string) error {
	if p.baseCtx.Err() != nil {
		return nil
	}

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(p.baseCtx, cancel)
	p.cancel = cancel
	p.generation++
	gen := p.generation
	p.loading = true
	p.mu.Unlock()
	defer stop()
	defer cancel()

	result, err := p.fetch(reqCtx, pagination.Query{Page: page, Search: search})

	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		return nil
	}
	p.loading = false
	p.cancel = nil
	canceled := err != nil && reqCtx.Err() != nil && errors.Is(err, context.Canceled)
	switch {
	case canceled:
	case err != nil:
		p.err = err
	default:
		p.page = result
		p.loaded = true
		p.current = max(result.CurrentPage, 1)
		p.search = search
		p.err = nil
	}
	settled := p.settled
	p.settled = make(chan struct{})
	p.mu.Unlock()
	close(settled)

	if p.onChange != nil && !canceled {
		p.onChange()
	}
	if canceled {
		return nil
	}
	if err != nil {
		p.logger.WarnContext(ctx, "list fetch failed", "resource", p.resource, "page", page, "search", search, "error", err)
		if !errors.Is(err, ErrUnauthorized) {
			p.notifier.Notify(failure("Error", fmt.Sprintf("Failed to load %s.", p.resource)))
		}
		return err
	}
	return nil
}

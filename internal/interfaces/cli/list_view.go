package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

// lister is a paginated screen that can be rendered and navigated.
type lister interface {
	Open(ctx context.Context, page int, search string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	GoTo(ctx context.Context, n int) error
	Refetch(ctx context.Context) error
	SetSearch(term string)
	Settled() <-chan struct{}
	Toggle(ctx context.Context, id int64) error
	Render(w io.Writer) error
	Close()
}

type listView[T any] struct {
	title  string
	pager  *usecase.Pager[T]
	header []string
	row    func(T) []string
	filter func([]T) []T
	toggle func(ctx context.Context, id int64) error
}

func newListView[T any](c *CLI, title, resource string, fetch usecase.PageFetcher[T], header []string, row func(T) []string) *listView[T] {
	return &listView[T]{
		title: title,
		pager: usecase.NewPager(fetch, usecase.PagerConfig{
			Resource: resource,
			Debounce: c.debounce,
			Notifier: c,
			Logger:   c.logger,
		}),
		header: header,
		row:    row,
	}
}

// withToggle enables status toggling on a list of toggleable rows.
func withToggle[T usecase.Toggleable](v *listView[T], kind string, set usecase.StatusSetter, n usecase.Notifier) *listView[T] {
	toggler := usecase.NewStatusToggler(kind, v.pager, set, n)
	v.toggle = func(ctx context.Context, id int64) error {
		_, err := toggler.Toggle(ctx, id)
		return err
	}
	return v
}

func (v *listView[T]) withFilter(filter func([]T) []T) *listView[T] {
	v.filter = filter
	return v
}

func (v *listView[T]) Open(ctx context.Context, page int, search string) error {
	return v.pager.Open(ctx, page, search)
}

func (v *listView[T]) Next(ctx context.Context) error {
	return v.pager.Next(ctx)
}

func (v *listView[T]) Prev(ctx context.Context) error {
	return v.pager.Prev(ctx)
}

func (v *listView[T]) GoTo(ctx context.Context, n int) error {
	return v.pager.GoTo(ctx, n)
}

func (v *listView[T]) Refetch(ctx context.Context) error {
	return v.pager.Refetch(ctx)
}

func (v *listView[T]) SetSearch(term string) {
	v.pager.SetSearch(term)
}

func (v *listView[T]) Settled() <-chan struct{} {
	return v.pager.Settled()
}

func (v *listView[T]) Toggle(ctx context.Context, id int64) error {
	if v.toggle == nil {
		return fmt.Errorf("%w: %s rows have no status toggle", usecase.ErrInvalidInput, v.title)
	}
	return v.toggle(ctx, id)
}

func (v *listView[T]) Close() {
	v.pager.Close()
}

func (v *listView[T]) Render(w io.Writer) error {
	state := v.pager.State()
	title := v.title
	if state.Search != "" {
		title = fmt.Sprintf("%s (search: %q)", title, state.Search)
	}
	if state.IsRefetching {
		title += " [refreshing]"
	}
	fmt.Fprintln(w, title)

	items := state.Page.Data
	if v.filter != nil {
		items = v.filter(items)
	}
	if len(items) == 0 {
		fmt.Fprintln(w, "No records found.")
	} else {
		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, v.row(item))
		}
		if err := writeTable(w, v.header, rows); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, pageFooter(pageMeta(state.Page)))
	return err
}

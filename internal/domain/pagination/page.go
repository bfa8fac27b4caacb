package pagination

import (
	"errors"
	"fmt"
)

var (
	ErrInconsistentPage = errors.New("inconsistent page envelope")
	ErrPageOutOfRange   = errors.New("page out of range")
)

// Query is the common query of paginated list endpoints.
type Query struct {
	Page   int    `query:"page,omitempty"`
	Search string `query:"search,omitempty"`
}

// Link mirrors one entry of the backend "links" array.
type Link struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Page is the paginated envelope returned by list endpoints.
type Page[T any] struct {
	Data        []T     `json:"data"`
	CurrentPage int     `json:"current_page"`
	LastPage    int     `json:"last_page"`
	PerPage     int     `json:"per_page"`
	Total       int     `json:"total"`
	From        int     `json:"from"`
	To          int     `json:"to"`
	PrevPageURL *string `json:"prev_page_url"`
	NextPageURL *string `json:"next_page_url"`
	Links       []Link  `json:"links"`
}

// Single wraps a non-paginated list so it can flow through the same views.
func Single[T any](items []T) Page[T] {
	page := Page[T]{
		Data:        items,
		CurrentPage: 1,
		LastPage:    1,
		PerPage:     len(items),
		Total:       len(items),
	}
	if len(items) > 0 {
		page.From = 1
		page.To = len(items)
	}
	return page
}

// Validate rejects envelopes whose counters disagree with their data.
func (p Page[T]) Validate() error {
	if p.CurrentPage < 1 {
		return fmt.Errorf("%w: current_page=%d", ErrInconsistentPage, p.CurrentPage)
	}
	if p.LastPage < 1 {
		return fmt.Errorf("%w: last_page=%d", ErrInconsistentPage, p.LastPage)
	}
	if p.CurrentPage > p.LastPage && len(p.Data) > 0 {
		return fmt.Errorf("%w: current_page %d beyond last_page %d", ErrInconsistentPage, p.CurrentPage, p.LastPage)
	}
	if p.PerPage > 0 && len(p.Data) > p.PerPage {
		return fmt.Errorf("%w: %d rows exceed per_page %d", ErrInconsistentPage, len(p.Data), p.PerPage)
	}
	if len(p.Data) > 0 && p.From > 0 && p.To > 0 && p.To-p.From+1 != len(p.Data) {
		return fmt.Errorf("%w: from=%d to=%d but %d rows", ErrInconsistentPage, p.From, p.To, len(p.Data))
	}
	if p.Total < len(p.Data) {
		return fmt.Errorf("%w: total %d below row count %d", ErrInconsistentPage, p.Total, len(p.Data))
	}
	return nil
}

func (p Page[T]) HasPrev() bool {
	return p.PrevPageURL != nil && p.CurrentPage > 1
}

func (p Page[T]) HasNext() bool {
	return p.NextPageURL != nil && p.CurrentPage < p.LastPage
}

// InRange reports whether n is a page that can be requested.
func (p Page[T]) InRange(n int) bool {
	last := p.LastPage
	if last < 1 {
		last = 1
	}
	return n >= 1 && n <= last
}

// Guard returns ErrPageOutOfRange for pages outside 1..LastPage.
func (p Page[T]) Guard(n int) error {
	if !p.InRange(n) {
		return fmt.Errorf("%w: %d not in 1..%d", ErrPageOutOfRange, n, max(p.LastPage, 1))
	}
	return nil
}

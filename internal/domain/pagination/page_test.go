package pagination

import (
	"errors"
	"testing"
)

func labels(buttons []Button) []any {
	out := make([]any, 0, len(buttons))
	for _, b := range buttons {
		if b.Ellipsis {
			out = append(out, "...")
			continue
		}
		out = append(out, b.Page)
	}
	return out
}

func TestWindow(t *testing.T) {
	cases := []struct {
		name          string
		current, last int
		want          []any
	}{
		{name: "single page hides navigator", current: 1, last: 1, want: []any{}},
		{name: "first page", current: 1, last: 10, want: []any{1, 2, 3, "...", 10}},
		{name: "middle page", current: 5, last: 10, want: []any{1, "...", 3, 4, 5, 6, 7, "...", 10}},
		{name: "last page", current: 10, last: 10, want: []any{1, "...", 8, 9, 10}},
		{name: "near start no gap", current: 4, last: 10, want: []any{1, 2, 3, 4, 5, 6, "...", 10}},
		{name: "near end no gap", current: 7, last: 10, want: []any{1, "...", 5, 6, 7, 8, 9, 10}},
		{name: "few pages", current: 2, last: 3, want: []any{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := labels(Window(tc.current, tc.last))
			if len(got) != len(tc.want) {
				t.Fatalf("window(%d,%d)=%v want %v", tc.current, tc.last, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("window(%d,%d)=%v want %v", tc.current, tc.last, got, tc.want)
				}
			}
		})
	}
}

func TestWindow_MarksCurrentAndKeepsEndsReachable(t *testing.T) {
	t.Parallel()

	for last := 2; last <= 12; last++ {
		for current := 1; current <= last; current++ {
			buttons := Window(current, last)
			var sawFirst, sawLast, sawCurrent bool
			for _, b := range buttons {
				if b.Ellipsis {
					continue
				}
				sawFirst = sawFirst || b.Page == 1
				sawLast = sawLast || b.Page == last
				if b.Current {
					if b.Page != current {
						t.Fatalf("current flag on %d, want %d", b.Page, current)
					}
					sawCurrent = true
				}
			}
			if !sawFirst || !sawLast || !sawCurrent {
				t.Fatalf("window(%d,%d) missing ends or current: %v", current, last, labels(buttons))
			}
		}
	}
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	ok := Page[int]{Data: []int{1, 2}, CurrentPage: 1, LastPage: 3, PerPage: 2, Total: 6, From: 1, To: 2}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected valid page, got %v", err)
	}

	tooMany := ok
	tooMany.Data = []int{1, 2, 3}
	if err := tooMany.Validate(); !errors.Is(err, ErrInconsistentPage) {
		t.Fatalf("expected inconsistency for rows > per_page, got %v", err)
	}

	badRange := ok
	badRange.To = 5
	if err := badRange.Validate(); !errors.Is(err, ErrInconsistentPage) {
		t.Fatalf("expected inconsistency for from/to mismatch, got %v", err)
	}

	empty := Page[int]{CurrentPage: 1, LastPage: 1}
	if err := empty.Validate(); err != nil {
		t.Fatalf("empty first page must be valid, got %v", err)
	}
}

func TestPage_Guard(t *testing.T) {
	t.Parallel()

	page := Page[string]{CurrentPage: 2, LastPage: 4}
	for _, n := range []int{1, 4} {
		if err := page.Guard(n); err != nil {
			t.Fatalf("page %d should be in range: %v", n, err)
		}
	}
	for _, n := range []int{0, 5, -1} {
		if err := page.Guard(n); !errors.Is(err, ErrPageOutOfRange) {
			t.Fatalf("page %d should be out of range, got %v", n, err)
		}
	}
}

func TestSingle(t *testing.T) {
	t.Parallel()

	page := Single([]string{"a", "b"})
	if err := page.Validate(); err != nil {
		t.Fatalf("single page must validate: %v", err)
	}
	if page.HasNext() || page.HasPrev() {
		t.Fatalf("single page must not navigate")
	}
	if Window(page.CurrentPage, page.LastPage) != nil {
		t.Fatalf("single page must hide navigator")
	}
}

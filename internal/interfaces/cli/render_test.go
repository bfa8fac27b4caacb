package cli

import (
	"strings"
	"testing"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
)

func TestPageFooter(t *testing.T) {
	t.Parallel()

	got := pageFooter(pagination.Page[struct{}]{CurrentPage: 5, LastPage: 9, Total: 173})
	want := "Page 5 of 9 (173 total)  1 ... 3 4 [5] 6 7 ... 9"
	if got != want {
		t.Fatalf("footer = %q, want %q", got, want)
	}

	if got := pageFooter(pagination.Page[struct{}]{CurrentPage: 1, LastPage: 1, Total: 4}); got != "4 total" {
		t.Fatalf("single page footer = %q", got)
	}
}

func TestWriteTableAligns(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := writeTable(&b, []string{"ID", "NAME"}, [][]string{{"1", "Arsenal"}, {"120", "Persija Jakarta"}}); err != nil {
		t.Fatalf("write table: %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", b.String())
	}
	if strings.Index(lines[1], "Arsenal") != strings.Index(lines[2], "Persija") {
		t.Fatalf("columns not aligned:\n%s", b.String())
	}
}

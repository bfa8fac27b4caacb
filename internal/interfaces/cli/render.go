package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	tw := newTable(w)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// writeFields renders label/value pairs, one per line.
func writeFields(w io.Writer, pairs ...string) error {
	tw := newTable(w)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(tw, "%s:\t%s\n", pairs[i], pairs[i+1])
	}
	return tw.Flush()
}

// pageFooter renders "Page 2 of 9 (173 total)  1 [2] 3 4 ... 9".
func pageFooter(p pagination.Page[struct{}]) string {
	if p.LastPage <= 1 {
		return fmt.Sprintf("%d total", p.Total)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Page %d of %d (%d total) ", p.CurrentPage, p.LastPage, p.Total)
	for _, btn := range pagination.Window(p.CurrentPage, p.LastPage) {
		b.WriteByte(' ')
		switch {
		case btn.Ellipsis:
			b.WriteString("...")
		case btn.Current:
			b.WriteString("[" + strconv.Itoa(btn.Page) + "]")
		default:
			b.WriteString(strconv.Itoa(btn.Page))
		}
	}
	return b.String()
}

func pageMeta[T any](p pagination.Page[T]) pagination.Page[struct{}] {
	return pagination.Page[struct{}]{
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func stars(rating int) string {
	if rating <= 0 {
		return "-"
	}
	return strings.Repeat("*", rating)
}

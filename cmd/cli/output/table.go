package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Listing is one table of records printed by a list subcommand.
type Listing struct {
	Headers []string
	Rows    [][]any
	// Noun names one record in the footer, e.g. "user" gives "2 users".
	Noun string
}

// Print writes the listing to w. An empty listing prints a single line
// instead of a header with no rows.
func (l Listing) Print(w io.Writer) {
	if len(l.Rows) == 0 {
		fmt.Fprintf(w, "No %ss.\n", l.Noun)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(l.Headers))
	for i, h := range l.Headers {
		header[i] = h
	}
	t.AppendHeader(header)
	for _, row := range l.Rows {
		t.AppendRow(table.Row(row))
	}

	noun := l.Noun
	if len(l.Rows) != 1 {
		noun += "s"
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d %s", len(l.Rows), noun)})
	t.Render()
}

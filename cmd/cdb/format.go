package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tinrooster/cabledb/internal/matrix"
	"golang.org/x/term"
)

// cellWidth fits a position name or a 5-digit length plus a space.
const cellWidth = 6

// terminalWidth returns the current terminal width, or a sane default when
// stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 120
}

// renderMatrix prints the matrix as a table, clipping columns to the given
// width. An empty series prints every row; otherwise only rows whose
// position matches the series prefix.
func renderMatrix(out io.Writer, snap *matrix.Snapshot, series string, width int) {
	maxCols := (width - cellWidth) / cellWidth
	if maxCols < 1 {
		maxCols = 1
	}
	shown := len(snap.Positions)
	if shown > maxCols {
		shown = maxCols
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", cellWidth))
	for _, name := range snap.Positions[:shown] {
		fmt.Fprintf(&b, "%*s", cellWidth, name)
	}
	fmt.Fprintln(out, b.String())

	printed := 0
	for i, name := range snap.Positions {
		if series != "" && !strings.HasPrefix(name, series) {
			continue
		}
		b.Reset()
		fmt.Fprintf(&b, "%-*s", cellWidth, name)
		for _, v := range snap.Cells[i][:shown] {
			fmt.Fprintf(&b, "%*d", cellWidth, v)
		}
		fmt.Fprintln(out, b.String())
		printed++
	}

	if hidden := len(snap.Positions) - shown; hidden > 0 {
		fmt.Fprintf(out, "(%d more columns; use `cdb matrix export` for the full matrix)\n", hidden)
	}
	if series != "" && printed == 0 {
		fmt.Fprintf(out, "no positions match series %q\n", series)
	}
}

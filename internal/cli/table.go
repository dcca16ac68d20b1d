package cli

import (
	"bufio"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = 2

// writeTable prints rows under headers with columns padded to their widest
// cell in terminal cells. Short rows are padded with empty cells.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	cols := len(headers)
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return nil
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	w := bufio.NewWriter(out)
	line := func(row []string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i == cols-1 {
				w.WriteString(cell)
				break
			}
			w.WriteString(runewidth.FillRight(cell, widths[i]))
			w.WriteString(strings.Repeat(" ", columnGap))
		}
		w.WriteString("\n")
	}

	if len(headers) > 0 {
		line(headers)
	}
	for _, row := range rows {
		line(row)
	}
	return w.Flush()
}

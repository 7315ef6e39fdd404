// Package printer renders a panel grid on a terminal.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/tartampluch/go-datepanel/internal/engine"
)

var (
	activeStyle    = color.New(color.Bold, color.Underline)
	activeNowStyle = color.New(color.Bold, color.Underline, color.FgHiYellow)
	nowStyle       = color.New(color.FgHiYellow)
	disabledStyle  = color.New(color.Faint)
	sentinelStyle  = color.New(color.Italic, color.Faint)
	titleStyle     = color.New(color.Bold)
)

// Render writes g as a three-column table preceded by title (skipped when empty).
// The table is laid out on plain labels and styled afterwards, so escape codes never
// count towards column widths.
func Render(w io.Writer, title string, g engine.Grid) error {
	if title != "" {
		if _, err := titleStyle.Fprintln(w, title); err != nil {
			return err
		}
	}

	rows := g.Rows()
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, c := range row {
			cells = append(cells, label(c))
		}
		tbl.AddRow(cells...)
	}

	lines := strings.Split(tbl.String(), "\n")
	for i, line := range lines {
		if i < len(rows) {
			line = styleLine(line, rows[i])
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// styleLine replaces each plain label of a laid-out row with its styled form,
// leaving the padding between them untouched.
func styleLine(line string, row []engine.Cell) string {
	var b strings.Builder
	rest := line
	for _, c := range row {
		plain := label(c)
		at := strings.Index(rest, plain)
		if plain == "" || at < 0 {
			continue
		}
		b.WriteString(rest[:at])
		b.WriteString(Cell(c))
		rest = rest[at+len(plain):]
	}
	b.WriteString(rest)
	return b.String()
}

// label is the unstyled text of a cell; navigation sentinels are bracketed.
func label(c engine.Cell) string {
	if c.Kind != engine.KindSelect {
		return "‹" + c.Label + "›"
	}
	return c.Label
}

// Cell styles a single cell label. Active wins over the other states; "now" is
// layered on top of it.
func Cell(c engine.Cell) string {
	text := label(c)
	switch {
	case c.Kind != engine.KindSelect:
		if c.Flags.Active {
			return activeStyle.Sprint(text)
		}
		return sentinelStyle.Sprint(text)
	case c.Flags.Active && c.Flags.IsNow:
		return activeNowStyle.Sprint(text)
	case c.Flags.Active:
		return activeStyle.Sprint(text)
	case c.Disabled:
		return disabledStyle.Sprint(text)
	case c.Flags.IsNow:
		return nowStyle.Sprint(text)
	}
	return text
}

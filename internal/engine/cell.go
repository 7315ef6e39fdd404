package engine

import (
	"strings"
	"time"
)

// Grid dimensions shared by the month and year panels.
const (
	GridCols = 3
	GridRows = 4
	GridSize = GridCols * GridRows
)

// Granularity is the unit a panel lets the user pick.
type Granularity int

const (
	GranularityMonth Granularity = iota
	GranularityYear
)

func (g Granularity) String() string {
	if g == GranularityYear {
		return "year"
	}
	return "month"
}

// Kind tells whether activating a cell selects a value or moves the view.
type Kind int

const (
	KindSelect Kind = iota
	KindPrev
	KindNext
)

func (k Kind) String() string {
	switch k {
	case KindPrev:
		return "prev"
	case KindNext:
		return "next"
	default:
		return "select"
	}
}

// Flags carries the display state of a cell.
// Class is an opaque style tag derived from the caller prefix and is never read by the engine.
type Flags struct {
	Active bool
	IsNow  bool
	Class  string
}

// Cell is one slot of a Grid. Cells are rebuilt on every generation.
type Cell struct {
	Label    string
	Disabled bool
	Kind     Kind
	Patch    FieldPatch
	Flags    Flags
}

// Grid is a fixed 3x4 row-major panel together with the inputs it was computed from,
// so that Dispatch can resolve a click without any other context.
type Grid struct {
	Granularity Granularity
	Anchor      DateValue
	Selected    DateValue
	Cells       [GridSize]Cell
}

// Cell returns the cell at row, col.
func (g Grid) Cell(row, col int) Cell {
	return g.Cells[row*GridCols+col]
}

// Rows splits the cells into GridRows slices of GridCols cells.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, 0, GridRows)
	for r := 0; r < GridRows; r++ {
		rows = append(rows, g.Cells[r*GridCols:(r+1)*GridCols])
	}
	return rows
}

// ActiveIndex returns the index of the first active cell, or -1.
func (g Grid) ActiveIndex() int {
	for i, c := range g.Cells {
		if c.Flags.Active {
			return i
		}
	}
	return -1
}

// Span returns the first and last year the grid covers: the anchor year on a
// month grid, the decade on a year grid. Sentinels are not counted.
func (g Grid) Span() (first, last int) {
	if g.Granularity == GranularityYear {
		start := DecadeStart(g.Anchor.Year())
		return start, start + DecadeSpan - 1
	}
	return g.Anchor.Year(), g.Anchor.Year()
}

// DefaultMonthLabels is used when the caller supplies no usable label table.
var DefaultMonthLabels = func() []string {
	labels := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		labels = append(labels, m.String()[:3])
	}
	return labels
}()

// Style suffixes appended to the caller prefix.
const (
	ClassActive   = "-active"
	ClassNow      = "-now"
	ClassDisabled = "-disabled"
	ClassPrev     = "-prev"
	ClassNext     = "-next"
)

func classNames(prefix string, c Cell) string {
	var parts []string
	if c.Flags.Active {
		parts = append(parts, prefix+ClassActive)
	}
	if c.Flags.IsNow {
		parts = append(parts, prefix+ClassNow)
	}
	if c.Disabled {
		parts = append(parts, prefix+ClassDisabled)
	}
	switch c.Kind {
	case KindPrev:
		parts = append(parts, prefix+ClassPrev)
	case KindNext:
		parts = append(parts, prefix+ClassNext)
	}
	return strings.Join(parts, " ")
}

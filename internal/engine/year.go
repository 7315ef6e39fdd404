package engine

import "strconv"

// DecadeSpan is the number of selectable years in a year panel.
const DecadeSpan = 10

// YearInput holds everything GenerateYears needs.
type YearInput struct {
	Anchor   DateValue
	Selected DateValue
	Prefix   string
}

// DecadeStart returns the first year of the decade containing year, rounding toward
// negative infinity.
func DecadeStart(year int) int {
	q := year / DecadeSpan
	if year%DecadeSpan != 0 && year < 0 {
		q--
	}
	return q * DecadeSpan
}

// GenerateYears builds the decade panel around the anchor: one leading sentinel for the
// previous decade, the ten years of the decade, one trailing sentinel for the next one.
// Years have no "now" highlight and are never disabled.
func GenerateYears(in YearInput) Grid {
	g := Grid{
		Granularity: GranularityYear,
		Anchor:      in.Anchor,
		Selected:    in.Selected,
	}
	base := DecadeStart(in.Anchor.Year())

	for i := 0; i < GridSize; i++ {
		year := base + i - 1

		kind := KindSelect
		switch i {
		case 0:
			kind = KindPrev
		case GridSize - 1:
			kind = KindNext
		}

		c := Cell{
			Label: strconv.Itoa(year),
			Kind:  kind,
			Patch: YearPatch(year),
		}
		// Sentinels may render active when the selection sits in the adjacent decade.
		c.Flags.Active = !in.Selected.IsZero() && in.Selected.Year() == year
		c.Flags.Class = classNames(in.Prefix, c)
		g.Cells[i] = c
	}
	return g
}

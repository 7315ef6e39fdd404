package engine

import "time"

// CandidateDay is the day-of-month handed to the disabling predicate when nothing is selected.
const CandidateDay = 1

// DisabledFunc decides whether a month candidate may be selected.
// It receives the fully formed candidate and the current selection (zero when absent).
type DisabledFunc func(candidate, selected DateValue) bool

// MonthInput holds everything GenerateMonths needs.
type MonthInput struct {
	Anchor   DateValue    // Year being displayed.
	Selected DateValue    // Zero when nothing is selected yet.
	Today    DateValue    // Zero disables the "now" highlight.
	Labels   []string     // Twelve locale labels, January first.
	Disabled DisabledFunc // Optional.
	Prefix   string       // Style prefix, opaque.
}

// GenerateMonths builds the twelve-month panel for the anchor's year.
func GenerateMonths(in MonthInput) Grid {
	labels := in.Labels
	if len(labels) != GridSize {
		labels = DefaultMonthLabels
	}

	g := Grid{
		Granularity: GranularityMonth,
		Anchor:      in.Anchor,
		Selected:    in.Selected,
	}
	year := in.Anchor.Year()

	for i := 0; i < GridSize; i++ {
		month := time.Month(i + 1)
		patch := MonthPatch(year, month)

		c := Cell{
			Label: labels[i],
			Kind:  KindSelect,
			Patch: patch,
		}
		c.Flags.Active = !in.Selected.IsZero() && in.Selected.Year() == year && in.Selected.Month() == month
		c.Flags.IsNow = !in.Today.IsZero() && in.Today.Year() == year && in.Today.Month() == month
		if in.Disabled != nil {
			c.Disabled = in.Disabled(monthCandidate(patch, in.Anchor, in.Selected), in.Selected)
		}
		c.Flags.Class = classNames(in.Prefix, c)
		g.Cells[i] = c
	}
	return g
}

// monthCandidate is the date handed to the disabling predicate. It always falls inside
// the patched month: with a selection it keeps the selected time of day and clamps the
// day to the month's length, without one it is the first of the month at midnight.
func monthCandidate(patch FieldPatch, anchor, selected DateValue) DateValue {
	year, _ := patch.Get(FieldYear)
	month, _ := patch.Get(FieldMonth)
	if selected.IsZero() {
		return Date(year, time.Month(month), CandidateDay, anchor.Location())
	}
	t := selected.Time()
	d := min(t.Day(), daysIn(year, time.Month(month)))
	hour, minute, sec := t.Clock()
	return FromTime(time.Date(year, time.Month(month), d, hour, minute, sec, t.Nanosecond(), t.Location()))
}

// daysIn returns the number of days of month in year.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

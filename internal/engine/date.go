package engine

import (
	"fmt"
	"time"
)

// Field identifies one component of a DateValue that a panel cell can represent.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
)

// String returns the lowercase component name.
func (f Field) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// FieldValue is a single component assignment. Month values are 1..12.
type FieldValue struct {
	Field Field
	Value int
}

// FieldPatch is the ordered set of components a cell stands for.
// Components are applied in slice order, so a year always precedes a month.
type FieldPatch []FieldValue

// YearPatch builds the patch of a year cell.
func YearPatch(year int) FieldPatch {
	return FieldPatch{{Field: FieldYear, Value: year}}
}

// MonthPatch builds the patch of a month cell.
func MonthPatch(year int, month time.Month) FieldPatch {
	return FieldPatch{
		{Field: FieldYear, Value: year},
		{Field: FieldMonth, Value: int(month)},
	}
}

// Get returns the value assigned to f and whether the patch carries it.
func (p FieldPatch) Get(f Field) (int, bool) {
	for _, fv := range p {
		if fv.Field == f {
			return fv.Value, true
		}
	}
	return 0, false
}

// DateValue is an immutable point in time used as anchor, selection or "today".
// The zero DateValue means absent.
type DateValue struct {
	t time.Time
}

// Date builds a DateValue from calendar components at midnight.
func Date(year int, month time.Month, day int, loc *time.Location) DateValue {
	if loc == nil {
		loc = time.UTC
	}
	return DateValue{t: time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

// FromTime wraps t. A zero time yields an absent DateValue.
func FromTime(t time.Time) DateValue {
	return DateValue{t: t}
}

// IsZero reports whether the value is absent.
func (d DateValue) IsZero() bool { return d.t.IsZero() }

// Time returns the underlying time.
func (d DateValue) Time() time.Time { return d.t }

// Year returns the calendar year.
func (d DateValue) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d DateValue) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d DateValue) Day() int { return d.t.Day() }

// Hour returns the hour of the day.
func (d DateValue) Hour() int { return d.t.Hour() }

// Location returns the time zone the value is expressed in.
func (d DateValue) Location() *time.Location { return d.t.Location() }

// Get extracts a single component.
func (d DateValue) Get(f Field) int {
	switch f {
	case FieldYear:
		return d.t.Year()
	case FieldMonth:
		return int(d.t.Month())
	default:
		return 0
	}
}

// Equal reports whether both values denote the same instant.
func (d DateValue) Equal(o DateValue) bool { return d.t.Equal(o.t) }

// String formats the value for logs.
func (d DateValue) String() string {
	if d.IsZero() {
		return "<none>"
	}
	return d.t.Format(time.RFC3339)
}

// With returns a copy of d with every component of p overwritten.
// Components are assigned first and the date is rebuilt once, so an intermediate
// year can never roll the month over. Out-of-range days follow time.Date
// normalization (Jan 31 patched to April becomes May 1).
func (d DateValue) With(p FieldPatch) DateValue {
	year, month, day := d.t.Date()
	hour, min, sec := d.t.Clock()
	for _, fv := range p {
		switch fv.Field {
		case FieldYear:
			year = fv.Value
		case FieldMonth:
			month = time.Month(fv.Value)
		}
	}
	return DateValue{t: time.Date(year, month, day, hour, min, sec, d.t.Nanosecond(), d.t.Location())}
}

// SetYear is shorthand for With(YearPatch(year)).
func (d DateValue) SetYear(year int) DateValue {
	return d.With(YearPatch(year))
}

package engine

// monthIndex orders dates by calendar month only.
func monthIndex(d DateValue) int {
	return d.Year()*12 + int(d.Month()) - 1
}

// DisableBefore disables every month strictly earlier than earliest's month.
// A zero earliest disables nothing.
func DisableBefore(earliest DateValue) DisabledFunc {
	return func(candidate, _ DateValue) bool {
		return !earliest.IsZero() && monthIndex(candidate) < monthIndex(earliest)
	}
}

// DisableAfter disables every month strictly later than latest's month.
func DisableAfter(latest DateValue) DisabledFunc {
	return func(candidate, _ DateValue) bool {
		return !latest.IsZero() && monthIndex(candidate) > monthIndex(latest)
	}
}

// AnyOf disables a candidate when any of fns does. Nil entries are skipped.
func AnyOf(fns ...DisabledFunc) DisabledFunc {
	return func(candidate, selected DateValue) bool {
		for _, fn := range fns {
			if fn != nil && fn(candidate, selected) {
				return true
			}
		}
		return false
	}
}

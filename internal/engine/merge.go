package engine

// Merge computes the value committed when a cell is activated.
// It starts from the previous selection so that day-of-month and time of day survive
// (picking March after Jan 15 yields Mar 15), falls back to the displayed anchor when
// nothing was selected yet, then overwrites the patched components in order.
func Merge(patch FieldPatch, previousAnchor, previousSelected DateValue) DateValue {
	base := previousSelected
	if base.IsZero() {
		base = previousAnchor
	}
	return base.With(patch)
}

package wcsv

// =============================================================================
// Record Bounds
// =============================================================================

// recordEnd returns the offset one past the current record: the start of the
// next record, or the end of the document for the last one.
func (r *Reader) recordEnd() int {
	if next := r.record + 1; next < len(r.lines) {
		return r.lines[next]
	}
	return len(r.doc)
}

// unitIn returns doc[p] when p lies before end, and NUL otherwise.
func unitIn(doc []uint16, p, end int) uint16 {
	if p >= end {
		return charNUL
	}
	return doc[p]
}

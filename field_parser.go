package wcsv

// =============================================================================
// Field Scanner State Machine
// =============================================================================
//
// Each call extracts one field, starting from the cursor:
//
//   BEFORE  ---(space, tab)-->        BEFORE   (skipped, not copied)
//   BEFORE  ---(quote)-->             QUOTED
//   BEFORE  ---(other)-->             PLAIN
//   QUOTED  ---(quote quote)-->       QUOTED   (one literal quote copied)
//   QUOTED  ---(lone quote)-->        BEFORE
//   PLAIN   ---(comma, \n, \r)-->     BEFORE
//   any     ---(comma)-->             DONE     (cursor moves past the comma)
//   any     ---(\n, \r, NUL, end)-->  DONE     (cursor moves to record end)
//
// QUOTED copies separators and line breaks verbatim. Because BEFORE is
// re-entered after a closing quote, text following it is appended to the
// same field.
//
// =============================================================================

// fieldSink collects the code units of one field.
type fieldSink struct {
	dst       []uint16
	n         int  // units stored
	limit     int  // max units stored in dst, or -1 to grow dst with append
	truncated bool // a unit was dropped because dst was full
}

func (s *fieldSink) put(c uint16) {
	switch {
	case s.limit < 0:
		s.dst = append(s.dst, c)
		s.n++
	case s.n < s.limit:
		s.dst[s.n] = c
		s.n++
	default:
		s.truncated = true
	}
}

// NextItem copies the next field of the current record into dst and advances
// the cursor past it.
//
// At most len(dst)-1 code units are copied, followed by a NUL terminator; n is
// the number copied. A longer field is truncated without error and reported
// by [Reader.Truncated]. ok is false, with nothing consumed, when the record
// has no more fields, the cursor is at end of file, or dst is empty.
//
// NextItem does not allocate.
func (r *Reader) NextItem(dst []uint16) (n int, ok bool) {
	r.truncated = false
	if r.pos < 0 || len(dst) == 0 {
		return 0, false
	}
	dst[0] = charNUL
	if r.pos >= r.recordEnd() {
		return 0, false
	}

	sink := fieldSink{dst: dst, limit: len(dst) - 1}
	r.scanField(&sink)
	dst[sink.n] = charNUL
	r.truncated = sink.truncated
	return sink.n, true
}

// scanField runs the state machine from the cursor to the end of one field,
// feeding its content to sink and moving the cursor.
func (r *Reader) scanField(sink *fieldSink) {
	end := r.recordEnd()
	p := r.pos
	for {
		c := unitIn(r.doc, p, end)
		switch {
		case c == charNUL || isLineBreak(c):
			r.pos = end
			return
		case c == charComma:
			r.pos = p + 1
			return
		case isWhitespace(c):
			p++
		case c == charQuote:
			p = copyQuoted(r.doc, p+1, end, sink)
		default:
			p = copyPlain(r.doc, p, end, sink)
		}
	}
}

// copyQuoted copies a quoted span starting after its opening quote, turning
// doubled quotes into one. It returns the position after the closing quote,
// or end if the span is not closed within the record.
func copyQuoted(doc []uint16, p, end int, sink *fieldSink) int {
	for ; p < end && doc[p] != charNUL; p++ {
		if doc[p] != charQuote {
			sink.put(doc[p])
			continue
		}
		p++
		if unitIn(doc, p, end) != charQuote {
			return p
		}
		sink.put(charQuote)
	}
	return p
}

// copyPlain copies unquoted text up to the next comma, line break or NUL.
func copyPlain(doc []uint16, p, end int, sink *fieldSink) int {
	for ; p < end; p++ {
		c := doc[p]
		if c == charNUL || c == charComma || isLineBreak(c) {
			break
		}
		sink.put(c)
	}
	return p
}

package wcsv

// avgRecordLenEstimate is the estimated code units per record, used to size
// the line index up front.
const avgRecordLenEstimate = 32

// scanLines builds the line index: the offset of every record start in doc,
// in increasing order.
//
// A record starts at the first character after a line break that is neither
// a line break nor, with ignoreComments, a '#' opening a comment line. Quoted
// spans are skipped whole so embedded line breaks do not split a record.
// Scanning stops at the first NUL.
func scanLines(doc []uint16, ignoreComments bool) []int {
	lines := make([]int, 0, len(doc)/avgRecordLenEstimate+1)
	newline := true

	for p := 0; p < len(doc) && doc[p] != charNUL; {
		c := doc[p]
		switch {
		case isLineBreak(c):
			p++
			newline = true
		case c == charComment && ignoreComments && newline:
			p = skipToLineFeed(doc, p)
		case c == charQuote:
			if newline {
				lines = append(lines, p)
				newline = false
			}
			p = skipQuotedSpan(doc, p+1)
		case newline:
			lines = append(lines, p)
			newline = false
			p++
		default:
			p++
		}
	}
	return lines
}

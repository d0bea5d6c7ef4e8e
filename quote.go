package wcsv

// Structural code units.
const (
	charNUL     = 0
	charTab     = '\t'
	charLF      = '\n'
	charCR      = '\r'
	charSpace   = ' '
	charQuote   = '"'
	charComma   = ','
	charComment = '#'
)

// =============================================================================
// Character Classes
// =============================================================================

// isWhitespace reports whether c is a space or tab.
func isWhitespace(c uint16) bool {
	return c == charSpace || c == charTab
}

// isLineBreak reports whether c is \n or \r. The two are independent
// separators; \r\n is not treated as a unit.
func isLineBreak(c uint16) bool {
	return c == charLF || c == charCR
}

// =============================================================================
// Quoted Span Skipping
// =============================================================================

// skipQuotedSpan returns the position just past the quote that closes the
// span starting at p (the position after the opening quote). A doubled quote
// is an escaped literal. An unclosed span runs to NUL or the end of doc.
func skipQuotedSpan(doc []uint16, p int) int {
	for p < len(doc) && doc[p] != charNUL {
		if doc[p] == charQuote {
			p++
			if unitIn(doc, p, len(doc)) != charQuote {
				return p
			}
		}
		p++
	}
	return p
}

// skipToLineFeed returns the position of the next \n at or after p, or the
// position of NUL or the end of doc. A lone \r does not end a comment.
func skipToLineFeed(doc []uint16, p int) int {
	for p < len(doc) && doc[p] != charNUL && doc[p] != charLF {
		p++
	}
	return p
}

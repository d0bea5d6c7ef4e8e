package wcsv

import (
	"iter"
	"unicode/utf16"
)

// =============================================================================
// Record Building - string views over the cursor
// =============================================================================

// NextField returns the next field of the current record as a string and
// advances the cursor past it. Unlike NextItem it never truncates. Unpaired
// surrogates decode to U+FFFD. ok is false when the record has no more
// fields or the cursor is at end of file.
func (r *Reader) NextField() (field string, ok bool) {
	r.truncated = false
	if r.pos < 0 || r.pos >= r.recordEnd() {
		return "", false
	}

	sink := fieldSink{dst: r.scratch[:0], limit: -1}
	r.scanField(&sink)
	r.scratch = sink.dst[:0]
	return string(utf16.Decode(sink.dst)), true
}

// Record returns the remaining fields of the current record. The cursor
// stays on the record; call NextRecord to move on.
func (r *Reader) Record() []string {
	var record []string
	for {
		field, ok := r.NextField()
		if !ok {
			return record
		}
		record = append(record, field)
	}
}

// ReadAll rewinds to the top of the file and returns every record. The
// cursor is left at end of file.
func (r *Reader) ReadAll() [][]string {
	records := make([][]string, 0, len(r.lines))
	for _, record := range r.Records() {
		records = append(records, record)
	}
	return records
}

// Records rewinds to the top of the file and yields each record with its
// index. The loop body must not move the cursor.
func (r *Reader) Records() iter.Seq2[int, []string] {
	return func(yield func(int, []string) bool) {
		r.TopOfFile()
		for !r.EndOfFile() {
			if !yield(r.record, r.Record()) {
				return
			}
			r.NextRecord()
		}
	}
}

// Package wcsv reads comma-separated value documents into memory as UTF-16
// code units and walks them with a forward-only, two-level cursor: records,
// then the fields within the current record.
//
// The whole document is read and decoded when the [Reader] is created, and a
// line index of record starts is built in the same pass. Iteration afterwards
// does no I/O and, through [Reader.NextItem], no allocation.
//
// The dialect is lenient: fields are separated by ',', records by '\n' or
// '\r', double quotes protect embedded separators and line breaks, and a
// doubled quote inside quotes is a literal quote. Unbalanced quotes are not an
// error; the field simply runs to the end of its record.
package wcsv

import (
	"errors"
	"math"
)

// ReaderOptions configures how a document is loaded.
// The zero value reads UTF-8, keeps comment lines and uses DefaultMaxInputSize.
type ReaderOptions struct {
	Encoding       Encoding // How file bytes map to code units
	IgnoreComments bool     // Drop lines whose first character is '#' from the line index
	SkipBOM        bool     // Drop a leading U+FEFF after decoding
	MaxInputSize   int64    // Size ceiling in bytes; <= 0 means DefaultMaxInputSize
}

// maxInputSize returns the effective ceiling. It never exceeds math.MaxInt,
// so any accepted size fits in an int.
func (o ReaderOptions) maxInputSize() int64 {
	if o.MaxInputSize <= 0 {
		return DefaultMaxInputSize
	}
	return min(o.MaxInputSize, math.MaxInt)
}

// Reader holds a decoded document and a cursor over its records.
//
// A Reader is not safe for concurrent use. Use one Reader per goroutine, or
// serialize access externally.
type Reader struct {
	doc   []uint16 // decoded document
	lines []int    // offset of each record start in doc

	record    int  // current record index
	pos       int  // offset of the next field in doc, -1 once past the last record
	truncated bool // last NextItem dropped code units

	scratch []uint16 // reused by NextField
}

// Open loads the file at path and returns a Reader positioned at the first
// record. It is shorthand for [OpenWithOptions] with only the encoding and
// comment handling set.
func Open(path string, enc Encoding, ignoreComments bool) (*Reader, error) {
	return OpenWithOptions(path, ReaderOptions{Encoding: enc, IgnoreComments: ignoreComments})
}

// OpenWithOptions loads the file at path and returns a Reader positioned at the
// first record.
//
// The returned error is a *[LoadError] matching [ErrIO] when the file cannot be
// opened, sized or fully read, [ErrInputTooLarge] when it is larger than the
// configured ceiling, and [ErrEncoding] when UTF-8 input is malformed.
func OpenWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	if path == "" {
		return nil, ioError("open", path, errors.New("empty path"))
	}

	var doc []uint16
	err := readFile(path, opts.maxInputSize(), func(data []byte) error {
		var err error
		doc, err = decodeDocument(data, opts.Encoding, path)
		return err
	})
	if err != nil {
		Logger().Debug("wcsv: load failed", "path", path, "error", err)
		return nil, err
	}

	r := newReader(doc, opts)
	Logger().Debug("wcsv: loaded",
		"path", path,
		"encoding", opts.Encoding.String(),
		"units", len(r.doc),
		"records", len(r.lines))
	return r, nil
}

// NewReaderBytes decodes data and returns a Reader positioned at the first
// record. data is not retained. Errors are as for [OpenWithOptions], without
// the I/O cases.
func NewReaderBytes(data []byte, opts ReaderOptions) (*Reader, error) {
	if limit := opts.maxInputSize(); int64(len(data)) > limit {
		return nil, sizeError("load", "", int64(len(data)), limit)
	}
	doc, err := decodeDocument(data, opts.Encoding, "")
	if err != nil {
		return nil, err
	}
	return newReader(doc, opts), nil
}

func newReader(doc []uint16, opts ReaderOptions) *Reader {
	if opts.SkipBOM && len(doc) > 0 && doc[0] == byteOrderMark {
		doc = doc[1:]
	}
	r := &Reader{
		doc:   doc,
		lines: scanLines(doc, opts.IgnoreComments),
	}
	r.TopOfFile()
	return r
}

// RecordCount returns the number of records in the document.
func (r *Reader) RecordCount() int {
	return len(r.lines)
}

// EndOfFile reports whether the cursor has moved past the last record.
// It is true immediately for a document without records.
func (r *Reader) EndOfFile() bool {
	return r.pos < 0
}

// RecordIndex returns the 0-based index of the current record.
func (r *Reader) RecordIndex() int {
	return r.record
}

// TopOfFile moves the cursor back to the first field of the first record.
func (r *Reader) TopOfFile() {
	r.record = 0
	r.truncated = false
	if len(r.lines) == 0 {
		r.pos = -1
		return
	}
	r.pos = r.lines[0]
}

// NextRecord moves the cursor to the first field of the next record. It
// returns false, and leaves the cursor at end of file, when no record remains.
func (r *Reader) NextRecord() bool {
	if r.pos < 0 {
		return false
	}
	r.record++
	if r.record >= len(r.lines) {
		r.pos = -1
		return false
	}
	r.pos = r.lines[r.record]
	return true
}

// Truncated reports whether the most recent call to NextItem dropped code
// units because the destination was too small.
func (r *Reader) Truncated() bool {
	return r.truncated
}

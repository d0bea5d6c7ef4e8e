package wcsv

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Writer writes records in the dialect read by [Reader].
//
// As returned by NewWriter, a Writer writes UTF-8 records terminated by a
// newline. The exported fields can be changed to customize the details before
// the first call to Write, WriteAll or WriteComment.
//
// Fields are quoted only when reading them back would otherwise change them:
// when they contain a comma, quote or line break, start with a space or tab,
// or (as a record's first field) start with '#'. A record consisting of one
// empty field is written as "" so that it is not read as a blank line.
//
// The writes of individual records are buffered. After all data has been
// written, the client should call Flush and check its error.
type Writer struct {
	UseCRLF  bool     // True to end lines with \r\n instead of \n
	Encoding Encoding // Output encoding; UTF16 writes little-endian code units without a BOM

	out io.Writer
	w   *bufio.Writer
	err error
}

// NewWriter returns a new Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// buffer returns the buffered writer, creating it on first use so that
// Encoding can be set after NewWriter.
func (w *Writer) buffer() *bufio.Writer {
	if w.w == nil {
		dst := w.out
		if w.Encoding == UTF16 {
			dst = transform.NewWriter(w.out, utf16LE.NewEncoder())
		}
		w.w = bufio.NewWriter(dst)
	}
	return w.w
}

// Write writes a single record along with any necessary quoting.
// Records that cannot be read back are rejected and nothing is written for
// them: an empty record fails with ErrEmptyRecord, a field containing NUL
// with ErrNULField, and a field that is not valid UTF-8 with ErrEncoding.
func (w *Writer) Write(record []string) error {
	if w.err != nil {
		return w.err
	}
	if len(record) == 0 {
		return ErrEmptyRecord
	}
	for _, field := range record {
		if err := checkText(field); err != nil {
			return err
		}
	}

	b := w.buffer()
	for i, field := range record {
		if i > 0 {
			if w.err = b.WriteByte(charComma); w.err != nil {
				return w.err
			}
		}
		if w.err = w.writeField(field, i == 0, len(record) == 1); w.err != nil {
			return w.err
		}
	}
	return w.writeLineEnding()
}

// WriteComment writes text as a '#' comment line. Readers created with
// IgnoreComments skip it. text must not contain a line break.
func (w *Writer) WriteComment(text string) error {
	if w.err != nil {
		return w.err
	}
	if strings.ContainsAny(text, "\r\n") {
		return ErrLineBreakInComment
	}
	if err := checkText(text); err != nil {
		return err
	}

	b := w.buffer()
	if w.err = b.WriteByte(charComment); w.err != nil {
		return w.err
	}
	if _, w.err = b.WriteString(text); w.err != nil {
		return w.err
	}
	return w.writeLineEnding()
}

// WriteAll writes multiple records using Write and then calls Flush.
func (w *Writer) WriteAll(records [][]string) error {
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.buffer().Flush()
	return w.err
}

// Error reports any error that has occurred during a previous Write or Flush.
func (w *Writer) Error() error {
	return w.err
}

// checkText reports why s cannot be written and read back unchanged.
func checkText(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return ErrNULField
	}
	if !utf8.ValidString(s) {
		return ErrEncoding
	}
	return nil
}

// writeField writes a single field, quoting if necessary.
func (w *Writer) writeField(field string, first, only bool) error {
	if fieldNeedsQuotes(field, first, only) {
		return w.writeQuotedField(field)
	}
	_, err := w.w.WriteString(field)
	return err
}

// writeLineEnding writes the appropriate line ending.
func (w *Writer) writeLineEnding() error {
	if w.UseCRLF {
		_, w.err = w.w.WriteString("\r\n")
	} else {
		w.err = w.w.WriteByte(charLF)
	}
	return w.err
}

// fieldNeedsQuotes reports whether field must be quoted to read back unchanged.
func fieldNeedsQuotes(field string, first, only bool) bool {
	if field == "" {
		return only
	}
	if field[0] == charSpace || field[0] == charTab {
		return true
	}
	if first && field[0] == charComment {
		return true
	}
	return strings.ContainsAny(field, ",\"\r\n")
}

// writeQuotedField writes field between quotes, doubling embedded quotes.
func (w *Writer) writeQuotedField(field string) error {
	if err := w.w.WriteByte(charQuote); err != nil {
		return err
	}
	for {
		i := strings.IndexByte(field, charQuote)
		if i < 0 {
			break
		}
		if _, err := w.w.WriteString(field[:i+1]); err != nil {
			return err
		}
		if err := w.w.WriteByte(charQuote); err != nil {
			return err
		}
		field = field[i+1:]
	}
	if _, err := w.w.WriteString(field); err != nil {
		return err
	}
	return w.w.WriteByte(charQuote)
}

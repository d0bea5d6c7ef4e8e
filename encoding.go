package wcsv

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Encoding selects how the bytes of a document are turned into UTF-16 code units.
type Encoding int

const (
	// UTF8 transcodes the file from UTF-8. It is the zero value.
	UTF8 Encoding = iota
	// UTF16 uses the file bytes directly as little-endian UTF-16 code units.
	UTF16
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16LE"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// byteOrderMark is U+FEFF as a single UTF-16 code unit.
const byteOrderMark = 0xFEFF

// utf16LE is the in-memory form of every document. No BOM is written or expected.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

var errInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// decodeDocument converts raw file bytes into code units. The result never
// aliases raw. UTF-8 input is validated and converted only up to its first
// NUL, which is kept as the last unit.
func decodeDocument(raw []byte, enc Encoding, path string) ([]uint16, error) {
	switch enc {
	case UTF16:
		return unitsFromUTF16LE(raw), nil
	case UTF8:
		// Nothing past a NUL is ever scanned, so the text ends there.
		text, terminated := raw, false
		if i := bytes.IndexByte(raw, 0); i >= 0 {
			text, terminated = raw[:i], true
		}
		if !utf8.Valid(text) {
			return nil, encodingError(path, int64(invalidUTF8Offset(text)), errInvalidUTF8)
		}
		b, err := utf16LE.NewEncoder().Bytes(text)
		if err != nil {
			return nil, encodingError(path, -1, err)
		}
		units := unitsFromUTF16LE(b)
		if terminated {
			units = append(units, charNUL)
		}
		return units, nil
	default:
		return nil, encodingError(path, -1, fmt.Errorf("unsupported encoding %v", enc))
	}
}

// unitsFromUTF16LE reinterprets b as little-endian code units. An odd trailing
// byte becomes a final unit with a zero high byte.
func unitsFromUTF16LE(b []byte) []uint16 {
	units := make([]uint16, (len(b)+1)/2)
	for i := range units {
		lo := uint16(b[2*i])
		if 2*i+1 < len(b) {
			units[i] = lo | uint16(b[2*i+1])<<8
		} else {
			units[i] = lo
		}
	}
	return units
}

// invalidUTF8Offset returns the offset of the first byte that does not start
// a valid UTF-8 sequence, or -1 if b is valid.
func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

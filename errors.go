package wcsv

import (
	"errors"
	"fmt"
)

// Error kinds reported by [Open], [OpenWithOptions] and [NewReaderBytes].
// A *[LoadError] matches exactly one of them with [errors.Is].
var (
	ErrIO            = errors.New("i/o failure")
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrEncoding      = errors.New("invalid text encoding")
)

// Errors returned by [Writer]. It also returns [ErrEncoding] for text that
// is not valid UTF-8.
var (
	ErrEmptyRecord        = errors.New("record has no fields")
	ErrNULField           = errors.New("field contains NUL character")
	ErrLineBreakInComment = errors.New("comment contains line break")
)

// DefaultMaxInputSize is the largest document accepted by default, in bytes.
// The document plus a two byte terminator must fit in a signed 32-bit length,
// so files of 2 GiB (minus the terminator) or more are rejected.
const DefaultMaxInputSize = 1<<31 - 3

// LoadError describes a failure to construct a [Reader].
type LoadError struct {
	Op     string // Operation that failed: "open", "stat", "read", "decode", "load"
	Path   string // File path, empty for in-memory input
	Offset int64  // Byte offset of the failure for decode errors, else -1
	Kind   error  // One of ErrIO, ErrInputTooLarge, ErrEncoding
	Err    error  // Underlying cause, may be nil
}

// Error returns a formatted message including the path and operation.
func (e *LoadError) Error() string {
	msg := e.Kind.Error()
	if e.Err != nil {
		msg = fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at byte %d", msg, e.Offset)
	}
	if e.Path == "" {
		return fmt.Sprintf("wcsv: %s: %s", e.Op, msg)
	}
	return fmt.Sprintf("wcsv: %s %s: %s", e.Op, e.Path, msg)
}

// Unwrap returns both the error kind and the underlying cause, so that
// errors.Is works against either.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ioError(op, path string, err error) *LoadError {
	return &LoadError{Op: op, Path: path, Offset: -1, Kind: ErrIO, Err: err}
}

func sizeError(op, path string, size, limit int64) *LoadError {
	return &LoadError{
		Op:     op,
		Path:   path,
		Offset: -1,
		Kind:   ErrInputTooLarge,
		Err:    fmt.Errorf("size %d exceeds limit %d", size, limit),
	}
}

func encodingError(path string, offset int64, err error) *LoadError {
	return &LoadError{Op: "decode", Path: path, Offset: offset, Kind: ErrEncoding, Err: err}
}

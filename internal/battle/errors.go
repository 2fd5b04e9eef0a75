package battle

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is returned when a buffer or a sequence of structures
	// does not have the length the layout requires.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrFormat is returned when a record could not be read from its buffer.
	ErrFormat = errors.New("malformed record")

	// ErrValueOutOfRange is returned when a value cannot be represented on
	// the other side of the packed/semantic boundary.
	ErrValueOutOfRange = errors.New("value out of range")
)

// SizeError describes a length check that failed before any decoding or
// encoding took place.
type SizeError struct {
	What     string
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %s: expected %d, got %d", ErrSizeMismatch, e.What, e.Expected, e.Actual)
}

func (e *SizeError) Unwrap() error {
	return ErrSizeMismatch
}

// FormatError wraps the reader error raised while decoding a record.
type FormatError struct {
	Offset int
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s at offset %d: %v", ErrFormat, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// RangeError reports a field value that does not fit the range allowed by
// the layout. Slot is -1 for fields that do not belong to an enemy.
type RangeError struct {
	Field string
	Slot  int
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	field := e.Field
	if e.Slot >= 0 {
		field = fmt.Sprintf("enemies[%d].%s", e.Slot, e.Field)
	}
	return fmt.Sprintf("%s: %s = %d, allowed %d..%d", ErrValueOutOfRange, field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrValueOutOfRange
}

// RecordError attaches the index of a record inside a scene to the error
// that made the whole scene fail.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

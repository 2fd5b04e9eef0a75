// Package battle converts the battle structures of scene files between their
// packed on-disk layout and an editable representation.
package battle

import (
	"errors"
	"fmt"

	"github.com/dcrodman/kyactus/internal/core/bytes"
)

// RecordSize is the size of one battle structure in a scene file.
const RecordSize = 128

// PackedRecord mirrors the on-disk layout of a battle structure field for
// field. Every field is read and written little endian in declaration order
// with no padding, so the order of the fields below is the file format.
type PackedRecord struct {
	StageID              uint8
	Flags                uint8
	MainCamera           uint8
	SecondaryCamera      uint8
	NotVisibleEnemies    uint8
	NotLoadedEnemies     uint8
	NotTargetableEnemies uint8
	EnabledEnemies       uint8
	EnemyCoords          [NumEnemies]Coordinate
	EnemyIDs             [NumEnemies]uint8
	Unknown1             [NumEnemies]uint16
	Unknown2             [NumEnemies]uint16
	Unknown3             [NumEnemies]uint16
	Unknown4             [NumEnemies]uint8
	EnemyLevels          [NumEnemies]uint8
}

// DecodePacked reads a PackedRecord from the first RecordSize bytes of b.
// The returned record holds copies of the bytes; b is not retained.
func DecodePacked(b []byte) (PackedRecord, error) {
	if len(b) < RecordSize {
		return PackedRecord{}, &SizeError{What: "battle structure", Expected: RecordSize, Actual: len(b)}
	}

	var p PackedRecord
	if err := bytes.StructFromBytes(b[:RecordSize], &p); err != nil {
		var fieldErr *bytes.FieldError
		if errors.As(err, &fieldErr) {
			return PackedRecord{}, &FormatError{Offset: fieldErr.Offset, Err: err}
		}
		return PackedRecord{}, &FormatError{Err: err}
	}
	return p, nil
}

// Bytes returns the RecordSize bytes of p's on-disk form.
func (p PackedRecord) Bytes() ([]byte, error) {
	b, n, err := bytes.BytesFromStruct(p)
	if err != nil {
		return nil, fmt.Errorf("encoding battle structure: %w", err)
	}
	if n != RecordSize {
		return nil, &SizeError{What: "encoded battle structure", Expected: RecordSize, Actual: n}
	}
	return b, nil
}

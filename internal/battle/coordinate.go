package battle

import "encoding/binary"

// CoordinateSize is the number of bytes a Coordinate occupies on disk.
const CoordinateSize = 6

// Coordinate is the position of an enemy on the battle stage.
type Coordinate struct {
	X int16 `json:"x" yaml:"x"`
	Y int16 `json:"y" yaml:"y"`
	Z int16 `json:"z" yaml:"z"`
}

// DecodeCoordinate reads x, y and z from the first six bytes of b.
func DecodeCoordinate(b []byte) (Coordinate, error) {
	if len(b) < CoordinateSize {
		return Coordinate{}, &SizeError{What: "coordinate", Expected: CoordinateSize, Actual: len(b)}
	}
	return Coordinate{
		X: int16(binary.LittleEndian.Uint16(b[0:])),
		Y: int16(binary.LittleEndian.Uint16(b[2:])),
		Z: int16(binary.LittleEndian.Uint16(b[4:])),
	}, nil
}

// Bytes returns the on-disk form of c.
func (c Coordinate) Bytes() [CoordinateSize]byte {
	var b [CoordinateSize]byte
	binary.LittleEndian.PutUint16(b[0:], uint16(c.X))
	binary.LittleEndian.PutUint16(b[2:], uint16(c.Y))
	binary.LittleEndian.PutUint16(b[4:], uint16(c.Z))
	return b
}

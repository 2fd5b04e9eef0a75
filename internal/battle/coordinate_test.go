package battle

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    Coordinate
		wantErr error
	}{
		{
			name: "positive and negative values",
			data: []byte{0x4c, 0x04, 0x00, 0x00, 0x1c, 0xf3},
			want: Coordinate{X: 1100, Y: 0, Z: -3300},
		},
		{
			name: "extremes",
			data: []byte{0x00, 0x80, 0xff, 0x7f, 0xff, 0xff},
			want: Coordinate{X: -32768, Y: 32767, Z: -1},
		},
		{
			name: "ignores trailing bytes",
			data: []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0xaa},
			want: Coordinate{X: 1, Y: 2, Z: 3},
		},
		{
			name:    "too short",
			data:    []byte{0x01, 0x00, 0x02, 0x00, 0x03},
			wantErr: ErrSizeMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCoordinate(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DecodeCoordinate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeCoordinate() did not match expected, diff:\n%s", diff)
			}
		})
	}
}

func TestCoordinate_Bytes(t *testing.T) {
	c := Coordinate{X: -100, Y: 0, Z: -5700}
	want := [CoordinateSize]byte{0x9c, 0xff, 0x00, 0x00, 0xbc, 0xe9}
	if got := c.Bytes(); got != want {
		t.Errorf("Bytes() = % x, want % x", got, want)
	}

	back, err := DecodeCoordinate(want[:])
	if err != nil {
		t.Fatalf("DecodeCoordinate() returned an error: %v", err)
	}
	if back != c {
		t.Errorf("DecodeCoordinate(Bytes()) = %+v, want %+v", back, c)
	}
}

package battle

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlagsFromByte_BitOrder(t *testing.T) {
	tests := []struct {
		b    byte
		want BattleFlags
	}{
		{0x01, BattleFlags{CannotEscape: true}},
		{0x02, BattleFlags{DisableWinFanfare: true}},
		{0x04, BattleFlags{ShowTimer: true}},
		{0x08, BattleFlags{NoExp: true}},
		{0x10, BattleFlags{DisableExpScreen: true}},
		{0x20, BattleFlags{ForceSurpriseAttack: true}},
		{0x40, BattleFlags{ForceBackAttack: true}},
		{0x80, BattleFlags{ScriptedBattle: true}},
		{0x81, BattleFlags{CannotEscape: true, ScriptedBattle: true}},
		{0x00, BattleFlags{}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, FlagsFromByte(tt.b)); diff != "" {
			t.Errorf("FlagsFromByte(%#02x) did not match expected, diff:\n%s", tt.b, diff)
		}
		if got := tt.want.Byte(); got != tt.b {
			t.Errorf("Byte() = %#02x, want %#02x", got, tt.b)
		}
	}
}

func TestFlags_RoundTrip(t *testing.T) {
	for i := 0; i <= 0xff; i++ {
		if got := FlagsFromByte(byte(i)).Byte(); got != byte(i) {
			t.Fatalf("FlagsFromByte(%#02x).Byte() = %#02x", i, got)
		}
	}
}

func TestCameraFromByte(t *testing.T) {
	tests := []struct {
		b    byte
		want CameraAttributes
	}{
		{0x13, CameraAttributes{Number: 1, Animation: 3}},
		{0x00, CameraAttributes{}},
		{0x37, CameraAttributes{Number: 3, Animation: 7}},
		{0xff, CameraAttributes{Number: 15, Animation: 15}},
	}
	for _, tt := range tests {
		got := CameraFromByte(tt.b)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("CameraFromByte(%#02x) did not match expected, diff:\n%s", tt.b, diff)
		}

		b, err := got.Byte("main_camera")
		if err != nil {
			t.Fatalf("Byte() returned an error: %v", err)
		}
		if b != tt.b {
			t.Errorf("Byte() = %#02x, want %#02x", b, tt.b)
		}
	}
}

func TestCameraAttributes_ByteOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		camera    CameraAttributes
		wantField string
	}{
		{
			name:      "number above a nibble",
			camera:    CameraAttributes{Number: 16},
			wantField: "main_camera.number",
		},
		{
			name:      "animation above a nibble",
			camera:    CameraAttributes{Number: 1, Animation: 0x20},
			wantField: "main_camera.animation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.camera.Byte("main_camera")
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("Byte() error = %v, want a *RangeError", err)
			}
			if rangeErr.Field != tt.wantField {
				t.Errorf("RangeError.Field = %s, want %s", rangeErr.Field, tt.wantField)
			}
			if !errors.Is(err, ErrValueOutOfRange) {
				t.Errorf("expected error to match ErrValueOutOfRange")
			}
		})
	}
}

package battle

import (
	"errors"
	"testing"

	"github.com/go-test/deep"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeOne(t *testing.T) {
	got, err := DecodeOne(encounterBytes(t))
	if err != nil {
		t.Fatalf("DecodeOne() returned an error: %v", err)
	}

	if diff := cmp.Diff(encounterStructure(), got); diff != "" {
		t.Errorf("battle structure did not match expected, diff:\n%s", diff)
	}

	if got.StageID != 6 {
		t.Errorf("StageID = %d, want 6", got.StageID)
	}
	if !got.Flags.CannotEscape || !got.Flags.ScriptedBattle {
		t.Errorf("expected CannotEscape and ScriptedBattle, got %+v", got.Flags)
	}
	if got.MainCamera != (CameraAttributes{}) {
		t.Errorf("MainCamera = %+v, want zero", got.MainCamera)
	}
	if enemy := got.Enemies[0]; enemy.ID != 71 || !enemy.Enabled {
		t.Errorf("Enemies[0] = %+v, want id 71 and enabled", enemy)
	}
	for slot := 1; slot < NumEnemies; slot++ {
		if got.Enemies[slot].Enabled {
			t.Errorf("Enemies[%d] should be disabled", slot)
		}
	}
}

func TestEncodeOne_RoundTrip(t *testing.T) {
	original := encounterBytes(t)

	bs, err := DecodeOne(original)
	if err != nil {
		t.Fatalf("DecodeOne() returned an error: %v", err)
	}
	encoded, err := EncodeOne(bs)
	if err != nil {
		t.Fatalf("EncodeOne() returned an error: %v", err)
	}
	if len(encoded) != RecordSize {
		t.Fatalf("EncodeOne() returned %d bytes, want %d", len(encoded), RecordSize)
	}
	if diff := cmp.Diff(original, encoded); diff != "" {
		t.Errorf("expected encoded record to match original. diff:\n%s", diff)
	}
}

func TestSemanticRoundTrip(t *testing.T) {
	bs := BattleStructure{
		StageID: 0xa2,
		Flags: BattleFlags{
			ShowTimer:           true,
			NoExp:               true,
			ForceSurpriseAttack: true,
		},
		MainCamera:      CameraAttributes{Number: 3, Animation: 7},
		SecondaryCamera: CameraAttributes{Number: 15, Animation: 15},
	}
	for slot := range bs.Enemies {
		bs.Enemies[slot] = Enemy{
			ID:           uint8(slot * 0x22),
			Level:        uint8(100 + slot),
			Enabled:      slot%2 == 0,
			Invisible:    slot%3 == 0,
			NotLoaded:    slot == 7,
			Untargetable: slot < 4,
			Coordinate:   Coordinate{X: int16(-1000 * slot), Y: int16(slot), Z: 32767},
			Unknown1:     uint16(0x1000 + slot),
			Unknown2:     0xffff,
			Unknown3:     uint16(slot),
			Unknown4:     uint8(0xf0 + slot),
		}
	}
	bs.Enemies[7].ID = MaxEnemyID

	encoded, err := EncodeOne(bs)
	if err != nil {
		t.Fatalf("EncodeOne() returned an error: %v", err)
	}
	got, err := DecodeOne(encoded)
	if err != nil {
		t.Fatalf("DecodeOne() returned an error: %v", err)
	}
	if diff := deep.Equal(bs, got); diff != nil {
		t.Error(diff)
	}
}

func TestEnemyIDOffset(t *testing.T) {
	p := PackedRecord{}
	for slot := range p.EnemyIDs {
		p.EnemyIDs[slot] = EnemyIDOffset
	}
	p.EnemyIDs[0] = 0x47

	bs, err := Expand(p)
	if err != nil {
		t.Fatalf("Expand() returned an error: %v", err)
	}
	if bs.Enemies[0].ID != 55 {
		t.Errorf("Enemies[0].ID = %d, want 55", bs.Enemies[0].ID)
	}

	bs.Enemies[0].ID = 55
	collapsed, err := Collapse(bs)
	if err != nil {
		t.Fatalf("Collapse() returned an error: %v", err)
	}
	if collapsed.EnemyIDs[0] != 0x47 {
		t.Errorf("EnemyIDs[0] = %#02x, want 0x47", collapsed.EnemyIDs[0])
	}

	raw, err := bs.Enemies[0].RawID()
	if err != nil || raw != 0x47 {
		t.Errorf("RawID() = %#02x, %v, want 0x47", raw, err)
	}
}

func TestExpand_RawIDBelowOffset(t *testing.T) {
	p := PackedRecord{}
	for slot := range p.EnemyIDs {
		p.EnemyIDs[slot] = EnemyIDOffset
	}
	p.EnemyIDs[3] = 0x0f

	_, err := Expand(p)
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Expand() error = %v, want a *RangeError", err)
	}
	if rangeErr.Slot != 3 || rangeErr.Value != 0x0f {
		t.Errorf("RangeError = %+v, want slot 3 value 0x0f", rangeErr)
	}
	if !errors.Is(err, ErrValueOutOfRange) {
		t.Error("expected error to match ErrValueOutOfRange")
	}
}

func TestCollapse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(bs *BattleStructure)
		wantField string
		wantSlot  int
	}{
		{
			name:      "enemy id overflows the raw byte",
			modify:    func(bs *BattleStructure) { bs.Enemies[5].ID = MaxEnemyID + 1 },
			wantField: "id",
			wantSlot:  5,
		},
		{
			name:      "main camera number above a nibble",
			modify:    func(bs *BattleStructure) { bs.MainCamera.Number = 0x10 },
			wantField: "main_camera.number",
			wantSlot:  -1,
		},
		{
			name:      "secondary camera animation above a nibble",
			modify:    func(bs *BattleStructure) { bs.SecondaryCamera.Animation = 0xff },
			wantField: "secondary_camera.animation",
			wantSlot:  -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := encounterStructure()
			tt.modify(&bs)

			_, err := Collapse(bs)
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("Collapse() error = %v, want a *RangeError", err)
			}
			if rangeErr.Field != tt.wantField || rangeErr.Slot != tt.wantSlot {
				t.Errorf("RangeError = %+v, want field %s slot %d", rangeErr, tt.wantField, tt.wantSlot)
			}

			if b, err := EncodeOne(bs); err == nil || b != nil {
				t.Errorf("EncodeOne() = %v, %v, want no bytes and an error", b, err)
			}
		})
	}
}

func TestCollapse_EnemyMasks(t *testing.T) {
	bs := encounterStructure()
	bs.Enemies[0].Enabled = false
	bs.Enemies[1].Enabled = true
	bs.Enemies[7].Invisible = true
	bs.Enemies[6].NotLoaded = true
	bs.Enemies[0].Untargetable = true

	p, err := Collapse(bs)
	if err != nil {
		t.Fatalf("Collapse() returned an error: %v", err)
	}

	masks := []struct {
		name string
		got  byte
		want byte
	}{
		{"enabled", p.EnabledEnemies, 0x40},
		{"not visible", p.NotVisibleEnemies, 0x01},
		{"not loaded", p.NotLoadedEnemies, 0x02},
		{"not targetable", p.NotTargetableEnemies, 0x80},
	}
	for _, m := range masks {
		if m.got != m.want {
			t.Errorf("%s mask = %#02x, want %#02x", m.name, m.got, m.want)
		}
	}
}

func TestDecodeOne_DoesNotAlias(t *testing.T) {
	b := encounterBytes(t)
	bs, err := DecodeOne(b)
	if err != nil {
		t.Fatalf("DecodeOne() returned an error: %v", err)
	}

	bs.Enemies[0].Coordinate.X = 1
	bs.StageID = 0x20
	if b[0] != 0x06 || b[8] != 0x4c {
		t.Error("modifying the decoded structure changed the source buffer")
	}
}

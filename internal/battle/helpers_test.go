package battle

import (
	"encoding/hex"
	"strings"
	"testing"
)

// Encounter with a single enabled enemy (id 0x47) on stage 6 that cannot be
// escaped and is scripted.
const encounterHex = `
0681 0013 0000 0080 4c04 0000 1cf3 9cff
0000 bce9 9001 0000 bce9 74f5 0000 bce9
5cf9 0000 bce9 a8fd 0000 bce9 68f7 0000
bce9 50fb 0000 bce9 5710 1010 1010 1010
707f c800 c800 c800 c800 c800 c800 c800
1701 c800 c800 c800 c800 c800 c800 c800
9004 60ea 60ea 60ea 60ea 60ea 60ea 60ea
0102 0202 0202 0202 ffff ffff ffff ffff`

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		t.Fatalf("error decoding hex fixture: %v", err)
	}
	return b
}

func encounterBytes(t *testing.T) []byte {
	t.Helper()
	b := fromHex(t, encounterHex)
	if len(b) != RecordSize {
		t.Fatalf("fixture is %d bytes, want %d", len(b), RecordSize)
	}
	return b
}

// encounterStructure is the expanded form of encounterHex.
func encounterStructure() BattleStructure {
	xs := [NumEnemies]int16{1100, -100, 400, -2700, -1700, -600, -2200, -1200}
	zs := [NumEnemies]int16{-3300, -5700, -5700, -5700, -5700, -5700, -5700, -5700}

	bs := BattleStructure{
		StageID: 6,
		Flags: BattleFlags{
			CannotEscape:   true,
			ScriptedBattle: true,
		},
		MainCamera:      CameraAttributes{Number: 0, Animation: 0},
		SecondaryCamera: CameraAttributes{Number: 1, Animation: 3},
	}
	for slot := range bs.Enemies {
		bs.Enemies[slot] = Enemy{
			ID:         0,
			Level:      0xff,
			Coordinate: Coordinate{X: xs[slot], Z: zs[slot]},
			Unknown1:   0x00c8,
			Unknown2:   0x00c8,
			Unknown3:   0xea60,
			Unknown4:   0x02,
		}
	}
	bs.Enemies[0].ID = 0x47
	bs.Enemies[0].Enabled = true
	bs.Enemies[0].Unknown1 = 0x7f70
	bs.Enemies[0].Unknown2 = 0x0117
	bs.Enemies[0].Unknown3 = 0x0490
	bs.Enemies[0].Unknown4 = 0x01
	return bs
}

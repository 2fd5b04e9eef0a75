package battle

// EnemyIDOffset is added to an enemy id when it is stored in a battle
// structure.
const EnemyIDOffset = 0x10

// MaxEnemyID is the largest enemy id that survives the offset.
const MaxEnemyID = 0xFF - EnemyIDOffset

// Enemy is the state of one enemy slot.
type Enemy struct {
	ID           uint8      `json:"id" yaml:"id"`
	Level        uint8      `json:"level" yaml:"level"`
	Enabled      bool       `json:"enabled" yaml:"enabled"`
	Invisible    bool       `json:"invisible" yaml:"invisible"`
	NotLoaded    bool       `json:"not_loaded" yaml:"not_loaded"`
	Untargetable bool       `json:"untargetable" yaml:"untargetable"`
	Coordinate   Coordinate `json:"coordinate" yaml:"coordinate"`
	Unknown1     uint16     `json:"unknown_1" yaml:"unknown_1"`
	Unknown2     uint16     `json:"unknown_2" yaml:"unknown_2"`
	Unknown3     uint16     `json:"unknown_3" yaml:"unknown_3"`
	Unknown4     uint8      `json:"unknown_4" yaml:"unknown_4"`
}

// RawID returns the id byte as stored in the file.
func (e Enemy) RawID() (uint8, error) {
	return rawEnemyID(e.ID, -1)
}

// BattleStructure is one encounter: the stage it is fought on, its flags,
// the two cameras and the eight enemy slots.
type BattleStructure struct {
	StageID         uint8             `json:"stage_id" yaml:"stage_id"`
	Flags           BattleFlags       `json:"flags" yaml:"flags"`
	MainCamera      CameraAttributes  `json:"main_camera" yaml:"main_camera"`
	SecondaryCamera CameraAttributes  `json:"secondary_camera" yaml:"secondary_camera"`
	Enemies         [NumEnemies]Enemy `json:"enemies" yaml:"enemies"`
}

func rawEnemyID(id uint8, slot int) (uint8, error) {
	if id > MaxEnemyID {
		return 0, &RangeError{Field: "id", Slot: slot, Value: int(id), Max: MaxEnemyID}
	}
	return id + EnemyIDOffset, nil
}

// Expand builds the semantic view of a packed record. It fails if an enemy id
// byte is below EnemyIDOffset.
func Expand(p PackedRecord) (BattleStructure, error) {
	bs := BattleStructure{
		StageID:         p.StageID,
		Flags:           FlagsFromByte(p.Flags),
		MainCamera:      CameraFromByte(p.MainCamera),
		SecondaryCamera: CameraFromByte(p.SecondaryCamera),
	}

	for slot := range bs.Enemies {
		raw := p.EnemyIDs[slot]
		if raw < EnemyIDOffset {
			return BattleStructure{}, &RangeError{
				Field: "raw_id",
				Slot:  slot,
				Value: int(raw),
				Min:   EnemyIDOffset,
				Max:   0xFF,
			}
		}

		bs.Enemies[slot] = Enemy{
			ID:           raw - EnemyIDOffset,
			Level:        p.EnemyLevels[slot],
			Enabled:      MaskBit(p.EnabledEnemies, slot),
			Invisible:    MaskBit(p.NotVisibleEnemies, slot),
			NotLoaded:    MaskBit(p.NotLoadedEnemies, slot),
			Untargetable: MaskBit(p.NotTargetableEnemies, slot),
			Coordinate:   p.EnemyCoords[slot],
			Unknown1:     p.Unknown1[slot],
			Unknown2:     p.Unknown2[slot],
			Unknown3:     p.Unknown3[slot],
			Unknown4:     p.Unknown4[slot],
		}
	}
	return bs, nil
}

// Collapse is the inverse of Expand. It fails if an enemy id is above
// MaxEnemyID or a camera value does not fit in a nibble.
func Collapse(bs BattleStructure) (PackedRecord, error) {
	mainCamera, err := bs.MainCamera.Byte("main_camera")
	if err != nil {
		return PackedRecord{}, err
	}
	secondaryCamera, err := bs.SecondaryCamera.Byte("secondary_camera")
	if err != nil {
		return PackedRecord{}, err
	}

	p := PackedRecord{
		StageID:         bs.StageID,
		Flags:           bs.Flags.Byte(),
		MainCamera:      mainCamera,
		SecondaryCamera: secondaryCamera,
	}

	var enabled, invisible, notLoaded, untargetable [NumEnemies]bool
	for slot, enemy := range bs.Enemies {
		if p.EnemyIDs[slot], err = rawEnemyID(enemy.ID, slot); err != nil {
			return PackedRecord{}, err
		}
		p.EnemyLevels[slot] = enemy.Level
		p.EnemyCoords[slot] = enemy.Coordinate
		p.Unknown1[slot] = enemy.Unknown1
		p.Unknown2[slot] = enemy.Unknown2
		p.Unknown3[slot] = enemy.Unknown3
		p.Unknown4[slot] = enemy.Unknown4

		enabled[slot] = enemy.Enabled
		invisible[slot] = enemy.Invisible
		notLoaded[slot] = enemy.NotLoaded
		untargetable[slot] = enemy.Untargetable
	}
	p.EnabledEnemies = MaskFromBools(enabled)
	p.NotVisibleEnemies = MaskFromBools(invisible)
	p.NotLoadedEnemies = MaskFromBools(notLoaded)
	p.NotTargetableEnemies = MaskFromBools(untargetable)

	return p, nil
}

// DecodeOne decodes the battle structure held in the first RecordSize bytes
// of b.
func DecodeOne(b []byte) (BattleStructure, error) {
	p, err := DecodePacked(b)
	if err != nil {
		return BattleStructure{}, err
	}
	return Expand(p)
}

// EncodeOne returns the RecordSize bytes of bs's on-disk form.
func EncodeOne(bs BattleStructure) ([]byte, error) {
	p, err := Collapse(bs)
	if err != nil {
		return nil, err
	}
	return p.Bytes()
}

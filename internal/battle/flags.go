package battle

// Bit positions of the battle flags byte, LSB first.
const (
	FlagCannotEscape uint = iota
	FlagDisableWinFanfare
	FlagShowTimer
	FlagNoExp
	FlagDisableExpScreen
	FlagForceSurpriseAttack
	FlagForceBackAttack
	FlagScriptedBattle
)

// BattleFlags holds the eight switches of the flags byte.
type BattleFlags struct {
	CannotEscape        bool `json:"cannot_escape" yaml:"cannot_escape"`
	DisableWinFanfare   bool `json:"disable_win_fanfare" yaml:"disable_win_fanfare"`
	ShowTimer           bool `json:"show_timer" yaml:"show_timer"`
	NoExp               bool `json:"no_exp" yaml:"no_exp"`
	DisableExpScreen    bool `json:"disable_exp_screen" yaml:"disable_exp_screen"`
	ForceSurpriseAttack bool `json:"force_surprise_attack" yaml:"force_surprise_attack"`
	ForceBackAttack     bool `json:"force_back_attack" yaml:"force_back_attack"`
	ScriptedBattle      bool `json:"scripted_battle" yaml:"scripted_battle"`
}

// FlagsFromByte expands the flags byte.
func FlagsFromByte(b byte) BattleFlags {
	bit := func(pos uint) bool { return b&(1<<pos) != 0 }
	return BattleFlags{
		CannotEscape:        bit(FlagCannotEscape),
		DisableWinFanfare:   bit(FlagDisableWinFanfare),
		ShowTimer:           bit(FlagShowTimer),
		NoExp:               bit(FlagNoExp),
		DisableExpScreen:    bit(FlagDisableExpScreen),
		ForceSurpriseAttack: bit(FlagForceSurpriseAttack),
		ForceBackAttack:     bit(FlagForceBackAttack),
		ScriptedBattle:      bit(FlagScriptedBattle),
	}
}

// Byte packs the flags back into their on-disk byte.
func (f BattleFlags) Byte() byte {
	var b byte
	set := func(on bool, pos uint) {
		if on {
			b |= 1 << pos
		}
	}
	set(f.CannotEscape, FlagCannotEscape)
	set(f.DisableWinFanfare, FlagDisableWinFanfare)
	set(f.ShowTimer, FlagShowTimer)
	set(f.NoExp, FlagNoExp)
	set(f.DisableExpScreen, FlagDisableExpScreen)
	set(f.ForceSurpriseAttack, FlagForceSurpriseAttack)
	set(f.ForceBackAttack, FlagForceBackAttack)
	set(f.ScriptedBattle, FlagScriptedBattle)
	return b
}

// nibbleMax is the largest value either half of a camera byte can hold.
const nibbleMax = 0x0F

// CameraAttributes is a camera byte split into its two nibbles. The game only
// uses numbers 0-3 and animations 0-7 but the layout can hold 0-15 for both.
type CameraAttributes struct {
	Number    uint8 `json:"number" yaml:"number"`
	Animation uint8 `json:"animation" yaml:"animation"`
}

// CameraFromByte splits a camera byte into number (high nibble) and
// animation (low nibble).
func CameraFromByte(b byte) CameraAttributes {
	return CameraAttributes{
		Number:    b >> 4,
		Animation: b & nibbleMax,
	}
}

// Byte joins the camera attributes back into one byte. Values that do not fit
// in a nibble are rejected rather than truncated; field names the byte in the
// returned error.
func (c CameraAttributes) Byte(field string) (byte, error) {
	if c.Number > nibbleMax {
		return 0, &RangeError{Field: field + ".number", Slot: -1, Value: int(c.Number), Max: nibbleMax}
	}
	if c.Animation > nibbleMax {
		return 0, &RangeError{Field: field + ".animation", Slot: -1, Value: int(c.Animation), Max: nibbleMax}
	}
	return c.Number<<4 | c.Animation, nil
}

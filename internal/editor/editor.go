// Package editor applies named changes to the battle structures of a scene,
// enforcing the ranges the game accepts. The battle codec only checks what
// the file layout can represent; anything narrower is checked here.
package editor

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dcrodman/kyactus/internal/battle"
)

// Largest camera values the game uses.
const (
	MaxCameraNumber    = 3
	MaxCameraAnimation = 7
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
	ErrNoSuchRecord = errors.New("no such battle structure")
)

// Edit is a single change to a battle structure.
type Edit struct {
	Name  string
	apply func(bs *battle.BattleStructure)
}

func (e Edit) String() string {
	return e.Name
}

// Editor holds the battle structures of one scene while they are modified.
type Editor struct {
	logger     *logrus.Logger
	structures []battle.BattleStructure
}

// New returns an Editor working on a copy of structures.
func New(structures []battle.BattleStructure, logger *logrus.Logger) *Editor {
	owned := make([]battle.BattleStructure, len(structures))
	copy(owned, structures)
	return &Editor{logger: logger, structures: owned}
}

// Structures returns the current battle structures.
func (e *Editor) Structures() []battle.BattleStructure {
	out := make([]battle.BattleStructure, len(e.structures))
	copy(out, e.structures)
	return out
}

// Get returns the battle structure at index.
func (e *Editor) Get(index int) (battle.BattleStructure, error) {
	if index < 0 || index >= len(e.structures) {
		return battle.BattleStructure{}, fmt.Errorf("%w: %d (scene has %d)", ErrNoSuchRecord, index, len(e.structures))
	}
	return e.structures[index], nil
}

// Apply runs edits against the battle structure at index. The structure is
// only replaced if the edited result can still be encoded.
func (e *Editor) Apply(index int, edits ...Edit) error {
	bs, err := e.Get(index)
	if err != nil {
		return err
	}

	for _, edit := range edits {
		edit.apply(&bs)
	}
	if _, err := battle.Collapse(bs); err != nil {
		return fmt.Errorf("battle structure %d: %w", index, err)
	}

	e.structures[index] = bs
	for _, edit := range edits {
		e.logger.WithFields(logrus.Fields{
			"encounter": index,
			"edit":      edit.Name,
		}).Debug("applied edit")
	}
	return nil
}

// SetStage changes the stage the battle takes place on.
func SetStage(id uint8) Edit {
	return Edit{
		Name:  fmt.Sprintf("stage_id=%d", id),
		apply: func(bs *battle.BattleStructure) { bs.StageID = id },
	}
}

var flagFields = map[string]func(f *battle.BattleFlags) *bool{
	"cannot_escape":         func(f *battle.BattleFlags) *bool { return &f.CannotEscape },
	"disable_win_fanfare":   func(f *battle.BattleFlags) *bool { return &f.DisableWinFanfare },
	"show_timer":            func(f *battle.BattleFlags) *bool { return &f.ShowTimer },
	"no_exp":                func(f *battle.BattleFlags) *bool { return &f.NoExp },
	"disable_exp_screen":    func(f *battle.BattleFlags) *bool { return &f.DisableExpScreen },
	"force_surprise_attack": func(f *battle.BattleFlags) *bool { return &f.ForceSurpriseAttack },
	"force_back_attack":     func(f *battle.BattleFlags) *bool { return &f.ForceBackAttack },
	"scripted_battle":       func(f *battle.BattleFlags) *bool { return &f.ScriptedBattle },
}

// FlagNames lists the names accepted by SetFlag.
func FlagNames() []string {
	return sortedKeys(flagFields)
}

// SetFlag turns the named battle flag on or off.
func SetFlag(name string, on bool) (Edit, error) {
	field, ok := flagFields[name]
	if !ok {
		return Edit{}, fmt.Errorf("%w: flag %q", ErrUnknownField, name)
	}
	return Edit{
		Name:  fmt.Sprintf("flags.%s=%t", name, on),
		apply: func(bs *battle.BattleStructure) { *field(&bs.Flags) = on },
	}, nil
}

// Camera selects one of the two cameras of a battle structure.
type Camera int

const (
	MainCamera Camera = iota
	SecondaryCamera
)

func (c Camera) String() string {
	if c == SecondaryCamera {
		return "secondary_camera"
	}
	return "main_camera"
}

// SetCamera changes the number and animation of a camera.
func SetCamera(c Camera, number, animation uint8) (Edit, error) {
	if number > MaxCameraNumber {
		return Edit{}, fmt.Errorf("%w: %s number %d, allowed 0..%d", ErrInvalidValue, c, number, MaxCameraNumber)
	}
	if animation > MaxCameraAnimation {
		return Edit{}, fmt.Errorf("%w: %s animation %d, allowed 0..%d", ErrInvalidValue, c, animation, MaxCameraAnimation)
	}

	attrs := battle.CameraAttributes{Number: number, Animation: animation}
	return Edit{
		Name: fmt.Sprintf("%s=%d:%d", c, number, animation),
		apply: func(bs *battle.BattleStructure) {
			if c == SecondaryCamera {
				bs.SecondaryCamera = attrs
			} else {
				bs.MainCamera = attrs
			}
		},
	}, nil
}

// ParseCamera parses a camera given as "number:animation".
func ParseCamera(c Camera, value string) (Edit, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return Edit{}, fmt.Errorf("%w: %s %q, expected number:animation", ErrInvalidValue, c, value)
	}
	number, err := strconv.ParseUint(parts[0], 0, 8)
	if err != nil {
		return Edit{}, fmt.Errorf("%w: %s number: %v", ErrInvalidValue, c, err)
	}
	animation, err := strconv.ParseUint(parts[1], 0, 8)
	if err != nil {
		return Edit{}, fmt.Errorf("%w: %s animation: %v", ErrInvalidValue, c, err)
	}
	return SetCamera(c, uint8(number), uint8(animation))
}

type enemySetter func(e *battle.Enemy, value string) error

func uintSetter(bits int, max uint64, set func(e *battle.Enemy, v uint64)) enemySetter {
	return func(e *battle.Enemy, value string) error {
		v, err := strconv.ParseUint(value, 0, bits)
		if err != nil {
			return err
		}
		if v > max {
			return fmt.Errorf("%d is above %d", v, max)
		}
		set(e, v)
		return nil
	}
}

func intSetter(set func(e *battle.Enemy, v int16)) enemySetter {
	return func(e *battle.Enemy, value string) error {
		v, err := strconv.ParseInt(value, 0, 16)
		if err != nil {
			return err
		}
		set(e, int16(v))
		return nil
	}
}

func boolSetter(set func(e *battle.Enemy, v bool)) enemySetter {
	return func(e *battle.Enemy, value string) error {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		set(e, v)
		return nil
	}
}

var enemyFields = map[string]enemySetter{
	"id":           uintSetter(8, battle.MaxEnemyID, func(e *battle.Enemy, v uint64) { e.ID = uint8(v) }),
	"level":        uintSetter(8, 0xff, func(e *battle.Enemy, v uint64) { e.Level = uint8(v) }),
	"enabled":      boolSetter(func(e *battle.Enemy, v bool) { e.Enabled = v }),
	"invisible":    boolSetter(func(e *battle.Enemy, v bool) { e.Invisible = v }),
	"not_loaded":   boolSetter(func(e *battle.Enemy, v bool) { e.NotLoaded = v }),
	"untargetable": boolSetter(func(e *battle.Enemy, v bool) { e.Untargetable = v }),
	"x":            intSetter(func(e *battle.Enemy, v int16) { e.Coordinate.X = v }),
	"y":            intSetter(func(e *battle.Enemy, v int16) { e.Coordinate.Y = v }),
	"z":            intSetter(func(e *battle.Enemy, v int16) { e.Coordinate.Z = v }),
	"unknown_1":    uintSetter(16, 0xffff, func(e *battle.Enemy, v uint64) { e.Unknown1 = uint16(v) }),
	"unknown_2":    uintSetter(16, 0xffff, func(e *battle.Enemy, v uint64) { e.Unknown2 = uint16(v) }),
	"unknown_3":    uintSetter(16, 0xffff, func(e *battle.Enemy, v uint64) { e.Unknown3 = uint16(v) }),
	"unknown_4":    uintSetter(8, 0xff, func(e *battle.Enemy, v uint64) { e.Unknown4 = uint8(v) }),
}

// EnemyFieldNames lists the names accepted by SetEnemyField.
func EnemyFieldNames() []string {
	return sortedKeys(enemyFields)
}

// SetEnemyField sets one field of the enemy in slot, parsing value according
// to the field's type. Numbers may be given in decimal or with a 0x prefix.
func SetEnemyField(slot int, field, value string) (Edit, error) {
	if slot < 0 || slot >= battle.NumEnemies {
		return Edit{}, fmt.Errorf("%w: enemy slot %d, allowed 0..%d", ErrInvalidValue, slot, battle.NumEnemies-1)
	}
	set, ok := enemyFields[field]
	if !ok {
		return Edit{}, fmt.Errorf("%w: enemy field %q", ErrUnknownField, field)
	}

	// Parse once up front so errors surface before anything is applied.
	var probe battle.Enemy
	if err := set(&probe, value); err != nil {
		return Edit{}, fmt.Errorf("%w: enemies[%d].%s: %v", ErrInvalidValue, slot, field, err)
	}

	return Edit{
		Name: fmt.Sprintf("enemies[%d].%s=%s", slot, field, value),
		apply: func(bs *battle.BattleStructure) {
			_ = set(&bs.Enemies[slot], value)
		},
	}, nil
}

// ParseEnemyEdits parses a list of enemy changes of the form
// "slot:field=value[,field=value...]".
func ParseEnemyEdits(spec string) ([]Edit, error) {
	slotPart, fieldsPart, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q, expected slot:field=value", ErrInvalidValue, spec)
	}
	slot, err := strconv.Atoi(slotPart)
	if err != nil {
		return nil, fmt.Errorf("%w: enemy slot %q", ErrInvalidValue, slotPart)
	}

	var edits []Edit
	for _, assignment := range strings.Split(fieldsPart, ",") {
		field, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q, expected field=value", ErrInvalidValue, assignment)
		}
		edit, err := SetEnemyField(slot, strings.TrimSpace(field), strings.TrimSpace(value))
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

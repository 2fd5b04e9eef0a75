package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dcrodman/kyactus/internal/battle"
	"github.com/dcrodman/kyactus/internal/names"
)

// encounter pairs a battle structure with its index in the scene file.
type encounter struct {
	Index     int                    `yaml:"encounter"`
	Structure battle.BattleStructure `yaml:",inline"`
}

type renderer struct {
	stages  names.Lookup
	enemies names.Lookup
}

var flagLabels = []struct {
	label string
	set   func(f battle.BattleFlags) bool
}{
	{"cannot escape", func(f battle.BattleFlags) bool { return f.CannotEscape }},
	{"disable victory fanfare", func(f battle.BattleFlags) bool { return f.DisableWinFanfare }},
	{"show timer", func(f battle.BattleFlags) bool { return f.ShowTimer }},
	{"no exp gained", func(f battle.BattleFlags) bool { return f.NoExp }},
	{"no exp screen", func(f battle.BattleFlags) bool { return f.DisableExpScreen }},
	{"force surprise attack", func(f battle.BattleFlags) bool { return f.ForceSurpriseAttack }},
	{"force back attack", func(f battle.BattleFlags) bool { return f.ForceBackAttack }},
	{"scripted battle", func(f battle.BattleFlags) bool { return f.ScriptedBattle }},
}

func (r renderer) text(w io.Writer, encounters []encounter) error {
	var b strings.Builder
	for _, e := range encounters {
		bs := e.Structure
		fmt.Fprintf(&b, "Encounter %d\n", e.Index)
		fmt.Fprintf(&b, "  Stage:     %d (%s)\n", bs.StageID, names.Name(r.stages, bs.StageID, "Invalid Stage Id!"))

		var flags []string
		for _, f := range flagLabels {
			if f.set(bs.Flags) {
				flags = append(flags, f.label)
			}
		}
		if len(flags) == 0 {
			flags = []string{"none"}
		}
		fmt.Fprintf(&b, "  Flags:     %s (0x%02x)\n", strings.Join(flags, ", "), bs.Flags.Byte())
		fmt.Fprintf(&b, "  Camera:    main %d/%d, secondary %d/%d\n",
			bs.MainCamera.Number, bs.MainCamera.Animation,
			bs.SecondaryCamera.Number, bs.SecondaryCamera.Animation)

		b.WriteString("  Enemies:\n")
		for slot, enemy := range bs.Enemies {
			b.WriteString(r.enemyLine(slot, enemy))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (r renderer) enemyLine(slot int, e battle.Enemy) string {
	name := names.Name(r.enemies, e.ID, "Invalid enemy name!")
	if !e.Enabled {
		name += " (disabled)"
	}

	var states []string
	if e.NotLoaded {
		states = append(states, "not loaded")
	}
	if e.Invisible {
		states = append(states, "not visible")
	}
	if e.Untargetable {
		states = append(states, "not targetable")
	}
	state := ""
	if len(states) > 0 {
		state = " [" + strings.Join(states, ", ") + "]"
	}

	return fmt.Sprintf("    %d. %s id=%d level=%d pos=(%d, %d, %d) unknown=%04x/%04x/%04x/%02x%s\n",
		slot, name, e.ID, e.Level,
		e.Coordinate.X, e.Coordinate.Y, e.Coordinate.Z,
		e.Unknown1, e.Unknown2, e.Unknown3, e.Unknown4, state)
}

func (r renderer) yaml(w io.Writer, encounters []encounter) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(encounters); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/dcrodman/kyactus/internal/battle"
	"github.com/dcrodman/kyactus/internal/scene"
)

var (
	dumpEncounterFlag int
	dumpOutputFlag    string
	dumpRawFlag       bool
)

func newDumpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <scene file>",
		Short: "Prints the battle structures of a scene file",
		Args:  cobra.ExactArgs(1),
		RunE:  DumpCommand,
	}
	cmd.Flags().IntVarP(&dumpEncounterFlag, "encounter", "e", -1, "Only print this encounter")
	cmd.Flags().StringVarP(&dumpOutputFlag, "output", "o", "text", "Output format: text, yaml")
	cmd.Flags().BoolVar(&dumpRawFlag, "raw", false, "Print the packed records instead of the decoded structures")
	return cmd
}

func DumpCommand(cmd *cobra.Command, args []string) error {
	format, err := config.SceneFormat()
	if err != nil {
		return err
	}
	if dumpEncounterFlag >= format.Records {
		return fmt.Errorf("encounter %d out of range, %s has %d", dumpEncounterFlag, format.Name, format.Records)
	}

	if dumpRawFlag {
		return dumpRaw(cmd, args[0], format)
	}

	f, err := scene.Load(args[0], format, logger)
	if err != nil {
		return err
	}

	var encounters []encounter
	for i, bs := range f.Structures {
		if dumpEncounterFlag < 0 || dumpEncounterFlag == i {
			encounters = append(encounters, encounter{Index: i, Structure: bs})
		}
	}

	stages, enemies, err := loadNames()
	if err != nil {
		return err
	}
	r := renderer{stages: stages, enemies: enemies}

	switch dumpOutputFlag {
	case "text":
		return r.text(cmd.OutOrStdout(), encounters)
	case "yaml":
		return r.yaml(cmd.OutOrStdout(), encounters)
	default:
		return fmt.Errorf("unknown output format %q", dumpOutputFlag)
	}
}

// dumpRaw prints the packed records without expanding them, which also works
// for records the codec refuses to expand.
func dumpRaw(cmd *cobra.Command, path string, format battle.SceneFormat) error {
	data, err := scene.ReadRaw(path, format)
	if err != nil {
		return err
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	for i := 0; i < format.Records; i++ {
		if dumpEncounterFlag >= 0 && dumpEncounterFlag != i {
			continue
		}
		p, err := battle.DecodePacked(data[i*battle.RecordSize:])
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Encounter %d: ", i)
		cfg.Fdump(cmd.OutOrStdout(), p)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dcrodman/kyactus/internal/editor"
	"github.com/dcrodman/kyactus/internal/scene"
)

var (
	setEncounterFlag       int
	setStageFlag           int
	setFlagsFlag           []string
	setMainCameraFlag      string
	setSecondaryCameraFlag string
	setEnemyFlag           []string
	setOutputFlag          string
)

func newSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <scene file>",
		Short: "Changes one battle structure of a scene file",
		Long: "Changes one battle structure of a scene file and writes the file back, or to --output.\n\n" +
			"Flags: " + strings.Join(editor.FlagNames(), ", ") + "\n" +
			"Enemy fields: " + strings.Join(editor.EnemyFieldNames(), ", "),
		Example: "  kyactus set scene.out -e 12 --stage 6 --flag cannot_escape=true \\\n" +
			"    --main-camera 1:3 --enemy 0:id=55,level=12,enabled=true",
		Args: cobra.ExactArgs(1),
		RunE: SetCommand,
	}
	cmd.Flags().IntVarP(&setEncounterFlag, "encounter", "e", -1, "Encounter to change")
	cmd.Flags().IntVar(&setStageFlag, "stage", -1, "New stage id")
	cmd.Flags().StringSliceVar(&setFlagsFlag, "flag", nil, "Battle flag to change, as name=true|false")
	cmd.Flags().StringVar(&setMainCameraFlag, "main-camera", "", "Main camera as number:animation")
	cmd.Flags().StringVar(&setSecondaryCameraFlag, "secondary-camera", "", "Secondary camera as number:animation")
	cmd.Flags().StringArrayVar(&setEnemyFlag, "enemy", nil, "Enemy change as slot:field=value[,field=value...]")
	cmd.Flags().StringVarP(&setOutputFlag, "output", "o", "", "Write the result to this file instead of the input")
	_ = cmd.MarkFlagRequired("encounter")
	return cmd
}

func SetCommand(cmd *cobra.Command, args []string) error {
	edits, err := parseEdits()
	if err != nil {
		return err
	}
	if len(edits) == 0 {
		return errors.New("nothing to change")
	}

	format, err := config.SceneFormat()
	if err != nil {
		return err
	}
	f, err := scene.Load(args[0], format, logger)
	if err != nil {
		return err
	}

	e := editor.New(f.Structures, logger)
	if err := e.Apply(setEncounterFlag, edits...); err != nil {
		return err
	}
	f.Structures = e.Structures()

	output := setOutputFlag
	if output == "" {
		output = f.Path
	}
	if err := scene.Save(f, output, logger); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "applied %d change(s) to encounter %d, wrote %s\n", len(edits), setEncounterFlag, output)
	return nil
}

func parseEdits() ([]editor.Edit, error) {
	var edits []editor.Edit

	if setStageFlag >= 0 {
		if setStageFlag > 0xff {
			return nil, fmt.Errorf("%w: stage id %d", editor.ErrInvalidValue, setStageFlag)
		}
		edits = append(edits, editor.SetStage(uint8(setStageFlag)))
	}

	for _, assignment := range setFlagsFlag {
		name, value, ok := strings.Cut(assignment, "=")
		if !ok {
			value = "true"
		}
		on, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: flag %s: %v", editor.ErrInvalidValue, name, err)
		}
		edit, err := editor.SetFlag(name, on)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}

	cameras := []struct {
		camera editor.Camera
		value  string
	}{
		{editor.MainCamera, setMainCameraFlag},
		{editor.SecondaryCamera, setSecondaryCameraFlag},
	}
	for _, c := range cameras {
		if c.value == "" {
			continue
		}
		edit, err := editor.ParseCamera(c.camera, c.value)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}

	for _, spec := range setEnemyFlag {
		enemyEdits, err := editor.ParseEnemyEdits(spec)
		if err != nil {
			return nil, err
		}
		edits = append(edits, enemyEdits...)
	}
	return edits, nil
}

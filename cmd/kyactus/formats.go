package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcrodman/kyactus/internal/battle"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "Lists the known scene file formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range battle.SceneFormatNames() {
				f, err := battle.LookupSceneFormat(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %5d records %8d bytes\n", f.Name, f.Records, f.Size())
			}
			return nil
		},
	}
}

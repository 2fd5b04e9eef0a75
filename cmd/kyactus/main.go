// kyactus inspects and edits the battle structures (encounters) stored in
// Final Fantasy VIII scene files.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dcrodman/kyactus/internal/battle"
	"github.com/dcrodman/kyactus/internal/core"
	"github.com/dcrodman/kyactus/internal/names"
)

var (
	ConfigFlag string

	config *core.Config
	logger *logrus.Logger
)

// Flags that override config options, keyed by their viper key.
var configFlags = map[string]string{
	"scene.format":     "format",
	"scene.records":    "records",
	"log_level":        "log-level",
	"names.stage_file": "stage-names",
	"names.enemy_file": "enemy-names",
	"names.encoding":   "names-encoding",
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "kyactus",
		Short:             "FF8 battle structure editor",
		SilenceUsage:      true,
		PersistentPreRunE: initialize,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ConfigFlag, "config", "c", "", "Path to the directory containing config.yaml")
	flags.String("format", battle.SceneOut.Name, "Scene file format, which determines the number of battle structures")
	flags.Int("records", 0, "Number of battle structures in the scene file (overrides --format)")
	flags.String("log-level", "info", "Minimum log level: debug, info, warn, error")
	flags.String("stage-names", "", "Text file with one stage name per line")
	flags.String("enemy-names", "", "Text file with one enemy name per line")
	flags.String("names-encoding", "utf-8", "Encoding of the name files: utf-8, utf-16le, shift-jis, windows-1252")

	rootCmd.AddCommand(newDumpCommand())
	rootCmd.AddCommand(newSetCommand())
	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newFormatsCommand())
	return rootCmd
}

// initialize loads the config, with any flags set on the command line taking
// precedence, and sets up the logger.
func initialize(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	var err error
	if config, err = core.LoadConfig(v, ConfigFlag); err != nil {
		return err
	}
	if logger, err = core.NewLogger(config); err != nil {
		return err
	}
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range configFlags {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding --%s to %s: %w", name, key, err)
		}
	}
	return nil
}

// loadNames loads the configured name tables. Tables that are not configured
// resolve nothing.
func loadNames() (stages, enemies names.Lookup, err error) {
	stages, enemies = names.None, names.None

	if path := config.Names.StageFile; path != "" {
		table, err := names.LoadFile(path, config.Names.Encoding)
		if err != nil {
			return nil, nil, err
		}
		logger.WithFields(logrus.Fields{"path": path, "entries": len(table)}).Debug("loaded stage names")
		stages = table.Lookup
	}
	if path := config.Names.EnemyFile; path != "" {
		table, err := names.LoadFile(path, config.Names.Encoding)
		if err != nil {
			return nil, nil, err
		}
		logger.WithFields(logrus.Fields{"path": path, "entries": len(table)}).Debug("loaded enemy names")
		enemies = table.Lookup
	}
	return stages, enemies, nil
}

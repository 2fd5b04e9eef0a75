package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dcrodman/kyactus/internal/battle"
)

// Config contains all of the configuration options available to the kyactus tools.
type Config struct {
	// Full path to file to which logs will be written. Blank will write to stderr.
	LogFilePath string `mapstructure:"log_file_path"`
	// Minimum level of a log required to be written. Options: debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`

	Scene struct {
		// Name of the scene file format, which determines the number of battle
		// structures the file must contain.
		Format string `mapstructure:"format"`
		// Overrides the record count of Format when greater than zero.
		Records int `mapstructure:"records"`
	} `mapstructure:"scene"`

	Names struct {
		// Text files containing one stage (or enemy) name per line, where the
		// line number is the id. Blank disables the lookup.
		StageFile string `mapstructure:"stage_file"`
		EnemyFile string `mapstructure:"enemy_file"`
		// Character encoding of the name files. Options: utf-8, utf-16le, shift-jis, windows-1252
		Encoding string `mapstructure:"encoding"`
	} `mapstructure:"names"`
}

const envVarPrefix = "KYACTUS"

// SetDefaults registers the value of every option that has one.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file_path", "")
	v.SetDefault("scene.format", battle.SceneOut.Name)
	v.SetDefault("scene.records", 0)
	v.SetDefault("names.stage_file", "")
	v.SetDefault("names.enemy_file", "")
	v.SetDefault("names.encoding", "utf-8")
}

// LoadConfig initializes v with the contents of the config file under configPath
// (if there is one) and the environment, and unmarshals the result. Flags bound
// to v before calling LoadConfig take precedence over both.
func LoadConfig(v *viper.Viper, configPath string) (*Config, error) {
	SetDefaults(v)

	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envVarPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// This allows us to set nested yaml config options through environment
	// variables. For example, names.encoding can be set using: <envVarPrefix>_NAMES_ENCODING
	for _, k := range v.AllKeys() {
		envVar := strings.ReplaceAll(strings.ToUpper(k), ".", "_")
		if err := v.BindEnv(k, envVarPrefix+"_"+envVar); err != nil {
			return nil, fmt.Errorf("error binding %s to %s: %w", k, envVarPrefix+"_"+envVar, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config object: %w", err)
	}
	return config, nil
}

// SceneFormat returns the scene file format selected by the config.
func (c *Config) SceneFormat() (battle.SceneFormat, error) {
	if c.Scene.Records > 0 {
		name := c.Scene.Format
		if name == "" {
			name = "custom"
		}
		return battle.SceneFormat{Name: name, Records: c.Scene.Records}, nil
	}
	if c.Scene.Records < 0 {
		return battle.SceneFormat{}, fmt.Errorf("scene.records must not be negative, got %d", c.Scene.Records)
	}
	return battle.LookupSceneFormat(c.Scene.Format)
}

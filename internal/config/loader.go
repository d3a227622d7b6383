package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/kebairia/addonsbackup/internal/target"
)

// ErrLoadConfig indicates a failure to read or parse the YAML configuration.
var ErrLoadConfig = errors.New("config load failed")

// ErrSaveConfig indicates the settings could not be persisted.
var ErrSaveConfig = errors.New("config save failed")

// EnvPrefix prefixes environment overrides, e.g. ADDONSBACKUP_SETTINGS_LABEL.
const EnvPrefix = "ADDONSBACKUP"

// Config represents the top-level YAML configuration file.
type Config struct {
	Include  []string     `mapstructure:"include"  yaml:"include,omitempty"`
	Settings Settings     `mapstructure:"settings" yaml:"settings"`
	Backup   BackupConfig `mapstructure:"backup"   yaml:"backup"`
	Log      LogConfig    `mapstructure:"log"      yaml:"log"`
}

// Settings are the last used inputs, saved and restored by the CLI.
type Settings struct {
	SourceRoot      string `mapstructure:"source_root"      yaml:"source_root"`
	DestinationRoot string `mapstructure:"destination_root" yaml:"destination_root"`
	Label           string `mapstructure:"label"            yaml:"label"`
	Revision        string `mapstructure:"revision"         yaml:"revision"`
}

// BackupConfig contains options for every backup run.
type BackupConfig struct {
	Subdirectories []string `mapstructure:"subdirectories" yaml:"subdirectories"`
	WriteMetadata  bool     `mapstructure:"write_metadata" yaml:"write_metadata"`
}

// LogConfig selects the logger preset.
type LogConfig struct {
	Level       string `mapstructure:"level"       yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// DefaultPath is config.yaml under the user's configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "addonsbackup", "config.yaml")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("include", []string{})
	v.SetDefault("settings.source_root", "")
	v.SetDefault("settings.destination_root", "")
	v.SetDefault("settings.label", "")
	v.SetDefault("settings.revision", "")
	v.SetDefault("backup.subdirectories", target.DefaultSubdirectories)
	v.SetDefault("backup.write_metadata", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", true)
	return v
}

// Load reads the configuration from the given YAML file using Viper,
// merges any included files, and unmarshals into the Config struct.
// A missing file leaves the defaults in place.
func (c *Config) Load(path string) error {
	v := newViper()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("%w: read base config %s: %v", ErrLoadConfig, path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %v", ErrLoadConfig, path, err)
	}

	for _, inc := range v.GetStringSlice("include") {
		data, err := os.ReadFile(inc)
		if err != nil {
			return fmt.Errorf("%w: read include %s: %v", ErrLoadConfig, inc, err)
		}
		if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
			return fmt.Errorf("%w: merge include %s: %v", ErrLoadConfig, inc, err)
		}
	}

	if err := v.UnmarshalExact(c); err != nil {
		return fmt.Errorf("%w: unmarshal config: %v", ErrLoadConfig, err)
	}
	return nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	v := newViper()
	v.Set("include", c.Include)
	v.Set("settings.source_root", c.Settings.SourceRoot)
	v.Set("settings.destination_root", c.Settings.DestinationRoot)
	v.Set("settings.label", c.Settings.Label)
	v.Set("settings.revision", c.Settings.Revision)
	v.Set("backup.subdirectories", c.Backup.Subdirectories)
	v.Set("backup.write_metadata", c.Backup.WriteMetadata)
	v.Set("log.level", c.Log.Level)
	v.Set("log.development", c.Log.Development)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create config directory: %v", ErrSaveConfig, err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrSaveConfig, path, err)
	}
	return nil
}

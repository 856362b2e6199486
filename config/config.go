package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. CHARSHEET_SAVE_PATH.
const EnvPrefix = "CHARSHEET"

type Config struct {
	App  AppConfig  `mapstructure:"app"`
	Log  LogConfig  `mapstructure:"log"`
	Save SaveConfig `mapstructure:"save"`
	Demo DemoConfig `mapstructure:"demo"`
}

type AppConfig struct {
	Debug bool `mapstructure:"debug"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"` // debug | info | warn | error
	File       string `mapstructure:"file"`  // optional rotating log file
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

type SaveConfig struct {
	Path string `mapstructure:"path"`
	// LegacyIncompleteCheck uses the older AND rule when rejecting
	// incomplete save files.
	LegacyIncompleteCheck bool `mapstructure:"legacy_incomplete_check"`
}

type DemoConfig struct {
	Name  string `mapstructure:"name"`
	Class string `mapstructure:"class"`
}

// Load reads config from the given YAML file path.
// A missing file is not an error; defaults and environment overrides apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("app.debug", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("save.path", "character.txt")
	v.SetDefault("save.legacy_incomplete_check", false)
	v.SetDefault("demo.name", "Aria")
	v.SetDefault("demo.class", "mage")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package config provides configuration structures for jsoned.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the base name of the config file looked up in the working and
// home directories.
const FileName = ".jsoned"

// Config holds the user-tunable settings.
type Config struct {
	Indent         int      `json:"indent" yaml:"indent" mapstructure:"indent"`
	Debug          bool     `json:"debug" yaml:"debug" mapstructure:"debug"`
	LogFile        string   `json:"logFile" yaml:"logFile" mapstructure:"logFile"`
	TemplateFields []string `json:"templateFields" yaml:"templateFields" mapstructure:"templateFields"`
	ApplyTemplate  bool     `json:"applyTemplate" yaml:"applyTemplate" mapstructure:"applyTemplate"`
	ConfigPath     string   `json:"-" yaml:"-" mapstructure:"config"`
}

// Load resolves the configuration: defaults, then the config file, then
// JSONED_* environment variables, then any flag the user set explicitly.
// A missing config file is not an error unless it was named explicitly.
func Load(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("JSONED")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	explicit := v.GetString("config")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the config: %w", err)
	}

	if cfg.Indent < 0 {
		cfg.Indent = 0
	}

	if explicit != "" {
		cfg.ConfigPath = filepath.Clean(explicit)
	} else {
		cfg.ConfigPath = v.ConfigFileUsed()
	}

	return cfg, nil
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"config":         "config",
	"indent":         "indent",
	"debug":          "debug",
	"log-file":       "logFile",
	"template-field": "templateFields",
	"template":       "applyTemplate",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return nil
}

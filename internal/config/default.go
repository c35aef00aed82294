package config

import "github.com/spf13/viper"

// Default values.
const (
	DefaultIndent = 2
)

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("indent", DefaultIndent)
	v.SetDefault("debug", false)
	v.SetDefault("logFile", "")
	v.SetDefault("templateFields", []string{})
	v.SetDefault("applyTemplate", false)
	v.SetDefault("config", "")
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Indent:         DefaultIndent,
		TemplateFields: []string{},
	}
}

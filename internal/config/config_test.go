package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.Int("indent", DefaultIndent, "")
	flags.Bool("debug", false, "")
	flags.String("log-file", "", "")
	flags.StringArray("template-field", nil, "")
	flags.Bool("template", false, "")

	return flags
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultIndent, cfg.Indent)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.TemplateFields)
	assert.Empty(t, cfg.LogFile)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "indent: 4\ndebug: true\ntemplateFields:\n  - id\n  - name\napplyTemplate: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--config", path}))

	cfg, err := Load(viper.New(), flags)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Indent)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.ApplyTemplate)
	assert.Equal(t, []string{"id", "name"}, cfg.TemplateFields)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("indent: 4\n"), 0o600))

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--config", path, "--indent", "1"}))

	cfg, err := Load(viper.New(), flags)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Indent)
}

func TestLoad_DiscoversFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte("indent: 8\n"), 0o600))

	cfg, err := Load(viper.New(), newFlags())
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Indent)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JSONED_INDENT", "3")

	cfg, err := Load(viper.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Indent)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))

	_, err := Load(viper.New(), flags)
	require.Error(t, err)
}

func TestLoad_NegativeIndentClamped(t *testing.T) {
	t.Chdir(t.TempDir())

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--indent", "-2"}))

	cfg, err := Load(viper.New(), flags)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Indent)
}

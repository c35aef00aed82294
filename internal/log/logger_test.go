package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_QuietWithoutFileIsNop(t *testing.T) {
	logger, err := New(Options{Quiet: true})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_StderrLevels(t *testing.T) {
	logger, err := New(Options{})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	debug, err := New(Options{Debug: true})
	require.NoError(t, err)
	assert.True(t, debug.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsoned.log")

	logger, err := New(Options{File: path, Quiet: true})
	require.NoError(t, err)

	logger.Info("document saved")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "document saved"), "log file content: %s", data)
}

func TestNew_BadFile(t *testing.T) {
	_, err := New(Options{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
}

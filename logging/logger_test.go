package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kasuganosora/charsheet/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Level(t *testing.T) {
	logger, err := New(&config.Config{Log: config.LogConfig{Level: "warn"}})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&config.Config{Log: config.LogConfig{Level: "loud"}})
	assert.Error(t, err)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "charsheet.log")
	logger, err := New(&config.Config{
		App: config.AppConfig{Debug: true},
		Log: config.LogConfig{Level: "debug", File: path, MaxSizeMB: 1, MaxBackups: 1},
	})
	require.NoError(t, err)

	logger.Info("character saved", zap.String("name", "Aria"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"character saved"`)
	assert.Contains(t, string(data), `"name":"Aria"`)
}

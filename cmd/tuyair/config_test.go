package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/tuyair/format"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuyair.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, int(format.LevelDefault), cfg.Level)

	compression, err := cfg.Compression()
	require.NoError(t, err)
	assert.Equal(t, format.CompressionZstd, compression)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
level = 5

[library]
compression = "lz4"

[irdb]
protocol_override = "Sharp{1}"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Level)
	assert.Equal(t, "lz4", cfg.Library.Compression)
	assert.True(t, cfg.Library.Validate, "missing keys keep their defaults")
	assert.Equal(t, "Sharp{1}", cfg.IRDB.ProtocolOverride)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax", content: "level = "},
		{name: "unknown key", content: "colour = \"red\""},
		{name: "level range", content: "level = 12"},
		{name: "compression", content: "[library]\ncompression = \"brotli\""},
		{name: "log level", content: "[log]\nlevel = \"loud\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()

	logger, err := cfg.NewLogger(zapcore.AddSync(&buf), false)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger, err = cfg.NewLogger(zapcore.AddSync(&buf), true)
	require.NoError(t, err)
	logger.Debug("verbose")
	assert.Contains(t, buf.String(), "verbose")

	cfg.Log.Level = "loud"
	_, err = cfg.NewLogger(zapcore.AddSync(&buf), false)
	require.Error(t, err)
}

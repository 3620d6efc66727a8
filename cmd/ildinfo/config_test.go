package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishiro-goudou-company/ilda"
	"github.com/mishiro-goudou-company/ilda/dac"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Example(t *testing.T) {
	cfg, err := loadConfig("ex.config.toml")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	assert.True(t, cfg.Strict)
	assert.False(t, cfg.HeadersOnly)
	assert.Equal(t, 100, cfg.MaxFrames)
	assert.Equal(t, uint(12), cfg.DAC.Bits)
	assert.Equal(t, 1000, cfg.DAC.MaxPoints)
	assert.Equal(t, uint8(255), cfg.DAC.Intensity)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	cfg, err = loadConfig(writeConfig(t, "headers_only = true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.HeadersOnly)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, dac.DefaultOptions(), cfg.DAC)
}

func TestLoadConfig_Errors(t *testing.T) {
	testCases := map[string]string{
		"log_level":  "log_level = \"loud\"\n",
		"max_frames": "max_frames = -1\n",
		"dac_bits":   "dac_bits = 0\n",
		"unknown":    "colour = \"red\"\n",
		"malformed":  "strict = \n",
		"wrong type": "strict = \"yes\"\n",
		"dac_points": "dac_max_points = -5\n",
	}
	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestConfig_ParseOptions(t *testing.T) {
	logger := zerolog.Nop()
	cfg := config{Strict: true, MaxFrames: 3}
	opts := cfg.parseOptions(&logger)
	assert.Equal(t, ilda.ParseFull, opts.Mode)
	assert.True(t, opts.Strict)
	assert.Equal(t, 3, opts.MaxFrames)
	assert.Same(t, &logger, opts.Logger)

	cfg.HeadersOnly = true
	assert.Equal(t, ilda.ParseHeadersOnly, cfg.parseOptions(nil).Mode)
}

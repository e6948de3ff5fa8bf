package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookup(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestParseDefaults(t *testing.T) {
	env := Parse(lookup(nil))

	assert.Equal(t, Environment{LogLevel: slog.LevelInfo, VSync: true}, env)
}

func TestParse(t *testing.T) {
	env := Parse(lookup(map[string]string{
		"GLTEX_LOG_LEVEL": "debug",
		"GLTEX_PROFILE":   "1",
		"GLTEX_VSYNC":     "0",
	}))

	assert.Equal(t, slog.LevelDebug, env.LogLevel)
	assert.True(t, env.Profile)
	assert.False(t, env.VSync)
}

func TestParseUnknownLogLevel(t *testing.T) {
	env := Parse(lookup(map[string]string{"GLTEX_LOG_LEVEL": "verbose"}))
	assert.Equal(t, slog.LevelInfo, env.LogLevel)
}

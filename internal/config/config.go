// Package config reads the environment variables shared by the
// programs of this module.
package config

import (
	"log/slog"
	"os"
	"strings"
)

// Environment holds settings taken from the environment.
type Environment struct {
	// GLTEX_LOG_LEVEL: DEBUG, INFO, WARN or ERROR
	LogLevel slog.Level

	// GLTEX_PROFILE=1 records a cpu profile
	Profile bool

	// GLTEX_VSYNC=0 disables vsync
	VSync bool
}

// FromEnv reads the Environment using os.Getenv.
func FromEnv() Environment {
	return Parse(os.Getenv)
}

// Parse reads the Environment using the given lookup function.
func Parse(getenv func(string) string) Environment {
	env := Environment{
		LogLevel: slog.LevelInfo,
		Profile:  getenv("GLTEX_PROFILE") == "1",
		VSync:    getenv("GLTEX_VSYNC") != "0",
	}

	switch strings.ToUpper(getenv("GLTEX_LOG_LEVEL")) {
	case "DEBUG":
		env.LogLevel = slog.LevelDebug
	case "INFO":
		env.LogLevel = slog.LevelInfo
	case "WARN":
		env.LogLevel = slog.LevelWarn
	case "ERROR":
		env.LogLevel = slog.LevelError
	}

	return env
}

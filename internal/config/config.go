// Package config reads OttoCraft settings from the environment. Call
// godotenv.Load first so a .env file can supply them; command-line flags
// override whatever is read here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hammamikhairi/ottocraft/internal/logger"
)

// Environment variable names.
const (
	EnvBook     = "OTTOCRAFT_BOOK"
	EnvLogLevel = "OTTOCRAFT_LOG_LEVEL"
	EnvLogFile  = "OTTOCRAFT_LOG_FILE"
	EnvSeed     = "OTTOCRAFT_SEED"
)

// StderrLog is the LogFile value that sends logs to the console.
const StderrLog = "stderr"

// Config holds runtime settings.
type Config struct {
	// BookPath is a recipe book TOML file. Empty means the built-in book.
	BookPath string
	LogLevel logger.Level
	// LogFile receives log output, or StderrLog for the console.
	LogFile string
	// Seed makes every roll reproducible when HasSeed is set.
	Seed    uint64
	HasSeed bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel: logger.LevelNormal,
		LogFile:  ".ottocraft-logs/ottocraft.log",
	}
}

// FromEnv starts from Default and applies every variable that is set.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := getEnv(EnvBook); v != "" {
		cfg.BookPath = v
	}
	if v := getEnv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := getEnv(EnvLogLevel); v != "" {
		level, err := logger.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	if v := getEnv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: invalid seed %q", EnvSeed, v)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}
	return cfg, nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	// DataRootEnv overrides where folder data is kept. Without it the data
	// directory lives next to the running executable.
	DataRootEnv = "AUTO_OPENER_DATA"

	// DataDirName is the default data directory name.
	DataDirName = "data"
)

// Config carries the process-level settings resolved once at startup.
type Config struct {
	DataRoot string
	LogLevel zerolog.Level
}

// Load resolves configuration from the environment.
func Load() (Config, error) {
	root := os.Getenv(DataRootEnv)
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return Config{}, fmt.Errorf("locate executable: %w", err)
		}
		root = filepath.Join(filepath.Dir(exe), DataDirName)
	}

	return Config{
		DataRoot: root,
		LogLevel: determineLogLevel(),
	}, nil
}

// determineLogLevel maps environment settings onto a zerolog level.
func determineLogLevel() zerolog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if os.Getenv("DEBUG") == "1" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}

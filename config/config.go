// Package config loads tool configuration from the environment,
// optionally seeded from a .env file in the working directory.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the knobs shared by the cuetools commands.
type Config struct {
	LibraryDir  string        // root directory scanned for cue sheets
	DataDir     string        // where the catalog database lives
	DBFileName  string        // catalog database file name
	DBPath      string        // derived: DataDir/DBFileName
	LogLevel    string        // debug, info, warn, error
	LogPath     string        // optional log file
	SettleDelay time.Duration // how long a sheet must sit still before the watcher rescans it
}

const (
	defaultDBFileName  = "cuetools.db"
	defaultLogLevel    = "info"
	defaultSettleDelay = 2 * time.Second
)

// Load reads configuration from the environment. Unset variables
// fall back to defaults; the library dir defaults to the current
// directory and the data dir to the library dir.
func Load() (*Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	cfg := &Config{
		LibraryDir:  os.Getenv("CUETOOLS_LIBRARY_DIR"),
		DataDir:     os.Getenv("CUETOOLS_DATA_DIR"),
		DBFileName:  os.Getenv("CUETOOLS_DB_FILE"),
		LogLevel:    os.Getenv("CUETOOLS_LOG_LEVEL"),
		LogPath:     os.Getenv("CUETOOLS_LOG_PATH"),
		SettleDelay: parseDurationOrDefault(os.Getenv("CUETOOLS_SETTLE_DELAY"), defaultSettleDelay),
	}

	if cfg.LibraryDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg.LibraryDir = wd
	}
	if cfg.DataDir == "" {
		cfg.DataDir = cfg.LibraryDir
	}
	if cfg.DBFileName == "" {
		cfg.DBFileName = defaultDBFileName
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	cfg.DBPath = filepath.Join(cfg.DataDir, cfg.DBFileName)

	return cfg, nil
}

func parseDurationOrDefault(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

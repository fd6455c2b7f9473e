package sink

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config holds the shared destination and rolling settings for one pair
// of logger configurations. The sync and async variants built from the
// same Config differ only in dispatch mode, never in destinations or
// encoding.
type Config struct {
	// Path is the log file destination. Required. The containing
	// directory is created by the file sink on first write, not at
	// construction.
	Path string
	// Console is the console destination (default: os.Stdout).
	Console io.Writer
	// Level is the minimum level written to both destinations
	// (default: InfoLevel).
	Level zapcore.Level
	// MaxSizeMB is the file size limit in megabytes before the file
	// rolls (default: 100).
	MaxSizeMB int
	// MaxBackups is the maximum number of rolled files to retain
	// (0 = keep all).
	MaxBackups int
	// RollInterval starts a new file when this much time has elapsed
	// since the last roll (default: 24h).
	RollInterval time.Duration
	// BufferSize is the async write buffer capacity in bytes
	// (default: 256 KiB). Ignored in sync mode.
	BufferSize int
	// FlushInterval is how often the async buffer drains in the
	// background (default: 1s). Ignored in sync mode.
	FlushInterval time.Duration
	// Stats, when non-nil, receives counts of writes completed by the
	// underlying destinations.
	Stats *Stats
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Console == nil {
		cfg.Console = os.Stdout
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 100
	}
	if cfg.RollInterval == 0 {
		cfg.RollInterval = 24 * time.Hour
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 256 * 1024
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = time.Second
	}
}

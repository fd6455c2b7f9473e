package sink

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a built logger handle bound to its destinations. Closing it
// flushes pending output and releases the underlying sinks; for the
// async variant this stops the background drain goroutines after a
// final flush.
type Logger struct {
	*zap.Logger
	closers []func() error
}

// Close flushes and closes the logger's destinations.
func (l *Logger) Close() error {
	var errs []error
	for _, c := range l.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewSync builds a logger whose console and file writes complete on the
// calling goroutine before each log call returns.
func NewSync(cfg Config) (*Logger, error) {
	return build(cfg, false)
}

// NewAsync builds a logger whose destinations are wrapped in zap's
// buffered write syncer: log calls enqueue the encoded record and
// return immediately, a background goroutine drains the buffer, and
// Close performs a final flush before stopping it.
func NewAsync(cfg Config) (*Logger, error) {
	return build(cfg, true)
}

func build(cfg Config, async bool) (*Logger, error) {
	if cfg.Path == "" {
		return nil, errors.New("sink: log file path is required")
	}
	applyDefaults(&cfg)

	file := newRollingWriter(cfg.Path, cfg.MaxSizeMB, cfg.MaxBackups, cfg.RollInterval)
	fileWS := countSyncer(file, cfg.Stats)
	consoleWS := countSyncer(zapcore.AddSync(cfg.Console), cfg.Stats)

	var closers []func() error
	if async {
		bufFile := &zapcore.BufferedWriteSyncer{
			WS:            fileWS,
			Size:          cfg.BufferSize,
			FlushInterval: cfg.FlushInterval,
		}
		bufConsole := &zapcore.BufferedWriteSyncer{
			WS:            consoleWS,
			Size:          cfg.BufferSize,
			FlushInterval: cfg.FlushInterval,
		}
		fileWS, consoleWS = bufFile, bufConsole
		closers = append(closers, bufFile.Stop, bufConsole.Stop)
	}
	closers = append(closers, file.Close)

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), consoleWS, cfg.Level),
		zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), fileWS, cfg.Level),
	)
	log := zap.New(core)

	// Flush before tearing down the syncers. Sync errors are dropped:
	// stdout rejects fsync on some platforms, and file durability is
	// covered by the buffered syncer Stop and the file Close below.
	flush := func() error {
		_ = log.Sync()
		return nil
	}
	closers = append([]func() error{flush}, closers...)

	return &Logger{Logger: log, closers: closers}, nil
}

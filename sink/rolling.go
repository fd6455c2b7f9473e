package sink

import (
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// rollingWriter is the file destination. Size-based rolling and backup
// cleanup are lumberjack's; rollingWriter adds interval-based rotation
// on top so a long-lived file also rolls when the interval (typically a
// day) elapses.
type rollingWriter struct {
	mu         sync.Mutex
	lj         *lumberjack.Logger
	interval   time.Duration
	lastRotate time.Time
}

func newRollingWriter(path string, maxSizeMB, maxBackups int, interval time.Duration) *rollingWriter {
	return &rollingWriter{
		lj: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			LocalTime:  true,
		},
		interval:   interval,
		lastRotate: time.Now(),
	}
}

// Write rotates first if the interval has elapsed, then appends.
func (w *rollingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.rotateIfNeeded(); err != nil {
		return 0, err
	}
	return w.lj.Write(p)
}

// rotateIfNeeded performs interval-based rotation. Size-based rotation
// happens inside lumberjack on the write itself.
func (w *rollingWriter) rotateIfNeeded() error {
	if w.interval <= 0 {
		return nil
	}
	if time.Since(w.lastRotate) < w.interval {
		return nil
	}
	w.lastRotate = time.Now()
	return w.lj.Rotate()
}

// Sync is a no-op; lumberjack owns the file handle.
func (w *rollingWriter) Sync() error {
	return nil
}

// Close closes the underlying file.
func (w *rollingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lj.Close()
}

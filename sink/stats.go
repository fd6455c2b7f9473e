package sink

import (
	"sync/atomic"

	"go.uber.org/zap/zapcore"
)

// Stats tracks completed destination writes with atomic counters. In
// async mode the counting syncer sits below the buffered wrapper, so
// the counters reflect work the background drain has actually finished
// rather than records merely enqueued.
type Stats struct {
	writes uint64
	bytes  uint64
}

// Writes returns the number of completed destination writes.
func (s *Stats) Writes() uint64 {
	return atomic.LoadUint64(&s.writes)
}

// Bytes returns the total bytes written to the destinations.
func (s *Stats) Bytes() uint64 {
	return atomic.LoadUint64(&s.bytes)
}

// Reset resets all counters to zero.
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.writes, 0)
	atomic.StoreUint64(&s.bytes, 0)
}

func (s *Stats) record(n int) {
	atomic.AddUint64(&s.writes, 1)
	atomic.AddUint64(&s.bytes, uint64(n))
}

// countingSyncer wraps a WriteSyncer and records completed writes.
type countingSyncer struct {
	ws    zapcore.WriteSyncer
	stats *Stats
}

// countSyncer wraps ws with write counting when stats is non-nil.
func countSyncer(ws zapcore.WriteSyncer, stats *Stats) zapcore.WriteSyncer {
	if stats == nil {
		return ws
	}
	return &countingSyncer{ws: ws, stats: stats}
}

func (c *countingSyncer) Write(p []byte) (int, error) {
	n, err := c.ws.Write(p)
	if err == nil {
		c.stats.record(n)
	}
	return n, err
}

func (c *countingSyncer) Sync() error {
	return c.ws.Sync()
}

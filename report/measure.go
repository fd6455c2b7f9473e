package report

import (
	"runtime"
	"runtime/metrics"
	"time"
)

const mutexWaitMetric = "/sync/mutex/wait/total:seconds"

// Measure runs fn once and captures its wall time, allocation, GC, and
// lock-contention cost as a Sample. SinkWrites is left for the caller,
// which owns the sink counters.
func Measure(fn func()) Sample {
	waitBefore := MutexWait()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	start := time.Now()
	fn()
	elapsed := time.Since(start)

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	return Sample{
		Elapsed:    elapsed,
		AllocBytes: after.TotalAlloc - before.TotalAlloc,
		GCCycles:   after.NumGC - before.NumGC,
		MutexWait:  MutexWait() - waitBefore,
	}
}

// MutexWait returns the cumulative time goroutines of this process have
// spent blocked on mutexes, as reported by the runtime.
func MutexWait() time.Duration {
	s := []metrics.Sample{{Name: mutexWaitMetric}}
	metrics.Read(s)
	if s[0].Value.Kind() != metrics.KindFloat64 {
		return 0
	}
	return time.Duration(s[0].Value.Float64() * float64(time.Second))
}

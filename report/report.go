// Package report aggregates measured batches into per-mode summaries
// and formats them as a comparison table.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Sample captures the measured cost of one batch.
type Sample struct {
	Elapsed    time.Duration `json:"elapsed_ns"`
	AllocBytes uint64        `json:"alloc_bytes"`
	GCCycles   uint32        `json:"gc_cycles"`
	SinkWrites uint64        `json:"sink_writes"`
	MutexWait  time.Duration `json:"mutex_wait_ns"`
}

// Summary aggregates the samples of one dispatch mode.
type Summary struct {
	Mode            string        `json:"mode"`
	Batches         int           `json:"batches"`
	RecordsPerBatch int           `json:"records_per_batch"`
	MinElapsed      time.Duration `json:"min_elapsed_ns"`
	MeanElapsed     time.Duration `json:"mean_elapsed_ns"`
	MaxElapsed      time.Duration `json:"max_elapsed_ns"`
	RecordsPerSec   float64       `json:"records_per_sec"`
	AllocBytes      uint64        `json:"alloc_bytes"`
	GCCycles        uint32        `json:"gc_cycles"`
	SinkWrites      uint64        `json:"sink_writes"`
	MutexWait       time.Duration `json:"mutex_wait_ns"`
}

// Summarize reduces the samples of one mode to a Summary.
func Summarize(mode string, recordsPerBatch int, samples []Sample) Summary {
	s := Summary{
		Mode:            mode,
		Batches:         len(samples),
		RecordsPerBatch: recordsPerBatch,
	}
	if len(samples) == 0 {
		return s
	}

	var total time.Duration
	s.MinElapsed = samples[0].Elapsed
	for _, sm := range samples {
		total += sm.Elapsed
		if sm.Elapsed < s.MinElapsed {
			s.MinElapsed = sm.Elapsed
		}
		if sm.Elapsed > s.MaxElapsed {
			s.MaxElapsed = sm.Elapsed
		}
		s.AllocBytes += sm.AllocBytes
		s.GCCycles += sm.GCCycles
		s.SinkWrites += sm.SinkWrites
		s.MutexWait += sm.MutexWait
	}
	s.MeanElapsed = total / time.Duration(len(samples))

	if total > 0 {
		s.RecordsPerSec = float64(len(samples)*recordsPerBatch) / total.Seconds()
	}
	return s
}

// Generate writes a markdown comparison table for the given summaries.
func Generate(w io.Writer, summaries []Summary) error {
	if len(summaries) == 0 {
		return fmt.Errorf("no summaries to report")
	}

	fastest := findFastest(summaries)

	fmt.Fprintln(w, "## Logging Throughput")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Mode | Batches | Records/Batch | Min | Mean | Max "+
		"| Records/s | Allocated | GC | Sink Writes | Mutex Wait | Slowdown |")
	fmt.Fprintln(w, "|------|---------|---------------|-----|------|-----"+
		"|-----------|-----------|----|-------------|------------|----------|")

	for _, s := range summaries {
		slowdown := 1.0
		if fastest > 0 && s.MeanElapsed > 0 {
			slowdown = float64(s.MeanElapsed) / float64(fastest)
		}

		fmt.Fprintf(w, "| %s | %d | %d | %s | %s | %s | %.0f | %s | %d | %d | %s | %.2fx |\n",
			s.Mode,
			s.Batches,
			s.RecordsPerBatch,
			formatDuration(s.MinElapsed),
			formatDuration(s.MeanElapsed),
			formatDuration(s.MaxElapsed),
			s.RecordsPerSec,
			formatBytes(s.AllocBytes),
			s.GCCycles,
			s.SinkWrites,
			formatDuration(s.MutexWait),
			slowdown,
		)
	}

	return nil
}

// GenerateJSON writes summaries as JSON to w.
func GenerateJSON(w io.Writer, summaries []Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(summaries)
}

func findFastest(summaries []Summary) time.Duration {
	var fastest time.Duration
	for _, s := range summaries {
		if s.MeanElapsed <= 0 {
			continue
		}
		if fastest == 0 || s.MeanElapsed < fastest {
			fastest = s.MeanElapsed
		}
	}
	return fastest
}

func formatDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

func formatBytes(b uint64) string {
	if b == 0 {
		return "-"
	}

	units := []string{"B", "KB", "MB", "GB"}
	size := float64(b)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	formatted := fmt.Sprintf("%.1f", size)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + " " + units[unit]
}

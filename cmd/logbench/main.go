// Package main provides the CLI entry point for logbench, a micro-
// benchmark comparing synchronous and asynchronous structured-logging
// sinks (console + rolling file).
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sinklab/logbench/harness"
	"github.com/sinklab/logbench/projpath"
	"github.com/sinklab/logbench/report"
	"github.com/sinklab/logbench/sink"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "logbench:", err)
		os.Exit(1)
	}
}

type options struct {
	marker     string
	batches    int
	bufferSize int
	maxSizeMB  int
	console    bool
	outputJSON bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "logbench",
		Short: "Benchmark sync vs async structured-logging sinks",
		Long: `Logbench emits fixed batches of structured log records through two
identically configured console + rolling-file sinks, one with synchronous and
one with asynchronous dispatch, and compares elapsed time, allocation, GC,
completed sink writes, and lock contention across the two modes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.marker, "marker", "",
		"Ancestor directory name to root the log file under (empty = temp dir)")
	flags.IntVar(&opts.batches, "batches", 10,
		"Measured batches per dispatch mode")
	flags.IntVar(&opts.bufferSize, "buffer-size", 0,
		"Async write buffer size in bytes (0 = library default)")
	flags.IntVar(&opts.maxSizeMB, "max-size", 0,
		"Log file size limit in MB before rolling (0 = default)")
	flags.BoolVar(&opts.console, "console", false,
		"Render records to stdout instead of discarding the console sink")
	flags.BoolVar(&opts.outputJSON, "json", false,
		"Output results as JSON instead of a table")

	return cmd
}

func run(w io.Writer, opts options) error {
	if opts.batches <= 0 {
		return fmt.Errorf("batches must be positive, got %d", opts.batches)
	}

	path, cleanup, err := logPath(opts.marker)
	if err != nil {
		return err
	}
	defer cleanup()

	stats := &sink.Stats{}
	cfg := sink.Config{
		Path:       path,
		Console:    io.Discard,
		MaxSizeMB:  opts.maxSizeMB,
		BufferSize: opts.bufferSize,
		Stats:      stats,
	}
	if opts.console {
		cfg.Console = os.Stdout
	}

	h, err := harness.New(cfg)
	if err != nil {
		return fmt.Errorf("build harness: %w", err)
	}

	// Unmeasured warm-up batch per mode.
	h.RunSyncBatch()
	h.RunAsyncBatch()

	syncSamples := sampleBatches(h.RunSyncBatch, stats, opts.batches)
	asyncSamples := sampleBatches(h.RunAsyncBatch, stats, opts.batches)

	if err := h.Close(); err != nil {
		return fmt.Errorf("close harness: %w", err)
	}

	summaries := []report.Summary{
		report.Summarize("SyncLogging", harness.BatchSize, syncSamples),
		report.Summarize("AsyncLogging", harness.BatchSize, asyncSamples),
	}

	if opts.outputJSON {
		return report.GenerateJSON(w, summaries)
	}
	return report.Generate(w, summaries)
}

// logPath resolves the log file destination. With a marker the file
// lives inside the enclosing project tree and is kept; without one it
// lives in a throwaway directory removed by the returned cleanup.
func logPath(marker string) (string, func(), error) {
	if marker != "" {
		path, err := projpath.Resolve(marker)
		if err != nil {
			return "", nil, fmt.Errorf("resolve log path: %w", err)
		}
		return path, func() {}, nil
	}

	dir, err := os.MkdirTemp("", "logbench-*")
	if err != nil {
		return "", nil, fmt.Errorf("create temp dir: %w", err)
	}
	return filepath.Join(dir, "logs", "log.txt"), func() { os.RemoveAll(dir) }, nil
}

// sampleBatches measures n batches, attributing completed sink writes
// to each. For async batches the counter deltas lag the enqueue loop;
// writes finished by the teardown flush are not attributed to a batch.
func sampleBatches(batch func(), stats *sink.Stats, n int) []report.Sample {
	samples := make([]report.Sample, 0, n)
	for i := 0; i < n; i++ {
		writesBefore := stats.Writes()
		s := report.Measure(batch)
		s.SinkWrites = stats.Writes() - writesBefore
		samples = append(samples, s)
	}
	return samples
}

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sinklab/logbench/report"
)

func TestRun_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, options{batches: 2}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "SyncLogging") {
		t.Error("expected SyncLogging row")
	}
	if !strings.Contains(out, "AsyncLogging") {
		t.Error("expected AsyncLogging row")
	}
}

func TestRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, options{batches: 1, outputJSON: true}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var summaries []report.Summary
	if err := json.Unmarshal(buf.Bytes(), &summaries); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	for _, s := range summaries {
		if s.Batches != 1 {
			t.Errorf("%s: Batches = %d, want 1", s.Mode, s.Batches)
		}
	}
}

func TestRun_MissingMarkerIsFatal(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, options{batches: 1, marker: "NoSuchMarkerDirAnywhere"})
	if err == nil {
		t.Fatal("expected path resolution failure before any measurement")
	}
	if buf.Len() != 0 {
		t.Error("no output expected on path resolution failure")
	}
}

func TestRun_RejectsNonPositiveBatches(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, options{batches: 0}); err == nil {
		t.Fatal("expected error for zero batches")
	}
}

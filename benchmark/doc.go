// Package benchmark holds the measured operations. go test -bench is
// the benchmark engine: it owns warm-up, iteration counts, and the
// statistics; each iteration here emits one fixed harness batch.
//
// Alongside the sync-vs-async comparison, competitive benchmarks run
// the same record shape through zap, zerolog, logrus, and slog under
// identical sink conditions.
package benchmark

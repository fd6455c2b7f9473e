// Package harness emits fixed batches of structured log records against
// a synchronous and an asynchronous logger configuration so an external
// benchmark engine can time the two dispatch modes under an identical
// workload.
//
// A Harness is stateless apart from its two logger handles, which are
// owned by one measurement run and disposed on Close. Sequencing of
// measurements against a shared log file is the caller's job; the
// harness takes no lock of its own.
package harness

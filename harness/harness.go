package harness

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sinklab/logbench/sink"
)

// BatchSize is the number of records each measured operation emits.
// The count is invariant across calls; repeated batches append records,
// they never replace them.
const BatchSize = 1000

// Message is the message of every emitted record. Each record also
// carries an incrementing "iteration" field.
const Message = "benchmark record"

// Harness holds one synchronous and one asynchronous logger handle
// built from the same sink configuration, and emits identical record
// batches to either.
type Harness struct {
	syncLog  *zap.Logger
	asyncLog *zap.Logger
	closers  []func() error
}

// New builds both logger handles from cfg. The two configurations share
// destinations and encoding and differ only in dispatch mode.
func New(cfg sink.Config) (*Harness, error) {
	syncLog, err := sink.NewSync(cfg)
	if err != nil {
		return nil, fmt.Errorf("build sync logger: %w", err)
	}
	asyncLog, err := sink.NewAsync(cfg)
	if err != nil {
		syncLog.Close()
		return nil, fmt.Errorf("build async logger: %w", err)
	}

	return &Harness{
		syncLog:  syncLog.Logger,
		asyncLog: asyncLog.Logger,
		closers:  []func() error{syncLog.Close, asyncLog.Close},
	}, nil
}

// NewWithLoggers builds a harness around pre-built handles, so tests
// can substitute observer or mock cores. The closers are invoked by
// Close in order.
func NewWithLoggers(syncLog, asyncLog *zap.Logger, closers ...func() error) *Harness {
	return &Harness{syncLog: syncLog, asyncLog: asyncLog, closers: closers}
}

// RunSyncBatch emits BatchSize records to the synchronous logger. Every
// write completes on the calling goroutine, so record order in the
// output equals call order.
func (h *Harness) RunSyncBatch() {
	emit(h.syncLog)
}

// RunAsyncBatch emits BatchSize records to the asynchronous logger.
// Each call enqueues the record and returns; the background drain
// performs the actual writes.
func (h *Harness) RunAsyncBatch() {
	emit(h.asyncLog)
}

func emit(log *zap.Logger) {
	for i := 0; i < BatchSize; i++ {
		log.Info(Message, zap.Int("iteration", i))
	}
}

// Close flushes and disposes both logger handles. For the async handle
// this drains the pending queue, so all emitted records are durably
// written before Close returns.
func (h *Harness) Close() error {
	var errs []error
	for _, c := range h.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

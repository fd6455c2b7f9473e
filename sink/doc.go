// Package sink builds the two logger configurations the benchmark
// compares: identical console and rolling-file destinations with
// identical JSON encoding, wrapped in either synchronous or
// asynchronous dispatch.
//
// Encoding and dispatch are delegated to zap: the synchronous variant
// writes on the calling goroutine, the asynchronous variant wraps each
// destination in zapcore.BufferedWriteSyncer so log calls enqueue and
// return while a background goroutine drains. The rolling file sink is
// lumberjack, extended with interval-based rotation so files roll by
// day as well as by size.
//
// Write failures inside the sink chain are swallowed by the wrapped
// libraries; only construction errors propagate.
package sink

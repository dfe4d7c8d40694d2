// Package multilog provides a multiplexed log writer that accepts text
// from many concurrent callers and delivers it, atomically per logical
// message, to a set of registered output sinks.
//
// Each caller identity owns a private accumulation buffer, so concurrent
// Write calls never contend on a shared lock. A Flush collects the
// caller's accumulated text and writes it to every registered sink under
// a single sink-list lock, which guarantees that messages from different
// callers never interleave within any one sink.
//
// Buffers for callers that go quiet are reclaimed by a janitor pass that
// runs every Nth flush. The pass never blocks on a busy buffer: it
// try-locks each one and skips those it cannot acquire immediately. A
// caller whose buffer was reclaimed simply gets a fresh one on its next
// write. Sweep is also exported directly so tests and callers can drive
// eviction with an explicit clock.
//
// Sinks are registered as either Owned or Borrowed. Owned sinks that
// implement io.Closer are closed exactly once when the writer itself is
// closed; borrowed sinks are left untouched.
//
// Built-in sinks:
//
//   - ConsoleSink writes to any io.Writer (default: stdout).
//   - FileSink writes to an append-only file through a bufio.Writer.
//   - WriterSink adapts an arbitrary io.Writer, delegating Flush when
//     the wrapped writer supports it.
//
// The writer tracks completed flushes, failed flushes, and evicted
// buffers via the Stats type, which can be queried at runtime.
package multilog

// Package stamplog provides a single-sink log wrapper that prefixes each
// flushed message with a local timestamp.
//
// Logger accumulates written bytes until Flush, then emits the whole
// message as "YYYY-MM-DD HH:MM:SS : <message>" to its output. It is NOT
// safe for concurrent use; wrap it in a multilog.MultiLog (it satisfies
// the multilog.Sink interface) when multiple goroutines need to share
// one timestamped destination.
package stamplog

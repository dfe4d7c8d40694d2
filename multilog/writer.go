package multilog

import "io"

// flusher is the optional interface a wrapped writer can expose to
// receive Flush calls.
type flusher interface {
	Flush() error
}

// WriterSink adapts an arbitrary io.Writer to the Sink interface. Flush
// delegates to the wrapped writer when it implements Flush() error and is
// a no-op otherwise. Ownership follows registration: wrap an io.Closer
// and register Owned to have the writer closed on teardown.
type WriterSink struct {
	writer io.Writer
	f      flusher // non-nil when writer supports flushing
}

// NewWriterSink creates a sink backed by w.
func NewWriterSink(w io.Writer) *WriterSink {
	s := &WriterSink{writer: w}
	s.f, _ = w.(flusher)
	return s
}

// Write writes p to the wrapped writer.
func (s *WriterSink) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

// Flush delegates to the wrapped writer when supported.
func (s *WriterSink) Flush() error {
	if s.f != nil {
		return s.f.Flush()
	}
	return nil
}

// Close closes the wrapped writer when it implements io.Closer.
func (s *WriterSink) Close() error {
	if c, ok := s.writer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

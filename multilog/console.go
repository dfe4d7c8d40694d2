package multilog

import (
	"io"
	"os"
	"sync"
)

// ConsoleSink writes log text to stdout/stderr or any other io.Writer.
// Console streams are unbuffered from the sink's point of view, so Flush
// is a no-op. Console sinks are typically registered as Borrowed.
type ConsoleSink struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewConsoleSink creates a new console sink. A nil writer defaults to
// os.Stdout.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{writer: w}
}

// Write writes p to the underlying writer.
func (s *ConsoleSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writer.Write(p)
}

// Flush is a no-op; console writes are not buffered by the sink.
func (s *ConsoleSink) Flush() error {
	return nil
}

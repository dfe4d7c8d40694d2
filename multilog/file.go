package multilog

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileSink writes log text to an append-only file through a bufio.Writer.
// Flush drains the in-process buffer to the file; Close flushes and then
// closes the file, so a FileSink registered as Owned is fully torn down
// when the writer is closed.
type FileSink struct {
	mu   sync.Mutex
	file *os.File
	w    *bufio.Writer
}

// NewFileSink opens (or creates) the named file for appending, creating
// parent directories as needed.
func NewFileSink(filename string) (*FileSink, error) {
	if filename == "" {
		return nil, errors.New("multilog: filename is required")
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "multilog: create directory %s", dir)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "multilog: open %s", filename)
	}

	return &FileSink{
		file: file,
		w:    bufio.NewWriter(file),
	}, nil
}

// Write appends p to the sink's buffer.
func (s *FileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.w.Write(p)
	return n, errors.Wrap(err, "multilog: file write")
}

// Flush drains buffered bytes to the file.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Wrap(s.w.Flush(), "multilog: file flush")
}

// Close flushes buffered bytes and closes the file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.w.Flush(); err != nil {
		s.file.Close()
		return errors.Wrap(err, "multilog: file flush")
	}
	return errors.Wrap(s.file.Close(), "multilog: file close")
}

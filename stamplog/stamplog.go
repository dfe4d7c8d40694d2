package stamplog

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

// timeStampFormat renders local time zero-padded, e.g. "2013-09-03 08:05:09".
const timeStampFormat = "2006-01-02 15:04:05"

// flusher is the optional interface the output can expose to receive
// Flush calls after each message.
type flusher interface {
	Flush() error
}

// Logger prefixes each flushed message with a timestamp and writes it to
// a single output. NOT safe for concurrent use.
type Logger struct {
	output io.Writer
	f      flusher // non-nil when output supports flushing
	buf    bytes.Buffer
	now    func() time.Time
}

// New creates a Logger writing to output.
func New(output io.Writer) *Logger {
	l := &Logger{
		output: output,
		now:    time.Now,
	}
	l.f, _ = output.(flusher)
	return l
}

// Write appends p to the pending message.
func (l *Logger) Write(p []byte) (int, error) {
	return l.buf.Write(p)
}

// Flush emits the pending message, prefixed with the current timestamp,
// and clears the buffer.
func (l *Logger) Flush() error {
	_, err := fmt.Fprintf(l.output, "%s : %s", l.now().Format(timeStampFormat), l.buf.String())
	if err != nil {
		return errors.Wrap(err, "stamplog: write")
	}
	l.buf.Reset()

	if l.f != nil {
		return errors.Wrap(l.f.Flush(), "stamplog: flush")
	}
	return nil
}

// Close closes the output when it implements io.Closer, so a Logger can
// stand in for an owned sink whose lifetime ends with its owner.
func (l *Logger) Close() error {
	if c, ok := l.output.(io.Closer); ok {
		return errors.Wrap(c.Close(), "stamplog: close")
	}
	return nil
}

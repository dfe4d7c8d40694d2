package multilog

import (
	"bytes"

	"go.uber.org/multierr"
)

// CallerStream adapts one caller identity to io.Writer. Bytes are
// appended to the caller's buffer; each newline ends a logical message
// and triggers a flush, so code written against io.Writer (fmt.Fprintf,
// log.New, exec pipes) multiplexes line-atomically without knowing about
// the Write/Flush protocol.
type CallerStream struct {
	m  *MultiLog
	id CallerID
}

// Stream returns an io.Writer bound to the given caller identity.
func (m *MultiLog) Stream(id CallerID) *CallerStream {
	return &CallerStream{m: m, id: id}
}

// Write appends p, flushing once per newline encountered. Bytes after
// the final newline stay buffered until a later newline or an explicit
// Flush. The full input is always accepted; the returned error is the
// aggregate of any flush failures.
func (s *CallerStream) Write(p []byte) (int, error) {
	var err error
	rest := p
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			if len(rest) > 0 {
				s.m.Write(s.id, rest)
			}
			return len(p), err
		}
		s.m.Write(s.id, rest[:i+1])
		err = multierr.Append(err, s.m.Flush(s.id))
		rest = rest[i+1:]
	}
}

// Flush emits whatever is buffered, ending the current message without a
// newline.
func (s *CallerStream) Flush() error {
	return s.m.Flush(s.id)
}

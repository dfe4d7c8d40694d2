package multilog

import "io"

// Sink is a writable destination for log text. Write appends raw bytes;
// Flush drains anything the sink itself buffers. A Sink that also
// implements io.Closer can be registered as Owned, tying its lifetime to
// the writer's.
type Sink interface {
	io.Writer

	// Flush drains the sink's own buffering, if any.
	Flush() error
}

// Ownership states whether the writer or the caller manages a registered
// sink's lifetime.
type Ownership int

const (
	// Borrowed leaves the sink's lifetime to the caller.
	Borrowed Ownership = iota
	// Owned ties the sink's lifetime to the writer; sinks implementing
	// io.Closer are closed exactly once when the writer is closed.
	Owned
)

// String returns the string representation of the ownership mode.
func (o Ownership) String() string {
	switch o {
	case Borrowed:
		return "Borrowed"
	case Owned:
		return "Owned"
	default:
		return "Unknown"
	}
}

// registeredSink pairs a sink with its ownership mode in the sink list.
type registeredSink struct {
	sink  Sink
	owned bool
}

package multilog

import (
	"bytes"
	"sync"
	"time"
)

// CallerID is the logical identity keying per-caller buffers. Callers
// choose their own identities; typically one per goroutine or per input
// stream.
type CallerID uint64

// callerBuffer is the per-caller accumulation state. The mutex protects
// buf, lastFlush and evicted; the buffer table never touches those fields
// without it.
type callerBuffer struct {
	mu        sync.Mutex
	buf       bytes.Buffer
	lastFlush time.Time

	// evicted is set by a sweep, under mu, when the buffer is removed
	// from the table. A writer that looked the buffer up before the
	// sweep detects the flag after locking and retries against a fresh
	// buffer, so no bytes land in an orphaned buffer.
	evicted bool
}

// buffer returns the caller's buffer, creating it if absent. Creation is
// double-checked: the read lock covers the common lookup, and absence is
// re-verified under the write lock so two callers racing on the same new
// identity cannot create two buffers.
func (m *MultiLog) buffer(id CallerID) *callerBuffer {
	m.tableMu.RLock()
	b := m.buffers[id]
	m.tableMu.RUnlock()
	if b != nil {
		return b
	}

	m.tableMu.Lock()
	defer m.tableMu.Unlock()
	if b = m.buffers[id]; b == nil {
		b = &callerBuffer{lastFlush: m.now()}
		m.buffers[id] = b
	}
	return b
}

// lockBuffer returns the caller's buffer with its mutex held, retrying if
// a sweep evicted the buffer between lookup and lock.
func (m *MultiLog) lockBuffer(id CallerID) *callerBuffer {
	for {
		b := m.buffer(id)
		b.mu.Lock()
		if !b.evicted {
			return b
		}
		b.mu.Unlock()
	}
}

// Write appends bytes to the caller's buffer. The append happens under
// the buffer's own lock, not the table lock, so concurrent callers never
// contend with each other; the table lock is only taken on first use by
// a given caller (or after its buffer was evicted).
//
// Write never fails: appends go to memory, and the buffer panics on
// exhaustion rather than reporting a recoverable error.
func (m *MultiLog) Write(id CallerID, p []byte) {
	b := m.lockBuffer(id)
	b.buf.Write(p)
	b.mu.Unlock()
}

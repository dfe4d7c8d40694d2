package multilog

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	// defaultIdleThreshold is how long an empty buffer may sit unflushed
	// before a sweep evicts it.
	defaultIdleThreshold = 2 * time.Minute
	// defaultSweepEvery is the number of flushes between janitor passes.
	defaultSweepEvery = 100
)

// Config holds configuration for a MultiLog.
type Config struct {
	// IdleThreshold is the idle time after which an empty caller buffer
	// becomes eligible for eviction (default: 2 minutes).
	IdleThreshold time.Duration
	// SweepEvery is the number of flushes between janitor passes
	// (default: 100).
	SweepEvery uint64
	// Now is the time source used for last-flush stamps and the
	// flush-triggered sweeps (default: time.Now). Tests inject a fake
	// clock here to drive eviction deterministically.
	Now func() time.Time
}

// MultiLog is a multiplexed log writer. It fans text written by many
// concurrent callers out to an ordered set of sinks, one atomic message
// per flush. The zero value is not usable; construct with New.
type MultiLog struct {
	sinkMu sync.Mutex // protects sinks; held for the duration of a flush
	sinks  []registeredSink

	tableMu sync.RWMutex // protects buffers
	buffers map[CallerID]*callerBuffer

	flushCount uint64 // atomic

	idleThreshold time.Duration
	sweepEvery    uint64
	now           func() time.Time

	stats *Stats
}

// New creates a new MultiLog.
func New(cfg Config) *MultiLog {
	if cfg.IdleThreshold <= 0 {
		cfg.IdleThreshold = defaultIdleThreshold
	}
	if cfg.SweepEvery == 0 {
		cfg.SweepEvery = defaultSweepEvery
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &MultiLog{
		buffers:       make(map[CallerID]*callerBuffer),
		idleThreshold: cfg.IdleThreshold,
		sweepEvery:    cfg.SweepEvery,
		now:           cfg.Now,
		stats:         NewStats(),
	}
}

// Register appends a sink to the sink list. Sinks receive flushed
// messages in registration order. Registration has no effect on a flush
// already in progress. A nil sink is rejected without partial effect.
func (m *MultiLog) Register(s Sink, mode Ownership) error {
	if s == nil {
		return errors.New("multilog: nil sink")
	}

	m.sinkMu.Lock()
	defer m.sinkMu.Unlock()

	m.sinks = append(m.sinks, registeredSink{sink: s, owned: mode == Owned})
	return nil
}

// Flush delivers the caller's accumulated text to every registered sink
// as one atomic unit, then clears the buffer. Individual sink failures
// are collected into the returned aggregate but do not stop delivery to
// the remaining sinks, and never remove a sink from the registry.
//
// Flushing with no registered sinks is a programming error and panics:
// it means the writer was never configured.
func (m *MultiLog) Flush(id CallerID) error {
	// Buffer lock first, sink lock second. The janitor goes table lock →
	// try-lock(buffer), and the try-lock never blocks, so this order
	// cannot deadlock with a sweep.
	b := m.lockBuffer(id)
	defer b.mu.Unlock()

	m.sinkMu.Lock()
	if len(m.sinks) == 0 {
		m.sinkMu.Unlock()
		panic("multilog: Flush called with no sinks registered")
	}

	// The sink list cannot change while sinkMu is held, so this iteration
	// is the flush's snapshot.
	payload := b.buf.Bytes()
	var result error
	for i, rs := range m.sinks {
		if _, err := rs.sink.Write(payload); err != nil {
			result = multierr.Append(result, errors.Wrapf(err, "sink %d: write", i))
		}
		if err := rs.sink.Flush(); err != nil {
			result = multierr.Append(result, errors.Wrapf(err, "sink %d: flush", i))
		}
	}
	m.sinkMu.Unlock()

	b.buf.Reset()
	b.lastFlush = m.now()

	if result == nil {
		m.stats.IncrementFlushed()
	} else {
		m.stats.IncrementFailed()
	}

	if atomic.AddUint64(&m.flushCount, 1)%m.sweepEvery == 0 {
		m.Sweep(m.now())
	}

	return result
}

// Close closes every owned sink exactly once and drops the buffer table.
// Borrowed sinks are left untouched. The writer must not be used after
// Close; a subsequent Flush panics because no sinks remain registered.
func (m *MultiLog) Close() error {
	m.sinkMu.Lock()
	var err error
	for i, rs := range m.sinks {
		if !rs.owned {
			continue
		}
		if c, ok := rs.sink.(interface{ Close() error }); ok {
			err = multierr.Append(err, errors.Wrapf(c.Close(), "sink %d: close", i))
		}
	}
	m.sinks = nil
	m.sinkMu.Unlock()

	m.tableMu.Lock()
	m.buffers = make(map[CallerID]*callerBuffer)
	m.tableMu.Unlock()

	return err
}

// Stats returns a snapshot of the current statistics.
func (m *MultiLog) Stats() Snapshot {
	return m.stats.GetSnapshot()
}

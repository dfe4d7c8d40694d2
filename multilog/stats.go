package multilog

import "sync/atomic"

// Stats tracks writer statistics.
type Stats struct {
	// FlushedTotal counts flushes delivered to all sinks without error.
	FlushedTotal uint64
	// FailedTotal counts flushes where at least one sink reported failure.
	FailedTotal uint64
	// EvictedTotal counts caller buffers reclaimed by sweeps.
	EvictedTotal uint64
}

// NewStats creates a new Stats instance.
func NewStats() *Stats {
	return &Stats{}
}

// IncrementFlushed atomically increments the clean-flush counter.
func (s *Stats) IncrementFlushed() {
	atomic.AddUint64(&s.FlushedTotal, 1)
}

// IncrementFailed atomically increments the failed-flush counter.
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// AddEvicted atomically adds to the evicted-buffer counter.
func (s *Stats) AddEvicted(n uint64) {
	atomic.AddUint64(&s.EvictedTotal, n)
}

// GetFlushed returns the clean-flush count.
func (s *Stats) GetFlushed() uint64 {
	return atomic.LoadUint64(&s.FlushedTotal)
}

// GetFailed returns the failed-flush count.
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// GetEvicted returns the evicted-buffer count.
func (s *Stats) GetEvicted() uint64 {
	return atomic.LoadUint64(&s.EvictedTotal)
}

// Snapshot is a point-in-time copy of the statistics.
type Snapshot struct {
	Flushed uint64
	Failed  uint64
	Evicted uint64
}

// GetSnapshot returns a snapshot of current statistics.
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Flushed: s.GetFlushed(),
		Failed:  s.GetFailed(),
		Evicted: s.GetEvicted(),
	}
}

package multilog

import "time"

// Sweep scans the buffer table and evicts buffers that are empty and have
// not flushed since before now minus the idle threshold. It returns the
// number of buffers evicted.
//
// A buffer whose lock cannot be acquired immediately is presumed to be in
// active use and is skipped; the sweep never blocks on a busy buffer.
// Eviction is best-effort: a caller that goes dormant past the threshold
// and later resumes simply gets a fresh buffer recreated on its next
// write, at the cost of one extra allocation.
//
// Sweep runs automatically every SweepEvery flushes with the writer's own
// clock; it is exported so callers and tests can drive eviction with an
// explicit one.
func (m *MultiLog) Sweep(now time.Time) int {
	m.tableMu.Lock()
	defer m.tableMu.Unlock()

	evicted := 0
	for id, b := range m.buffers {
		if !b.mu.TryLock() {
			continue
		}
		if b.buf.Len() == 0 && now.Sub(b.lastFlush) > m.idleThreshold {
			b.evicted = true
			delete(m.buffers, id)
			evicted++
		}
		b.mu.Unlock()
	}

	if evicted > 0 {
		m.stats.AddEvicted(uint64(evicted))
	}
	return evicted
}

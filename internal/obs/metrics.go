package obs

import (
	"sync/atomic"
	"time"
)

// Metrics collects lightweight counters for graph operations.
type Metrics struct {
	edgesInserted uint64
	dedupSkips    uint64
	eventsSkipped uint64
	rebuilds      uint64

	rebuildLatency LatencyStats
}

// LatencyStats aggregates duration samples in nanoseconds.
type LatencyStats struct {
	count uint64
	sum   uint64
	max   uint64
}

// LatencySnapshot is a point-in-time view of latency stats.
type LatencySnapshot struct {
	Count uint64
	Max   time.Duration
	Avg   time.Duration
}

// Snapshot captures the current counter values.
type Snapshot struct {
	EdgesInserted  uint64
	DedupSkips     uint64
	EventsSkipped  uint64
	Rebuilds       uint64
	RebuildLatency LatencySnapshot
}

// NewMetrics allocates a metrics container.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncEdgeInserted records a successful edge insert.
func (m *Metrics) IncEdgeInserted() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.edgesInserted, 1)
}

// IncDedupSkip records an insert suppressed by the per-source dedup rule.
func (m *Metrics) IncDedupSkip() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.dedupSkips, 1)
}

// IncEventSkipped records a regulatory event whose subject is unregistered.
func (m *Metrics) IncEventSkipped() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.eventsSkipped, 1)
}

// ObserveRebuild records one full relationship rebuild and its duration.
func (m *Metrics) ObserveRebuild(d time.Duration) {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.rebuilds, 1)
	m.rebuildLatency.Observe(d)
}

// Snapshot returns a copy of the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		EdgesInserted:  atomic.LoadUint64(&m.edgesInserted),
		DedupSkips:     atomic.LoadUint64(&m.dedupSkips),
		EventsSkipped:  atomic.LoadUint64(&m.eventsSkipped),
		Rebuilds:       atomic.LoadUint64(&m.rebuilds),
		RebuildLatency: m.rebuildLatency.Snapshot(),
	}
}

// Observe records a duration sample.
func (l *LatencyStats) Observe(d time.Duration) {
	if d < 0 {
		return
	}
	nanos := uint64(d)
	atomic.AddUint64(&l.count, 1)
	atomic.AddUint64(&l.sum, nanos)

	for {
		max := atomic.LoadUint64(&l.max)
		if nanos <= max {
			break
		}
		if atomic.CompareAndSwapUint64(&l.max, max, nanos) {
			break
		}
	}
}

// Snapshot returns the aggregated latency stats.
func (l *LatencyStats) Snapshot() LatencySnapshot {
	count := atomic.LoadUint64(&l.count)
	if count == 0 {
		return LatencySnapshot{}
	}
	sum := atomic.LoadUint64(&l.sum)
	max := atomic.LoadUint64(&l.max)
	return LatencySnapshot{
		Count: count,
		Max:   time.Duration(max),
		Avg:   time.Duration(sum / count),
	}
}

package revolve

type (
	// Metrics counts the lifetime activity of a [Strategy].
	// Counters only ever grow; [Strategy.ResetMetrics] zeroes them
	// independently of the slot collection.
	Metrics struct {
		// Stores counts Admit calls, including admissions
		// that were dropped because nothing could be evicted.
		Stores uint64
		// Evictions counts admissions that displaced a held slot.
		Evictions uint64
		// Recomputations counts states re-derived during the
		// backward sweep, as reported via RecordRecomputation.
		Recomputations uint64
	}
	// EraseResult reports the outcome of [Strategy.Erase].
	EraseResult uint8
	// Strategy is the capability contract shared by checkpoint
	// eviction policies. A Strategy owns only step-index bookkeeping;
	// the heavy state payloads live with the caller, keyed by step,
	// and must be kept in lockstep with the strategy's held set.
	// Concurrent access must be guarded by the caller.
	Strategy interface {
		// Admit registers a checkpoint at step and returns the
		// step it evicted to make room, or [NoStep] when nothing
		// was evicted. Persistent admissions permanently grow the
		// capacity by one and never evict. A non-persistent
		// admission at capacity with no evictable slot is dropped
		// and returns NoStep.
		Admit(step uint64, persistent bool) uint64
		// LastStep returns the highest held step.
		// It panics when the strategy holds nothing.
		LastStep() uint64
		// Erase removes the non-persistent slot at step.
		Erase(step uint64) EraseResult
		// Contains reports whether step is held.
		Contains(step uint64) bool
		// Reset drops every non-persistent slot. Capacity keeps
		// any growth from persistent admissions.
		Reset()
		Capacity() int
		Len() int
		Metrics() Metrics
		ResetMetrics()
		// RecordRecomputation is called by the replay driver once
		// per state re-derived during backward catch-up. Admit
		// never records it internally.
		RecordRecomputation()
	}
	// counters carries the metrics surface shared by the concrete strategies.
	counters struct {
		metrics Metrics
	}
)

// NoStep is the sentinel returned by [Strategy.Admit] when no slot was
// evicted. It is the maximum representable step index and never
// collides with a real step.
const NoStep = ^uint64(0)

// Erase outcomes.
const (
	// Erased means the slot was held and has been removed.
	Erased EraseResult = iota
	// NotFound means no slot was held at the given step.
	NotFound
	// Protected means the slot is persistent and was left in place.
	Protected
)

// ValidStep reports whether step is a real step index rather than [NoStep].
func ValidStep(step uint64) bool { return step != NoStep }

func (r EraseResult) String() string {
	switch r {
	case Erased:
		return "erased"
	case NotFound:
		return "not found"
	case Protected:
		return "protected"
	default:
		return "invalid"
	}
}

func (c *counters) Metrics() Metrics { return c.metrics }

func (c *counters) ResetMetrics() { c.metrics = Metrics{} }

func (c *counters) RecordRecomputation() { c.metrics.Recomputations++ }

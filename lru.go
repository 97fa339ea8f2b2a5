package revolve

import (
	"iter"
	"slices"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// LRU is a recency-based checkpointing strategy: when full it evicts
// the least recently admitted non-persistent slot. Recency is a poor
// predictor of replay distance, so it recomputes far more than
// [OnlineR2] on long runs; it exists as a contract-honoring baseline.
// Constructed by [NewLRU].
type LRU struct {
	recent     *simplelru.LRU[uint64, struct{}]
	persistent map[uint64]struct{}
	capacity   int
	evicted    uint64
	counters
}

var _ Strategy = (*LRU)(nil)

// NewLRU creates an [LRU] with the given non-persistent slot budget.
// Capacity must be at least 1.
func NewLRU(capacity int) (*LRU, error) {
	if capacity < 1 {
		return nil, capacityError(capacity, 1)
	}
	l := &LRU{
		persistent: make(map[uint64]struct{}),
		capacity:   capacity,
		evicted:    NoStep,
	}
	recent, err := simplelru.NewLRU(capacity, func(step uint64, _ struct{}) {
		l.evicted = step
	})
	if err != nil {
		return nil, err
	}
	l.recent = recent
	return l, nil
}

// Admit implements [Strategy.Admit]. Persistent steps are held outside
// the recency list, so the non-persistent budget stays constant as the
// capacity grows.
func (l *LRU) Admit(step uint64, persistent bool) uint64 {
	evicted := NoStep
	if persistent {
		l.capacity++
		l.persistent[step] = struct{}{}
	} else {
		l.evicted = NoStep
		l.recent.Add(step, struct{}{})
		evicted = l.evicted
	}
	l.metrics.Stores++
	if ValidStep(evicted) {
		l.metrics.Evictions++
	}
	return evicted
}

// LastStep implements [Strategy.LastStep].
func (l *LRU) LastStep() uint64 {
	if l.Len() == 0 {
		panic("revolve: LastStep on an empty strategy")
	}
	var (
		last  uint64
		first = true
	)
	for step := range l.persistent {
		if first || step > last {
			last = step
			first = false
		}
	}
	for _, step := range l.recent.Keys() {
		if first || step > last {
			last = step
			first = false
		}
	}
	return last
}

// Erase implements [Strategy.Erase].
func (l *LRU) Erase(step uint64) EraseResult {
	if _, held := l.persistent[step]; held {
		return Protected
	}
	if l.recent.Remove(step) {
		return Erased
	}
	return NotFound
}

// Contains implements [Strategy.Contains].
func (l *LRU) Contains(step uint64) bool {
	if _, held := l.persistent[step]; held {
		return true
	}
	return l.recent.Contains(step)
}

// Reset implements [Strategy.Reset].
func (l *LRU) Reset() { l.recent.Purge() }

// Capacity returns the slot budget, including growth
// from persistent admissions.
func (l *LRU) Capacity() int { return l.capacity }

// Len returns the number of held slots.
func (l *LRU) Len() int { return l.recent.Len() + len(l.persistent) }

// Steps returns an iterator over the held steps in ascending order.
func (l *LRU) Steps() iter.Seq[uint64] {
	steps := l.recent.Keys()
	for step := range l.persistent {
		steps = append(steps, step)
	}
	slices.Sort(steps)
	return slices.Values(steps)
}

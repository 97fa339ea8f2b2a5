package revolve

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/adjointlabs/go-revolve/internal/slotlist"
)

// OnlineR2 is the Stumm & Walther "Online r=2" checkpointing strategy.
// It keeps its slots as evenly spaced as possible without knowing the
// eventual run length: when full, it evicts the non-persistent slot
// whose removal leaves the smallest merged gap between its neighbors.
// Constructed by [NewOnlineR2].
type OnlineR2 struct {
	slots    slotlist.List
	capacity int
	counters
}

var _ Strategy = (*OnlineR2)(nil)

// NewOnlineR2 creates an [OnlineR2] with the given non-persistent slot
// budget. Capacity may be zero; persistent admissions grow it later.
func NewOnlineR2(capacity int) (*OnlineR2, error) {
	if capacity < 0 {
		return nil, capacityError(capacity, 0)
	}
	return &OnlineR2{capacity: capacity}, nil
}

// Admit implements [Strategy.Admit].
func (o *OnlineR2) Admit(step uint64, persistent bool) uint64 {
	evicted := NoStep
	if persistent {
		// Persistent slots permanently grow the budget,
		// so their admission always has room.
		o.capacity++
	}
	slot := slotlist.Slot{Step: step, Persistent: persistent}
	if o.slots.Len() < o.capacity {
		inserted := o.slots.Insert(slot)
		if debugging {
			assert(inserted, "admitted a step that is already held")
		}
	} else if i, ok := o.evictionCandidate(step); ok {
		evicted = o.slots.At(i).Step
		o.slots.RemoveAt(i)
		o.slots.Insert(slot)
	}
	// At capacity with every slot persistent the admission is
	// dropped: nothing was evicted and nothing was inserted.
	o.metrics.Stores++
	if ValidStep(evicted) {
		o.metrics.Evictions++
	}
	if debugging {
		assert(o.slots.Len() <= o.capacity, "slot count exceeds capacity")
	}
	return evicted
}

// evictionCandidate returns the index of the non-persistent slot whose
// removal leaves the smallest merged gap between its neighbors, with
// ties going to the lowest index. The left boundary of the first slot
// is step 0; newStep bounds the last slot on the right, which keeps
// the most recent checkpoint from being a trivial eviction target.
func (o *OnlineR2) evictionCandidate(newStep uint64) (int, bool) {
	var (
		bestIdx = -1
		bestGap = uint64(math.MaxUint64)
	)
	for i := range o.slots.Len() {
		if o.slots.At(i).Persistent {
			continue
		}
		var left uint64
		if i > 0 {
			left = o.slots.At(i - 1).Step
		}
		right := newStep
		if next := i + 1; next < o.slots.Len() {
			right = o.slots.At(next).Step
		}
		if gap := right - left; gap < bestGap {
			bestGap = gap
			bestIdx = i
		}
	}
	return bestIdx, bestIdx >= 0
}

// LastStep implements [Strategy.LastStep].
func (o *OnlineR2) LastStep() uint64 {
	if o.slots.Len() == 0 {
		panic("revolve: LastStep on an empty strategy")
	}
	return o.slots.Last().Step
}

// Erase implements [Strategy.Erase].
func (o *OnlineR2) Erase(step uint64) EraseResult {
	i, held := o.slots.Index(step)
	switch {
	case !held:
		return NotFound
	case o.slots.At(i).Persistent:
		return Protected
	default:
		o.slots.RemoveAt(i)
		return Erased
	}
}

// Contains implements [Strategy.Contains].
func (o *OnlineR2) Contains(step uint64) bool {
	_, held := o.slots.Index(step)
	return held
}

// Reset implements [Strategy.Reset].
func (o *OnlineR2) Reset() { o.slots.StripTransient() }

// Capacity returns the slot budget, including growth
// from persistent admissions.
func (o *OnlineR2) Capacity() int { return o.capacity }

// Len returns the number of held slots.
func (o *OnlineR2) Len() int { return o.slots.Len() }

// Steps returns an iterator over the held steps in ascending order.
func (o *OnlineR2) Steps() iter.Seq[uint64] { return o.slots.Steps() }

// String renders the held slots for diagnostics.
func (o *OnlineR2) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "online r=2: capacity=%d size=%d\n", o.capacity, o.slots.Len())
	for slot := range o.slots.Slots() {
		fmt.Fprintf(&b, "\tstep=%d", slot.Step)
		if slot.Persistent {
			b.WriteString(" persistent")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

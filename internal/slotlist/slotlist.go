// Package slotlist provides the step-sorted slot collection used by checkpoint eviction policies.
package slotlist

import (
	"cmp"
	"iter"
	"slices"
)

type (
	// Slot is the bookkeeping entry for one checkpointed step.
	// It carries no state payload; payloads live with the caller,
	// keyed by Step.
	Slot struct {
		// Step is the forward iteration index the slot stands for.
		Step uint64
		// Persistent marks a slot that is immune to eviction
		// and to removal via [List.StripTransient].
		Persistent bool
	}
	// List holds slots sorted ascending by step, steps unique.
	// The zero value is an empty list ready for use.
	List struct {
		slots []Slot
	}
)

func compareStep(slot Slot, step uint64) int {
	return cmp.Compare(slot.Step, step)
}

// Insert places slot in ascending step order and reports whether it
// was inserted. A slot for the same step already being present leaves
// the list unchanged.
func (l *List) Insert(slot Slot) bool {
	i, found := slices.BinarySearchFunc(l.slots, slot.Step, compareStep)
	if found {
		return false
	}
	l.slots = slices.Insert(l.slots, i, slot)
	return true
}

// Index returns the position of step and whether it is held.
func (l *List) Index(step uint64) (int, bool) {
	return slices.BinarySearchFunc(l.slots, step, compareStep)
}

// At returns the slot at position i.
func (l *List) At(i int) Slot { return l.slots[i] }

// RemoveAt removes the slot at position i.
func (l *List) RemoveAt(i int) {
	l.slots = slices.Delete(l.slots, i, i+1)
}

// Last returns the slot with the highest step.
// The list must not be empty.
func (l *List) Last() Slot { return l.slots[len(l.slots)-1] }

// Len returns the number of held slots.
func (l *List) Len() int { return len(l.slots) }

// StripTransient removes every non-persistent slot in place.
func (l *List) StripTransient() {
	l.slots = slices.DeleteFunc(l.slots, func(slot Slot) bool {
		return !slot.Persistent
	})
}

// Slots returns an iterator over the held slots in ascending step order.
func (l *List) Slots() iter.Seq[Slot] {
	return slices.Values(l.slots)
}

// Steps returns an iterator over the held steps in ascending order.
func (l *List) Steps() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, slot := range l.slots {
			if !yield(slot.Step) {
				return
			}
		}
	}
}

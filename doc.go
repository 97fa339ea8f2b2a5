// Package revolve implements checkpoint eviction strategies and a
// forward/backward replay driver for reconstructing intermediate
// computation states under a fixed memory budget, as needed by
// reverse-mode (adjoint-style) backward passes.
//
// Storing every intermediate state of a long forward run is often
// infeasible. A [Strategy] decides online, without knowing the total
// run length, which states stay resident and which are discarded,
// trading bounded recomputation for bounded memory. [Replay] drives the
// whole protocol: forward execution with checkpoint admission, then a
// backward sweep that recomputes evicted states from the nearest
// surviving checkpoint before handing each step to the caller.
//
// The default strategy is [OnlineR2], the "Online r=2" algorithm of
// the [Stumm & Walther 2010 paper]: a capacity-bounded, step-sorted
// slot collection that evicts the slot minimizing the merged gap left
// between its neighbors, keeping checkpoints near-uniformly spaced for
// runs of unknown length.
//
// Glossary and invariants:
//
//   - Checkpoint
//
//     A saved state paired with its step index, enabling replay
//     without restarting from the beginning.
//
//   - Persistent checkpoint
//
//     Permanently retained, immune to eviction; admitting one
//     irrevocably grows the capacity by one, so the non-persistent
//     budget never shrinks.
//
//   - Merged gap
//
//     The step distance between a slot's left and right neighbors if
//     that slot were removed. The incoming step bounds the rightmost
//     slot, so the newest checkpoint is never a trivial victim.
//
//   - Recomputation
//
//     Re-deriving a non-resident state by replaying the update
//     function forward from the nearest resident checkpoint.
//
//   - Resident store
//
//     The driver-owned step→state map. At every observable point its
//     key set equals the strategy's held-step set exactly (the
//     lockstep invariant). The strategy owns indices, never payloads.
//
//   - Slots stay sorted ascending by step, steps unique, and the slot
//     count never exceeds the capacity.
//
// Everything here is strictly single-threaded: a strategy and its
// paired resident store must not be mutated concurrently, and each
// independent replay run needs its own instances.
//
// Building with the revolve_debug tag enables internal assertions,
// including the lockstep check after every driver admission.
//
// [Stumm & Walther 2010 paper]: https://doi.org/10.1137/080742439
package revolve

package revolve

type (
	// UpdateFunc advances the forward computation by one step,
	// returning the state at step+1.
	UpdateFunc[State any] func(step uint64, state State) (State, error)
	// ReverseFunc consumes one step of the backward sweep. The replay
	// driver invokes it exactly once per step, from the last step down
	// to step 0, with that step's forward state resident.
	ReverseFunc[State any] func(step uint64, state State) error
)

// Replay runs steps forward iterations from initial while checkpointing
// at most storage intermediate states at a time, then sweeps backward
// invoking reverse once per step from steps down to 0, recomputing
// non-resident states from the nearest surviving checkpoint. It returns
// the state reached by the final forward step.
//
// Checkpoints are scheduled by a fresh [OnlineR2] sized to storage;
// use [ReplayWith] to supply a different strategy. Errors from update
// and reverse propagate unchanged. Storage must be at least 1.
func Replay[State any](
	steps uint64, storage int, initial State,
	update UpdateFunc[State], reverse ReverseFunc[State],
) (State, error) {
	var zero State
	if storage < 1 {
		// With a zero non-persistent budget every catch-up
		// admission is dropped and the backward sweep can
		// never make progress.
		return zero, capacityError(storage, 1)
	}
	strategy, err := NewOnlineR2(storage)
	if err != nil {
		return zero, err
	}
	return ReplayWith(strategy, steps, initial, update, reverse)
}

// ReplayWith is [Replay] with an injected checkpoint strategy.
// The strategy should be empty; its step bookkeeping is kept in
// lockstep with the driver's resident state store for the whole run.
func ReplayWith[State any](
	strategy Strategy, steps uint64, initial State,
	update UpdateFunc[State], reverse ReverseFunc[State],
) (State, error) {
	var zero State
	// Step 0 is the fallback replay origin: admitted persistent so it
	// can never be evicted, which also guarantees LastStep is always
	// answerable below.
	resident := map[uint64]State{0: initial}
	strategy.Admit(0, true)

	state := initial
	for n := uint64(0); n < steps; n++ {
		next, err := update(n, state)
		if err != nil {
			return zero, err
		}
		state = next
		admitResident(strategy, resident, n+1, state)
	}
	final := state

	for i := steps; ; i-- {
		// Catch up: replay forward from the nearest resident
		// checkpoint until step i is resident again.
		for strategy.LastStep() < i {
			k := strategy.LastStep()
			next, err := update(k, resident[k])
			if err != nil {
				return zero, err
			}
			admitResident(strategy, resident, k+1, next)
			strategy.RecordRecomputation()
		}
		if err := reverse(i, resident[i]); err != nil {
			return zero, err
		}
		// Retire i on both sides; the freed slot is reusable for
		// the remaining sweep. At i == 0 the strategy keeps its
		// persistent slot while the resident entry goes away.
		strategy.Erase(i)
		delete(resident, i)
		if i == 0 {
			break
		}
	}
	return final, nil
}

// admitResident registers step with the strategy and keeps the resident
// store in lockstep: the evicted entry, if any, is dropped before the
// new state is stored.
func admitResident[State any](
	strategy Strategy, resident map[uint64]State,
	step uint64, state State,
) {
	if evicted := strategy.Admit(step, false); ValidStep(evicted) {
		delete(resident, evicted)
	}
	resident[step] = state
	if debugging {
		assert(strategy.Len() == len(resident),
			"strategy and resident store diverged in size")
		for held := range resident {
			assert(strategy.Contains(held),
				"resident state for a step the strategy does not hold")
		}
	}
}

package revolve_test

import (
	"fmt"
	"testing"

	revolve "github.com/adjointlabs/go-revolve"
)

type (
	strategyCtor        = func(capacity int) (revolve.Strategy, error)
	strategyConstructor struct {
		name string
		new  strategyCtor
	}
)

func strategyConstructors() []strategyConstructor {
	return []strategyConstructor{
		{
			"OnlineR2",
			func(capacity int) (revolve.Strategy, error) {
				return revolve.NewOnlineR2(capacity)
			},
		},
		{
			"LRU",
			func(capacity int) (revolve.Strategy, error) {
				return revolve.NewLRU(capacity)
			},
		},
	}
}

func BenchmarkReplay(b *testing.B) {
	const steps = 1 << 10
	var (
		constructors = strategyConstructors()
		capacities   = []int{8, 32, 128}
	)
	for _, capacity := range capacities {
		b.Run(fmt.Sprintf("Cap%d", capacity), newBenchCapacity(
			constructors, capacity, steps,
		))
	}
}

func newBenchCapacity(
	constructors []strategyConstructor,
	capacity int, steps uint64,
) func(b *testing.B) {
	return func(b *testing.B) {
		for _, constructor := range constructors {
			b.Run(constructor.name, newBenchStrategy(
				constructor.new, capacity, steps,
			))
		}
	}
}

func newBenchStrategy(
	ctor strategyCtor, capacity int, steps uint64,
) func(b *testing.B) {
	return func(b *testing.B) {
		var (
			update  = func(_ uint64, state int) (int, error) { return state + 1, nil }
			reverse = func(uint64, int) error { return nil }
		)
		b.ReportAllocs()
		var (
			recomputations uint64
			runs           int
		)
		for b.Loop() {
			strategy, err := ctor(capacity)
			if err != nil {
				b.Fatal(err)
			}
			if _, err := revolve.ReplayWith(
				strategy, steps, 0, update, reverse,
			); err != nil {
				b.Fatal(err)
			}
			recomputations += strategy.Metrics().Recomputations
			runs++
		}
		b.StopTimer()
		if runs > 0 {
			b.ReportMetric(
				float64(recomputations)/float64(runs),
				"recomputations/run",
			)
		}
	}
}

package roundup

import (
	"math/rand"
	"testing"
)

func TestSampler_ConservativeNeverCrypto(t *testing.T) {
	s := NewSampler(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		if got := s.Sample("conservative"); got == AllocationCrypto {
			t.Fatalf("conservative tier drew crypto on trial %d", i)
		}
	}
}

func TestSampler_UnknownTierNeverCrypto(t *testing.T) {
	s := NewSampler(rand.NewSource(2))

	for i := 0; i < 10000; i++ {
		if got := s.Sample("yolo"); got == AllocationCrypto {
			t.Fatalf("unknown tier drew crypto on trial %d", i)
		}
	}
}

func TestSampler_OnlyKnownAllocations(t *testing.T) {
	s := NewSampler(rand.NewSource(3))
	valid := map[Allocation]bool{
		AllocationHighYield: true,
		AllocationETF:       true,
		AllocationCrypto:    true,
	}

	for _, tier := range []string{"conservative", "moderate", "aggressive", ""} {
		for i := 0; i < 1000; i++ {
			if got := s.Sample(tier); !valid[got] {
				t.Fatalf("Sample(%q) = %q, not a known allocation", tier, got)
			}
		}
	}
}

// Seeded samplers must be reproducible.
func TestSampler_Deterministic(t *testing.T) {
	a := NewSampler(rand.NewSource(42))
	b := NewSampler(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		got, want := a.Sample("moderate"), b.Sample("moderate")
		if got != want {
			t.Fatalf("draw %d diverged: %q vs %q", i, got, want)
		}
	}
}

// Empirical frequencies should roughly track the weight tables.
func TestSampler_Distribution(t *testing.T) {
	const trials = 100000
	s := NewSampler(rand.NewSource(7))

	counts := map[Allocation]int{}
	for i := 0; i < trials; i++ {
		counts[s.Sample("moderate")]++
	}

	expected := map[Allocation]float64{
		AllocationHighYield: 0.5,
		AllocationETF:       0.4,
		AllocationCrypto:    0.1,
	}
	for alloc, want := range expected {
		got := float64(counts[alloc]) / trials
		if got < want-0.02 || got > want+0.02 {
			t.Errorf("moderate %s frequency = %.3f, want about %.1f", alloc, got, want)
		}
	}
}

func TestWeightTable_SumsToTen(t *testing.T) {
	check := func(tier string, weights []allocationWeight) {
		sum := 0
		for _, w := range weights {
			sum += w.weight
		}
		if sum != totalWeight {
			t.Errorf("%s weights sum to %d, want %d", tier, sum, totalWeight)
		}
	}

	for tier, weights := range weightTable {
		check(tier, weights)
	}
	check("default", defaultWeights)
}

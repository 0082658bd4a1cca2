package roundup

import (
	"math/rand"
	"time"
)

// Allocation is the synthetic investment bucket a round-up lands in.
type Allocation string

const (
	AllocationHighYield Allocation = "high-yield savings"
	AllocationETF       Allocation = "ETF"
	AllocationCrypto    Allocation = "crypto"
)

// allocationWeight pairs a bucket with its integer draw weight.
type allocationWeight struct {
	allocation Allocation
	weight     int
}

// Per-tier weights, each summing to 10. Conservative carries zero crypto
// weight, so crypto can never be drawn for that tier.
var weightTable = map[string][]allocationWeight{
	"conservative": {
		{AllocationHighYield, 7},
		{AllocationETF, 3},
		{AllocationCrypto, 0},
	},
	"moderate": {
		{AllocationHighYield, 5},
		{AllocationETF, 4},
		{AllocationCrypto, 1},
	},
	"aggressive": {
		{AllocationHighYield, 3},
		{AllocationETF, 5},
		{AllocationCrypto, 2},
	},
}

// defaultWeights is used for unknown risk tiers.
var defaultWeights = []allocationWeight{
	{AllocationHighYield, 5},
	{AllocationETF, 5},
	{AllocationCrypto, 0},
}

const totalWeight = 10

// Sampler draws allocation buckets from the risk-tier weight tables.
// The random source is injected so tests can seed it.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler from the given source. A nil source falls
// back to a time-seeded one.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Sampler{rng: rand.New(src)}
}

// Sample draws one allocation bucket for the given risk tier. Each call
// is independent; there is no memory across calls.
func (s *Sampler) Sample(riskPreference string) Allocation {
	weights, ok := weightTable[riskPreference]
	if !ok {
		weights = defaultWeights
	}

	n := s.rng.Intn(totalWeight)
	for _, w := range weights {
		if n < w.weight {
			return w.allocation
		}
		n -= w.weight
	}
	// unreachable while weights sum to totalWeight
	return AllocationHighYield
}

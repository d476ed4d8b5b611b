package genetic

import (
	"math/rand/v2"
)

// --- Concrete Operator Implementations ---

// BiasedSelector favors low indices of a ranked population with a compound draw
// k is uniform in [1, size), the index is k scaled by a uniform [0, 1) value and truncated
// With size 1 the range degenerates to k = 1 and the only candidate is returned
type BiasedSelector struct{}

// Select implements the Selector interface using the compound rank bias
func (BiasedSelector) Select(ranked []Candidate, rng *rand.Rand) *Individual {
	k := 1
	if len(ranked) > 1 {
		k = 1 + rng.IntN(len(ranked)-1)
	}
	return ranked[int(rng.Float64()*float64(k))].Individual
}

// TournamentSelector implements tournament selection
// Randomly samples a small group and selects the best of it
type TournamentSelector struct {
	// Size is the number of candidates competing in each tournament
	Size int
}

// Select implements the Selector interface using tournament selection
func (ts TournamentSelector) Select(ranked []Candidate, rng *rand.Rand) *Individual {
	poolSize := len(ranked)

	tournSize := ts.Size
	if tournSize > poolSize {
		tournSize = poolSize
	}
	if tournSize < 1 {
		tournSize = 2 // Default minimum
	}

	winner := ranked[rng.IntN(poolSize)]
	for i := 1; i < tournSize; i++ {
		if c := ranked[rng.IntN(poolSize)]; c.Score > winner.Score {
			winner = c
		}
	}
	return winner.Individual
}

// RouletteSelector implements fitness-proportionate selection
// A population with zero total fitness falls back to a uniform pick
type RouletteSelector struct{}

// Select implements roulette wheel selection
func (RouletteSelector) Select(ranked []Candidate, rng *rand.Rand) *Individual {
	total := 0.0
	for _, c := range ranked {
		total += c.Score
	}
	if total <= 0 {
		return ranked[rng.IntN(len(ranked))].Individual
	}

	spin := rng.Float64() * total
	cumulative := 0.0
	for _, c := range ranked {
		cumulative += c.Score
		if spin < cumulative {
			return c.Individual
		}
	}
	// Float rounding can leave spin just past the final bucket
	return ranked[len(ranked)-1].Individual
}

// SinglePointCombiner performs single-point crossover
// A midpoint m is drawn per child; genes after m come from a, the rest from b
type SinglePointCombiner struct{}

// Combine creates one child using single-point crossover
func (SinglePointCombiner) Combine(a, b *Individual, rng *rand.Rand) *Individual {
	child := newBlankIndividual(a.target, rng)
	if len(child.genes) == 0 {
		return child
	}

	midpoint := rng.IntN(len(child.genes))
	for i := range child.genes {
		if i > midpoint {
			child.genes[i] = a.genes[i]
		} else {
			child.genes[i] = b.genes[i]
		}
	}
	return child
}

// UniformCombiner performs uniform crossover
// Each gene independently comes from a with MixProbability, otherwise from b
type UniformCombiner struct {
	MixProbability float64
}

// Combine creates one child using uniform crossover
func (uc UniformCombiner) Combine(a, b *Individual, rng *rand.Rand) *Individual {
	child := newBlankIndividual(a.target, rng)
	for i := range child.genes {
		if rng.Float64() < uc.MixProbability {
			child.genes[i] = a.genes[i]
		} else {
			child.genes[i] = b.genes[i]
		}
	}
	return child
}

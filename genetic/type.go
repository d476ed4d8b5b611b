package genetic

// Package genetic evolves a population of random character strings toward a fixed target phrase
// 1. Individuals own their genes and score themselves against the shared target
// 2. Population drives the generational loop and emits events instead of writing output
// 3. Selection and crossover are pluggable operators, randomness is always injected

import (
	"math/rand/v2"
)

// --- Core Data Structures ---

// Candidate pairs an individual with its evaluated fitness
// Score is only meaningful after the owning population has been evaluated
type Candidate struct {
	// Individual holds the gene sequence
	Individual *Individual
	// Score is the cached fitness (higher = better)
	Score float64
}

// Stats contains statistical information about one evaluated generation
type Stats struct {
	Generation int
	Best       float64
	Worst      float64
	Mean       float64
	StdDev     float64 // Population standard deviation of fitness
}

// --- Core Operators as Interfaces ---

// Selector defines the parent selection operator
// ranked is ordered by descending score, index 0 is the fittest candidate
type Selector interface {
	Select(ranked []Candidate, rng *rand.Rand) *Individual
}

// Combiner defines the recombination operator
// The child always has the same length as its parents
type Combiner interface {
	Combine(a, b *Individual, rng *rand.Rand) *Individual
}

package genetic

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/phrase-evolver/parameter"
)

// Individual is a fixed-length gene sequence scored against a shared target
// Genes are bytes in [GAGeneMin, GAGeneMax), one per target byte
type Individual struct {
	target string
	genes  []byte
	rng    *rand.Rand
}

// NewIndividual creates an individual with uniformly random genes
func NewIndividual(target string, rng *rand.Rand) *Individual {
	ind := newBlankIndividual(target, rng)
	for i := range ind.genes {
		ind.genes[i] = randomGene(rng)
	}
	return ind
}

// newBlankIndividual allocates genes without drawing them, used by combiners that overwrite every gene
func newBlankIndividual(target string, rng *rand.Rand) *Individual {
	return &Individual{
		target: target,
		genes:  make([]byte, len(target)),
		rng:    rng,
	}
}

// individualFromPhrase rebuilds an individual from its rendered form
func individualFromPhrase(target, phrase string, rng *rand.Rand) (*Individual, error) {
	if len(phrase) != len(target) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(phrase), len(target))
	}
	ind := newBlankIndividual(target, rng)
	copy(ind.genes, phrase)
	return ind, nil
}

func randomGene(rng *rand.Rand) byte {
	return byte(parameter.GAGeneMin + rng.IntN(parameter.GAGeneMax-parameter.GAGeneMin))
}

// EvaluateFitness returns the fraction of genes matching the target
// 0 = no gene matches, 1 = exact match; an empty target is an exact match
func (ind *Individual) EvaluateFitness() float64 {
	if len(ind.target) == 0 {
		return 1
	}

	score := 0
	for i, g := range ind.genes {
		if g == ind.target[i] {
			score++
		}
	}
	return float64(score) / float64(len(ind.target))
}

// Mutate replaces each gene with a fresh random gene with probability rate
func (ind *Individual) Mutate(rate float64) {
	for i := range ind.genes {
		if ind.rng.Float64() < rate {
			ind.genes[i] = randomGene(ind.rng)
		}
	}
}

// Genes returns a copy of the gene sequence
func (ind *Individual) Genes() []byte {
	genes := make([]byte, len(ind.genes))
	copy(genes, ind.genes)
	return genes
}

// Len returns the number of genes
func (ind *Individual) Len() int {
	return len(ind.genes)
}

func (ind *Individual) String() string {
	return string(ind.genes)
}

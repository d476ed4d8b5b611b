package genetic

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/gofrs/uuid"
	"gonum.org/v1/gonum/stat"
)

// PopulationConfig holds configuration parameters for a population
type PopulationConfig struct {
	// Target is the phrase the population evolves toward
	Target string
	// Size is the number of individuals in every generation
	Size int
	// MutationRate is the per-gene mutation probability (0-1)
	MutationRate float64
	// MaxGenerations stops Run after this many generations, 0 for no limit
	MaxGenerations int
}

// Validate checks the configuration
func (c PopulationConfig) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}
	if math.IsNaN(c.MutationRate) || c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidMutationRate, c.MutationRate)
	}
	if c.MaxGenerations < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGenerationLimit, c.MaxGenerations)
	}
	return nil
}

// Result summarizes a finished run
type Result struct {
	RunID      uuid.UUID
	Generation int
	Best       string
	Converged  bool
}

// Population owns the individuals of the current generation and drives evolution
type Population struct {
	// Operators
	selector Selector
	combiner Combiner
	sink     Sink

	// Configuration
	config PopulationConfig

	// State
	rng        *rand.Rand
	runID      uuid.UUID
	members    []Candidate
	generation int
	history    []Stats
}

// NewPopulation validates config and creates Size random individuals
// A nil rng is replaced with a randomly seeded generator
func NewPopulation(config PopulationConfig, rng *rand.Rand) (*Population, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	runID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}

	p := &Population{
		selector:   BiasedSelector{},
		combiner:   SinglePointCombiner{},
		config:     config,
		rng:        rng,
		runID:      runID,
		members:    make([]Candidate, config.Size),
		generation: 1,
	}
	for i := range p.members {
		p.members[i] = Candidate{Individual: NewIndividual(config.Target, rng)}
	}

	return p, nil
}

// SetSelector replaces the parent selection operator, nil restores the default
func (p *Population) SetSelector(selector Selector) {
	if selector == nil {
		selector = BiasedSelector{}
	}
	p.selector = selector
}

// SetCombiner replaces the crossover operator, nil restores the default
func (p *Population) SetCombiner(combiner Combiner) {
	if combiner == nil {
		combiner = SinglePointCombiner{}
	}
	p.combiner = combiner
}

// SetSink sets the event consumer, nil discards events
func (p *Population) SetSink(sink Sink) {
	p.sink = sink
}

// SetRunID overrides the generated run identifier, used when resuming a snapshot
func (p *Population) SetRunID(id uuid.UUID) {
	p.runID = id
}

// Run evolves the population until the best individual matches the target
// It returns ErrGenerationLimit when MaxGenerations is set and reached,
// and ctx.Err() when ctx is cancelled between generations
func (p *Population) Run(ctx context.Context) (Result, error) {
	for {
		select {
		case <-ctx.Done():
			return p.result(), ctx.Err()
		default:
		}

		stats := p.Evaluate()
		best := p.members[0].Individual.String()

		if best == p.config.Target {
			p.emit(Event{
				RunID:       p.runID,
				Generation:  p.generation,
				Phrase:      best,
				Best:        best,
				BestFitness: stats.Best,
				Stats:       stats,
				Final:       true,
			})
			return p.result(), nil
		}

		sample := p.members[p.rng.IntN(len(p.members))].Individual.String()
		p.emit(Event{
			RunID:       p.runID,
			Generation:  p.generation,
			Phrase:      sample,
			Best:        best,
			BestFitness: stats.Best,
			Stats:       stats,
		})

		if p.config.MaxGenerations > 0 && p.generation >= p.config.MaxGenerations {
			return p.result(), fmt.Errorf("%w: %d", ErrGenerationLimit, p.config.MaxGenerations)
		}

		p.Breed()
		p.generation++
	}
}

// Evaluate scores every individual, sorts by descending fitness and records statistics
// The sort is stable so equal scores keep their previous relative order
func (p *Population) Evaluate() Stats {
	for i := range p.members {
		p.members[i].Score = p.members[i].Individual.EvaluateFitness()
	}

	sort.SliceStable(p.members, func(i, j int) bool {
		return p.members[i].Score > p.members[j].Score
	})

	scores := make([]float64, len(p.members))
	for i, c := range p.members {
		scores[i] = c.Score
	}
	mean, stdDev := stat.PopMeanStdDev(scores, nil)

	stats := Stats{
		Generation: p.generation,
		Best:       scores[0],
		Worst:      scores[len(scores)-1],
		Mean:       mean,
		StdDev:     stdDev,
	}
	p.history = append(p.history, stats)
	return stats
}

// Breed replaces the population with Size children
// Each child is a crossover of two selected parents followed by mutation
func (p *Population) Breed() {
	next := make([]Candidate, 0, p.config.Size)
	for range p.config.Size {
		parentA := p.SelectParent()
		parentB := p.SelectParent()
		child := p.Crossover(parentA, parentB)
		child.Mutate(p.config.MutationRate)
		next = append(next, Candidate{Individual: child})
	}
	p.members = next
}

// SelectParent picks one parent with the configured selector
func (p *Population) SelectParent() *Individual {
	return p.selector.Select(p.members, p.rng)
}

// Crossover combines two parents with the configured combiner
func (p *Population) Crossover(a, b *Individual) *Individual {
	return p.combiner.Combine(a, b, p.rng)
}

// Restore replaces the members and generation counter with saved state
// Every phrase must match the target length and the count must equal Size
func (p *Population) Restore(generation int, phrases []string) error {
	if len(phrases) != p.config.Size {
		return fmt.Errorf("%w: snapshot holds %d individuals, population expects %d", ErrInvalidSize, len(phrases), p.config.Size)
	}
	if generation < 1 {
		return fmt.Errorf("restore: generation %d out of range", generation)
	}

	members := make([]Candidate, len(phrases))
	for i, phrase := range phrases {
		ind, err := individualFromPhrase(p.config.Target, phrase, p.rng)
		if err != nil {
			return fmt.Errorf("restore member %d: %w", i, err)
		}
		members[i] = Candidate{Individual: ind}
	}

	p.members = members
	p.generation = generation
	p.history = nil
	return nil
}

func (p *Population) emit(e Event) {
	if p.sink != nil {
		p.sink.Observe(e)
	}
}

func (p *Population) result() Result {
	return Result{
		RunID:      p.runID,
		Generation: p.generation,
		Best:       p.Best().String(),
		Converged:  p.Converged(),
	}
}

// Best returns the first member, the fittest one after Evaluate
func (p *Population) Best() *Individual {
	return p.members[0].Individual
}

// Converged reports whether any member matches the target exactly
func (p *Population) Converged() bool {
	for _, c := range p.members {
		if c.Individual.String() == p.config.Target {
			return true
		}
	}
	return false
}

// Phrases returns the rendered members in population order
func (p *Population) Phrases() []string {
	phrases := make([]string, len(p.members))
	for i, c := range p.members {
		phrases[i] = c.Individual.String()
	}
	return phrases
}

// Members returns a copy of the current candidates
func (p *Population) Members() []Candidate {
	members := make([]Candidate, len(p.members))
	copy(members, p.members)
	return members
}

// Generation returns the current generation number, starting at 1
func (p *Population) Generation() int {
	return p.generation
}

// Size returns the configured population size
func (p *Population) Size() int {
	return p.config.Size
}

// Target returns the phrase being evolved toward
func (p *Population) Target() string {
	return p.config.Target
}

// MutationRate returns the per-gene mutation probability
func (p *Population) MutationRate() float64 {
	return p.config.MutationRate
}

// RunID returns the identifier stamped on events and snapshots
func (p *Population) RunID() uuid.UUID {
	return p.runID
}

// History returns the statistics of every evaluated generation
func (p *Population) History() []Stats {
	return p.history
}

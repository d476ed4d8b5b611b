package config

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/phrase-evolver/genetic"
	"github.com/lixenwraith/phrase-evolver/parameter"
)

// Config holds everything needed to set up one evolution run
type Config struct {
	Target         string  `toml:"target"`
	PopulationSize int     `toml:"population_size"`
	MutationRate   float64 `toml:"mutation_rate"`
	MaxGenerations int     `toml:"max_generations"`
	// Seed for random number generation (0 for random seed)
	Seed           uint64  `toml:"seed"`
	Selection      string  `toml:"selection"`
	Crossover      string  `toml:"crossover"`
	TournamentSize int     `toml:"tournament_size"`
	MixProbability float64 `toml:"mix_probability"`
	SnapshotDir    string  `toml:"snapshot_dir"`
}

// Default returns the configuration built from parameter constants
func Default() Config {
	return Config{
		Target:         parameter.GATargetPhrase,
		PopulationSize: parameter.GAPopulationSize,
		MutationRate:   parameter.GAMutationRate,
		MaxGenerations: parameter.GAMaxGenerations,
		Seed:           0,
		Selection:      parameter.SelectionBiased,
		Crossover:      parameter.CrossoverSinglePoint,
		TournamentSize: parameter.GATournamentSize,
		MixProbability: parameter.GACrossoverMixProbability,
		SnapshotDir:    parameter.GeneticSnapshotPath,
	}
}

// Load decodes a TOML file over the defaults and validates the result
// Keys the file sets but Config does not know are rejected
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks population bounds and operator settings
func (c Config) Validate() error {
	if err := c.Population().Validate(); err != nil {
		return err
	}

	switch c.Selection {
	case parameter.SelectionBiased, parameter.SelectionRoulette:
	case parameter.SelectionTournament:
		if c.TournamentSize < 1 {
			return fmt.Errorf("tournament_size must be at least 1, got %d", c.TournamentSize)
		}
	default:
		return fmt.Errorf("unknown selection %q", c.Selection)
	}

	switch c.Crossover {
	case parameter.CrossoverSinglePoint:
	case parameter.CrossoverUniform:
		if math.IsNaN(c.MixProbability) || c.MixProbability < 0 || c.MixProbability > 1 {
			return fmt.Errorf("mix_probability must be within [0, 1], got %v", c.MixProbability)
		}
	default:
		return fmt.Errorf("unknown crossover %q", c.Crossover)
	}

	if c.SnapshotDir == "" {
		return errors.New("snapshot_dir must not be empty")
	}
	return nil
}

// Population returns the population settings
func (c Config) Population() genetic.PopulationConfig {
	return genetic.PopulationConfig{
		Target:         c.Target,
		Size:           c.PopulationSize,
		MutationRate:   c.MutationRate,
		MaxGenerations: c.MaxGenerations,
	}
}

// Selector returns the configured parent selection operator
func (c Config) Selector() genetic.Selector {
	switch c.Selection {
	case parameter.SelectionTournament:
		return genetic.TournamentSelector{Size: c.TournamentSize}
	case parameter.SelectionRoulette:
		return genetic.RouletteSelector{}
	default:
		return genetic.BiasedSelector{}
	}
}

// Combiner returns the configured crossover operator
func (c Config) Combiner() genetic.Combiner {
	if c.Crossover == parameter.CrossoverUniform {
		return genetic.UniformCombiner{MixProbability: c.MixProbability}
	}
	return genetic.SinglePointCombiner{}
}

// RNG returns a PCG generator for Seed, or a randomly seeded one when Seed is 0
func (c Config) RNG() *rand.Rand {
	if c.Seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}

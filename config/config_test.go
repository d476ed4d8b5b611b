package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/phrase-evolver/genetic"
	"github.com/lixenwraith/phrase-evolver/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parameter.GATargetPhrase, cfg.Target)
	assert.Equal(t, parameter.GAPopulationSize, cfg.PopulationSize)
	assert.IsType(t, genetic.BiasedSelector{}, cfg.Selector())
	assert.IsType(t, genetic.SinglePointCombiner{}, cfg.Combiner())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
target = "abc"
population_size = 200
mutation_rate = 0.01
max_generations = 500
seed = 7
selection = "tournament"
tournament_size = 4
crossover = "uniform"
mix_probability = 0.25
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.Target)
	assert.Equal(t, 200, cfg.PopulationSize)
	assert.Equal(t, 0.01, cfg.MutationRate)
	assert.Equal(t, 500, cfg.MaxGenerations)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, genetic.TournamentSelector{Size: 4}, cfg.Selector())
	assert.Equal(t, genetic.UniformCombiner{MixProbability: 0.25}, cfg.Combiner())
	// Unset keys keep their defaults
	assert.Equal(t, parameter.GeneticSnapshotPath, cfg.SnapshotDir)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero population", `population_size = 0`},
		{"mutation rate", `mutation_rate = 2.0`},
		{"unknown selection", `selection = "elitist"`},
		{"unknown crossover", `crossover = "two-point"`},
		{"tournament size", "selection = \"tournament\"\ntournament_size = 0"},
		{"mix probability", "crossover = \"uniform\"\nmix_probability = -1.0"},
		{"unknown key", `population = 10`},
		{"syntax", `target = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ZeroPopulationWrapsSentinel(t *testing.T) {
	_, err := Load(writeConfig(t, `population_size = -5`))
	assert.ErrorIs(t, err, genetic.ErrInvalidSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestRNG_SeedIsReproducible(t *testing.T) {
	cfg := Default()
	cfg.Seed = 99

	a, b := cfg.RNG(), cfg.RNG()
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

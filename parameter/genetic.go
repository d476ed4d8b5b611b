package parameter

// Persistence and logging paths
const (
	// GeneticSnapshotPath is the directory for population snapshot files
	GeneticSnapshotPath = "./config/genetic"

	// LogDir holds the debug log file
	LogDir = "logs"

	// LogFileName is the debug log file name inside LogDir
	LogFileName = "phrase-evolver.log"
)

// Genetic Algorithm - Population Configuration
const (
	// GATargetPhrase is the phrase evolved when no target is configured
	GATargetPhrase = "Trying out a really long string for this Genetic Algorithm program that i just created, hope it doesn't break!"

	// GAPopulationSize is the number of individuals in each generation
	GAPopulationSize = 1000

	// GAMutationRate is the per-gene replacement probability (0.0-1.0)
	GAMutationRate = 0.0005

	// GAMaxGenerations caps the evolution loop, 0 runs until convergence
	GAMaxGenerations = 0

	// GATournamentSize for tournament selection pressure
	GATournamentSize = 3

	// GACrossoverMixProbability for uniform crossover
	GACrossoverMixProbability = 0.5
)

// Genetic Algorithm - Gene Range
const (
	// GAGeneMin is the lowest gene value (space)
	GAGeneMin = 32

	// GAGeneMax is the exclusive upper gene bound, DEL is never drawn
	GAGeneMax = 127
)

// Operator names accepted by configuration
const (
	SelectionBiased     = "biased"
	SelectionTournament = "tournament"
	SelectionRoulette   = "roulette"

	CrossoverSinglePoint = "single-point"
	CrossoverUniform     = "uniform"
)

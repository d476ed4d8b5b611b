package genetic

import "errors"

var (
	// ErrInvalidSize is returned when a population is configured with fewer than one individual
	ErrInvalidSize = errors.New("population size must be greater than zero")
	// ErrInvalidMutationRate is returned for a mutation rate outside [0, 1]
	ErrInvalidMutationRate = errors.New("mutation rate must be within [0, 1]")
	// ErrInvalidGenerationLimit is returned for a negative generation cap
	ErrInvalidGenerationLimit = errors.New("max generations must not be negative")
	// ErrGenerationLimit is returned by Run when the generation cap is reached without convergence
	ErrGenerationLimit = errors.New("generation limit reached")
	// ErrLengthMismatch is returned when a phrase does not match the target length
	ErrLengthMismatch = errors.New("phrase length does not match target")
)

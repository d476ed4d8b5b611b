package persistence

import (
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/lixenwraith/phrase-evolver/genetic"
)

// SnapshotDTO is the serializable population state
type SnapshotDTO struct {
	RunID        string   `toml:"run_id"`
	Target       string   `toml:"target"`
	Generation   int      `toml:"generation"`
	MutationRate float64  `toml:"mutation_rate"`
	Converged    bool     `toml:"converged"`
	Members      []string `toml:"members"`
}

// FromPopulation converts a population to a DTO
func FromPopulation(pop *genetic.Population) SnapshotDTO {
	if pop == nil {
		return SnapshotDTO{}
	}

	return SnapshotDTO{
		RunID:        pop.RunID().String(),
		Target:       pop.Target(),
		Generation:   pop.Generation(),
		MutationRate: pop.MutationRate(),
		Converged:    pop.Converged(),
		Members:      pop.Phrases(),
	}
}

// Restore loads the snapshot members into pop
// The snapshot must have been taken for the same target
func (dto SnapshotDTO) Restore(pop *genetic.Population) error {
	if dto.Target != pop.Target() {
		return fmt.Errorf("snapshot target %q does not match %q", dto.Target, pop.Target())
	}

	if err := pop.Restore(dto.Generation, dto.Members); err != nil {
		return err
	}

	if dto.RunID != "" {
		id, err := uuid.FromString(dto.RunID)
		if err != nil {
			return fmt.Errorf("snapshot run id: %w", err)
		}
		pop.SetRunID(id)
	}
	return nil
}

package repository

import (
	"context"

	"rental-agent/domain"
)

// SimulationRepository keeps the history of computed simulations.
type SimulationRepository interface {
	Save(ctx context.Context, record domain.SimulationRecord) error
	// Recent returns at most limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.SimulationRecord, error)
}

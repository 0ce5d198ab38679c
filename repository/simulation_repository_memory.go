package repository

import (
	"context"
	"sync"

	"rental-agent/domain"
)

// SimulationRepositoryMemory is an in-memory implementation of SimulationRepository.
type SimulationRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.SimulationRecord
}

// NewSimulationRepositoryMemory creates a new in-memory simulation repository.
func NewSimulationRepositoryMemory() *SimulationRepositoryMemory {
	return &SimulationRepositoryMemory{
		data: []domain.SimulationRecord{},
	}
}

// Save stores the record in memory.
func (r *SimulationRepositoryMemory) Save(
	_ context.Context,
	record domain.SimulationRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, record)
	return nil
}

func (r *SimulationRepositoryMemory) Recent(
	_ context.Context,
	limit int,
) ([]domain.SimulationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := min(max(limit, 0), len(r.data))
	records := make([]domain.SimulationRecord, 0, n)
	for i := len(r.data) - 1; i >= len(r.data)-n; i-- {
		records = append(records, r.data[i])
	}
	return records, nil
}

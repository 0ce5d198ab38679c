package service

import (
	"context"
	"errors"

	"rental-agent/domain"
)

type MockSimulationRepository struct {
	Saved      []domain.SimulationRecord
	ForceError bool
	LastLimit  int
}

func (m *MockSimulationRepository) Save(
	_ context.Context,
	record domain.SimulationRecord,
) error {
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, record)
	return nil
}

func (m *MockSimulationRepository) Recent(
	_ context.Context,
	limit int,
) ([]domain.SimulationRecord, error) {
	m.LastLimit = limit
	if m.ForceError {
		return nil, errors.New("list error")
	}
	return m.Saved[:min(limit, len(m.Saved))], nil
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, bool) { return "", false }

func (failingCache) Set(context.Context, string, string) error { return errors.New("cache down") }

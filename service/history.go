package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"rental-agent/domain"
	"rental-agent/logger"
	"rental-agent/repository"
)

// cacheKey identifies a calculation by its kind and the hash of its
// normalized input.
func cacheKey(kind string, input any) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s input: %w", kind, err)
	}
	return fmt.Sprintf("%s:%016x", kind, xxhash.Sum64(data)), nil
}

// saveRecord appends a calculation to the history. Failures are logged and
// never reach the caller.
func saveRecord(ctx context.Context, repo repository.SimulationRepository, kind, key string, input, result any) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		logger.Get().Warnw("failed to encode history input", "kind", kind, "error", err)
		return
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		logger.Get().Warnw("failed to encode history result", "kind", kind, "error", err)
		return
	}

	record := domain.SimulationRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		InputHash: key,
		Input:     string(inputJSON),
		Result:    string(resultJSON),
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Save(ctx, record); err != nil {
		logger.Get().Warnw("failed to save calculation", "kind", kind, "error", err)
	}
}

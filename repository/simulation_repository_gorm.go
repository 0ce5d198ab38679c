package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rental-agent/domain"
)

// simulationRow is the history table.
type simulationRow struct {
	ID        string    `gorm:"type:text;primaryKey"`
	Kind      string    `gorm:"type:text;index;not null"`
	InputHash string    `gorm:"type:text;index;not null"`
	Input     string    `gorm:"type:text;not null"`
	Result    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (simulationRow) TableName() string { return "simulations" }

// BeforeCreate fills in the ID of records saved without one.
func (r *simulationRow) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// SimulationRepositoryGorm stores the history in SQLite through GORM.
type SimulationRepositoryGorm struct {
	db *gorm.DB
}

// OpenSQLite opens the database file at path and migrates the history table.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return db, nil
}

// NewSimulationRepositoryGorm migrates the history table on db.
func NewSimulationRepositoryGorm(db *gorm.DB) (*SimulationRepositoryGorm, error) {
	if err := db.AutoMigrate(&simulationRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate simulations table: %w", err)
	}
	return &SimulationRepositoryGorm{db: db}, nil
}

func (r *SimulationRepositoryGorm) Save(ctx context.Context, record domain.SimulationRecord) error {
	row := simulationRow{
		ID:        record.ID,
		Kind:      record.Kind,
		InputHash: record.InputHash,
		Input:     record.Input,
		Result:    record.Result,
		CreatedAt: record.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save simulation: %w", err)
	}
	return nil
}

func (r *SimulationRepositoryGorm) Recent(ctx context.Context, limit int) ([]domain.SimulationRecord, error) {
	if limit <= 0 {
		return []domain.SimulationRecord{}, nil
	}

	var rows []simulationRow
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}

	records := make([]domain.SimulationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.SimulationRecord{
			ID:        row.ID,
			Kind:      row.Kind,
			InputHash: row.InputHash,
			Input:     row.Input,
			Result:    row.Result,
			CreatedAt: row.CreatedAt,
		})
	}
	return records, nil
}

// Close releases the underlying connection.
func (r *SimulationRepositoryGorm) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

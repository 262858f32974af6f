// Package status provides database operations for the per-user meditation
// status record: one row per user, replaced whole on every write.
package status

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/epistleapp/epistle/internal/entities"
)

// ErrNotFound reports that the user has no status row yet. Callers treat it
// as "empty state", not as a failure.
var ErrNotFound = errors.New("status: no record for user")

// Repository handles all meditation-status database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new status repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetRecord returns the user's status record, or ErrNotFound.
func (r *Repository) GetRecord(userID uint) (entities.MeditationRecord, error) {
	var row entities.MeditationStatusRow
	err := r.db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch status record: %w", err)
	}

	record := entities.MeditationRecord{}
	if err := json.Unmarshal([]byte(row.StatusRecord), &record); err != nil {
		return nil, fmt.Errorf("decode status record: %w", err)
	}
	return record, nil
}

// UpsertRecord replaces the user's status record whole (last-write-wins).
func (r *Repository) UpsertRecord(userID uint, record entities.MeditationRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode status record: %w", err)
	}

	row := entities.MeditationStatusRow{
		UserID:       userID,
		StatusRecord: string(data),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status_record", "updated_at"}),
	}).Create(&row).Error
}

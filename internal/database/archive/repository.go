// Package archive provides database operations for archived readings: one
// frozen snapshot per (user, day), overwritten on re-completion.
package archive

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/epistleapp/epistle/internal/entities"
)

// Repository handles all archived-reading database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new archive repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll returns every archived reading of the user, keyed by day. Rows with
// undecodable content are skipped rather than failing the whole read.
func (r *Repository) GetAll(userID uint) (map[int]entities.ArchivedReading, error) {
	var rows []entities.ArchivedReadingRow
	if err := r.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch archived readings: %w", err)
	}

	archived := make(map[int]entities.ArchivedReading, len(rows))
	for _, row := range rows {
		var entry entities.ArchivedReading
		if err := json.Unmarshal([]byte(row.Content), &entry); err != nil {
			continue
		}
		archived[row.Day] = entry
	}
	return archived, nil
}

// Upsert writes the snapshot for (user, day). The conflict target is the
// composite key, so completions of different days never collide while a
// re-completion of the same day overwrites.
func (r *Repository) Upsert(userID uint, day int, entry entities.ArchivedReading) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode archived reading: %w", err)
	}

	row := entities.ArchivedReadingRow{
		UserID:  userID,
		Day:     day,
		Content: string(data),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"content"}),
	}).Create(&row).Error
}

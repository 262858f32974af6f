// Package journal provides database operations for the diary and plan logs.
// Both tables are append-oriented: each save adds one row for the newest
// entry under (user, storage key); history is read newest-first.
package journal

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/epistleapp/epistle/internal/entities"
)

// Kind selects which log table an operation targets.
type Kind string

const (
	KindDiary Kind = "diary"
	KindPlan  Kind = "plan"
)

// Entry is one row of either log, decoupled from the table entities.
type Entry struct {
	ID        int64
	Content   string
	CreatedAt time.Time
}

// Repository handles diary and plan log database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new journal repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns the user's entries under storageKey, newest first.
func (r *Repository) List(kind Kind, userID uint, storageKey string) ([]Entry, error) {
	switch kind {
	case KindDiary:
		var rows []entities.MeditationLog
		err := r.db.Where("user_id = ? AND storage_key = ?", userID, storageKey).
			Order("created_at DESC").Find(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("fetch diary log: %w", err)
		}
		entries := make([]Entry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, Entry{ID: int64(row.ID), Content: row.Content, CreatedAt: row.CreatedAt})
		}
		return entries, nil
	case KindPlan:
		var rows []entities.MissionPlan
		err := r.db.Where("user_id = ? AND storage_key = ?", userID, storageKey).
			Order("created_at DESC").Find(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("fetch plan log: %w", err)
		}
		entries := make([]Entry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, Entry{ID: int64(row.ID), Content: row.Content, CreatedAt: row.CreatedAt})
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("unknown journal kind %q", kind)
	}
}

// Append adds one row for the newest entry. The remote log accumulates one
// row per save; it is not a full replacement of local history.
func (r *Repository) Append(kind Kind, userID uint, storageKey, content string) error {
	switch kind {
	case KindDiary:
		row := entities.MeditationLog{UserID: userID, StorageKey: storageKey, Content: content}
		return r.db.Create(&row).Error
	case KindPlan:
		row := entities.MissionPlan{UserID: userID, StorageKey: storageKey, Content: content}
		return r.db.Create(&row).Error
	default:
		return fmt.Errorf("unknown journal kind %q", kind)
	}
}

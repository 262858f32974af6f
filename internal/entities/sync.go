package entities

import (
	"time"
)

// MeditationStatusRow is the remote representation of a user's full status
// record: one row per user, the record stored whole as JSON. Writes are
// last-write-wins replacements, never merges.
type MeditationStatusRow struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"uniqueIndex" json:"user_id"`
	StatusRecord string    `gorm:"type:text" json:"status_record"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (MeditationStatusRow) TableName() string {
	return "meditation_statuses"
}

// ArchivedReadingRow stores one completed day's snapshot per (user, day).
// Content is the ArchivedReading serialized as JSON.
type ArchivedReadingRow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_archived_user_day,unique" json:"user_id"`
	Day       int       `gorm:"index:idx_archived_user_day,unique" json:"day"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (ArchivedReadingRow) TableName() string {
	return "archived_readings"
}

// MeditationLog is an append-oriented diary row. Each remote save adds one row
// for the newest entry only; the full history lives in the local mirror.
type MeditationLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index" json:"user_id"`
	StorageKey string    `gorm:"index;size:255" json:"storage_key"`
	Content    string    `gorm:"type:text" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func (MeditationLog) TableName() string {
	return "meditation_logs"
}

// MissionPlan is an append-oriented evangelism-plan row, same shape as
// MeditationLog but kept as its own table.
type MissionPlan struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index" json:"user_id"`
	StorageKey string    `gorm:"index;size:255" json:"storage_key"`
	Content    string    `gorm:"type:text" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func (MissionPlan) TableName() string {
	return "mission_plans"
}

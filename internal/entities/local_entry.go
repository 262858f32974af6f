package entities

import (
	"time"
)

// LocalEntry is one key/value pair of the local persistent store. The store is
// a single shared keyspace with a capacity ceiling; see internal/localstore.
type LocalEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:255" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LocalEntry) TableName() string {
	return "local_entries"
}

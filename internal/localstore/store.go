// Package localstore provides the local persistent store: a key/string table
// with a capacity ceiling. Writes beyond capacity fail with ErrQuotaExceeded
// so callers can run an eviction sweep and retry.
package localstore

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/epistleapp/epistle/internal/entities"
)

// ErrQuotaExceeded is returned by Set when the write would push the store
// past its capacity. Detect it with errors.Is.
var ErrQuotaExceeded = errors.New("localstore: quota exceeded")

// ErrNotFound is returned by Get for missing keys.
var ErrNotFound = errors.New("localstore: key not found")

// Store is a capacity-limited key/string store backed by a gorm table.
// A zero capacity means unlimited.
type Store struct {
	db       *gorm.DB
	capacity int64
}

// New creates a store over db with the given capacity in bytes.
func New(db *gorm.DB, capacityBytes int64) *Store {
	return &Store{db: db, capacity: capacityBytes}
}

// Get returns the value for key, or ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	var entry entities.LocalEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return entry.Value, nil
}

// Set writes value under key, overwriting any previous value. If the write
// would exceed the capacity ceiling it fails with ErrQuotaExceeded and leaves
// the store unchanged.
func (s *Store) Set(key, value string) error {
	size := int64(len(key) + len(value))

	var existing entities.LocalEntry
	err := s.db.Where("key = ?", key).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if s.wouldExceed(size, 0) {
			return ErrQuotaExceeded
		}
		entry := entities.LocalEntry{Key: key, Value: value, Size: size}
		return s.db.Create(&entry).Error
	case err != nil:
		return fmt.Errorf("set %q: %w", key, err)
	default:
		if s.wouldExceed(size, existing.Size) {
			return ErrQuotaExceeded
		}
		existing.Value = value
		existing.Size = size
		return s.db.Save(&existing).Error
	}
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&entities.LocalEntry{}).Error
}

// Keys returns every key currently in the store.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.db.Model(&entities.LocalEntry{}).Order("key ASC").Pluck("key", &keys).Error
	return keys, err
}

// DeleteByPrefixes removes every key starting with any of the given prefixes
// and returns the number of deleted entries.
func (s *Store) DeleteByPrefixes(prefixes []string) (int64, error) {
	if len(prefixes) == 0 {
		return 0, nil
	}

	query := s.db.Where("1 = 0")
	for _, prefix := range prefixes {
		query = query.Or("key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%")
	}

	result := s.db.Where(query).Delete(&entities.LocalEntry{})
	return result.RowsAffected, result.Error
}

// UsedBytes reports the summed size of all entries.
func (s *Store) UsedBytes() (int64, error) {
	var used int64
	err := s.db.Model(&entities.LocalEntry{}).Select("COALESCE(SUM(size), 0)").Scan(&used).Error
	return used, err
}

func (s *Store) wouldExceed(incoming, replaced int64) bool {
	if s.capacity <= 0 {
		return false
	}
	used, err := s.UsedBytes()
	if err != nil {
		return false
	}
	return used-replaced+incoming > s.capacity
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}

// Package contentcache memoizes generated reading content per (day, language)
// in the local persistent store, cache-aside. It owns the three disposable key
// prefixes and the quota-recovery sweep over them.
package contentcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/epistleapp/epistle/internal/entities"
	"github.com/epistleapp/epistle/internal/localstore"
)

// Disposable cache-key prefixes. The eviction sweep removes these and only
// these; status, archive, diary and auth keys must never match them.
const (
	ReadingCachePrefix = "reading-cache-"
	HeaderImagePrefix  = "header-sketch-"
	JourneyMapPrefix   = "journey-map-"
)

// HeaderImageKey is the cache slot for the generated header background.
const HeaderImageKey = HeaderImagePrefix + "bg-v2"

// ErrMiss is returned by Get when no usable bundle is cached. Absent keys and
// corrupt entries both report a miss; neither is fatal.
var ErrMiss = errors.New("contentcache: miss")

type Cache struct {
	store *localstore.Store
}

func New(store *localstore.Store) *Cache {
	return &Cache{store: store}
}

// Key derives the deterministic storage key for a (day, language) bundle.
func Key(day int, lang entities.Language) string {
	return fmt.Sprintf("%sday-%d-%s", ReadingCachePrefix, day, lang)
}

// JourneyMapKey derives the cache slot for a generated journey map image.
func JourneyMapKey(journeyID int, lang entities.Language) string {
	return fmt.Sprintf("%s%d-%s", JourneyMapPrefix, journeyID, lang)
}

// Get returns the cached bundle for (day, lang) or ErrMiss.
func (c *Cache) Get(day int, lang entities.Language) (*entities.ReadingBundle, error) {
	raw, err := c.store.Get(Key(day, lang))
	if errors.Is(err, localstore.ErrNotFound) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("read bundle cache: %w", err)
	}

	var bundle entities.ReadingBundle
	if err := json.Unmarshal([]byte(raw), &bundle); err != nil {
		log.Printf("contentcache: corrupt entry for day %d (%s), treating as miss: %v", day, lang, err)
		return nil, ErrMiss
	}
	return &bundle, nil
}

// Put serializes and stores the bundle. On a quota-exceeded write it evicts
// every disposable cache entry and retries exactly once; a second failure is
// logged and swallowed, since the caller already holds the bundle in memory.
func (c *Cache) Put(day int, lang entities.Language, bundle *entities.ReadingBundle) error {
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}
	c.setWithEviction(Key(day, lang), string(data))
	return nil
}

// SetImage writes a generated image (header background or journey map) under
// its cache key with the same quota-recovery behaviour as Put.
func (c *Cache) SetImage(key, dataURI string) {
	c.setWithEviction(key, dataURI)
}

// GetImage returns a cached image data URI, or "" on a miss.
func (c *Cache) GetImage(key string) string {
	value, err := c.store.Get(key)
	if err != nil {
		return ""
	}
	return value
}

// Evict removes every entry under the three disposable prefixes. Keys outside
// those prefixes are untouched.
func (c *Cache) Evict() (int64, error) {
	return c.store.DeleteByPrefixes([]string{ReadingCachePrefix, HeaderImagePrefix, JourneyMapPrefix})
}

func (c *Cache) setWithEviction(key, value string) {
	err := c.store.Set(key, value)
	if err == nil {
		return
	}
	if !errors.Is(err, localstore.ErrQuotaExceeded) {
		log.Printf("contentcache: write %q failed: %v", key, err)
		return
	}

	deleted, evictErr := c.Evict()
	if evictErr != nil {
		log.Printf("contentcache: eviction sweep failed: %v", evictErr)
		return
	}
	log.Printf("contentcache: storage quota exceeded, evicted %d cache entries", deleted)

	if retryErr := c.store.Set(key, value); retryErr != nil {
		log.Printf("contentcache: write %q still failing after eviction, dropping: %v", key, retryErr)
	}
}

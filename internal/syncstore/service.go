// Package syncstore routes status, archive, diary and plan data between the
// local persistent store and the remote relational store. A local mirror is
// always written; the remote store is targeted only while a session exists,
// and every remote operation is best-effort: failures are logged and
// swallowed, never surfaced.
//
// Known weak consistency guarantee: under persistent remote failure the
// remote store silently drifts from local truth. The local mirror is the
// authoritative availability fallback; there is no reconciliation beyond
// last-write-wins.
package syncstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/epistleapp/epistle/internal/database/archive"
	"github.com/epistleapp/epistle/internal/database/journal"
	"github.com/epistleapp/epistle/internal/database/status"
	"github.com/epistleapp/epistle/internal/entities"
	"github.com/epistleapp/epistle/internal/localstore"
)

// Local mirror keys. These must never match a disposable cache prefix, or the
// quota eviction sweep would destroy user data.
const (
	StatusKey  = "meditation-status"
	ArchiveKey = "archived-readings"
)

// Session is the observed identity token. This subsystem only reads it; the
// auth layer owns its lifecycle.
type Session struct {
	UserID uint
}

// SessionProvider reports the current session, nil when signed out. It is
// evaluated per call so routing follows login state without re-wiring.
type SessionProvider interface {
	Current(ctx context.Context) *Session
}

// SessionFunc adapts a function to the SessionProvider interface.
type SessionFunc func(ctx context.Context) *Session

func (f SessionFunc) Current(ctx context.Context) *Session { return f(ctx) }

// Service is the single read/write interface over synced data.
type Service struct {
	local    *localstore.Store
	status   *status.Repository
	archive  *archive.Repository
	journal  *journal.Repository
	sessions SessionProvider
}

func New(local *localstore.Store, statusRepo *status.Repository, archiveRepo *archive.Repository, journalRepo *journal.Repository, sessions SessionProvider) *Service {
	return &Service{
		local:    local,
		status:   statusRepo,
		archive:  archiveRepo,
		journal:  journalRepo,
		sessions: sessions,
	}
}

// ReadStatus returns the current status record. Signed out it reads the local
// mirror; signed in it queries the remote row. "No row yet" is silent empty
// state; a transport error is logged and also yields an empty record.
func (s *Service) ReadStatus(ctx context.Context) entities.MeditationRecord {
	session := s.sessions.Current(ctx)
	if session == nil {
		return s.readLocalStatus()
	}

	record, err := s.status.GetRecord(session.UserID)
	if errors.Is(err, status.ErrNotFound) {
		return entities.MeditationRecord{}
	}
	if err != nil {
		log.Printf("syncstore: fetch remote status failed: %v", err)
		return entities.MeditationRecord{}
	}
	return record
}

// WriteStatus persists the record: local mirror synchronously, remote upsert
// best-effort when a session exists.
func (s *Service) WriteStatus(ctx context.Context, record entities.MeditationRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode status record: %w", err)
	}
	if err := s.local.Set(StatusKey, string(data)); err != nil {
		return fmt.Errorf("write local status: %w", err)
	}

	if session := s.sessions.Current(ctx); session != nil {
		if err := s.status.UpsertRecord(session.UserID, record); err != nil {
			log.Printf("syncstore: remote status upsert failed: %v", err)
		}
	}
	return nil
}

// ToggleStatus applies the tri-state toggle for a day: setting the same
// rating twice removes the entry, a different rating replaces it. Returns the
// record as written.
func (s *Service) ToggleStatus(ctx context.Context, day int, rating entities.MeditationStatus) (entities.MeditationRecord, error) {
	if !rating.Valid() {
		return nil, fmt.Errorf("unknown rating %q", rating)
	}

	record := s.ReadStatus(ctx)
	if record[day] == rating {
		delete(record, day)
	} else {
		record[day] = rating
	}

	if err := s.WriteStatus(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ReadArchive returns all archived readings keyed by day.
func (s *Service) ReadArchive(ctx context.Context) map[int]entities.ArchivedReading {
	session := s.sessions.Current(ctx)
	if session == nil {
		return s.readLocalArchive()
	}

	archived, err := s.archive.GetAll(session.UserID)
	if err != nil {
		log.Printf("syncstore: fetch remote archive failed: %v", err)
		return map[int]entities.ArchivedReading{}
	}
	return archived
}

// WriteArchive saves a day's snapshot. The local mirror holds the whole map;
// the remote row is keyed (user, day) so only a same-day re-completion
// overwrites.
func (s *Service) WriteArchive(ctx context.Context, day int, entry entities.ArchivedReading) error {
	archived := s.readLocalArchive()
	archived[day] = entry

	data, err := json.Marshal(archived)
	if err != nil {
		return fmt.Errorf("encode archive: %w", err)
	}
	if err := s.local.Set(ArchiveKey, string(data)); err != nil {
		return fmt.Errorf("write local archive: %w", err)
	}

	if session := s.sessions.Current(ctx); session != nil {
		if err := s.archive.Upsert(session.UserID, day, entry); err != nil {
			log.Printf("syncstore: remote archive upsert failed: %v", err)
		}
	}
	return nil
}

// ReadDiary returns saved diary entries for storageKey, newest first.
func (s *Service) ReadDiary(ctx context.Context, storageKey string) []entities.SavedDiaryEntry {
	session := s.sessions.Current(ctx)
	if session == nil {
		var entries []entities.SavedDiaryEntry
		s.readLocalList(storageKey, &entries)
		return entries
	}

	rows, err := s.journal.List(journal.KindDiary, session.UserID, storageKey)
	if err != nil {
		log.Printf("syncstore: fetch remote diary failed: %v", err)
		return nil
	}

	entries := make([]entities.SavedDiaryEntry, 0, len(rows))
	for _, row := range rows {
		var content entities.DiaryEntry
		if err := json.Unmarshal([]byte(row.Content), &content); err != nil {
			continue
		}
		entries = append(entries, entities.SavedDiaryEntry{
			ID:        row.ID,
			Timestamp: row.CreatedAt.Format("03:04 PM"),
			Content:   content,
		})
	}
	return entries
}

// WriteDiary stores the full ordered list locally. When a session exists only
// the newest entry is appended remotely; the remote log accumulates one row
// per write while local history stays complete. The asymmetry is inherited
// product behaviour, kept deliberately.
func (s *Service) WriteDiary(ctx context.Context, storageKey string, entries []entities.SavedDiaryEntry) error {
	if err := s.writeLocalList(storageKey, entries); err != nil {
		return err
	}

	session := s.sessions.Current(ctx)
	if session == nil || len(entries) == 0 {
		return nil
	}

	content, err := json.Marshal(entries[0].Content)
	if err != nil {
		return fmt.Errorf("encode diary entry: %w", err)
	}
	if err := s.journal.Append(journal.KindDiary, session.UserID, storageKey, string(content)); err != nil {
		log.Printf("syncstore: remote diary append failed: %v", err)
	}
	return nil
}

// ReadPlans returns saved evangelism plans for storageKey, newest first.
func (s *Service) ReadPlans(ctx context.Context, storageKey string) []entities.SavedPlanEntry {
	session := s.sessions.Current(ctx)
	if session == nil {
		var entries []entities.SavedPlanEntry
		s.readLocalList(storageKey, &entries)
		return entries
	}

	rows, err := s.journal.List(journal.KindPlan, session.UserID, storageKey)
	if err != nil {
		log.Printf("syncstore: fetch remote plans failed: %v", err)
		return nil
	}

	entries := make([]entities.SavedPlanEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entities.SavedPlanEntry{
			ID:        row.ID,
			Timestamp: row.CreatedAt.Format("03:04 PM"),
			Content:   row.Content,
		})
	}
	return entries
}

// WritePlans mirrors WriteDiary for the plan log.
func (s *Service) WritePlans(ctx context.Context, storageKey string, entries []entities.SavedPlanEntry) error {
	if err := s.writeLocalList(storageKey, entries); err != nil {
		return err
	}

	session := s.sessions.Current(ctx)
	if session == nil || len(entries) == 0 {
		return nil
	}

	if err := s.journal.Append(journal.KindPlan, session.UserID, storageKey, entries[0].Content); err != nil {
		log.Printf("syncstore: remote plan append failed: %v", err)
	}
	return nil
}

func (s *Service) readLocalStatus() entities.MeditationRecord {
	record := entities.MeditationRecord{}
	raw, err := s.local.Get(StatusKey)
	if errors.Is(err, localstore.ErrNotFound) {
		return record
	}
	if err != nil {
		log.Printf("syncstore: read local status failed: %v", err)
		return record
	}
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		log.Printf("syncstore: local status record corrupt, starting empty: %v", err)
		return entities.MeditationRecord{}
	}
	return record
}

func (s *Service) readLocalArchive() map[int]entities.ArchivedReading {
	archived := map[int]entities.ArchivedReading{}
	raw, err := s.local.Get(ArchiveKey)
	if err != nil {
		return archived
	}
	if err := json.Unmarshal([]byte(raw), &archived); err != nil {
		log.Printf("syncstore: local archive corrupt, starting empty: %v", err)
		return map[int]entities.ArchivedReading{}
	}
	return archived
}

func (s *Service) readLocalList(storageKey string, out any) {
	raw, err := s.local.Get(storageKey)
	if err != nil {
		return
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("syncstore: local list %q corrupt: %v", storageKey, err)
	}
}

func (s *Service) writeLocalList(storageKey string, entries any) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode %q: %w", storageKey, err)
	}
	if err := s.local.Set(storageKey, string(data)); err != nil {
		return fmt.Errorf("write local %q: %w", storageKey, err)
	}
	return nil
}

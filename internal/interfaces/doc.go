// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## HTTP Controller Interfaces
//
//   - ReadingProvider: Daily content pipeline (internal/http/reading.go)
//   - ProgressStore: Status and archive access (internal/http/status.go)
//   - JournalStore: Diary and plan access (internal/http/journal.go)
//
// ## Content Pipeline Interfaces
//
//   - genai.Generator: Text and image generation (internal/genai/client.go)
//   - reading.ScriptureSource: Canonical verse text (internal/reading/service.go)
//   - reading.ProgressStore: Archival slice of the sync layer (internal/reading/service.go)
//
// ## Sync Routing Interfaces
//
//   - syncstore.SessionProvider: Per-call identity lookup (internal/syncstore/service.go)
//
// ## Background Work Interfaces
//
//   - tasks.ContentBuilder: Cache warm-up target (internal/tasks/pregenerate.go)
//   - scheduler.TaskEnqueuer: Task submission slice of the queue client (internal/scheduler/pregenerate.go)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces

package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/epistleapp/epistle/internal/genai"
	"github.com/epistleapp/epistle/internal/http"
	"github.com/epistleapp/epistle/internal/reading"
	"github.com/epistleapp/epistle/internal/scheduler"
	"github.com/epistleapp/epistle/internal/scripture"
	"github.com/epistleapp/epistle/internal/syncstore"
	"github.com/epistleapp/epistle/internal/tasks"
)

// =============================================================================
// HTTP Controllers
// =============================================================================

// ReadingProvider implementations
var _ http.ReadingProvider = (*reading.Service)(nil)

// ProgressStore/JournalStore implementations
var _ http.ProgressStore = (*syncstore.Service)(nil)
var _ http.JournalStore = (*syncstore.Service)(nil)

// =============================================================================
// Content Pipeline
// =============================================================================

// Generator implementations
var _ genai.Generator = (*genai.OpenAIGenerator)(nil)

// ScriptureSource implementations
var _ reading.ScriptureSource = (*scripture.Client)(nil)

// ProgressStore slice used for archival
var _ reading.ProgressStore = (*syncstore.Service)(nil)

// =============================================================================
// Background Work
// =============================================================================

// ContentBuilder implementations
var _ tasks.ContentBuilder = (*reading.Service)(nil)

// TaskEnqueuer implementations
var _ scheduler.TaskEnqueuer = (*tasks.Client)(nil)

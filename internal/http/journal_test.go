package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epistleapp/epistle/internal/entities"
)

type fakeJournalStore struct {
	diaries map[string][]entities.SavedDiaryEntry
	plans   map[string][]entities.SavedPlanEntry
}

func newFakeJournalStore() *fakeJournalStore {
	return &fakeJournalStore{
		diaries: map[string][]entities.SavedDiaryEntry{},
		plans:   map[string][]entities.SavedPlanEntry{},
	}
}

func (f *fakeJournalStore) ReadDiary(_ context.Context, key string) []entities.SavedDiaryEntry {
	return f.diaries[key]
}

func (f *fakeJournalStore) WriteDiary(_ context.Context, key string, entries []entities.SavedDiaryEntry) error {
	f.diaries[key] = entries
	return nil
}

func (f *fakeJournalStore) ReadPlans(_ context.Context, key string) []entities.SavedPlanEntry {
	return f.plans[key]
}

func (f *fakeJournalStore) WritePlans(_ context.Context, key string, entries []entities.SavedPlanEntry) error {
	f.plans[key] = entries
	return nil
}

func journalRouter(store JournalStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	jc := NewJournalController(store)
	router.GET("/api/journal/:kind", jc.List)
	router.POST("/api/journal/:kind", jc.Save)
	return router
}

func TestJournalController_DiaryRoundTrip(t *testing.T) {
	store := newFakeJournalStore()
	router := journalRouter(store)

	payload := `{"entries":[{"id":1,"timestamp":"09:15 AM","content":{"repentance":"r","resolve":"s","dream":"d"}}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/journal/diary?key=diary-day-27", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, store.diaries["diary-day-27"], 1)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/journal/diary?key=diary-day-27", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"repentance":"r"`)
}

func TestJournalController_PlanRoundTrip(t *testing.T) {
	store := newFakeJournalStore()
	router := journalRouter(store)

	payload := `{"entries":[{"id":1,"timestamp":"09:15 AM","content":"visit a neighbour"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/journal/plan?key=plan-week-3", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/journal/plan?key=plan-week-3", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "visit a neighbour")
}

func TestJournalController_Validation(t *testing.T) {
	router := journalRouter(newFakeJournalStore())

	// Missing key.
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/journal/diary", nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// Unknown kind.
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/journal/notebook?key=k", nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// Malformed payload.
	req := httptest.NewRequest(http.MethodPost, "/api/journal/diary?key=k", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

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

type fakeProgressStore struct {
	record  entities.MeditationRecord
	archive map[int]entities.ArchivedReading
}

func (f *fakeProgressStore) ReadStatus(_ context.Context) entities.MeditationRecord {
	return f.record
}

func (f *fakeProgressStore) ToggleStatus(_ context.Context, day int, rating entities.MeditationStatus) (entities.MeditationRecord, error) {
	if f.record[day] == rating {
		delete(f.record, day)
	} else {
		f.record[day] = rating
	}
	return f.record, nil
}

func (f *fakeProgressStore) ReadArchive(_ context.Context) map[int]entities.ArchivedReading {
	return f.archive
}

func statusRouter(store ProgressStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	sc := NewStatusController(store)
	router.GET("/api/status", sc.GetStatus)
	router.POST("/api/status", sc.ToggleStatus)
	router.GET("/api/archive", sc.GetArchive)
	return router
}

func TestStatusController_GetStatus(t *testing.T) {
	store := &fakeProgressStore{record: entities.MeditationRecord{3: entities.MeditationGood}}
	router := statusRouter(store)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"statuses":{"3":"good"}}`, resp.Body.String())
}

func TestStatusController_Toggle(t *testing.T) {
	store := &fakeProgressStore{record: entities.MeditationRecord{}}
	router := statusRouter(store)

	body := strings.NewReader(`{"day":5,"status":"ok"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/status", body)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"statuses":{"5":"ok"}}`, resp.Body.String())

	// Same rating again clears the day.
	body = strings.NewReader(`{"day":5,"status":"ok"}`)
	req = httptest.NewRequest(http.MethodPost, "/api/status", body)
	req.Header.Set("Content-Type", "application/json")

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"statuses":{}}`, resp.Body.String())
}

func TestStatusController_Toggle_Validation(t *testing.T) {
	router := statusRouter(&fakeProgressStore{record: entities.MeditationRecord{}})

	for _, payload := range []string{
		`{"status":"good"}`,
		`{"day":1}`,
		`{"day":1,"status":"great"}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/status", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		assert.Equal(t, http.StatusBadRequest, resp.Code, "payload: %s", payload)
	}
}

func TestStatusController_GetArchive(t *testing.T) {
	store := &fakeProgressStore{archive: map[int]entities.ArchivedReading{
		27: {Day: 27, ReadingReference: "Romans 10-11"},
	}}
	router := statusRouter(store)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/archive", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Romans 10-11")
}

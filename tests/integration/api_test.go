// Package integration exercises the full HTTP stack: router, middleware,
// handlers, services and the persistence engine over an in-memory database.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackcase/backend/internal/application/cases"
	"github.com/trackcase/backend/internal/application/ref"
	"github.com/trackcase/backend/internal/infrastructure/auth"
	"github.com/trackcase/backend/internal/infrastructure/cache"
	"github.com/trackcase/backend/internal/infrastructure/config"
	"github.com/trackcase/backend/internal/infrastructure/persistence"
	"github.com/trackcase/backend/internal/infrastructure/persistence/models"
	httpiface "github.com/trackcase/backend/internal/interfaces/http"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiFixture struct {
	router http.Handler
	db     *gorm.DB
	token  string

	courtOpenID   uint
	judgeOpenID   uint
	courtClosedID uint
}

func setupAPI(t *testing.T) *apiFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	err = db.AutoMigrate(
		&models.ComponentStatus{}, &models.CaseType{}, &models.FilingType{},
		&models.HearingType{}, &models.TaskType{}, &models.CollectionMethod{},
		&models.Court{}, &models.CourtHistory{}, &models.CourtNote{},
		&models.Judge{}, &models.JudgeHistory{}, &models.JudgeNote{},
		&models.Client{}, &models.ClientHistory{}, &models.ClientNote{},
		&models.CourtCase{}, &models.CourtCaseHistory{}, &models.CourtCaseNote{},
		&models.Filing{}, &models.FilingHistory{}, &models.FilingNote{},
		&models.HearingCalendar{}, &models.HearingCalendarHistory{}, &models.HearingCalendarNote{},
		&models.TaskCalendar{}, &models.TaskCalendarHistory{}, &models.TaskCalendarNote{},
		&models.CaseCollection{}, &models.CaseCollectionHistory{}, &models.CaseCollectionNote{},
		&models.CashCollection{}, &models.CashCollectionHistory{}, &models.CashCollectionNote{},
	)
	require.NoError(t, err)

	statuses := []models.ComponentStatus{
		{ComponentName: models.ComponentCourt, StatusName: "OPEN", IsActive: true},
		{ComponentName: models.ComponentCourt, StatusName: "CLOSED", IsActive: false},
		{ComponentName: models.ComponentJudge, StatusName: "APPOINTED", IsActive: true},
	}
	require.NoError(t, db.Create(&statuses).Error)

	cfg := &config.Config{
		App: config.AppConfig{Name: "trackcase", Env: "test", Port: "0"},
		JWT: config.JWTConfig{Secret: "integration-secret", Issuer: "trackcase", TokenExpiration: time.Hour},
		HTTP: config.HTTPConfig{
			CORSAllowOrigins: []string{"*"},
		},
	}

	log := zap.NewNop()
	refs := cache.NewReferenceCache(db)
	svcs := cases.NewServices(db, refs, log)
	refSvcs := ref.NewServices(db, refs, log)
	tokens := auth.NewTokenManager(cfg.JWT)

	token, err := tokens.Generate("jsmith")
	require.NoError(t, err)

	router := httpiface.NewRouter(cfg, &persistence.Database{DB: db}, svcs, refSvcs, tokens, log)

	return &apiFixture{
		router:        router,
		db:            db,
		token:         token,
		courtOpenID:   statuses[0].ID,
		courtClosedID: statuses[1].ID,
		judgeOpenID:   statuses[2].ID,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		TotalItems int64 `json:"total_items"`
		TotalPages int   `json:"total_pages"`
		PageNumber int   `json:"page_number"`
		PerPage    int   `json:"per_page"`
	} `json:"meta"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (f *apiFixture) createCourt(t *testing.T, name string) uint {
	w := f.do(t, http.MethodPost, "/api/v1/courts", map[string]any{
		"name":                name,
		"component_status_id": f.courtOpenID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var court models.Court
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &court))
	return court.ID
}

func TestHealthEndpoint(t *testing.T) {
	f := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	f := setupAPI(t)

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/courts", nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/courts", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCourtLifecycleOverHTTP(t *testing.T) {
	f := setupAPI(t)

	courtID := f.createCourt(t, "Boston Immigration Court")

	t.Run("get", func(t *testing.T) {
		w := f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/courts/%d", courtID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var court models.Court
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &court))
		assert.Equal(t, "Boston Immigration Court", court.Name)
	})

	t.Run("list with meta", func(t *testing.T) {
		f.createCourt(t, "NYC Immigration Court")

		w := f.do(t, http.MethodGet, "/api/v1/courts?sort_field=name&sort_direction=ASC", nil)
		require.Equal(t, http.StatusOK, w.Code)

		env := decode(t, w)
		require.NotNil(t, env.Meta)
		assert.Equal(t, int64(2), env.Meta.TotalItems)
	})

	t.Run("filtered list", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/courts?filter_column=name&filter_op=eq&filter_value=Boston+Immigration+Court", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(1), decode(t, w).Meta.TotalItems)
	})

	t.Run("unknown filter column is a 400", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/courts?filter_column=nope&filter_value=x", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)
	})

	t.Run("update", func(t *testing.T) {
		w := f.do(t, http.MethodPut, fmt.Sprintf("/api/v1/courts/%d", courtID), map[string]any{
			"city": "Boston",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var court models.Court
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &court))
		require.NotNil(t, court.City)
		assert.Equal(t, "Boston", *court.City)
	})

	t.Run("delete and restore", func(t *testing.T) {
		w := f.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/courts/%d", courtID), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/courts/%d", courtID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/courts/%d?is_include_deleted=true", courtID), nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = f.do(t, http.MethodPut, fmt.Sprintf("/api/v1/courts/%d?is_restore=true", courtID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/courts/%d", courtID), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestDependencyConflictOverHTTP(t *testing.T) {
	f := setupAPI(t)
	courtID := f.createCourt(t, "Occupied Court")

	w := f.do(t, http.MethodPost, "/api/v1/judges", map[string]any{
		"name":                "Resident Judge",
		"court_id":            courtID,
		"component_status_id": f.judgeOpenID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("delete refused", func(t *testing.T) {
		w := f.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/courts/%d", courtID), nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "DEPENDENCY_CONFLICT", decode(t, w).Error.Code)
	})

	t.Run("enriched list loads children per row", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/courts?is_include_extra=true", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var courts []models.Court
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &courts))
		require.Len(t, courts, 1)
		assert.Len(t, courts[0].Judges, 1)
	})

	t.Run("status change refused", func(t *testing.T) {
		w := f.do(t, http.MethodPut, fmt.Sprintf("/api/v1/courts/%d", courtID), map[string]any{
			"component_status_id": f.courtClosedID,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestNotesOverHTTP(t *testing.T) {
	f := setupAPI(t)
	courtID := f.createCourt(t, "Annotated Court")

	w := f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/courts/%d/notes", courtID), map[string]any{
		"note_text": "venue changed to room 4",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var note models.CourtNote
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &note))
	assert.Equal(t, "jsmith", note.UserName)

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/courts/%d/notes", courtID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var notes []models.CourtNote
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "venue changed to room 4", notes[0].NoteText)

	w = f.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/courts/%d/notes/%d", courtID, note.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestReferenceTablesOverHTTP(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPost, "/api/v1/case_types", map[string]any{"name": "ASYLUM"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodGet, "/api/v1/case_types", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var types []models.CaseType
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &types))
	require.Len(t, types, 1)
	assert.Equal(t, "ASYLUM", types[0].Name)
}

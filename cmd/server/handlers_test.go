package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/liyu-tw/coursepick/internal/catalog"
	"github.com/liyu-tw/coursepick/internal/engine"
	"github.com/liyu-tw/coursepick/pkg/config"
)

func newTestRouter() (*gin.Engine, *server) {
	gin.SetMode(gin.TestMode)
	s := &server{
		catalog: catalog.New(nil, nil),
		engine:  engine.New(),
		cfg: &config.Config{
			Engine: config.EngineConfig{Policy: "conflict", MaxCandidates: 1000},
		},
		logger: zap.NewNop(),
	}
	r := gin.New()
	s.routes(r)
	return r, s
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

const calculusA = `{
	"name": "Calculus",
	"category": "Required",
	"sectionId": "A",
	"credits": 4,
	"priority": 5,
	"timeSlots": [{"day": "Mon", "period": 1}]
}`

func TestOfferingEndpoints(t *testing.T) {
	r, s := newTestRouter()

	// Create
	recorder := doJSON(r, http.MethodPost, "/offerings", calculusA)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Len(t, s.catalog.ListOfferings(), 1)

	// Duplicate create
	recorder = doJSON(r, http.MethodPost, "/offerings", calculusA)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	// Invalid payload
	recorder = doJSON(r, http.MethodPost, "/offerings", `{"name": "X", "category": "Nope", "priority": 9}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// List
	recorder = doJSON(r, http.MethodGet, "/offerings", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Update
	updated := strings.Replace(calculusA, `"credits": 4`, `"credits": 3`, 1)
	recorder = doJSON(r, http.MethodPut, "/offerings/Calculus?section=A", updated)
	assert.Equal(t, http.StatusOK, recorder.Code)
	stored, ok := s.catalog.Get("Calculus", "A")
	assert.True(t, ok)
	assert.Equal(t, 3, stored.Credits)

	// Remove
	recorder = doJSON(r, http.MethodDelete, "/offerings/Calculus?section=A", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	recorder = doJSON(r, http.MethodDelete, "/offerings/Calculus?section=A", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGenerateSchedules(t *testing.T) {
	t.Run("Ranked result with conflicts", func(t *testing.T) {
		// Arrange
		r, _ := newTestRouter()
		doJSON(r, http.MethodPost, "/offerings", calculusA)
		doJSON(r, http.MethodPost, "/offerings", `{
			"name": "Physics",
			"category": "Required",
			"sectionId": "A",
			"credits": 3,
			"priority": 4,
			"timeSlots": [{"day": "Mon", "period": 1}]
		}`)

		// Act
		recorder := doJSON(r, http.MethodPost, "/schedules/generate", `{"policy": "conflict", "maxCandidates": 10}`)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		var envelope struct {
			Data engine.Result  `json:"data"`
			Meta map[string]any `json:"meta"`
		}
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, 1, envelope.Data.Generated)
		assert.Len(t, envelope.Data.Conflicting, 1)
		assert.Equal(t, false, envelope.Meta["truncated"])
	})

	t.Run("Unsatisfiable mandatory course", func(t *testing.T) {
		// Arrange
		r, _ := newTestRouter()
		doJSON(r, http.MethodPost, "/offerings", `{
			"name": "Calculus",
			"category": "Required",
			"sectionId": "A",
			"credits": 4,
			"priority": 5,
			"mandatory": true,
			"excluded": true,
			"timeSlots": [{"day": "Mon", "period": 1}]
		}`)

		// Act
		recorder := doJSON(r, http.MethodPost, "/schedules/generate", `{"policy": "conflict", "maxCandidates": 10}`)

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "MANDATORY_UNSATISFIABLE")
	})

	t.Run("Invalid policy", func(t *testing.T) {
		r, _ := newTestRouter()
		recorder := doJSON(r, http.MethodPost, "/schedules/generate", `{"policy": "magic", "maxCandidates": 10}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Empty catalog succeeds with zero candidates", func(t *testing.T) {
		r, _ := newTestRouter()
		recorder := doJSON(r, http.MethodPost, "/schedules/generate", `{"policy": "priority", "maxCandidates": 10}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

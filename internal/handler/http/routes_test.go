package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoutes_PublicEndpointsNeedNoToken exercises the full router to ensure
// health, register, and login are reachable without credentials.
func TestRoutes_PublicEndpointsNeedNoToken(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockNoteService{})
	router := h.Init()

	tests := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/health", ""},
		{http.MethodPost, "/auth/register", "{}"},
		{http.MethodPost, "/auth/login", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
		})
	}
}

// TestRoutes_ProtectedEndpointsRejectAnonymous verifies that every note
// endpoint and logout sit behind the auth middleware.
func TestRoutes_ProtectedEndpointsRejectAnonymous(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockNoteService{})
	router := h.Init()

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/auth/logout"},
		{http.MethodGet, "/notes"},
		{http.MethodPost, "/notes"},
		{http.MethodGet, "/notes/1"},
		{http.MethodPut, "/notes/1"},
		{http.MethodPatch, "/notes/1"},
		{http.MethodDelete, "/notes/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader("{}"))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Authentication credentials were not provided.")
		})
	}
}

// TestRoutes_AuthenticatedNoteFlow drives a request through the real router
// with the auth middleware satisfied by the mock service.
func TestRoutes_AuthenticatedNoteFlow(t *testing.T) {
	notes := &mockNoteService{
		getNoteFn: func(_ context.Context, ownerID, noteID int64) (models.Note, error) {
			assert.Equal(t, int64(1), ownerID)
			assert.Equal(t, int64(7), noteID)
			return models.Note{NoteID: 7, Title: "Groceries", OwnerID: 1}, nil
		},
	}
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: 1, Username: "john"}, nil
		},
	}
	h := newTestHandler(t, auth, notes)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/notes/7", nil)
	req.Header.Set("Authorization", "Token cafebabe")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Groceries")
	assert.Contains(t, rec.Body.String(), `"owner":"john"`)
}

// TestRoutes_TraceIDHeader verifies the trace middleware decorates every
// response, echoing a caller-provided trace id when present.
func TestRoutes_TraceIDHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockNoteService{})
	router := h.Init()

	t.Run("generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})

	t.Run("echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(traceIDHeader, "my-trace-id")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, "my-trace-id", rec.Header().Get(traceIDHeader))
	})
}

// TestRoutes_StripSlashes verifies trailing-slash requests reach handlers.
func TestRoutes_StripSlashes(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockNoteService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/health/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

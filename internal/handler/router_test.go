package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/notedeck/notedeck-go/internal/crypto"
	"github.com/notedeck/notedeck-go/internal/middleware"
	"github.com/notedeck/notedeck-go/internal/repository"
	"github.com/notedeck/notedeck-go/internal/service"
)

var (
	userColumns = []string{"user_id", "username", "email", "password_hash", "created_at", "updated_at"}
	noteColumns = []string{"note_id", "user_id", "title", "content", "created_at", "updated_at"}
)

// newTestRouter wires the full route table against a sqlmock-backed store,
// mirroring cmd/api.
func newTestRouter(t *testing.T) (*chi.Mux, sqlmock.Sqlmock, *crypto.TokenManager) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tokens := crypto.NewTokenManager("test-secret", time.Hour)

	authHandler := NewAuthHandler(service.NewAuthService(repository.NewUserRepository(db), tokens))
	noteHandler := NewNoteHandler(service.NewNoteService(repository.NewNoteRepository(db)))

	r := chi.NewRouter()
	r.Post("/api/auth/register", authHandler.HandleRegister)
	r.Post("/api/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(tokens))
		r.Get("/api/auth/refresh", authHandler.HandleRefresh)

		r.Get("/api/notes", noteHandler.HandleList)
		r.Post("/api/notes", noteHandler.HandleCreate)
		r.Put("/api/notes/{note_id}", noteHandler.HandleUpdate)
		r.Delete("/api/notes/{note_id}", noteHandler.HandleDelete)
	})

	r.NotFound(NotFound)

	return r, mock, tokens
}

func doRequest(t *testing.T, r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/api/unknown", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["message"] != "Endpoint not found. Please check the API documentation." {
		t.Errorf("unexpected message: %q", body["message"])
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r, mock, _ := newTestRouter(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/auth/refresh"},
		{http.MethodGet, "/api/notes"},
		{http.MethodPost, "/api/notes"},
		{http.MethodPut, "/api/notes/1"},
		{http.MethodDelete, "/api/notes/1"},
	}

	for _, p := range paths {
		rec := doRequest(t, r, p.method, p.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", p.method, p.path, rec.Code)
		}
	}

	// No query or exec may have reached the store.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("store was touched: %v", err)
	}
}

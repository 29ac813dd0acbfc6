package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/mattn/go-sqlite3"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/store"
)

// testAPI wires the API routes onto a fresh in-memory database. Session
// auth middleware is exercised in its own package; here the routes are
// mounted bare.
func testAPI(t *testing.T) (*chi.Mux, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	h := NewHandler(db)

	r := chi.NewRouter()
	r.Post("/api/contact", h.CreateContact)
	r.Get("/api/contact", h.ListContacts)
	r.Patch("/api/contact/{id}", h.UpdateContact)
	r.Delete("/api/contact/{id}", h.DeleteContact)
	r.Get("/api/projects", h.ListProjects)
	r.Post("/api/projects", h.CreateProject)
	r.Patch("/api/projects/{id}", h.UpdateProject)
	r.Delete("/api/projects/{id}", h.DeleteProject)
	r.Get("/api/settings", h.GetSettings)
	r.Patch("/api/settings", h.UpdateSettings)

	return r, db
}

// doJSON performs a request with a JSON body and decodes the response
// into out when it is non-nil.
func doJSON(t *testing.T, router http.Handler, method, path string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
		}
	}
	return rec
}

package handler

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	_ "github.com/mattn/go-sqlite3"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/i18n"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/middleware"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/render"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/store"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/web"
)

// testEnv bundles the wired HTML routes with their backing database.
type testEnv struct {
	router *chi.Mux
	db     *sql.DB
	sm     *scs.SessionManager
}

func newTestEnv(t *testing.T) *testEnv {
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

	catalog, err := i18n.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}

	sm := scs.New()

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("reading templates: %v", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		Catalog:        catalog,
	})
	if err != nil {
		t.Fatalf("parsing templates: %v", err)
	}

	authHandler := NewAuthHandler(db, renderer, sm, nil, catalog)
	frontendHandler := NewFrontendHandler(db, renderer, catalog)
	adminHandler := NewAdminHandler(renderer, catalog)
	healthHandler := NewHealthHandler(db)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.Use(middleware.Language(catalog))

	r.Get("/healthz", healthHandler.Health)
	r.Get(RouteRoot, frontendHandler.Home)
	r.Get(RouteLogin, authHandler.LoginForm)
	r.Post(RouteLogin, authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(sm))
		r.Get(RouteAdmin, adminHandler.Dashboard)
		r.Get(RouteMessages, adminHandler.Messages)
		r.Get(RouteProjects, adminHandler.Projects)
		r.Get(RouteSettings, adminHandler.Settings)
	})

	return &testEnv{router: r, db: db, sm: sm}
}

// seedAdmin creates the default admin account.
func (e *testEnv) seedAdmin(t *testing.T) {
	t.Helper()
	if err := store.Seed(context.Background(), e.db, true); err != nil {
		t.Fatalf("Seed: %v", err)
	}
}

// insertProject adds a project row directly through the store.
func (e *testEnv) insertProject(t *testing.T, arg store.CreateProjectParams) {
	t.Helper()
	if _, err := store.New(e.db).CreateProject(context.Background(), arg); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
}

// setShowProjects writes the settings singleton.
func (e *testEnv) setShowProjects(t *testing.T, show bool) {
	t.Helper()
	_, err := e.db.Exec(
		`INSERT INTO settings (id, show_projects, updated_at) VALUES ('main', ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (id) DO UPDATE SET show_projects = excluded.show_projects`, show)
	if err != nil {
		t.Fatalf("writing settings: %v", err)
	}
}

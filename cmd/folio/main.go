package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/config"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/handler"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/handler/api"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/i18n"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/logging"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/middleware"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/render"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/session"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/store"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/version"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// .env is optional; real deployments use environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(textHandler))

	buildInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}
	slog.Info("starting folio",
		"version", buildInfo.Version,
		"commit", buildInfo.GitCommit,
		"env", cfg.Env,
	)

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Error("creating data directory", "error", err)
			os.Exit(1)
		}
	}

	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		slog.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("closing database", "error", err)
		}
	}()

	if err := store.Migrate(db); err != nil {
		slog.Error("running migrations", "error", err)
		os.Exit(1)
	}

	// Mirror WARN+ records into the events table now that the schema exists
	slog.SetDefault(slog.New(logging.NewEventLogHandler(textHandler, db)))

	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.DoSeed); err != nil {
		slog.Error("seeding database", "error", err)
		os.Exit(1)
	}

	catalog, err := i18n.Load()
	if err != nil {
		slog.Error("loading translations", "error", err)
		os.Exit(1)
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		slog.Error("reading embedded templates", "error", err)
		os.Exit(1)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		Catalog:        catalog,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		slog.Error("parsing templates", "error", err)
		os.Exit(1)
	}

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	contactLimiter := middleware.NewGlobalRateLimiter(1, 5)

	apiHandler := api.NewHandler(db)
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager, loginProtection, catalog)
	frontendHandler := handler.NewFrontendHandler(db, renderer, catalog)
	adminHandler := handler.NewAdminHandler(renderer, catalog)
	healthHandler := handler.NewHealthHandler(db)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.Language(catalog))

	// The public contact endpoint takes cross-origin JSON posts, the rest
	// of the app is protected by Fetch-metadata CSRF checks.
	r.Use(middleware.SkipCSRF("/api/contact"))
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())))

	r.Get("/healthz", healthHandler.Health)

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		slog.Error("reading embedded static files", "error", err)
		os.Exit(1)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	r.Get(handler.RouteRoot, frontendHandler.Home)

	r.Get(handler.RouteLogin, authHandler.LoginForm)
	r.With(loginProtection.Middleware()).Post(handler.RouteLogin, authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(sessionManager))
		r.Use(middleware.LoadUser(sessionManager, db))

		r.Get(handler.RouteAdmin, adminHandler.Dashboard)
		r.Get(handler.RouteMessages, adminHandler.Messages)
		r.Get(handler.RouteProjects, adminHandler.Projects)
		r.Get(handler.RouteSettings, adminHandler.Settings)
	})

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.With(contactLimiter.Middleware()).Post("/contact", apiHandler.CreateContact)
		r.Get("/projects", apiHandler.ListProjects)
		r.Get("/settings", apiHandler.GetSettings)

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIAuth(sessionManager))

			r.Get("/contact", apiHandler.ListContacts)
			r.Patch("/contact/{id}", apiHandler.UpdateContact)
			r.Delete("/contact/{id}", apiHandler.DeleteContact)

			r.Post("/projects", apiHandler.CreateProject)
			r.Patch("/projects/{id}", apiHandler.UpdateProject)
			r.Delete("/projects/{id}", apiHandler.DeleteProject)

			r.Patch("/settings", apiHandler.UpdateSettings)
		})
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
}

// parseLogLevel maps the configured level name onto slog levels.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

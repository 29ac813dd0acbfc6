package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/auth"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/i18n"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/middleware"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/render"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/store"
)

// AuthHandler handles authentication routes.
type AuthHandler struct {
	queries         *store.Queries
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
	catalog         *i18n.Catalog
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection, catalog *i18n.Catalog) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		renderer:        renderer,
		sessionManager:  sm,
		loginProtection: lp,
		catalog:         catalog,
	}
}

// LoginForm renders the login page. Already-authenticated users go
// straight to the admin panel.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID); userID > 0 {
		http.Redirect(w, r, RouteAdmin, http.StatusSeeOther)
		return
	}

	lang := middleware.GetLang(r)
	err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title: h.catalog.T(lang, "login.title"),
		Lang:  lang,
	})
	if err != nil {
		logAndInternalError(w, "rendering login page", "error", err)
	}
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)

	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, RouteLogin, h.catalog.T(lang, "login.invalid"))
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		flashError(w, r, h.renderer, RouteLogin, h.catalog.T(lang, "login.invalid"))
		return
	}

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
			slog.Warn("login attempt on locked account", "email", email, "remaining", formatDuration(remaining))
			flashError(w, r, h.renderer, RouteLogin, h.catalog.T(lang, "login.locked"))
			return
		}
	}

	user, err := h.queries.GetUserByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("database error during login", "error", err)
		}
		// Record the failure for unknown accounts too so the lockout
		// does not leak which emails exist.
		h.recordFailure(w, r, lang, email)
		return
	}

	valid, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil || !valid {
		if err != nil {
			slog.Error("password check error", "error", err)
		}
		h.recordFailure(w, r, lang, email)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(email)
	}

	// Regenerate the session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyUserID, user.ID)

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	http.Redirect(w, r, RouteAdmin, http.StatusSeeOther)
}

func (h *AuthHandler) recordFailure(w http.ResponseWriter, r *http.Request, lang, email string) {
	if h.loginProtection != nil {
		if locked, lockDuration := h.loginProtection.RecordFailedAttempt(email); locked {
			slog.Warn("account locked due to failed attempts", "email", email, "duration", lockDuration)
			flashError(w, r, h.renderer, RouteLogin, h.catalog.T(lang, "login.locked"))
			return
		}
	}
	flashError(w, r, h.renderer, RouteLogin, h.catalog.T(lang, "login.invalid"))
}

// Logout destroys the session and returns to the public site.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyUserID)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		logAndInternalError(w, "destroying session", "error", err)
		return
	}

	if userID > 0 {
		slog.Info("user logged out", "user_id", userID)
	}
	http.Redirect(w, r, RouteRoot, http.StatusSeeOther)
}

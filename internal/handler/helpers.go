package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/render"
)

// flashError sets an error flash message and redirects.
func flashError(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, redirect, message string) {
	renderer.SetFlash(r, message, "error")
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// logAndInternalError logs an error and writes a plain 500 response.
func logAndInternalError(w http.ResponseWriter, msg string, args ...any) {
	slog.Error(msg, args...)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// formatDuration renders a lockout duration for user-facing messages.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	minutes := int(d.Minutes())
	if d%time.Minute > 0 {
		minutes++
	}
	return fmt.Sprintf("%d minutes", minutes)
}

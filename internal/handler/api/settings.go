package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/model"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/store"
)

// SettingsJSON is the wire shape of the site settings singleton.
type SettingsJSON struct {
	ID           string `json:"id"`
	ShowProjects bool   `json:"showProjects"`
}

func settingsToJSON(s store.Setting) SettingsJSON {
	return SettingsJSON{
		ID:           s.ID,
		ShowProjects: s.ShowProjects,
	}
}

func defaultSettingsJSON() SettingsJSON {
	return SettingsJSON{
		ID:           model.SettingsID,
		ShowProjects: model.DefaultShowProjects,
	}
}

// GetSettings handles GET /api/settings. The singleton is created lazily
// with defaults on first read. If persistence fails the in-memory default
// is served anyway so the public site keeps rendering.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	setting, err := h.queries.GetSetting(r.Context(), model.SettingsID)
	if err == nil {
		WriteJSON(w, http.StatusOK, settingsToJSON(setting))
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("loading settings", "error", err)
		WriteJSON(w, http.StatusOK, defaultSettingsJSON())
		return
	}

	created, err := h.queries.UpsertSetting(r.Context(), store.UpsertSettingParams{
		ID:           model.SettingsID,
		ShowProjects: model.DefaultShowProjects,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		slog.Warn("settings persistence degraded, serving defaults", "error", err)
		WriteJSON(w, http.StatusOK, defaultSettingsJSON())
		return
	}

	WriteJSON(w, http.StatusOK, settingsToJSON(created))
}

// updateSettingsRequest carries the settings patch.
type updateSettingsRequest struct {
	ShowProjects *bool `json:"showProjects"`
}

// UpdateSettings handles PATCH /api/settings. Supplied fields are merged
// onto the current (or default) values and upserted.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body")
		return
	}

	showProjects := model.DefaultShowProjects
	current, err := h.queries.GetSetting(r.Context(), model.SettingsID)
	if err == nil {
		showProjects = current.ShowProjects
	} else if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("loading settings", "error", err)
		WriteInternalError(w, "Failed to load settings")
		return
	}

	if req.ShowProjects != nil {
		showProjects = *req.ShowProjects
	}

	updated, err := h.queries.UpsertSetting(r.Context(), store.UpsertSettingParams{
		ID:           model.SettingsID,
		ShowProjects: showProjects,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		slog.Error("updating settings", "error", err)
		WriteInternalError(w, "Failed to update settings")
		return
	}

	WriteJSON(w, http.StatusOK, settingsToJSON(updated))
}

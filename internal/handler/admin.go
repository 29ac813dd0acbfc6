package handler

import (
	"net/http"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/i18n"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/middleware"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/render"
)

// AdminHandler renders the admin panel tabs. The tabs load and mutate
// their data through the JSON API, so these handlers only ship the shell.
type AdminHandler struct {
	renderer *render.Renderer
	catalog  *i18n.Catalog
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(renderer *render.Renderer, catalog *i18n.Catalog) *AdminHandler {
	return &AdminHandler{
		renderer: renderer,
		catalog:  catalog,
	}
}

// Dashboard handles GET /admin - redirects to the messages tab.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, RouteMessages, http.StatusSeeOther)
}

func (h *AdminHandler) renderTab(w http.ResponseWriter, r *http.Request, tmpl, titleKey string) {
	lang := middleware.GetLang(r)
	err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title: h.catalog.T(lang, titleKey),
		Lang:  lang,
	})
	if err != nil {
		logAndInternalError(w, "rendering admin page", "template", tmpl, "error", err)
	}
}

// Messages handles GET /admin/messages - the lead management tab.
func (h *AdminHandler) Messages(w http.ResponseWriter, r *http.Request) {
	h.renderTab(w, r, "admin/messages", "admin.messages")
}

// Projects handles GET /admin/projects - the catalog management tab.
func (h *AdminHandler) Projects(w http.ResponseWriter, r *http.Request) {
	h.renderTab(w, r, "admin/projects", "admin.projects")
}

// Settings handles GET /admin/settings - the site settings tab.
func (h *AdminHandler) Settings(w http.ResponseWriter, r *http.Request) {
	h.renderTab(w, r, "admin/settings", "admin.settings")
}

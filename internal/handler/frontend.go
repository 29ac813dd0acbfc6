package handler

import (
	"database/sql"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/i18n"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/middleware"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/model"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/render"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/store"
)

// FrontendHandler serves the public site.
type FrontendHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	catalog  *i18n.Catalog
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer, catalog *i18n.Catalog) *FrontendHandler {
	return &FrontendHandler{
		queries:  store.New(db),
		renderer: renderer,
		catalog:  catalog,
	}
}

// ProjectView is a project localized for one rendering language.
type ProjectView struct {
	Title   string
	Desc    string
	Details template.HTML
	Tags    []string
	Price   string
	Link    string
}

func projectView(p store.Project, lang string) ProjectView {
	v := ProjectView{
		Title:   p.TitleEn,
		Desc:    p.DescEn,
		Details: render.Markdown(p.DetailsEn),
		Tags:    model.DecodeTags(p.Tags),
		Price:   p.Price,
		Link:    p.Link,
	}
	if lang == "ru" {
		v.Title = p.TitleRu
		v.Desc = p.DescRu
		v.Details = render.Markdown(p.DetailsRu)
	}
	return v
}

// HomeData is the payload of the public home page.
type HomeData struct {
	ShowProjects bool
	Projects     []ProjectView
}

// Home handles GET / - the public portfolio page.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)

	showProjects := model.DefaultShowProjects
	setting, err := h.queries.GetSetting(r.Context(), model.SettingsID)
	if err == nil {
		showProjects = setting.ShowProjects
	} else if !errors.Is(err, sql.ErrNoRows) {
		// Settings trouble must not take the page down.
		slog.Error("loading settings for home page", "error", err)
	}

	data := HomeData{ShowProjects: showProjects}
	if showProjects {
		projects, err := h.queries.ListVisibleProjects(r.Context())
		if err != nil {
			slog.Error("listing visible projects", "error", err)
			projects = nil
		}
		// The bundled catalog fills the section until a real project is
		// published. Hidden-only databases count as empty here.
		if len(projects) == 0 {
			projects = fallbackProjects
		}
		for _, p := range projects {
			data.Projects = append(data.Projects, projectView(p, lang))
		}
	}

	err = h.renderer.Render(w, r, "site/home", render.TemplateData{
		Title: h.catalog.T(lang, "hero.title"),
		Lang:  lang,
		Data:  data,
	})
	if err != nil {
		logAndInternalError(w, "rendering home page", "error", err)
	}
}

package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/model"
	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/store"
)

// ProjectJSON is the wire shape of a showcase project. The display
// position is exposed as "order".
type ProjectJSON struct {
	ID        string    `json:"id"`
	TitleEn   string    `json:"titleEn"`
	TitleRu   string    `json:"titleRu"`
	DescEn    string    `json:"descEn"`
	DescRu    string    `json:"descRu"`
	DetailsEn string    `json:"detailsEn"`
	DetailsRu string    `json:"detailsRu"`
	Tags      []string  `json:"tags"`
	Price     string    `json:"price"`
	Link      string    `json:"link"`
	Visible   bool      `json:"visible"`
	Order     int64     `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func projectToJSON(p store.Project) ProjectJSON {
	return ProjectJSON{
		ID:        p.ID,
		TitleEn:   p.TitleEn,
		TitleRu:   p.TitleRu,
		DescEn:    p.DescEn,
		DescRu:    p.DescRu,
		DetailsEn: p.DetailsEn,
		DetailsRu: p.DetailsRu,
		Tags:      model.DecodeTags(p.Tags),
		Price:     p.Price,
		Link:      p.Link,
		Visible:   p.Visible,
		Order:     p.Position,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ListProjects handles GET /api/projects - all projects ordered by
// "order" ascending. Visibility is not filtered here; the public site
// filters client-side so the admin panel can reuse the endpoint.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.queries.ListProjects(r.Context())
	if err != nil {
		slog.Error("listing projects", "error", err)
		WriteInternalError(w, "Failed to load projects")
		return
	}

	out := make([]ProjectJSON, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectToJSON(p))
	}
	WriteJSON(w, http.StatusOK, out)
}

// createProjectRequest is the admin project creation payload.
type createProjectRequest struct {
	TitleEn   string   `json:"titleEn"`
	TitleRu   string   `json:"titleRu"`
	DescEn    string   `json:"descEn"`
	DescRu    string   `json:"descRu"`
	DetailsEn string   `json:"detailsEn"`
	DetailsRu string   `json:"detailsRu"`
	Tags      []string `json:"tags"`
	Price     string   `json:"price"`
	Link      string   `json:"link"`
	Visible   *bool    `json:"visible"`
	Order     *int64   `json:"order"`
}

// CreateProject handles POST /api/projects.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body")
		return
	}

	req.TitleEn = strings.TrimSpace(req.TitleEn)
	req.TitleRu = strings.TrimSpace(req.TitleRu)
	if req.TitleEn == "" || req.TitleRu == "" {
		WriteBadRequest(w, "titleEn and titleRu are required")
		return
	}

	// Visible defaults to true unless explicitly disabled.
	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	var position int64
	if req.Order != nil {
		position = *req.Order
	}

	now := time.Now().UTC()
	project, err := h.queries.CreateProject(r.Context(), store.CreateProjectParams{
		ID:        uuid.NewString(),
		TitleEn:   req.TitleEn,
		TitleRu:   req.TitleRu,
		DescEn:    req.DescEn,
		DescRu:    req.DescRu,
		DetailsEn: req.DetailsEn,
		DetailsRu: req.DetailsRu,
		Tags:      model.EncodeTags(req.Tags),
		Price:     req.Price,
		Link:      req.Link,
		Visible:   visible,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.Error("creating project", "error", err)
		WriteInternalError(w, "Failed to create project")
		return
	}

	WriteJSON(w, http.StatusOK, projectToJSON(project))
}

// updateProjectRequest carries a partial project update. Only the fields
// in the schema allow-list are representable; anything else in the body
// is ignored by the decoder.
type updateProjectRequest struct {
	TitleEn   *string   `json:"titleEn"`
	TitleRu   *string   `json:"titleRu"`
	DescEn    *string   `json:"descEn"`
	DescRu    *string   `json:"descRu"`
	DetailsEn *string   `json:"detailsEn"`
	DetailsRu *string   `json:"detailsRu"`
	Tags      *[]string `json:"tags"`
	Price     *string   `json:"price"`
	Link      *string   `json:"link"`
	Visible   *bool     `json:"visible"`
	Order     *int64    `json:"order"`
}

// UpdateProject handles PATCH /api/projects/{id}. Unsupplied fields keep
// their stored values.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body")
		return
	}

	current, err := h.queries.GetProjectByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Project not found")
			return
		}
		slog.Error("loading project", "error", err, "id", id)
		WriteInternalError(w, "Failed to load project")
		return
	}

	params := store.UpdateProjectParams{
		ID:        id,
		TitleEn:   current.TitleEn,
		TitleRu:   current.TitleRu,
		DescEn:    current.DescEn,
		DescRu:    current.DescRu,
		DetailsEn: current.DetailsEn,
		DetailsRu: current.DetailsRu,
		Tags:      current.Tags,
		Price:     current.Price,
		Link:      current.Link,
		Visible:   current.Visible,
		Position:  current.Position,
		UpdatedAt: time.Now().UTC(),
	}
	if req.TitleEn != nil {
		params.TitleEn = *req.TitleEn
	}
	if req.TitleRu != nil {
		params.TitleRu = *req.TitleRu
	}
	if req.DescEn != nil {
		params.DescEn = *req.DescEn
	}
	if req.DescRu != nil {
		params.DescRu = *req.DescRu
	}
	if req.DetailsEn != nil {
		params.DetailsEn = *req.DetailsEn
	}
	if req.DetailsRu != nil {
		params.DetailsRu = *req.DetailsRu
	}
	if req.Tags != nil {
		params.Tags = model.EncodeTags(*req.Tags)
	}
	if req.Price != nil {
		params.Price = *req.Price
	}
	if req.Link != nil {
		params.Link = *req.Link
	}
	if req.Visible != nil {
		params.Visible = *req.Visible
	}
	if req.Order != nil {
		params.Position = *req.Order
	}

	updated, err := h.queries.UpdateProject(r.Context(), params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Project not found")
			return
		}
		slog.Error("updating project", "error", err, "id", id)
		WriteInternalError(w, "Failed to update project")
		return
	}

	WriteJSON(w, http.StatusOK, projectToJSON(updated))
}

// DeleteProject handles DELETE /api/projects/{id}. Idempotent like
// contact deletion.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.queries.DeleteProject(r.Context(), id); err != nil {
		slog.Error("deleting project", "error", err, "id", id)
		WriteInternalError(w, "Failed to delete project")
		return
	}

	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

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

// MessageJSON is the wire shape of a contact-form lead.
type MessageJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Telegram    string    `json:"telegram"`
	ProjectType string    `json:"projectType"`
	Budget      string    `json:"budget"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func messageToJSON(m store.Message) MessageJSON {
	return MessageJSON{
		ID:          m.ID,
		Name:        m.Name,
		Telegram:    m.Telegram,
		ProjectType: m.ProjectType,
		Budget:      m.Budget,
		Description: m.Description,
		Status:      m.Status,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

// createContactRequest is the public contact-form submission.
type createContactRequest struct {
	Name        string `json:"name"`
	Telegram    string `json:"telegram"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Description string `json:"description"`
}

// CreateContact handles POST /api/contact - public contact form intake.
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Telegram = strings.TrimSpace(req.Telegram)
	req.Description = strings.TrimSpace(req.Description)

	if req.Name == "" || req.Telegram == "" || req.Description == "" {
		WriteBadRequest(w, "Name, telegram and description are required")
		return
	}

	projectType := strings.TrimSpace(req.ProjectType)
	if projectType == "" {
		projectType = model.DefaultNotSpecified
	}
	budget := strings.TrimSpace(req.Budget)
	if budget == "" {
		budget = model.DefaultNotSpecified
	}

	msg, err := h.queries.CreateMessage(r.Context(), store.CreateMessageParams{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Telegram:    model.NormalizeTelegram(req.Telegram),
		ProjectType: projectType,
		Budget:      budget,
		Description: req.Description,
		Status:      model.MessageStatusNew,
		Notes:       "",
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		slog.Error("creating contact message", "error", err)
		WriteInternalError(w, "Failed to save message")
		return
	}

	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true, ID: msg.ID})
}

// ListContacts handles GET /api/contact - all leads, newest first.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	messages, err := h.queries.ListMessages(r.Context())
	if err != nil {
		slog.Error("listing contact messages", "error", err)
		WriteInternalError(w, "Failed to load messages")
		return
	}

	out := make([]MessageJSON, 0, len(messages))
	for _, m := range messages {
		out = append(out, messageToJSON(m))
	}
	WriteJSON(w, http.StatusOK, out)
}

// updateContactRequest carries the lead-management patch. Pointers
// distinguish omitted fields from explicit empty values.
type updateContactRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// UpdateContact handles PATCH /api/contact/{id} - status and notes only.
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid request body")
		return
	}

	current, err := h.queries.GetMessageByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Message not found")
			return
		}
		slog.Error("loading contact message", "error", err, "id", id)
		WriteInternalError(w, "Failed to load message")
		return
	}

	params := store.UpdateMessageParams{
		ID:     id,
		Status: current.Status,
		Notes:  current.Notes,
	}
	if req.Status != nil {
		if !model.IsValidMessageStatus(*req.Status) {
			WriteBadRequest(w, "Invalid status")
			return
		}
		params.Status = *req.Status
	}
	if req.Notes != nil {
		params.Notes = *req.Notes
	}

	updated, err := h.queries.UpdateMessage(r.Context(), params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Message not found")
			return
		}
		slog.Error("updating contact message", "error", err, "id", id)
		WriteInternalError(w, "Failed to update message")
		return
	}

	WriteJSON(w, http.StatusOK, messageToJSON(updated))
}

// DeleteContact handles DELETE /api/contact/{id}. Deletion is idempotent:
// removing an id that is already gone still succeeds.
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.queries.DeleteMessage(r.Context(), id); err != nil {
		slog.Error("deleting contact message", "error", err, "id", id)
		WriteInternalError(w, "Failed to delete message")
		return
	}

	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

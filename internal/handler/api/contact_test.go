package api

import (
	"net/http"
	"testing"

	"github.com/TDDaniel-tg/TDDan-s-portfolio/internal/model"
)

func TestCreateContactNormalizesAndDefaults(t *testing.T) {
	router, _ := testAPI(t)

	var resp SuccessResponse
	rec := doJSON(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":        "Ann",
		"telegram":    "ann_dev",
		"description": "Need a shop bot",
	}, &resp)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !resp.Success || resp.ID == "" {
		t.Fatalf("response = %+v, want success with id", resp)
	}

	var messages []MessageJSON
	doJSON(t, router, http.MethodGet, "/api/contact", nil, &messages)
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}

	m := messages[0]
	if m.Telegram != "@ann_dev" {
		t.Errorf("Telegram = %q, want @ann_dev", m.Telegram)
	}
	if m.ProjectType != model.DefaultNotSpecified {
		t.Errorf("ProjectType = %q, want sentinel", m.ProjectType)
	}
	if m.Budget != model.DefaultNotSpecified {
		t.Errorf("Budget = %q, want sentinel", m.Budget)
	}
	if m.Status != model.MessageStatusNew {
		t.Errorf("Status = %q, want new", m.Status)
	}
	if m.Notes != "" {
		t.Errorf("Notes = %q, want empty", m.Notes)
	}
}

func TestCreateContactKeepsExistingAtPrefix(t *testing.T) {
	router, _ := testAPI(t)

	doJSON(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":        "Bob",
		"telegram":    "@bob",
		"description": "Integration work",
	}, nil)

	var messages []MessageJSON
	doJSON(t, router, http.MethodGet, "/api/contact", nil, &messages)
	if messages[0].Telegram != "@bob" {
		t.Errorf("Telegram = %q, want @bob unchanged", messages[0].Telegram)
	}
}

func TestCreateContactValidation(t *testing.T) {
	router, _ := testAPI(t)

	tests := []map[string]any{
		{"telegram": "@a", "description": "x"},        // no name
		{"name": "A", "description": "x"},             // no telegram
		{"name": "A", "telegram": "@a"},               // no description
		{"name": "  ", "telegram": "@a", "description": "x"}, // whitespace name
	}

	for i, body := range tests {
		var resp ErrorResponse
		rec := doJSON(t, router, http.MethodPost, "/api/contact", body, &resp)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, rec.Code)
		}
		if resp.Error == "" {
			t.Errorf("case %d: expected error message", i)
		}
	}

	var messages []MessageJSON
	doJSON(t, router, http.MethodGet, "/api/contact", nil, &messages)
	if len(messages) != 0 {
		t.Errorf("invalid submissions were persisted: %d rows", len(messages))
	}
}

func TestListContactsNewestFirst(t *testing.T) {
	router, _ := testAPI(t)

	for _, name := range []string{"first", "second", "third"} {
		doJSON(t, router, http.MethodPost, "/api/contact", map[string]any{
			"name":        name,
			"telegram":    "@" + name,
			"description": "task",
		}, nil)
	}

	var messages []MessageJSON
	doJSON(t, router, http.MethodGet, "/api/contact", nil, &messages)
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if messages[0].Name != "third" || messages[2].Name != "first" {
		t.Errorf("order = [%s %s %s], want newest first",
			messages[0].Name, messages[1].Name, messages[2].Name)
	}
}

func TestUpdateContact(t *testing.T) {
	router, _ := testAPI(t)

	var created SuccessResponse
	doJSON(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":        "Ann",
		"telegram":    "@ann",
		"description": "task",
	}, &created)

	var updated MessageJSON
	rec := doJSON(t, router, http.MethodPatch, "/api/contact/"+created.ID, map[string]any{
		"status": model.MessageStatusInProgress,
		"notes":  "called back",
	}, &updated)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if updated.Status != model.MessageStatusInProgress {
		t.Errorf("Status = %q, want in_progress", updated.Status)
	}
	if updated.Notes != "called back" {
		t.Errorf("Notes = %q", updated.Notes)
	}

	// Patching only notes must keep the status.
	doJSON(t, router, http.MethodPatch, "/api/contact/"+created.ID, map[string]any{
		"notes": "second call",
	}, &updated)
	if updated.Status != model.MessageStatusInProgress {
		t.Errorf("Status = %q after notes-only patch, want in_progress", updated.Status)
	}
}

func TestUpdateContactInvalidStatus(t *testing.T) {
	router, _ := testAPI(t)

	var created SuccessResponse
	doJSON(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":        "Ann",
		"telegram":    "@ann",
		"description": "task",
	}, &created)

	rec := doJSON(t, router, http.MethodPatch, "/api/contact/"+created.ID, map[string]any{
		"status": "done",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for invalid status", rec.Code)
	}
}

func TestUpdateContactNotFound(t *testing.T) {
	router, _ := testAPI(t)

	var resp ErrorResponse
	rec := doJSON(t, router, http.MethodPatch, "/api/contact/nope", map[string]any{
		"notes": "x",
	}, &resp)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if resp.Error == "" {
		t.Error("expected error message")
	}
}

func TestDeleteContactIdempotent(t *testing.T) {
	router, _ := testAPI(t)

	var created SuccessResponse
	doJSON(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":        "Ann",
		"telegram":    "@ann",
		"description": "task",
	}, &created)

	for i := 0; i < 2; i++ {
		var resp SuccessResponse
		rec := doJSON(t, router, http.MethodDelete, "/api/contact/"+created.ID, nil, &resp)
		if rec.Code != http.StatusOK || !resp.Success {
			t.Errorf("delete %d: status = %d, success = %v", i, rec.Code, resp.Success)
		}
	}

	var messages []MessageJSON
	doJSON(t, router, http.MethodGet, "/api/contact", nil, &messages)
	if len(messages) != 0 {
		t.Errorf("expected 0 messages after delete, got %d", len(messages))
	}
}

func TestContactLifecycle(t *testing.T) {
	router, _ := testAPI(t)

	// Visitor submits the form without optional fields.
	var created SuccessResponse
	doJSON(t, router, http.MethodPost, "/api/contact", map[string]any{
		"name":        "Ann",
		"telegram":    "ann_dev",
		"description": "Need a bot for my shop",
	}, &created)

	// The admin works the lead through its lifecycle.
	var m MessageJSON
	doJSON(t, router, http.MethodPatch, "/api/contact/"+created.ID, map[string]any{
		"status": model.MessageStatusInProgress,
	}, &m)
	doJSON(t, router, http.MethodPatch, "/api/contact/"+created.ID, map[string]any{
		"status": model.MessageStatusReplied,
		"notes":  "quoted 500",
	}, &m)

	if m.Status != model.MessageStatusReplied || m.Notes != "quoted 500" {
		t.Errorf("final state = %q/%q", m.Status, m.Notes)
	}
	if m.Telegram != "@ann_dev" {
		t.Errorf("Telegram = %q", m.Telegram)
	}

	var resp SuccessResponse
	doJSON(t, router, http.MethodDelete, "/api/contact/"+created.ID, nil, &resp)
	if !resp.Success {
		t.Error("expected delete success")
	}
}

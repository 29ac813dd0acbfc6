package api

import (
	"net/http"
	"reflect"
	"testing"
)

func createTestProject(t *testing.T, router http.Handler, body map[string]any) ProjectJSON {
	t.Helper()

	var p ProjectJSON
	rec := doJSON(t, router, http.MethodPost, "/api/projects", body, &p)
	if rec.Code != http.StatusOK {
		t.Fatalf("creating project: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	return p
}

func TestCreateProjectDefaults(t *testing.T) {
	router, _ := testAPI(t)

	p := createTestProject(t, router, map[string]any{
		"titleEn": "Shop bot",
		"titleRu": "Бот для магазина",
	})

	if !p.Visible {
		t.Error("Visible = false, want default true")
	}
	if p.Order != 0 {
		t.Errorf("Order = %d, want 0", p.Order)
	}
	if p.Tags == nil || len(p.Tags) != 0 {
		t.Errorf("Tags = %v, want empty array", p.Tags)
	}
	if p.DescEn != "" || p.Price != "" || p.Link != "" {
		t.Error("optional string fields must default to empty")
	}
}

func TestCreateProjectExplicitInvisible(t *testing.T) {
	router, _ := testAPI(t)

	p := createTestProject(t, router, map[string]any{
		"titleEn": "Draft",
		"titleRu": "Черновик",
		"visible": false,
	})
	if p.Visible {
		t.Error("Visible = true, want explicit false preserved")
	}
}

func TestCreateProjectRequiresTitles(t *testing.T) {
	router, _ := testAPI(t)

	for i, body := range []map[string]any{
		{"titleRu": "Бот"},
		{"titleEn": "Bot"},
		{"titleEn": " ", "titleRu": "Бот"},
	} {
		rec := doJSON(t, router, http.MethodPost, "/api/projects", body, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, rec.Code)
		}
	}
}

func TestListProjectsOrderAndVisibility(t *testing.T) {
	router, _ := testAPI(t)

	createTestProject(t, router, map[string]any{
		"titleEn": "Second", "titleRu": "Второй", "order": 2,
	})
	createTestProject(t, router, map[string]any{
		"titleEn": "First", "titleRu": "Первый", "order": 1,
	})
	createTestProject(t, router, map[string]any{
		"titleEn": "Hidden", "titleRu": "Скрытый", "order": 0, "visible": false,
	})

	var projects []ProjectJSON
	doJSON(t, router, http.MethodGet, "/api/projects", nil, &projects)

	// The endpoint returns hidden projects too, ordered by "order".
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}
	got := []string{projects[0].TitleEn, projects[1].TitleEn, projects[2].TitleEn}
	want := []string{"Hidden", "First", "Second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestProjectTagsRoundTrip(t *testing.T) {
	router, _ := testAPI(t)

	tags := []string{"telegram", "payments", "go"}
	p := createTestProject(t, router, map[string]any{
		"titleEn": "Bot", "titleRu": "Бот", "tags": tags,
	})
	if !reflect.DeepEqual(p.Tags, tags) {
		t.Errorf("Tags = %v, want %v in order", p.Tags, tags)
	}
}

func TestUpdateProjectPartial(t *testing.T) {
	router, _ := testAPI(t)

	p := createTestProject(t, router, map[string]any{
		"titleEn": "Bot", "titleRu": "Бот",
		"price": "500", "tags": []string{"a", "b"},
	})

	var updated ProjectJSON
	rec := doJSON(t, router, http.MethodPatch, "/api/projects/"+p.ID, map[string]any{
		"price":   "700",
		"visible": false,
	}, &updated)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	if updated.Price != "700" {
		t.Errorf("Price = %q, want 700", updated.Price)
	}
	if updated.Visible {
		t.Error("Visible = true, want false")
	}
	// Unsupplied fields stay untouched.
	if updated.TitleEn != "Bot" || !reflect.DeepEqual(updated.Tags, []string{"a", "b"}) {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateProjectIgnoresUnknownFields(t *testing.T) {
	router, _ := testAPI(t)

	p := createTestProject(t, router, map[string]any{
		"titleEn": "Bot", "titleRu": "Бот",
	})

	var updated ProjectJSON
	rec := doJSON(t, router, http.MethodPatch, "/api/projects/"+p.ID, map[string]any{
		"id":        "hijack",
		"createdAt": "2001-01-01T00:00:00Z",
		"price":     "100",
	}, &updated)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if updated.ID != p.ID {
		t.Errorf("ID changed to %q", updated.ID)
	}
	if !updated.CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("CreatedAt changed to %v", updated.CreatedAt)
	}
	if updated.Price != "100" {
		t.Errorf("Price = %q, allow-listed field must still apply", updated.Price)
	}
}

func TestUpdateProjectNotFound(t *testing.T) {
	router, _ := testAPI(t)

	rec := doJSON(t, router, http.MethodPatch, "/api/projects/nope", map[string]any{
		"price": "100",
	}, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteProjectIdempotent(t *testing.T) {
	router, _ := testAPI(t)

	p := createTestProject(t, router, map[string]any{
		"titleEn": "Bot", "titleRu": "Бот",
	})

	for i := 0; i < 2; i++ {
		var resp SuccessResponse
		rec := doJSON(t, router, http.MethodDelete, "/api/projects/"+p.ID, nil, &resp)
		if rec.Code != http.StatusOK || !resp.Success {
			t.Errorf("delete %d: status = %d, success = %v", i, rec.Code, resp.Success)
		}
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/brightkid/brightkid/brightkid/database/repositories"
	"github.com/gofiber/fiber/v2"
)

type stubChildRepository struct {
	children map[int64]*models.Child
	created  []*models.Child
}

func (s *stubChildRepository) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	if child, ok := s.children[id]; ok {
		return child, nil
	}
	return nil, &repositories.NotFoundError{Entity: "child", ID: id}
}

func (s *stubChildRepository) Create(ctx context.Context, child *models.Child) error {
	child.ID = int64(len(s.created) + 1)
	s.created = append(s.created, child)
	return nil
}

func (s *stubChildRepository) ListByParent(ctx context.Context, parentID int64) ([]*models.Child, error) {
	var out []*models.Child
	for _, child := range s.children {
		if child.ParentID == parentID {
			out = append(out, child)
		}
	}
	return out, nil
}

func newTestApp(children repositories.ChildRepository) *fiber.App {
	app := fiber.New()
	handlers := &App{Children: children, Version: "test"}
	handlers.RegisterRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, APIResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	var envelope APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, envelope
}

func TestHealth(t *testing.T) {
	app := newTestApp(&stubChildRepository{})
	resp, envelope := doRequest(t, app, http.MethodGet, "/api/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if !envelope.Success {
		t.Error("Success = false")
	}
}

func TestCreateChild(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"parentId":7,"name":"Mia","birthYear":2019}`, http.StatusCreated},
		{"missing name", `{"parentId":7}`, http.StatusBadRequest},
		{"missing parent", `{"name":"Mia"}`, http.StatusBadRequest},
		{"malformed json", `{"parentId":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubChildRepository{}
			app := newTestApp(repo)
			resp, envelope := doRequest(t, app, http.MethodPost, "/api/children", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusCreated {
				if !envelope.Success {
					t.Error("Success = false")
				}
				if len(repo.created) != 1 {
					t.Errorf("created %d children, want 1", len(repo.created))
				}
			} else if envelope.Error == nil || envelope.Error.Code != "BAD_REQUEST" {
				t.Errorf("error = %+v, want BAD_REQUEST", envelope.Error)
			}
		})
	}
}

func TestListChildrenInvalidParent(t *testing.T) {
	app := newTestApp(&stubChildRepository{})
	resp, _ := doRequest(t, app, http.MethodGet, "/api/parents/abc/children", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestResolveChildStatusMapping(t *testing.T) {
	repo := &stubChildRepository{children: map[int64]*models.Child{
		5: {ID: 5, ParentID: 7, Name: "Mia"},
	}}
	app := newTestApp(repo)

	// Both failures happen before any service is touched, so the nil
	// Progress/Dashboard fields are never dereferenced.
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"invalid id", "/api/children/abc/events", http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown child", "/api/children/99/events", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, envelope := doRequest(t, app, http.MethodPost, tt.target, `{"kind":"chore"}`)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if envelope.Error == nil || envelope.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %q", envelope.Error, tt.wantCode)
			}
		})
	}
}

func TestExportDisabled(t *testing.T) {
	repo := &stubChildRepository{children: map[int64]*models.Child{
		5: {ID: 5, ParentID: 7, Name: "Mia"},
	}}
	app := newTestApp(repo)

	resp, envelope := doRequest(t, app, http.MethodPost, "/api/children/5/export", "")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
	if envelope.Error == nil || envelope.Error.Code != "EXPORT_DISABLED" {
		t.Errorf("error = %+v, want EXPORT_DISABLED", envelope.Error)
	}
}

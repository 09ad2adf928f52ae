package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-landing-backend/internal/domain"
	"github.com/tbourn/go-landing-backend/internal/services"
)

func newProjectRouter(content ContentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(content, stubLeadSvc{}, "")
	r := gin.New()
	r.GET("/projects", h.ListProjects)
	r.POST("/projects", h.CreateProject)
	r.POST("/projects-json", h.CreateProjectJSON)
	return r
}

func TestListProjects_OK(t *testing.T) {
	img := "/uploads/a-cropped.png"
	r := newProjectRouter(stubContentSvc{
		listProjects: func(ctx context.Context) ([]domain.Project, error) {
			return []domain.Project{
				{ID: 2, Name: "newer", Image: &img},
				{ID: 1, Name: "older"},
			}, nil
		},
	})

	w := doRequest(t, r, http.MethodGet, "/projects", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var out []domain.Project
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 || out[0].ID != 2 {
		t.Fatalf("unexpected listing: %+v", out)
	}
}

func TestListProjects_ServiceError(t *testing.T) {
	r := newProjectRouter(stubContentSvc{
		listProjects: func(ctx context.Context) ([]domain.Project, error) {
			return nil, errors.New("db down")
		},
	})

	w := doRequest(t, r, http.MethodGet, "/projects", nil, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeListFailed {
		t.Fatalf("code = %q, want %q", resp.Code, ErrCodeListFailed)
	}
}

func TestCreateProject_MissingFields(t *testing.T) {
	r := newProjectRouter(stubContentSvc{
		createProject: func(ctx context.Context, name, description string, image domain.ImageRef) (*domain.Project, error) {
			return nil, services.ErrMissingFields
		},
	})

	body, ct := multipartBody(t, map[string]string{"name": "only name"}, "", nil)
	w := doRequest(t, r, http.MethodPost, "/projects", body, ct)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Missing fields" {
		t.Fatalf("message = %q, want %q", resp.Message, "Missing fields")
	}
}

func TestCreateProject_MultipartWithImage(t *testing.T) {
	var gotImage domain.ImageRef
	r := newProjectRouter(stubContentSvc{
		createProject: func(ctx context.Context, name, description string, image domain.ImageRef) (*domain.Project, error) {
			gotImage = image
			url := "/uploads/house-1-cropped.png"
			return &domain.Project{ID: 7, Name: name, Description: description, Image: &url}, nil
		},
	})

	fields := map[string]string{"name": "House", "description": "A house"}
	body, ct := multipartBody(t, fields, "house.png", []byte("imagebytes"))
	w := doRequest(t, r, http.MethodPost, "/projects", body, ct)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", w.Code, w.Body.String())
	}
	pending, okRef := gotImage.(domain.ImagePending)
	if !okRef {
		t.Fatalf("service received %T, want ImagePending", gotImage)
	}
	if pending.Name != "house.png" {
		t.Fatalf("image name = %q", pending.Name)
	}

	var out domain.Project
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID != 7 || out.Image == nil || *out.Image != "/uploads/house-1-cropped.png" {
		t.Fatalf("unexpected response row: %+v", out)
	}
}

func TestCreateProject_NoImagePart(t *testing.T) {
	var gotImage domain.ImageRef
	r := newProjectRouter(stubContentSvc{
		createProject: func(ctx context.Context, name, description string, image domain.ImageRef) (*domain.Project, error) {
			gotImage = image
			return &domain.Project{ID: 1, Name: name, Description: description}, nil
		},
	})

	fields := map[string]string{"name": "Bare", "description": "No image"}
	body, ct := multipartBody(t, fields, "", nil)
	w := doRequest(t, r, http.MethodPost, "/projects", body, ct)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if _, okRef := gotImage.(domain.ImageAbsent); !okRef {
		t.Fatalf("service received %T, want ImageAbsent", gotImage)
	}
}

func TestCreateProject_ServiceError(t *testing.T) {
	r := newProjectRouter(stubContentSvc{
		createProject: func(ctx context.Context, name, description string, image domain.ImageRef) (*domain.Project, error) {
			return nil, errors.New("disk full")
		},
	})

	body, ct := multipartBody(t, map[string]string{"name": "n", "description": "d"}, "", nil)
	w := doRequest(t, r, http.MethodPost, "/projects", body, ct)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeCreateFailed {
		t.Fatalf("code = %q, want %q", resp.Code, ErrCodeCreateFailed)
	}
}

func TestCreateProjectJSON_OK(t *testing.T) {
	var gotImage domain.ImageRef
	r := newProjectRouter(stubContentSvc{
		createProject: func(ctx context.Context, name, description string, image domain.ImageRef) (*domain.Project, error) {
			gotImage = image
			return &domain.Project{ID: 3, Name: name, Description: description}, nil
		},
	})

	payload := bytes.NewBufferString(`{"name":"Tower","description":"Tall"}`)
	w := doRequest(t, r, http.MethodPost, "/projects-json", payload, "application/json")

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if _, okRef := gotImage.(domain.ImageAbsent); !okRef {
		t.Fatalf("service received %T, want ImageAbsent", gotImage)
	}
}

func TestCreateProjectJSON_MalformedBody(t *testing.T) {
	r := newProjectRouter(stubContentSvc{})

	payload := bytes.NewBufferString(`{"name":`)
	w := doRequest(t, r, http.MethodPost, "/projects-json", payload, "application/json")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

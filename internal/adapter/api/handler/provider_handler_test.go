package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/user/provider-registry/internal/domain"
)

// MockProviderUseCase is a mock implementation of usecase.ProviderUseCase.
type MockProviderUseCase struct {
	ListFunc    func(ctx context.Context) ([]domain.Provider, error)
	GetFunc     func(ctx context.Context, id uuid.UUID) (*domain.Provider, error)
	CreateFunc  func(ctx context.Context, p *domain.Provider) error
	ReplaceFunc func(ctx context.Context, p *domain.Provider) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *MockProviderUseCase) List(ctx context.Context) ([]domain.Provider, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockProviderUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockProviderUseCase) Create(ctx context.Context, p *domain.Provider) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	p.ID = uuid.New()
	return nil
}

func (m *MockProviderUseCase) Replace(ctx context.Context, p *domain.Provider) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, p)
	}
	return nil
}

func (m *MockProviderUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func newProviderRouter(uc *MockProviderUseCase) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewProviderHandler(uc, logger, 1024*1024)

	r := chi.NewRouter()
	r.Get("/provider", h.List)
	r.Get("/provider/{id}", h.Get)
	r.Post("/provider", h.Create)
	r.Put("/provider/{id}", h.Replace)
	r.Delete("/provider/{id}", h.Delete)
	return r
}

func TestProviderHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		createErr      error
		expectedStatus int
		wantLocation   bool
		wantErrorField string
	}{
		{
			name:           "Valid Record",
			body:           `{"name":"Acme","document":"12345678901234","active":true}`,
			expectedStatus: http.StatusCreated,
			wantLocation:   true,
		},
		{
			name:           "Empty Name",
			body:           `{"name":"","document":"12345678901234","active":true}`,
			expectedStatus: http.StatusUnprocessableEntity,
			wantErrorField: "name",
		},
		{
			name:           "Document Too Long",
			body:           `{"name":"Acme","document":"123456789012345","active":true}`,
			expectedStatus: http.StatusUnprocessableEntity,
			wantErrorField: "document",
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":"Acme"`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Save Failure",
			body:           `{"name":"Acme","document":"12345678901234","active":true}`,
			createErr:      errors.New("commit reported no effect"),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storageTouched := false
			uc := &MockProviderUseCase{
				CreateFunc: func(ctx context.Context, p *domain.Provider) error {
					storageTouched = true
					if tt.createErr != nil {
						return tt.createErr
					}
					p.ID = uuid.New()
					return nil
				},
			}
			router := newProviderRouter(uc)

			req := httptest.NewRequest(http.MethodPost, "/provider", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("status: got %d want %d (body %s)", rr.Code, tt.expectedStatus, rr.Body.String())
			}

			switch tt.expectedStatus {
			case http.StatusCreated:
				var p domain.Provider
				if err := json.NewDecoder(rr.Body).Decode(&p); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if p.ID == uuid.Nil {
					t.Error("expected a generated id in the response")
				}
				if tt.wantLocation {
					want := "/provider/" + p.ID.String()
					if got := rr.Header().Get("Location"); got != want {
						t.Errorf("Location header: got %q want %q", got, want)
					}
				}
			case http.StatusUnprocessableEntity:
				if storageTouched {
					t.Error("validation failure must not reach storage")
				}
				var body struct {
					Errors map[string][]string `json:"errors"`
				}
				if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
					t.Fatalf("decode problems: %v", err)
				}
				if len(body.Errors[tt.wantErrorField]) == 0 {
					t.Errorf("expected a message on field %q, got %v", tt.wantErrorField, body.Errors)
				}
			}
		})
	}
}

func TestProviderHandler_Get(t *testing.T) {
	known := domain.Provider{ID: uuid.New(), Name: "Acme", Document: "12345678901234", Active: true}
	uc := &MockProviderUseCase{
		GetFunc: func(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
			if id == known.ID {
				p := known
				return &p, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	router := newProviderRouter(uc)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"Found", "/provider/" + known.ID.String(), http.StatusOK},
		{"Not Found", "/provider/" + uuid.NewString(), http.StatusNotFound},
		{"Unparsable Id", "/provider/not-a-uuid", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("status: got %d want %d", rr.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusOK {
				var p domain.Provider
				if err := json.NewDecoder(rr.Body).Decode(&p); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if p != known {
					t.Errorf("response mismatch: got %+v want %+v", p, known)
				}
			}
		})
	}
}

func TestProviderHandler_List(t *testing.T) {
	uc := &MockProviderUseCase{
		ListFunc: func(ctx context.Context) ([]domain.Provider, error) {
			return []domain.Provider{
				{ID: uuid.New(), Name: "Acme", Document: "1"},
				{ID: uuid.New(), Name: "Globex", Document: "2"},
			}, nil
		},
	}
	router := newProviderRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/provider", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", rr.Code, http.StatusOK)
	}
	var list []domain.Provider
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 providers, got %d", len(list))
	}
}

func TestProviderHandler_Replace(t *testing.T) {
	existing := domain.Provider{ID: uuid.New(), Name: "Old", Document: "111", Active: false}

	t.Run("Missing Record Skips Validation", func(t *testing.T) {
		uc := &MockProviderUseCase{} // Get defaults to ErrNotFound
		router := newProviderRouter(uc)

		// The body is invalid on purpose: the 404 must win.
		req := httptest.NewRequest(http.MethodPut, "/provider/"+uuid.NewString(),
			strings.NewReader(`{"name":"","document":""}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("status: got %d want %d", rr.Code, http.StatusNotFound)
		}
	})

	t.Run("Valid Replace", func(t *testing.T) {
		var replaced *domain.Provider
		uc := &MockProviderUseCase{
			GetFunc: func(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
				p := existing
				return &p, nil
			},
			ReplaceFunc: func(ctx context.Context, p *domain.Provider) error {
				replaced = p
				return nil
			},
		}
		router := newProviderRouter(uc)

		req := httptest.NewRequest(http.MethodPut, "/provider/"+existing.ID.String(),
			strings.NewReader(`{"id":"`+uuid.NewString()+`","name":"New","document":"222","active":true}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusNoContent {
			t.Fatalf("status: got %d want %d (body %s)", rr.Code, http.StatusNoContent, rr.Body.String())
		}
		if replaced == nil {
			t.Fatal("expected replace to reach the use case")
		}
		if replaced.ID != existing.ID {
			t.Error("expected the path id to override the payload id")
		}
		if replaced.Name != "New" || replaced.Document != "222" || !replaced.Active {
			t.Errorf("unexpected replacement record: %+v", replaced)
		}
	})

	t.Run("Invalid Payload", func(t *testing.T) {
		uc := &MockProviderUseCase{
			GetFunc: func(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
				p := existing
				return &p, nil
			},
		}
		router := newProviderRouter(uc)

		req := httptest.NewRequest(http.MethodPut, "/provider/"+existing.ID.String(),
			strings.NewReader(`{"name":"","document":"222"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status: got %d want %d", rr.Code, http.StatusUnprocessableEntity)
		}
	})

	t.Run("Row Vanished Between Check And Write", func(t *testing.T) {
		uc := &MockProviderUseCase{
			GetFunc: func(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
				p := existing
				return &p, nil
			},
			ReplaceFunc: func(ctx context.Context, p *domain.Provider) error {
				return domain.ErrNotFound
			},
		}
		router := newProviderRouter(uc)

		req := httptest.NewRequest(http.MethodPut, "/provider/"+existing.ID.String(),
			strings.NewReader(`{"name":"New","document":"222","active":true}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("status: got %d want %d", rr.Code, http.StatusNotFound)
		}
	})
}

func TestProviderHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		deleteErr      error
		expectedStatus int
	}{
		{"Deleted", nil, http.StatusNoContent},
		{"Not Found", domain.ErrNotFound, http.StatusNotFound},
		{"Save Failure", errors.New("commit failed"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockProviderUseCase{
				DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
					return tt.deleteErr
				},
			}
			router := newProviderRouter(uc)

			req := httptest.NewRequest(http.MethodDelete, "/provider/"+uuid.NewString(), nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("status: got %d want %d", rr.Code, tt.expectedStatus)
			}
		})
	}
}

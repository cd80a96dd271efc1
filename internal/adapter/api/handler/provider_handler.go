package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/user/provider-registry/internal/domain"
	"github.com/user/provider-registry/internal/usecase"
	"github.com/user/provider-registry/internal/validation"
)

// ProviderHandler handles HTTP requests for provider CRUD.
type ProviderHandler struct {
	useCase     usecase.ProviderUseCase
	logger      *slog.Logger
	maxBodySize int64
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(uc usecase.ProviderUseCase, logger *slog.Logger, maxBodySize int64) *ProviderHandler {
	return &ProviderHandler{
		useCase:     uc,
		logger:      logger,
		maxBodySize: maxBodySize,
	}
}

// List returns all providers.
func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	providers, err := h.useCase.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list providers", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, providers)
}

// Get returns one provider by id.
func (h *ProviderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	p, err := h.useCase.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "provider not found")
			return
		}
		h.logger.Error("failed to get provider", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// Create persists a new provider and answers 201 with a Location header.
func (h *ProviderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.Provider
	if !h.decode(w, r, &p) {
		return
	}

	if problems := validation.CheckProvider(&p); len(problems) > 0 {
		respondProblems(w, problems)
		return
	}

	if err := h.useCase.Create(r.Context(), &p); err != nil {
		h.logger.Error("failed to create provider", "error", err)
		respondError(w, http.StatusBadRequest, "could not save provider")
		return
	}

	w.Header().Set("Location", "/provider/"+p.ID.String())
	respondJSON(w, http.StatusCreated, p)
}

// Replace overwrites an existing provider with the incoming record. The
// existence check runs before validation; the path id is authoritative
// and any id in the payload is ignored.
func (h *ProviderHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.useCase.Get(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "provider not found")
			return
		}
		h.logger.Error("failed to look up provider", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var p domain.Provider
	if !h.decode(w, r, &p) {
		return
	}

	if problems := validation.CheckProvider(&p); len(problems) > 0 {
		respondProblems(w, problems)
		return
	}

	p.ID = id
	if err := h.useCase.Replace(r.Context(), &p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "provider not found")
			return
		}
		h.logger.Error("failed to replace provider", "error", err, "id", id)
		respondError(w, http.StatusBadRequest, "could not save provider")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a provider by id.
func (h *ProviderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.useCase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "provider not found")
			return
		}
		h.logger.Error("failed to delete provider", "error", err, "id", id)
		respondError(w, http.StatusBadRequest, "could not delete provider")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} route parameter. An unparsable id names no
// resource, so it answers 404 rather than 400.
func (h *ProviderHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "provider not found")
		return uuid.Nil, false
	}
	return id, true
}

// decode reads the request body into v, enforcing the body size limit.
func (h *ProviderHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondError(w, http.StatusRequestEntityTooLarge, "payload too large")
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

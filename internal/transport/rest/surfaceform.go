package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bhashamitra-backend/internal/auth"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/surfaceform"
)

type surfaceFormService interface {
	Create(ctx context.Context, actor string, input surfaceform.CreateInput) (*domain.SurfaceForm, error)
	Update(ctx context.Context, actor string, input surfaceform.UpdateInput) (*domain.SurfaceForm, error)
	Delete(ctx context.Context, actor, id string) error
	Get(ctx context.Context, id string) (*domain.SurfaceForm, error)
	ListByLemma(ctx context.Context, lemmaID string) ([]*domain.SurfaceForm, error)
	ListPublishedByLemma(ctx context.Context, lemmaID string) ([]*domain.SurfaceForm, error)
}

// SurfaceFormHandler serves surface form endpoints.
type SurfaceFormHandler struct {
	svc surfaceFormService
	log *slog.Logger
}

// NewSurfaceFormHandler creates a SurfaceFormHandler.
func NewSurfaceFormHandler(svc surfaceFormService, logger *slog.Logger) *SurfaceFormHandler {
	return &SurfaceFormHandler{svc: svc, log: logger.With("handler", "surfaceform")}
}

type createSurfaceFormRequest struct {
	FormNative string  `json:"formNative"`
	FormLatin  *string `json:"formLatin"`
	FormType   *string `json:"formType"`
	Notes      *string `json:"notes"`
}

type updateSurfaceFormRequest struct {
	FormNative      *string `json:"formNative"`
	FormLatin       *string `json:"formLatin"`
	FormType        *string `json:"formType"`
	Notes           *string `json:"notes"`
	ExpectedVersion *int64  `json:"expectedVersion"`
}

// Create handles POST /api/admin/lemmas/{id}/forms.
func (h *SurfaceFormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSurfaceFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	f, err := h.svc.Create(r.Context(), auth.ActorFromCtx(r.Context()), surfaceform.CreateInput{
		LemmaID:    r.PathValue("id"),
		FormNative: req.FormNative,
		FormLatin:  req.FormLatin,
		FormType:   req.FormType,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSurfaceForm(f))
}

// Update handles PATCH /api/admin/forms/{id}.
func (h *SurfaceFormHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSurfaceFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	f, err := h.svc.Update(r.Context(), auth.ActorFromCtx(r.Context()), surfaceform.UpdateInput{
		ID:              r.PathValue("id"),
		FormNative:      req.FormNative,
		FormLatin:       req.FormLatin,
		FormType:        req.FormType,
		Notes:           req.Notes,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSurfaceForm(f))
}

// Delete handles DELETE /api/admin/forms/{id}.
func (h *SurfaceFormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /api/admin/forms/{id}.
func (h *SurfaceFormHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSurfaceForm(f))
}

// ListByLemma handles GET /api/admin/lemmas/{id}/forms.
func (h *SurfaceFormHandler) ListByLemma(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListByLemma(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toSurfaceForm))
}

// ListPublishedByLemma handles GET /api/public/lemmas/{id}/forms.
func (h *SurfaceFormHandler) ListPublishedByLemma(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListPublishedByLemma(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toSurfaceForm))
}

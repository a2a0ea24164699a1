package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bhashamitra-backend/internal/auth"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/meaning"
)

type meaningService interface {
	Create(ctx context.Context, actor string, input meaning.CreateInput) (*domain.Meaning, error)
	Update(ctx context.Context, actor string, input meaning.UpdateInput) (*domain.Meaning, error)
	Delete(ctx context.Context, actor, id string) error
	Get(ctx context.Context, id string) (*domain.Meaning, error)
	ListByLemma(ctx context.Context, lemmaID string) ([]*domain.Meaning, error)
	ListPublishedByLemma(ctx context.Context, lemmaID string) ([]*domain.Meaning, error)
}

// MeaningHandler serves meaning endpoints.
type MeaningHandler struct {
	svc meaningService
	log *slog.Logger
}

// NewMeaningHandler creates a MeaningHandler.
func NewMeaningHandler(svc meaningService, logger *slog.Logger) *MeaningHandler {
	return &MeaningHandler{svc: svc, log: logger.With("handler", "meaning")}
}

type createMeaningRequest struct {
	MeaningLanguage string `json:"meaningLanguage"`
	MeaningText     string `json:"meaningText"`
	Priority        *int   `json:"priority"`
}

type updateMeaningRequest struct {
	MeaningLanguage *string `json:"meaningLanguage"`
	MeaningText     *string `json:"meaningText"`
	Priority        *int    `json:"priority"`
	ExpectedVersion *int64  `json:"expectedVersion"`
}

// Create handles POST /api/admin/lemmas/{id}/meanings.
func (h *MeaningHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMeaningRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.Create(r.Context(), auth.ActorFromCtx(r.Context()), meaning.CreateInput{
		LemmaID:         r.PathValue("id"),
		MeaningLanguage: req.MeaningLanguage,
		MeaningText:     req.MeaningText,
		Priority:        req.Priority,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMeaning(m))
}

// Update handles PATCH /api/admin/meanings/{id}.
func (h *MeaningHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateMeaningRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.Update(r.Context(), auth.ActorFromCtx(r.Context()), meaning.UpdateInput{
		ID:              r.PathValue("id"),
		MeaningLanguage: req.MeaningLanguage,
		MeaningText:     req.MeaningText,
		Priority:        req.Priority,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMeaning(m))
}

// Delete handles DELETE /api/admin/meanings/{id}.
func (h *MeaningHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /api/admin/meanings/{id}.
func (h *MeaningHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMeaning(m))
}

// ListByLemma handles GET /api/admin/lemmas/{id}/meanings.
func (h *MeaningHandler) ListByLemma(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListByLemma(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toMeaning))
}

// ListPublishedByLemma handles GET /api/public/lemmas/{id}/meanings.
func (h *MeaningHandler) ListPublishedByLemma(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListPublishedByLemma(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toMeaning))
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bhashamitra-backend/internal/auth"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/link"
)

type linkService interface {
	Create(ctx context.Context, actor string, input link.CreateInput) (*domain.LemmaSentenceLink, error)
	Update(ctx context.Context, actor string, input link.UpdateInput) (*domain.LemmaSentenceLink, error)
	Delete(ctx context.Context, actor, id string) error
	Get(ctx context.Context, id string) (*domain.LemmaSentenceLink, error)
	ListByLemma(ctx context.Context, lemmaID string) ([]*domain.LemmaSentenceLink, error)
	ListBySentence(ctx context.Context, sentenceID string) ([]*domain.LemmaSentenceLink, error)
	ListPublishedByLemma(ctx context.Context, lemmaID string) ([]*domain.LemmaSentenceLink, error)
}

// LinkHandler serves lemma-sentence link endpoints.
type LinkHandler struct {
	svc linkService
	log *slog.Logger
}

// NewLinkHandler creates a LinkHandler.
func NewLinkHandler(svc linkService, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{svc: svc, log: logger.With("handler", "link")}
}

type createLinkRequest struct {
	LemmaID       string  `json:"lemmaId"`
	SentenceID    string  `json:"sentenceId"`
	SurfaceFormID *string `json:"surfaceFormId"`
	LinkType      string  `json:"linkType"`
}

type updateLinkRequest struct {
	SurfaceFormID   *string `json:"surfaceFormId"`
	LinkType        *string `json:"linkType"`
	ExpectedVersion *int64  `json:"expectedVersion"`
}

// Create handles POST /api/admin/links.
func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLinkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Create(r.Context(), auth.ActorFromCtx(r.Context()), link.CreateInput{
		LemmaID:       req.LemmaID,
		SentenceID:    req.SentenceID,
		SurfaceFormID: req.SurfaceFormID,
		LinkType:      req.LinkType,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLink(l))
}

// Update handles PATCH /api/admin/links/{id}.
func (h *LinkHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateLinkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Update(r.Context(), auth.ActorFromCtx(r.Context()), link.UpdateInput{
		ID:              r.PathValue("id"),
		SurfaceFormID:   req.SurfaceFormID,
		LinkType:        req.LinkType,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLink(l))
}

// Delete handles DELETE /api/admin/links/{id}.
func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /api/admin/links/{id}.
func (h *LinkHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLink(l))
}

// ListByLemma handles GET /api/admin/lemmas/{id}/links.
func (h *LinkHandler) ListByLemma(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListByLemma(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toLink))
}

// ListBySentence handles GET /api/admin/sentences/{id}/links.
func (h *LinkHandler) ListBySentence(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListBySentence(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toLink))
}

// ListPublishedByLemma handles GET /api/public/lemmas/{id}/links.
func (h *LinkHandler) ListPublishedByLemma(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListPublishedByLemma(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toLink))
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bhashamitra-backend/internal/auth"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/pronunciation"
)

type pronunciationService interface {
	Create(ctx context.Context, actor string, input pronunciation.CreateInput) (*domain.Pronunciation, error)
	Update(ctx context.Context, actor string, input pronunciation.UpdateInput) (*domain.Pronunciation, error)
	Delete(ctx context.Context, actor, id string) error
	Get(ctx context.Context, id string) (*domain.Pronunciation, error)
	ListByOwner(ctx context.Context, ownerType, ownerID string) ([]*domain.Pronunciation, error)
	ListPublicByOwner(ctx context.Context, ownerType, ownerID string) ([]*domain.Pronunciation, error)
}

// PronunciationHandler serves pronunciation endpoints.
type PronunciationHandler struct {
	svc pronunciationService
	log *slog.Logger
}

// NewPronunciationHandler creates a PronunciationHandler.
func NewPronunciationHandler(svc pronunciationService, logger *slog.Logger) *PronunciationHandler {
	return &PronunciationHandler{svc: svc, log: logger.With("handler", "pronunciation")}
}

type createPronunciationRequest struct {
	OwnerType  string  `json:"ownerType"`
	OwnerID    string  `json:"ownerId"`
	Speaker    *string `json:"speaker"`
	Region     *string `json:"region"`
	AudioURI   string  `json:"audioUri"`
	DurationMs *int    `json:"durationMs"`
}

type updatePronunciationRequest struct {
	Speaker         *string `json:"speaker"`
	Region          *string `json:"region"`
	AudioURI        *string `json:"audioUri"`
	DurationMs      *int    `json:"durationMs"`
	ExpectedVersion *int64  `json:"expectedVersion"`
}

// Create handles POST /api/admin/pronunciations.
func (h *PronunciationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPronunciationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), auth.ActorFromCtx(r.Context()), pronunciation.CreateInput{
		OwnerType:  req.OwnerType,
		OwnerID:    req.OwnerID,
		Speaker:    req.Speaker,
		Region:     req.Region,
		AudioURI:   req.AudioURI,
		DurationMs: req.DurationMs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPronunciation(p))
}

// Update handles PATCH /api/admin/pronunciations/{id}.
func (h *PronunciationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePronunciationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), auth.ActorFromCtx(r.Context()), pronunciation.UpdateInput{
		ID:              r.PathValue("id"),
		Speaker:         req.Speaker,
		Region:          req.Region,
		AudioURI:        req.AudioURI,
		DurationMs:      req.DurationMs,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPronunciation(p))
}

// Delete handles DELETE /api/admin/pronunciations/{id}.
func (h *PronunciationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /api/admin/pronunciations/{id}.
func (h *PronunciationHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPronunciation(p))
}

// ListByOwner handles GET /api/admin/pronunciations?ownerType=LEMMA&ownerId=....
func (h *PronunciationHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.svc.ListByOwner(r.Context(), q.Get("ownerType"), q.Get("ownerId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toPronunciation))
}

// ListPublicByOwner handles GET /api/public/pronunciations/{ownerType}/{ownerId}.
func (h *PronunciationHandler) ListPublicByOwner(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListPublicByOwner(r.Context(), r.PathValue("ownerType"), r.PathValue("ownerId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toPronunciation))
}

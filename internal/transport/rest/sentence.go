package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bhashamitra-backend/internal/auth"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/sentence"
)

type sentenceService interface {
	Create(ctx context.Context, actor string, input sentence.CreateInput) (*domain.UsageSentence, error)
	Update(ctx context.Context, actor string, input sentence.UpdateInput) (*domain.UsageSentence, error)
	Delete(ctx context.Context, actor, id string) error
	Get(ctx context.Context, id string) (*domain.UsageSentence, error)
	List(ctx context.Context, filter domain.ContentFilter, page domain.PageRequest) (*domain.Page[*domain.UsageSentence], error)
	SetStatus(ctx context.Context, actor, id string, status domain.EditorialStatus) (*domain.UsageSentence, error)
	Archive(ctx context.Context, actor, id string) (*domain.UsageSentence, error)
	Unarchive(ctx context.Context, actor, id string, target *domain.EditorialStatus) (*domain.UsageSentence, error)
	GetPublished(ctx context.Context, id string) (*domain.UsageSentence, error)
	ListPublishedByLanguage(ctx context.Context, language string, page domain.PageRequest) (*domain.Page[*domain.UsageSentence], error)
}

// SentenceHandler serves usage sentence endpoints.
type SentenceHandler struct {
	svc sentenceService
	log *slog.Logger
}

// NewSentenceHandler creates a SentenceHandler.
func NewSentenceHandler(svc sentenceService, logger *slog.Logger) *SentenceHandler {
	return &SentenceHandler{svc: svc, log: logger.With("handler", "sentence")}
}

type createSentenceRequest struct {
	Language       string  `json:"language"`
	SentenceNative string  `json:"sentenceNative"`
	SentenceLatin  *string `json:"sentenceLatin"`
	Translation    *string `json:"translation"`
	Register       *string `json:"register"`
	Explanation    *string `json:"explanation"`
	Difficulty     *int    `json:"difficulty"`
	Status         *string `json:"status"`
}

type updateSentenceRequest struct {
	Language        *string `json:"language"`
	SentenceNative  *string `json:"sentenceNative"`
	SentenceLatin   *string `json:"sentenceLatin"`
	Translation     *string `json:"translation"`
	Register        *string `json:"register"`
	Explanation     *string `json:"explanation"`
	Difficulty      *int    `json:"difficulty"`
	ExpectedVersion *int64  `json:"expectedVersion"`
}

// Create handles POST /api/admin/sentences.
func (h *SentenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSentenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	status, err := parseOptionalStatus(req.Status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	us, err := h.svc.Create(r.Context(), auth.ActorFromCtx(r.Context()), sentence.CreateInput{
		Language:       req.Language,
		SentenceNative: req.SentenceNative,
		SentenceLatin:  req.SentenceLatin,
		Translation:    req.Translation,
		Register:       req.Register,
		Explanation:    req.Explanation,
		Difficulty:     req.Difficulty,
		Status:         status,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSentence(us))
}

// Update handles PATCH /api/admin/sentences/{id}.
func (h *SentenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSentenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	us, err := h.svc.Update(r.Context(), auth.ActorFromCtx(r.Context()), sentence.UpdateInput{
		ID:              r.PathValue("id"),
		Language:        req.Language,
		SentenceNative:  req.SentenceNative,
		SentenceLatin:   req.SentenceLatin,
		Translation:     req.Translation,
		Register:        req.Register,
		Explanation:     req.Explanation,
		Difficulty:      req.Difficulty,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSentence(us))
}

// Delete handles DELETE /api/admin/sentences/{id}.
func (h *SentenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /api/admin/sentences/{id}.
func (h *SentenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	us, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSentence(us))
}

// List handles GET /api/admin/sentences?language=mr&status=REVIEW&limit=50&offset=0.
func (h *SentenceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := contentFilterFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	page, err := pageFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), filter, page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(result, toSentence))
}

// SetStatus handles PUT /api/admin/sentences/{id}/status.
func (h *SentenceHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Status == nil {
		handleError(h.log, w, r, domain.NewValidationError("status", "required"))
		return
	}
	status, err := domain.ParseEditorialStatus(*req.Status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	us, err := h.svc.SetStatus(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id"), status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSentence(us))
}

// Archive handles POST /api/admin/sentences/{id}/archive.
func (h *SentenceHandler) Archive(w http.ResponseWriter, r *http.Request) {
	us, err := h.svc.Archive(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSentence(us))
}

// Unarchive handles POST /api/admin/sentences/{id}/unarchive with an optional
// {"status": ...} body; the target defaults to REVIEW.
func (h *SentenceHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	target, err := parseOptionalStatus(req.Status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	us, err := h.svc.Unarchive(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id"), target)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSentence(us))
}

// GetPublished handles GET /api/public/sentences/{id}.
func (h *SentenceHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	us, err := h.svc.GetPublished(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSentence(us))
}

// ListPublished handles GET /api/public/languages/{code}/sentences.
func (h *SentenceHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListPublishedByLanguage(r.Context(), r.PathValue("code"), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(result, toSentence))
}

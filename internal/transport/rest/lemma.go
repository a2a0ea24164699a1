package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bhashamitra-backend/internal/auth"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/lemma"
)

type lemmaService interface {
	Create(ctx context.Context, actor string, input lemma.CreateInput) (*domain.Lemma, error)
	Update(ctx context.Context, actor string, input lemma.UpdateInput) (*domain.Lemma, error)
	Delete(ctx context.Context, actor, id string) error
	Get(ctx context.Context, id string) (*domain.Lemma, error)
	List(ctx context.Context, filter domain.ContentFilter, page domain.PageRequest) (*domain.Page[*domain.Lemma], error)
	SetStatus(ctx context.Context, actor, id string, status domain.EditorialStatus) (*domain.Lemma, error)
	Archive(ctx context.Context, actor, id string) (*domain.Lemma, error)
	Unarchive(ctx context.Context, actor, id string, target *domain.EditorialStatus) (*domain.Lemma, error)
	GetPublished(ctx context.Context, id string) (*domain.Lemma, error)
	ListPublishedByLanguage(ctx context.Context, language string, page domain.PageRequest) (*domain.Page[*domain.Lemma], error)
}

// LemmaHandler serves lemma endpoints.
type LemmaHandler struct {
	svc lemmaService
	log *slog.Logger
}

// NewLemmaHandler creates a LemmaHandler.
func NewLemmaHandler(svc lemmaService, logger *slog.Logger) *LemmaHandler {
	return &LemmaHandler{svc: svc, log: logger.With("handler", "lemma")}
}

type createLemmaRequest struct {
	Language     string  `json:"language"`
	LemmaNative  string  `json:"lemmaNative"`
	LemmaLatin   *string `json:"lemmaLatin"`
	PartOfSpeech *string `json:"partOfSpeech"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status"`
}

type updateLemmaRequest struct {
	Language        *string `json:"language"`
	LemmaNative     *string `json:"lemmaNative"`
	LemmaLatin      *string `json:"lemmaLatin"`
	PartOfSpeech    *string `json:"partOfSpeech"`
	Notes           *string `json:"notes"`
	ExpectedVersion *int64  `json:"expectedVersion"`
}

// Create handles POST /api/admin/lemmas.
func (h *LemmaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLemmaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	status, err := parseOptionalStatus(req.Status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Create(r.Context(), auth.ActorFromCtx(r.Context()), lemma.CreateInput{
		Language:     req.Language,
		LemmaNative:  req.LemmaNative,
		LemmaLatin:   req.LemmaLatin,
		PartOfSpeech: req.PartOfSpeech,
		Notes:        req.Notes,
		Status:       status,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLemma(l))
}

// Update handles PATCH /api/admin/lemmas/{id}.
func (h *LemmaHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateLemmaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Update(r.Context(), auth.ActorFromCtx(r.Context()), lemma.UpdateInput{
		ID:              r.PathValue("id"),
		Language:        req.Language,
		LemmaNative:     req.LemmaNative,
		LemmaLatin:      req.LemmaLatin,
		PartOfSpeech:    req.PartOfSpeech,
		Notes:           req.Notes,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLemma(l))
}

// Delete handles DELETE /api/admin/lemmas/{id}.
func (h *LemmaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /api/admin/lemmas/{id}.
func (h *LemmaHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLemma(l))
}

// List handles GET /api/admin/lemmas?language=mr&status=DRAFT&limit=50&offset=0.
func (h *LemmaHandler) List(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, toPage(result, toLemma))
}

// SetStatus handles PUT /api/admin/lemmas/{id}/status.
func (h *LemmaHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
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

	l, err := h.svc.SetStatus(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id"), status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLemma(l))
}

// Archive handles POST /api/admin/lemmas/{id}/archive.
func (h *LemmaHandler) Archive(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.Archive(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLemma(l))
}

// Unarchive handles POST /api/admin/lemmas/{id}/unarchive with an optional
// {"status": ...} body; the target defaults to REVIEW.
func (h *LemmaHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
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

	l, err := h.svc.Unarchive(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("id"), target)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLemma(l))
}

// GetPublished handles GET /api/public/lemmas/{id}.
func (h *LemmaHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.GetPublished(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLemma(l))
}

// ListPublished handles GET /api/public/languages/{code}/lemmas.
func (h *LemmaHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, toPage(result, toLemma))
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bhashamitra-backend/internal/auth"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/language"
)

type languageService interface {
	Create(ctx context.Context, actor string, input language.CreateInput) (*domain.Language, error)
	Update(ctx context.Context, actor string, input language.UpdateInput) (*domain.Language, error)
	SetEnabled(ctx context.Context, actor, code string, enabled bool) (*domain.Language, error)
	IsEnabled(ctx context.Context, code string) bool
	GetEnabled(ctx context.Context, code string) (*domain.Language, error)
	GetByCode(ctx context.Context, code string) (*domain.Language, error)
	ListAll(ctx context.Context) ([]*domain.Language, error)
	ListEnabled(ctx context.Context) ([]*domain.Language, error)
}

// LanguageHandler serves language registry endpoints.
type LanguageHandler struct {
	svc languageService
	log *slog.Logger
}

// NewLanguageHandler creates a LanguageHandler.
func NewLanguageHandler(svc languageService, logger *slog.Logger) *LanguageHandler {
	return &LanguageHandler{svc: svc, log: logger.With("handler", "language")}
}

type createLanguageRequest struct {
	Code                  string  `json:"code"`
	Name                  string  `json:"name"`
	Script                string  `json:"script"`
	TransliterationScheme *string `json:"transliterationScheme"`
	Enabled               bool    `json:"enabled"`
}

type updateLanguageRequest struct {
	Name                  *string `json:"name"`
	Script                *string `json:"script"`
	TransliterationScheme *string `json:"transliterationScheme"`
}

type enabledRequest struct {
	Enabled *bool `json:"enabled"`
}

type enabledResponse struct {
	Code    string `json:"code"`
	Enabled bool   `json:"enabled"`
}

// Create handles POST /api/admin/languages.
func (h *LanguageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLanguageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Create(r.Context(), auth.ActorFromCtx(r.Context()), language.CreateInput{
		Code:                  req.Code,
		Name:                  req.Name,
		Script:                req.Script,
		TransliterationScheme: req.TransliterationScheme,
		Enabled:               req.Enabled,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLanguage(l))
}

// Update handles PATCH /api/admin/languages/{code}.
func (h *LanguageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateLanguageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Update(r.Context(), auth.ActorFromCtx(r.Context()), language.UpdateInput{
		Code:                  r.PathValue("code"),
		Name:                  req.Name,
		Script:                req.Script,
		TransliterationScheme: req.TransliterationScheme,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLanguage(l))
}

// SetEnabled handles PUT /api/admin/languages/{code}/enabled.
func (h *LanguageHandler) SetEnabled(w http.ResponseWriter, r *http.Request) {
	var req enabledRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Enabled == nil {
		handleError(h.log, w, r, domain.NewValidationError("enabled", "required"))
		return
	}

	l, err := h.svc.SetEnabled(r.Context(), auth.ActorFromCtx(r.Context()), r.PathValue("code"), *req.Enabled)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLanguage(l))
}

// Get handles GET /api/admin/languages/{code}.
func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.GetByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLanguage(l))
}

// ListAll handles GET /api/admin/languages.
func (h *LanguageHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toLanguage))
}

// ListEnabled handles GET /api/public/languages.
func (h *LanguageHandler) ListEnabled(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListEnabled(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toLanguage))
}

// GetEnabled handles GET /api/public/languages/{code}.
func (h *LanguageHandler) GetEnabled(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.GetEnabled(r.Context(), r.PathValue("code"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLanguage(l))
}

// IsEnabled handles GET /api/public/languages/{code}/enabled. It always
// answers 200; unknown codes report false.
func (h *LanguageHandler) IsEnabled(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	writeJSON(w, http.StatusOK, enabledResponse{Code: code, Enabled: h.svc.IsEnabled(r.Context(), code)})
}

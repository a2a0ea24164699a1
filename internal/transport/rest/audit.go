package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

type auditService interface {
	Timeline(ctx context.Context, entityType domain.EntityType, entityID string, page domain.PageRequest) (*domain.Page[*domain.AuditEvent], error)
	Latest(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.AuditEvent, error)
	ActivityByEventType(ctx context.Context, eventType string, window domain.TimeWindow, page domain.PageRequest) (*domain.Page[*domain.AuditEvent], error)
	ActivityByActor(ctx context.Context, actor string, window domain.TimeWindow, page domain.PageRequest) (*domain.Page[*domain.AuditEvent], error)
}

// AuditHandler serves read-only audit trail endpoints.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

func entityTypeFromPath(r *http.Request) domain.EntityType {
	return domain.EntityType(strings.ToUpper(strings.TrimSpace(r.PathValue("entityType"))))
}

// Timeline handles GET /api/admin/audit/{entityType}/{entityId}.
func (h *AuditHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Timeline(r.Context(), entityTypeFromPath(r), r.PathValue("entityId"), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(result, toAuditEvent))
}

// Latest handles GET /api/admin/audit/{entityType}/{entityId}/latest.
func (h *AuditHandler) Latest(w http.ResponseWriter, r *http.Request) {
	ev, err := h.svc.Latest(r.Context(), entityTypeFromPath(r), r.PathValue("entityId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditEvent(ev))
}

// Activity handles GET /api/admin/audit/activity?eventType=...&from=...&to=...
// or ?actor=...&from=...&to=... . Exactly one of eventType and actor is required.
func (h *AuditHandler) Activity(w http.ResponseWriter, r *http.Request) {
	window, err := windowFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	page, err := pageFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	eventType, actor := r.URL.Query().Get("eventType"), r.URL.Query().Get("actor")
	var result *domain.Page[*domain.AuditEvent]
	switch {
	case eventType != "" && actor != "":
		err = domain.NewValidationError("actor", "must not be combined with eventType")
	case eventType != "":
		result, err = h.svc.ActivityByEventType(r.Context(), eventType, window, page)
	case actor != "":
		result, err = h.svc.ActivityByActor(r.Context(), actor, window, page)
	default:
		err = domain.NewValidationError("eventType", "eventType or actor is required")
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(result, toAuditEvent))
}

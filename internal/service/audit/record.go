package audit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Record appends one audit event. A blank actor is attributed to
// domain.SystemActor. Details that cannot be serialized are replaced by a
// fallback payload; the write still happens and no error is returned for it.
func (s *Service) Record(ctx context.Context, entry domain.AuditEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	actor := strings.TrimSpace(entry.Actor)
	if actor == "" {
		actor = domain.SystemActor
	}

	details, encErr := encodeDetails(entry.Details)
	if encErr != nil {
		s.log.WarnContext(ctx, "audit details serialization failed, storing fallback",
			slog.String("entity_type", entry.EntityType.String()),
			slog.String("entity_id", entry.EntityID),
			slog.String("event_type", entry.EventType),
			slog.String("error", encErr.Error()),
		)
		details = fallbackDetails(encErr)
	}

	ev, err := s.events.Insert(ctx, &domain.AuditEvent{
		EntityType: entry.EntityType,
		EntityID:   strings.TrimSpace(entry.EntityID),
		EventType:  strings.TrimSpace(entry.EventType),
		Actor:      actor,
		Comment:    domain.TrimToNil(entry.Comment),
		Details:    details,
	})
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}

	s.log.DebugContext(ctx, "audit event recorded",
		slog.String("event_id", ev.ID),
		slog.String("event_type", ev.EventType),
		slog.String("actor", ev.Actor),
	)
	return nil
}

func validateEntry(e domain.AuditEntry) error {
	var errs []domain.FieldError
	if domain.IsBlank(string(e.EntityType)) {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "required"})
	}
	if domain.IsBlank(e.EntityID) {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}
	if domain.IsBlank(e.EventType) {
		errs = append(errs, domain.FieldError{Field: "event_type", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

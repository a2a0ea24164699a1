package audit

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Timeline returns the events of one entity, newest first.
func (s *Service) Timeline(ctx context.Context, entityType domain.EntityType, entityID string, page domain.PageRequest) (*domain.Page[*domain.AuditEvent], error) {
	if err := requireEntity(entityType, entityID); err != nil {
		return nil, err
	}
	page = page.Normalize()

	items, total, err := s.events.ListByEntity(ctx, entityType, entityID, page)
	if err != nil {
		return nil, fmt.Errorf("list audit timeline: %w", err)
	}
	return domain.NewPage(items, total, page), nil
}

// Latest returns the most recent event of one entity.
func (s *Service) Latest(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.AuditEvent, error) {
	if err := requireEntity(entityType, entityID); err != nil {
		return nil, err
	}
	ev, err := s.events.Latest(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("latest audit event: %w", err)
	}
	return ev, nil
}

// ActivityByEventType returns events of one type inside window, newest first.
func (s *Service) ActivityByEventType(ctx context.Context, eventType string, window domain.TimeWindow, page domain.PageRequest) (*domain.Page[*domain.AuditEvent], error) {
	if domain.IsBlank(eventType) {
		return nil, domain.NewValidationError("event_type", "required")
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	page = page.Normalize()

	items, total, err := s.events.ListByEventType(ctx, eventType, window, page)
	if err != nil {
		return nil, fmt.Errorf("list audit by event type: %w", err)
	}
	return domain.NewPage(items, total, page), nil
}

// ActivityByActor returns events attributed to actor inside window, newest first.
func (s *Service) ActivityByActor(ctx context.Context, actor string, window domain.TimeWindow, page domain.PageRequest) (*domain.Page[*domain.AuditEvent], error) {
	if domain.IsBlank(actor) {
		return nil, domain.NewValidationError("actor", "required")
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	page = page.Normalize()

	items, total, err := s.events.ListByActor(ctx, actor, window, page)
	if err != nil {
		return nil, fmt.Errorf("list audit by actor: %w", err)
	}
	return domain.NewPage(items, total, page), nil
}

func requireEntity(entityType domain.EntityType, entityID string) error {
	var errs []domain.FieldError
	if !entityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "unknown entity type"})
	}
	if domain.IsBlank(entityID) {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

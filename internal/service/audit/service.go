// Package audit implements the append-only editorial audit log: recording
// events for every content mutation and reading them back by entity, event
// type or actor.
package audit

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

type eventRepo interface {
	Insert(ctx context.Context, ev *domain.AuditEvent) (*domain.AuditEvent, error)
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, page domain.PageRequest) ([]*domain.AuditEvent, int, error)
	Latest(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.AuditEvent, error)
	ListByEventType(ctx context.Context, eventType string, window domain.TimeWindow, page domain.PageRequest) ([]*domain.AuditEvent, int, error)
	ListByActor(ctx context.Context, actor string, window domain.TimeWindow, page domain.PageRequest) ([]*domain.AuditEvent, int, error)
}

// Service records and queries editorial audit events.
type Service struct {
	events eventRepo
	log    *slog.Logger
}

// NewService creates a new audit Service.
func NewService(log *slog.Logger, events eventRepo) *Service {
	return &Service{
		events: events,
		log:    log.With("service", "audit"),
	}
}

// Package audit implements the editorial audit event repository using PostgreSQL.
// It provides append-only operations: there is no update or delete path.
package audit

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

var table = postgres.Table{
	Name:    "editorial_audit_events",
	Entity:  "audit_event",
	Columns: []string{"entity_type", "entity_id", "event_type", "actor", "comment", "details", "event_time"},
}

// seq breaks ties between events sharing a timestamp in insertion order.
var newestFirst = []string{"event_time DESC", "seq DESC"}

type row struct {
	postgres.AuditableRow
	EntityType string    `db:"entity_type"`
	EntityID   string    `db:"entity_id"`
	EventType  string    `db:"event_type"`
	Actor      string    `db:"actor"`
	Comment    *string   `db:"comment"`
	Details    *string   `db:"details"`
	EventTime  time.Time `db:"event_time"`
}

func (r row) toDomain() *domain.AuditEvent {
	return &domain.AuditEvent{
		Auditable:  r.AuditableRow.ToDomain(),
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		EventType:  r.EventType,
		Actor:      r.Actor,
		Comment:    r.Comment,
		Details:    r.Details,
		EventTime:  r.EventTime.UTC(),
	}
}

// Repo provides audit event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new audit repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert appends one audit event. EventTime is the database wall clock at the
// moment of the insert, not the transaction start.
func (r *Repo) Insert(ctx context.Context, ev *domain.AuditEvent) (*domain.AuditEvent, error) {
	var out row
	err := table.Insert(ctx, postgres.QuerierFromCtx(ctx, r.db), ev.Actor, map[string]any{
		"entity_type": string(ev.EntityType),
		"entity_id":   ev.EntityID,
		"event_type":  ev.EventType,
		"actor":       ev.Actor,
		"comment":     ev.Comment,
		"details":     ev.Details,
		"event_time":  sq.Expr("clock_timestamp()"),
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the timeline of one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, page domain.PageRequest) ([]*domain.AuditEvent, int, error) {
	return r.page(ctx, sq.Eq{"entity_type": string(entityType), "entity_id": entityID}, page)
}

// Latest returns the most recent event of one entity.
func (r *Repo) Latest(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.AuditEvent, error) {
	var out row
	q := table.Select().
		Where(sq.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy(newestFirst...).
		Limit(1)
	if err := table.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &out, entityID); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// ListByEventType returns events of one type inside the inclusive window, newest first.
func (r *Repo) ListByEventType(ctx context.Context, eventType string, window domain.TimeWindow, page domain.PageRequest) ([]*domain.AuditEvent, int, error) {
	return r.page(ctx, sq.And{sq.Eq{"event_type": eventType}, inWindow(window)}, page)
}

// ListByActor returns events by one actor inside the inclusive window, newest first.
func (r *Repo) ListByActor(ctx context.Context, actor string, window domain.TimeWindow, page domain.PageRequest) ([]*domain.AuditEvent, int, error) {
	return r.page(ctx, sq.And{sq.Eq{"actor": actor}, inWindow(window)}, page)
}

func (r *Repo) page(ctx context.Context, where sq.Sqlizer, page domain.PageRequest) ([]*domain.AuditEvent, int, error) {
	var rows []row
	total, err := table.ListPage(ctx, postgres.QuerierFromCtx(ctx, r.db), where, newestFirst, page, &rows)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*domain.AuditEvent, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, total, nil
}

func inWindow(w domain.TimeWindow) sq.Sqlizer {
	return sq.And{
		sq.GtOrEq{"event_time": w.From.UTC()},
		sq.LtOrEq{"event_time": w.To.UTC()},
	}
}

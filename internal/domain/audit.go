package domain

import "time"

// SystemActor is attributed to mutations without an authenticated principal.
const SystemActor = "system"

// AuditEvent is one row of the append-only editorial audit trail.
// Entities are referenced weakly by (EntityType, EntityID).
type AuditEvent struct {
	Auditable
	EntityType EntityType
	EntityID   string
	EventType  string
	Actor      string
	Comment    *string
	Details    *string
	EventTime  time.Time
}

// AuditEntry is what a service hands to the audit log. Details is either a
// pre-serialized JSON payload (string, []byte, json.RawMessage) or any value
// the log will encode itself.
type AuditEntry struct {
	EntityType EntityType
	EntityID   string
	EventType  string
	Actor      string
	Comment    *string
	Details    any
}

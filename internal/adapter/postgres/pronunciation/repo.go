// Package pronunciation implements the Pronunciation repository using PostgreSQL.
// Owners are referenced by (owner_type, owner_id) without a foreign key.
package pronunciation

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

var table = postgres.Table{
	Name:    "pronunciations",
	Entity:  "pronunciation",
	Columns: []string{"owner_type", "owner_id", "speaker", "region", "audio_uri", "duration_ms"},
}

type row struct {
	postgres.AuditableRow
	OwnerType  string  `db:"owner_type"`
	OwnerID    string  `db:"owner_id"`
	Speaker    *string `db:"speaker"`
	Region     *string `db:"region"`
	AudioURI   string  `db:"audio_uri"`
	DurationMs *int    `db:"duration_ms"`
}

func (r row) toDomain() *domain.Pronunciation {
	return &domain.Pronunciation{
		Auditable:  r.AuditableRow.ToDomain(),
		OwnerType:  domain.OwnerType(r.OwnerType),
		OwnerID:    r.OwnerID,
		Speaker:    r.Speaker,
		Region:     r.Region,
		AudioURI:   r.AudioURI,
		DurationMs: r.DurationMs,
	}
}

// Repo provides pronunciation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new pronunciation repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a pronunciation by id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Pronunciation, error) {
	var out row
	q := table.Select().Where(sq.Eq{"id": id})
	if err := table.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &out, id); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// ListByOwner returns the pronunciations of one owner, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerType domain.OwnerType, ownerID string) ([]*domain.Pronunciation, error) {
	q := table.Select().
		Where(sq.Eq{"owner_type": string(ownerType), "owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC")

	var rows []row
	if err := table.List(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &rows); err != nil {
		return nil, err
	}
	out := make([]*domain.Pronunciation, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// ExistsByKey reports whether another pronunciation of the owner already uses audioURI.
func (r *Repo) ExistsByKey(ctx context.Context, ownerType domain.OwnerType, ownerID, audioURI, excludeID string) (bool, error) {
	where := postgres.ExcludingID(sq.Eq{
		"owner_type": string(ownerType),
		"owner_id":   ownerID,
		"audio_uri":  audioURI,
	}, excludeID)
	return table.Exists(ctx, postgres.QuerierFromCtx(ctx, r.db), where)
}

// Create inserts a new pronunciation.
func (r *Repo) Create(ctx context.Context, actor string, p *domain.Pronunciation) (*domain.Pronunciation, error) {
	var out row
	if err := table.Insert(ctx, postgres.QuerierFromCtx(ctx, r.db), actor, values(p), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Update persists every data column of p if its version is current.
func (r *Repo) Update(ctx context.Context, actor string, p *domain.Pronunciation) (*domain.Pronunciation, error) {
	var out row
	if err := table.Update(ctx, postgres.QuerierFromCtx(ctx, r.db), p.ID, p.Version, actor, values(p), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Delete removes a pronunciation.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return table.Delete(ctx, postgres.QuerierFromCtx(ctx, r.db), id)
}

func values(p *domain.Pronunciation) map[string]any {
	return map[string]any{
		"owner_type":  string(p.OwnerType),
		"owner_id":    p.OwnerID,
		"speaker":     p.Speaker,
		"region":      p.Region,
		"audio_uri":   p.AudioURI,
		"duration_ms": p.DurationMs,
	}
}

// Package meaning implements the Meaning repository using PostgreSQL.
package meaning

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

var table = postgres.Table{
	Name:    "meanings",
	Entity:  "meaning",
	Columns: []string{"lemma_id", "meaning_language", "meaning_text", "priority"},
}

type row struct {
	postgres.AuditableRow
	LemmaID         string `db:"lemma_id"`
	MeaningLanguage string `db:"meaning_language"`
	MeaningText     string `db:"meaning_text"`
	Priority        int    `db:"priority"`
}

func (r row) toDomain() *domain.Meaning {
	return &domain.Meaning{
		Auditable:       r.AuditableRow.ToDomain(),
		LemmaID:         r.LemmaID,
		MeaningLanguage: r.MeaningLanguage,
		MeaningText:     r.MeaningText,
		Priority:        r.Priority,
	}
}

// Repo provides meaning persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new meaning repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a meaning by id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Meaning, error) {
	var out row
	q := table.Select().Where(sq.Eq{"id": id})
	if err := table.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &out, id); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// ListByLemma returns the meanings of a lemma ordered by priority, then id.
func (r *Repo) ListByLemma(ctx context.Context, lemmaID string) ([]*domain.Meaning, error) {
	q := table.Select().Where(sq.Eq{"lemma_id": lemmaID}).OrderBy("priority ASC", "id ASC")

	var rows []row
	if err := table.List(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &rows); err != nil {
		return nil, err
	}
	out := make([]*domain.Meaning, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// ExistsByKey reports whether another meaning occupies (lemma, language, priority).
func (r *Repo) ExistsByKey(ctx context.Context, lemmaID, language string, priority int, excludeID string) (bool, error) {
	where := postgres.ExcludingID(sq.Eq{
		"lemma_id":         lemmaID,
		"meaning_language": language,
		"priority":         priority,
	}, excludeID)
	return table.Exists(ctx, postgres.QuerierFromCtx(ctx, r.db), where)
}

// Create inserts a new meaning.
func (r *Repo) Create(ctx context.Context, actor string, m *domain.Meaning) (*domain.Meaning, error) {
	var out row
	if err := table.Insert(ctx, postgres.QuerierFromCtx(ctx, r.db), actor, values(m), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Update persists every data column of m if its version is current.
func (r *Repo) Update(ctx context.Context, actor string, m *domain.Meaning) (*domain.Meaning, error) {
	var out row
	if err := table.Update(ctx, postgres.QuerierFromCtx(ctx, r.db), m.ID, m.Version, actor, values(m), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Delete removes a meaning.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return table.Delete(ctx, postgres.QuerierFromCtx(ctx, r.db), id)
}

func values(m *domain.Meaning) map[string]any {
	return map[string]any{
		"lemma_id":         m.LemmaID,
		"meaning_language": m.MeaningLanguage,
		"meaning_text":     m.MeaningText,
		"priority":         m.Priority,
	}
}

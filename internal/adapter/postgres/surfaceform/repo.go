// Package surfaceform implements the SurfaceForm repository using PostgreSQL.
package surfaceform

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

var table = postgres.Table{
	Name:    "surface_forms",
	Entity:  "surface_form",
	Columns: []string{"lemma_id", "form_native", "form_latin", "form_type", "notes"},
}

type row struct {
	postgres.AuditableRow
	LemmaID    string  `db:"lemma_id"`
	FormNative string  `db:"form_native"`
	FormLatin  *string `db:"form_latin"`
	FormType   *string `db:"form_type"`
	Notes      *string `db:"notes"`
}

func (r row) toDomain() *domain.SurfaceForm {
	return &domain.SurfaceForm{
		Auditable:  r.AuditableRow.ToDomain(),
		LemmaID:    r.LemmaID,
		FormNative: r.FormNative,
		FormLatin:  r.FormLatin,
		FormType:   r.FormType,
		Notes:      r.Notes,
	}
}

// Repo provides surface form persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new surface form repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a surface form by id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.SurfaceForm, error) {
	var out row
	q := table.Select().Where(sq.Eq{"id": id})
	if err := table.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &out, id); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// ListByLemma returns the surface forms of a lemma ordered by form_native, then id.
func (r *Repo) ListByLemma(ctx context.Context, lemmaID string) ([]*domain.SurfaceForm, error) {
	q := table.Select().Where(sq.Eq{"lemma_id": lemmaID}).OrderBy("form_native ASC", "id ASC")

	var rows []row
	if err := table.List(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &rows); err != nil {
		return nil, err
	}
	out := make([]*domain.SurfaceForm, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// ExistsByKey reports whether another surface form of the lemma uses formNative.
func (r *Repo) ExistsByKey(ctx context.Context, lemmaID, formNative, excludeID string) (bool, error) {
	where := postgres.ExcludingID(sq.Eq{"lemma_id": lemmaID, "form_native": formNative}, excludeID)
	return table.Exists(ctx, postgres.QuerierFromCtx(ctx, r.db), where)
}

// Create inserts a new surface form.
func (r *Repo) Create(ctx context.Context, actor string, f *domain.SurfaceForm) (*domain.SurfaceForm, error) {
	var out row
	if err := table.Insert(ctx, postgres.QuerierFromCtx(ctx, r.db), actor, values(f), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Update persists every data column of f if its version is current.
func (r *Repo) Update(ctx context.Context, actor string, f *domain.SurfaceForm) (*domain.SurfaceForm, error) {
	var out row
	if err := table.Update(ctx, postgres.QuerierFromCtx(ctx, r.db), f.ID, f.Version, actor, values(f), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Delete removes a surface form. Links referencing it keep the dangling id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return table.Delete(ctx, postgres.QuerierFromCtx(ctx, r.db), id)
}

func values(f *domain.SurfaceForm) map[string]any {
	return map[string]any{
		"lemma_id":    f.LemmaID,
		"form_native": f.FormNative,
		"form_latin":  f.FormLatin,
		"form_type":   f.FormType,
		"notes":       f.Notes,
	}
}

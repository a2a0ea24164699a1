// Package lemma implements the Lemma repository using PostgreSQL.
package lemma

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

var table = postgres.Table{
	Name:    "lemmas",
	Entity:  "lemma",
	Columns: []string{"language", "lemma_native", "lemma_latin", "part_of_speech", "notes", "status"},
}

var ordering = []string{"lemma_native ASC", "id ASC"}

func byLemma(id string) sq.Sqlizer { return sq.Eq{"lemma_id": id} }

// dependents are the child rows that block deleting a lemma.
var dependents = []postgres.Dependent{
	{Name: "meanings", Table: "meanings", Match: byLemma},
	{Name: "surface_forms", Table: "surface_forms", Match: byLemma},
	{Name: "links", Table: "lemma_sentence_links", Match: byLemma},
	{Name: "pronunciations", Table: "pronunciations", Match: func(id string) sq.Sqlizer {
		return sq.Eq{"owner_type": string(domain.OwnerTypeLemma), "owner_id": id}
	}},
}

type row struct {
	postgres.AuditableRow
	Language     string  `db:"language"`
	LemmaNative  string  `db:"lemma_native"`
	LemmaLatin   *string `db:"lemma_latin"`
	PartOfSpeech *string `db:"part_of_speech"`
	Notes        *string `db:"notes"`
	Status       string  `db:"status"`
}

func (r row) toDomain() *domain.Lemma {
	return &domain.Lemma{
		Auditable:    r.AuditableRow.ToDomain(),
		Language:     r.Language,
		LemmaNative:  r.LemmaNative,
		LemmaLatin:   r.LemmaLatin,
		PartOfSpeech: r.PartOfSpeech,
		Notes:        r.Notes,
		Status:       domain.EditorialStatus(r.Status),
	}
}

// Repo provides lemma persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new lemma repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns the lemma with the given id regardless of status.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Lemma, error) {
	var out row
	q := table.Select().Where(sq.Eq{"id": id})
	if err := table.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &out, id); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// ExistsByLanguageAndNative reports whether another lemma already uses the
// (language, lemma_native) key. excludeID skips the lemma being updated.
func (r *Repo) ExistsByLanguageAndNative(ctx context.Context, language, native, excludeID string) (bool, error) {
	where := postgres.ExcludingID(sq.Eq{"language": language, "lemma_native": native}, excludeID)
	return table.Exists(ctx, postgres.QuerierFromCtx(ctx, r.db), where)
}

// List returns lemmas matching filter ordered by lemma_native, plus the total count.
func (r *Repo) List(ctx context.Context, filter domain.ContentFilter, page domain.PageRequest) ([]*domain.Lemma, int, error) {
	where := sq.And{}
	if filter.Language != "" {
		where = append(where, sq.Eq{"language": filter.Language})
	}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": string(*filter.Status)})
	}

	var rows []row
	total, err := table.ListPage(ctx, postgres.QuerierFromCtx(ctx, r.db), where, ordering, page, &rows)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*domain.Lemma, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, total, nil
}

// Create inserts a new lemma.
func (r *Repo) Create(ctx context.Context, actor string, l *domain.Lemma) (*domain.Lemma, error) {
	var out row
	if err := table.Insert(ctx, postgres.QuerierFromCtx(ctx, r.db), actor, values(l), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Update persists every data column of l if its version is current.
func (r *Repo) Update(ctx context.Context, actor string, l *domain.Lemma) (*domain.Lemma, error) {
	var out row
	if err := table.Update(ctx, postgres.QuerierFromCtx(ctx, r.db), l.ID, l.Version, actor, values(l), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Dependents names the kinds of child rows that still reference the lemma.
func (r *Repo) Dependents(ctx context.Context, id string) ([]string, error) {
	return postgres.Dependents(ctx, postgres.QuerierFromCtx(ctx, r.db), id, dependents)
}

// Delete removes a lemma. It fails with domain.ErrConflict while meanings,
// surface forms or links still reference it.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return table.Delete(ctx, postgres.QuerierFromCtx(ctx, r.db), id)
}

func values(l *domain.Lemma) map[string]any {
	return map[string]any{
		"language":       l.Language,
		"lemma_native":   l.LemmaNative,
		"lemma_latin":    l.LemmaLatin,
		"part_of_speech": l.PartOfSpeech,
		"notes":          l.Notes,
		"status":         string(l.Status),
	}
}

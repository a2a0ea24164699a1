// Package sentence implements the UsageSentence repository using PostgreSQL.
package sentence

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

var table = postgres.Table{
	Name:   "usage_sentences",
	Entity: "usage_sentence",
	Columns: []string{
		"language", "sentence_native", "sentence_latin", "translation",
		"register", "explanation", "difficulty", "status",
	},
}

var ordering = []string{"sentence_native ASC", "id ASC"}

// dependents are the child rows that block deleting a sentence.
var dependents = []postgres.Dependent{
	{Name: "links", Table: "lemma_sentence_links", Match: func(id string) sq.Sqlizer {
		return sq.Eq{"sentence_id": id}
	}},
	{Name: "pronunciations", Table: "pronunciations", Match: func(id string) sq.Sqlizer {
		return sq.Eq{"owner_type": string(domain.OwnerTypeSentence), "owner_id": id}
	}},
}

type row struct {
	postgres.AuditableRow
	Language       string  `db:"language"`
	SentenceNative string  `db:"sentence_native"`
	SentenceLatin  *string `db:"sentence_latin"`
	Translation    *string `db:"translation"`
	Register       string  `db:"register"`
	Explanation    *string `db:"explanation"`
	Difficulty     *int    `db:"difficulty"`
	Status         string  `db:"status"`
}

func (r row) toDomain() *domain.UsageSentence {
	return &domain.UsageSentence{
		Auditable:      r.AuditableRow.ToDomain(),
		Language:       r.Language,
		SentenceNative: r.SentenceNative,
		SentenceLatin:  r.SentenceLatin,
		Translation:    r.Translation,
		Register:       r.Register,
		Explanation:    r.Explanation,
		Difficulty:     r.Difficulty,
		Status:         domain.EditorialStatus(r.Status),
	}
}

// Repo provides usage sentence persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new usage sentence repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns the sentence with the given id regardless of status.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.UsageSentence, error) {
	var out row
	q := table.Select().Where(sq.Eq{"id": id})
	if err := table.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &out, id); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// List returns sentences matching filter ordered by sentence_native, plus the total count.
func (r *Repo) List(ctx context.Context, filter domain.ContentFilter, page domain.PageRequest) ([]*domain.UsageSentence, int, error) {
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

	out := make([]*domain.UsageSentence, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, total, nil
}

// Create inserts a new usage sentence.
func (r *Repo) Create(ctx context.Context, actor string, s *domain.UsageSentence) (*domain.UsageSentence, error) {
	var out row
	if err := table.Insert(ctx, postgres.QuerierFromCtx(ctx, r.db), actor, values(s), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Update persists every data column of s if its version is current.
func (r *Repo) Update(ctx context.Context, actor string, s *domain.UsageSentence) (*domain.UsageSentence, error) {
	var out row
	if err := table.Update(ctx, postgres.QuerierFromCtx(ctx, r.db), s.ID, s.Version, actor, values(s), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Dependents names the kinds of child rows that still reference the sentence.
func (r *Repo) Dependents(ctx context.Context, id string) ([]string, error) {
	return postgres.Dependents(ctx, postgres.QuerierFromCtx(ctx, r.db), id, dependents)
}

// Delete removes a usage sentence. It fails with domain.ErrConflict while
// links still reference it.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return table.Delete(ctx, postgres.QuerierFromCtx(ctx, r.db), id)
}

func values(s *domain.UsageSentence) map[string]any {
	return map[string]any{
		"language":        s.Language,
		"sentence_native": s.SentenceNative,
		"sentence_latin":  s.SentenceLatin,
		"translation":     s.Translation,
		"register":        s.Register,
		"explanation":     s.Explanation,
		"difficulty":      s.Difficulty,
		"status":          string(s.Status),
	}
}

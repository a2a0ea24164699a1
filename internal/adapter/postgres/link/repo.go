// Package link implements the LemmaSentenceLink repository using PostgreSQL.
package link

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

var table = postgres.Table{
	Name:    "lemma_sentence_links",
	Entity:  "lemma_sentence_link",
	Columns: []string{"lemma_id", "sentence_id", "surface_form_id", "link_type"},
}

var newestFirst = []string{"created_at DESC", "id DESC"}

type row struct {
	postgres.AuditableRow
	LemmaID       string  `db:"lemma_id"`
	SentenceID    string  `db:"sentence_id"`
	SurfaceFormID *string `db:"surface_form_id"`
	LinkType      string  `db:"link_type"`
}

func (r row) toDomain() *domain.LemmaSentenceLink {
	return &domain.LemmaSentenceLink{
		Auditable:     r.AuditableRow.ToDomain(),
		LemmaID:       r.LemmaID,
		SentenceID:    r.SentenceID,
		SurfaceFormID: r.SurfaceFormID,
		LinkType:      domain.LinkType(r.LinkType),
	}
}

// Repo provides lemma-sentence link persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new link repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a link by id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.LemmaSentenceLink, error) {
	var out row
	q := table.Select().Where(sq.Eq{"id": id})
	if err := table.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &out, id); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// ListByLemma returns the links of a lemma, newest first.
func (r *Repo) ListByLemma(ctx context.Context, lemmaID string) ([]*domain.LemmaSentenceLink, error) {
	return r.list(ctx, sq.Eq{"lemma_id": lemmaID})
}

// ListBySentence returns the links of a sentence, newest first.
func (r *Repo) ListBySentence(ctx context.Context, sentenceID string) ([]*domain.LemmaSentenceLink, error) {
	return r.list(ctx, sq.Eq{"sentence_id": sentenceID})
}

// ExistsByPair reports whether the (lemma, sentence) pair is already linked.
func (r *Repo) ExistsByPair(ctx context.Context, lemmaID, sentenceID string) (bool, error) {
	return table.Exists(ctx, postgres.QuerierFromCtx(ctx, r.db), sq.Eq{"lemma_id": lemmaID, "sentence_id": sentenceID})
}

// Create inserts a new link.
func (r *Repo) Create(ctx context.Context, actor string, l *domain.LemmaSentenceLink) (*domain.LemmaSentenceLink, error) {
	var out row
	if err := table.Insert(ctx, postgres.QuerierFromCtx(ctx, r.db), actor, values(l), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Update persists every data column of l if its version is current.
func (r *Repo) Update(ctx context.Context, actor string, l *domain.LemmaSentenceLink) (*domain.LemmaSentenceLink, error) {
	var out row
	if err := table.Update(ctx, postgres.QuerierFromCtx(ctx, r.db), l.ID, l.Version, actor, values(l), &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Delete removes a link.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return table.Delete(ctx, postgres.QuerierFromCtx(ctx, r.db), id)
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]*domain.LemmaSentenceLink, error) {
	var rows []row
	q := table.Select().Where(where).OrderBy(newestFirst...)
	if err := table.List(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &rows); err != nil {
		return nil, err
	}
	out := make([]*domain.LemmaSentenceLink, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func values(l *domain.LemmaSentenceLink) map[string]any {
	return map[string]any{
		"lemma_id":        l.LemmaID,
		"sentence_id":     l.SentenceID,
		"surface_form_id": l.SurfaceFormID,
		"link_type":       string(l.LinkType),
	}
}

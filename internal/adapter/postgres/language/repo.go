// Package language implements the Language repository using PostgreSQL.
package language

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/bhashamitra-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

var table = postgres.Table{
	Name:    "languages",
	Entity:  "language",
	Columns: []string{"code", "name", "script", "transliteration_scheme", "enabled"},
}

type row struct {
	postgres.AuditableRow
	Code                  string  `db:"code"`
	Name                  string  `db:"name"`
	Script                string  `db:"script"`
	TransliterationScheme *string `db:"transliteration_scheme"`
	Enabled               bool    `db:"enabled"`
}

func (r row) toDomain() *domain.Language {
	return &domain.Language{
		Auditable:             r.AuditableRow.ToDomain(),
		Code:                  r.Code,
		Name:                  r.Name,
		Script:                r.Script,
		TransliterationScheme: r.TransliterationScheme,
		Enabled:               r.Enabled,
	}
}

// Repo provides language persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new language repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByCode returns the language with the given code, enabled or not.
func (r *Repo) GetByCode(ctx context.Context, code string) (*domain.Language, error) {
	var out row
	q := table.Select().Where(sq.Eq{"code": code})
	if err := table.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &out, code); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// ExistsByCode reports whether a language with the given code exists.
func (r *Repo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return table.Exists(ctx, postgres.QuerierFromCtx(ctx, r.db), sq.Eq{"code": code})
}

// ListAll returns every language ordered by code.
func (r *Repo) ListAll(ctx context.Context) ([]*domain.Language, error) {
	return r.list(ctx, table.Select().OrderBy("code ASC"))
}

// ListEnabled returns enabled languages ordered by code.
func (r *Repo) ListEnabled(ctx context.Context) ([]*domain.Language, error) {
	return r.list(ctx, table.Select().Where(sq.Eq{"enabled": true}).OrderBy("code ASC"))
}

// Create inserts a new language.
func (r *Repo) Create(ctx context.Context, actor string, lang *domain.Language) (*domain.Language, error) {
	var out row
	err := table.Insert(ctx, postgres.QuerierFromCtx(ctx, r.db), actor, values(lang), &out)
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Update persists every data column of lang if its version is current.
func (r *Repo) Update(ctx context.Context, actor string, lang *domain.Language) (*domain.Language, error) {
	var out row
	err := table.Update(ctx, postgres.QuerierFromCtx(ctx, r.db), lang.ID, lang.Version, actor, values(lang), &out)
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

func (r *Repo) list(ctx context.Context, q sq.SelectBuilder) ([]*domain.Language, error) {
	var rows []row
	if err := table.List(ctx, postgres.QuerierFromCtx(ctx, r.db), q, &rows); err != nil {
		return nil, err
	}
	out := make([]*domain.Language, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func values(lang *domain.Language) map[string]any {
	return map[string]any{
		"code":                   lang.Code,
		"name":                   lang.Name,
		"script":                 lang.Script,
		"transliteration_scheme": lang.TransliterationScheme,
		"enabled":                lang.Enabled,
	}
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Builder is the squirrel statement builder configured for PostgreSQL placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// auditColumns are present on every editorial table.
var auditColumns = []string{
	"id", "created_by", "created_at", "last_modified_by", "last_modified_at", "version",
}

// AuditableRow is embedded in per-table row structs scanned with pgxscan.
type AuditableRow struct {
	ID             string    `db:"id"`
	CreatedBy      string    `db:"created_by"`
	CreatedAt      time.Time `db:"created_at"`
	LastModifiedBy string    `db:"last_modified_by"`
	LastModifiedAt time.Time `db:"last_modified_at"`
	Version        int64     `db:"version"`
}

// ToDomain converts the bookkeeping columns into domain.Auditable.
func (r AuditableRow) ToDomain() domain.Auditable {
	return domain.Auditable{
		ID:             r.ID,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt.UTC(),
		LastModifiedBy: r.LastModifiedBy,
		LastModifiedAt: r.LastModifiedAt.UTC(),
		Version:        r.Version,
	}
}

// Table describes one editorial table: its name, its entity label for error
// messages, and its data columns (bookkeeping columns are added automatically).
type Table struct {
	Name    string
	Entity  string
	Columns []string
}

// AllColumns returns bookkeeping columns followed by data columns.
func (t Table) AllColumns() []string {
	cols := make([]string, 0, len(auditColumns)+len(t.Columns))
	cols = append(cols, auditColumns...)
	return append(cols, t.Columns...)
}

// Select starts a SELECT of every column of the table.
func (t Table) Select() sq.SelectBuilder {
	return Builder.Select(t.AllColumns()...).From(t.Name)
}

// Get runs a single-row query and scans it into dst.
func (t Table) Get(ctx context.Context, q Querier, query sq.Sqlizer, dst any, id string) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build %s query: %w", t.Entity, err)
	}
	if err := pgxscan.Get(ctx, q, dst, sql, args...); err != nil {
		return MapError(err, t.Entity, id)
	}
	return nil
}

// List runs a multi-row query and scans it into dst (a pointer to a slice).
func (t Table) List(ctx context.Context, q Querier, query sq.Sqlizer, dst any) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build %s query: %w", t.Entity, err)
	}
	if err := pgxscan.Select(ctx, q, dst, sql, args...); err != nil {
		return fmt.Errorf("list %s: %w", t.Entity, err)
	}
	return nil
}

// Exists reports whether any row matches where.
func (t Table) Exists(ctx context.Context, q Querier, where sq.Sqlizer) (bool, error) {
	sql, args, err := Builder.Select("1").From(t.Name).Where(where).
		Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s exists: %w", t.Entity, err)
	}
	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s exists: %w", t.Entity, err)
	}
	return exists, nil
}

// Count returns the number of rows matching where.
func (t Table) Count(ctx context.Context, q Querier, where sq.Sqlizer) (int, error) {
	sql, args, err := Builder.Select("count(*)").From(t.Name).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count: %w", t.Entity, err)
	}
	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.Entity, err)
	}
	return n, nil
}

// Insert writes a new row with a fresh UUID, version 0 and database
// timestamps, then scans the stored row into dst.
func (t Table) Insert(ctx context.Context, q Querier, actor string, values map[string]any, dst any) error {
	id := uuid.NewString()
	set := make(map[string]any, len(values)+6)
	for k, v := range values {
		set[k] = v
	}
	set["id"] = id
	set["created_by"] = actor
	set["created_at"] = sq.Expr("now()")
	set["last_modified_by"] = actor
	set["last_modified_at"] = sq.Expr("now()")
	set["version"] = 0

	query := Builder.Insert(t.Name).SetMap(set).Suffix(returning(t.AllColumns()))
	return t.Get(ctx, q, query, dst, id)
}

// Update applies values to the row identified by id only if its version still
// equals version. The stored version is incremented. A version mismatch yields
// domain.ErrStaleVersion; a missing row yields domain.ErrNotFound.
func (t Table) Update(ctx context.Context, q Querier, id string, version int64, actor string, values map[string]any, dst any) error {
	set := make(map[string]any, len(values)+3)
	for k, v := range values {
		set[k] = v
	}
	set["last_modified_by"] = actor
	set["last_modified_at"] = sq.Expr("now()")
	set["version"] = sq.Expr("version + 1")

	query := Builder.Update(t.Name).SetMap(set).
		Where(sq.Eq{"id": id, "version": version}).
		Suffix(returning(t.AllColumns()))

	err := t.Get(ctx, q, query, dst, id)
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return err
	}

	exists, exErr := t.Exists(ctx, q, sq.Eq{"id": id})
	if exErr != nil {
		return exErr
	}
	if exists {
		return fmt.Errorf("%s %s: %w", t.Entity, id, domain.ErrStaleVersion)
	}
	return err
}

// Delete removes the row identified by id.
func (t Table) Delete(ctx context.Context, q Querier, id string) error {
	sql, args, err := Builder.Delete(t.Name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", t.Entity, err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		// On delete a foreign key violation means children still point here.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
			return fmt.Errorf("%s %s is still referenced: %w", t.Entity, id, domain.ErrConflict)
		}
		return MapError(err, t.Entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", t.Entity, id, domain.ErrNotFound)
	}
	return nil
}

// Dependent is a child table whose rows may reference a parent row.
type Dependent struct {
	Name  string
	Table string
	Match func(parentID string) sq.Sqlizer
}

// Dependents returns the names of deps that still have rows for parentID,
// in the order given.
func Dependents(ctx context.Context, q Querier, parentID string, deps []Dependent) ([]string, error) {
	var found []string
	for _, d := range deps {
		ok, err := Table{Name: d.Table, Entity: d.Name}.Exists(ctx, q, d.Match(parentID))
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, d.Name)
		}
	}
	return found, nil
}

// ListPage runs a filtered, ordered and paged query into dst and returns the
// total number of rows matching where.
func (t Table) ListPage(ctx context.Context, q Querier, where sq.Sqlizer, orderBy []string, page domain.PageRequest, dst any) (int, error) {
	total, err := t.Count(ctx, q, where)
	if err != nil {
		return 0, err
	}
	query := t.Select().Where(where).OrderBy(orderBy...).
		Limit(uint64(page.Limit)).Offset(uint64(page.Offset))
	if err := t.List(ctx, q, query, dst); err != nil {
		return 0, err
	}
	return total, nil
}

// ExcludingID narrows where to rows other than id. An empty id leaves where unchanged.
func ExcludingID(where sq.Sqlizer, id string) sq.Sqlizer {
	if id == "" {
		return where
	}
	return sq.And{where, sq.NotEq{"id": id}}
}

func returning(cols []string) string {
	s := "RETURNING "
	for i, c := range cols {
		if i > 0 {
			s += ", "
		}
		s += c
	}
	return s
}

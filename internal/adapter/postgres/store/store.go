// Package store implements the generic record store: squirrel-built SQL with
// dynamic filters, sort and pagination, declarative per-field validation, and
// scany row mapping. Repositories specialize it per table.
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/avoronin/stockpile-backend/internal/adapter/postgres"
	"github.com/avoronin/stockpile-backend/internal/domain"
)

// Columns owned by the store itself: the id and timestamps are always set
// here, never by callers.
const (
	colID        = "id"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
)

// Config describes the table behind a Store.
type Config[T any] struct {
	// Table is the table name.
	Table string
	// Columns is the full select list, including id and timestamps.
	Columns []string
	// Sortable maps API sort field names (e.g. "createdAt") to columns.
	Sortable map[string]string
	// Rules are the per-field validation rules applied on create and update.
	Rules []Rule
	// Values extracts the insertable column values from a record. It must not
	// include id, created_at or updated_at.
	Values func(*T) map[string]any
}

// Store provides generic persistence for one record type.
type Store[T any] struct {
	q   postgres.Querier
	cfg Config[T]
}

// builder is the shared squirrel builder with Postgres placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// New creates a Store after sanity-checking the config.
func New[T any](q postgres.Querier, cfg Config[T]) (*Store[T], error) {
	if cfg.Table == "" {
		return nil, fmt.Errorf("store: table name is required")
	}
	if len(cfg.Columns) == 0 {
		return nil, fmt.Errorf("store: column list is required")
	}
	if cfg.Values == nil {
		return nil, fmt.Errorf("store: values func is required")
	}
	return &Store[T]{q: q, cfg: cfg}, nil
}

// MustNew is New that panics on config errors. Configs are static, so a bad
// one is a programming error.
func MustNew[T any](q postgres.Querier, cfg Config[T]) *Store[T] {
	s, err := New(q, cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// FindAll returns one page of records matching filter (nil = all), together
// with the total count and page count.
func (s *Store[T]) FindAll(ctx context.Context, filter squirrel.Sqlizer, opts ListOptions) (*List[T], error) {
	opts.normalize()

	total, err := s.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	query := s.selectBuilder(filter).
		OrderBy(s.orderBy(opts.Sort)).
		Offset(uint64(opts.offset())).
		Limit(uint64(opts.Limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build select: %w", s.cfg.Table, err)
	}

	items := []*T{}
	if err := pgxscan.Select(ctx, s.q, &items, sql, args...); err != nil {
		return nil, postgres.MapError(err, s.cfg.Table, "list")
	}

	return &List[T]{
		Items: items,
		Pagination: Pagination{
			Page:  opts.Page,
			Limit: opts.Limit,
			Total: total,
			Pages: pages(total, opts.Limit),
		},
	}, nil
}

// All returns every record matching filter in the given sort order, without
// pagination. Callers own the memory implications.
func (s *Store[T]) All(ctx context.Context, filter squirrel.Sqlizer, sortField string) ([]*T, error) {
	if strings.TrimSpace(sortField) == "" {
		sortField = DefaultSort
	}

	sql, args, err := s.selectBuilder(filter).OrderBy(s.orderBy(sortField)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build select: %w", s.cfg.Table, err)
	}

	items := []*T{}
	if err := pgxscan.Select(ctx, s.q, &items, sql, args...); err != nil {
		return nil, postgres.MapError(err, s.cfg.Table, "all")
	}

	return items, nil
}

// FindByID returns the record with the given id, or domain.ErrNotFound.
func (s *Store[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.FindOne(ctx, squirrel.Eq{colID: id})
}

// FindOne returns the first record matching filter, or domain.ErrNotFound.
func (s *Store[T]) FindOne(ctx context.Context, filter squirrel.Sqlizer) (*T, error) {
	sql, args, err := s.selectBuilder(filter).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build select: %w", s.cfg.Table, err)
	}

	var record T
	if err := pgxscan.Get(ctx, s.q, &record, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s: %w", s.cfg.Table, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, s.cfg.Table, "one")
	}

	return &record, nil
}

// Create validates the record against the field rules and inserts it. The
// store assigns the id and both timestamps. Returns the persisted record.
func (s *Store[T]) Create(ctx context.Context, record *T) (*T, error) {
	values := s.cfg.Values(record)

	if err := validate(s.cfg.Rules, values, true); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	id := uuid.New()
	values[colID] = id
	values[colCreatedAt] = now
	values[colUpdatedAt] = now

	columns := sortedKeys(values)
	insertValues := make([]any, len(columns))
	for i, c := range columns {
		insertValues[i] = values[c]
	}

	sql, args, err := builder.Insert(s.cfg.Table).
		Columns(columns...).
		Values(insertValues...).
		Suffix("RETURNING " + strings.Join(s.cfg.Columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build insert: %w", s.cfg.Table, err)
	}

	var created T
	if err := pgxscan.Get(ctx, s.q, &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, s.cfg.Table, id)
	}

	return &created, nil
}

// UpdateByID validates the patched fields and applies the patch, bumping
// updated_at. Returns the updated record, or domain.ErrNotFound.
func (s *Store[T]) UpdateByID(ctx context.Context, id uuid.UUID, patch map[string]any) (*T, error) {
	if len(patch) == 0 {
		return s.FindByID(ctx, id)
	}

	if err := validate(s.cfg.Rules, patch, false); err != nil {
		return nil, err
	}

	set := make(map[string]any, len(patch)+1)
	for c, v := range patch {
		set[c] = v
	}
	set[colUpdatedAt] = time.Now().UTC()

	sql, args, err := builder.Update(s.cfg.Table).
		SetMap(set).
		Where(squirrel.Eq{colID: id}).
		Suffix("RETURNING " + strings.Join(s.cfg.Columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build update: %w", s.cfg.Table, err)
	}

	var updated T
	if err := pgxscan.Get(ctx, s.q, &updated, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s %s: %w", s.cfg.Table, id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, s.cfg.Table, id)
	}

	return &updated, nil
}

// DeleteByID removes the record and returns it, or domain.ErrNotFound.
func (s *Store[T]) DeleteByID(ctx context.Context, id uuid.UUID) (*T, error) {
	sql, args, err := builder.Delete(s.cfg.Table).
		Where(squirrel.Eq{colID: id}).
		Suffix("RETURNING " + strings.Join(s.cfg.Columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build delete: %w", s.cfg.Table, err)
	}

	var deleted T
	if err := pgxscan.Get(ctx, s.q, &deleted, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s %s: %w", s.cfg.Table, id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, s.cfg.Table, id)
	}

	return &deleted, nil
}

// Count returns the number of records matching filter (nil = all).
func (s *Store[T]) Count(ctx context.Context, filter squirrel.Sqlizer) (int, error) {
	query := builder.Select("COUNT(*)").From(s.cfg.Table)
	if filter != nil {
		query = query.Where(filter)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build count: %w", s.cfg.Table, err)
	}

	var total int
	if err := s.q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, s.cfg.Table, "count")
	}

	return total, nil
}

// selectBuilder returns the base SELECT with the optional filter applied.
func (s *Store[T]) selectBuilder(filter squirrel.Sqlizer) squirrel.SelectBuilder {
	query := builder.Select(s.cfg.Columns...).From(s.cfg.Table)
	if filter != nil {
		query = query.Where(filter)
	}
	return query
}

// orderBy translates an API sort field ("-createdAt") into an ORDER BY clause.
// Unknown fields fall back to created_at to keep the clause injection-safe.
func (s *Store[T]) orderBy(sortField string) string {
	direction := "ASC"
	if strings.HasPrefix(sortField, "-") {
		direction = "DESC"
		sortField = strings.TrimPrefix(sortField, "-")
	}

	column, ok := s.cfg.Sortable[sortField]
	if !ok {
		column = colCreatedAt
	}

	return column + " " + direction
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

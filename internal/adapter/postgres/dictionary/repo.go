// Package dictionary implements the Dictionary repository using PostgreSQL.
package dictionary

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/slovnyk/internal/adapter/postgres"
	"github.com/heartmarshall/slovnyk/internal/domain"
)

const table = "dictionaries"

var columns = []string{"id", "name", "type", "created_at"}

// Repo provides dictionary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dictionary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a dictionary by its id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Dictionary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get dictionary: %w", err)
	}

	var d domain.Dictionary
	if err := pgxscan.Get(ctx, q, &d, sql, args...); err != nil {
		return nil, postgres.MapError(err, "dictionary", id)
	}

	return &d, nil
}

// GetByNameType returns a dictionary by its natural key (name, type),
// compared exactly. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByNameType(ctx context.Context, name, typ string) (*domain.Dictionary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"name": name, "type": typ}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get dictionary by name/type: %w", err)
	}

	var d domain.Dictionary
	if err := pgxscan.Get(ctx, q, &d, sql, args...); err != nil {
		return nil, postgres.MapError(err, "dictionary", 0)
	}

	return &d, nil
}

// ExistsByNameType reports whether a dictionary with the given (name, type)
// exists. excludeID, when non-zero, excludes that dictionary from the check
// (used when editing in place).
func (r *Repo) ExistsByNameType(ctx context.Context, name, typ string, excludeID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	builder := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"name": name, "type": typ})
	if excludeID != 0 {
		builder = builder.Where(sq.NotEq{"id": excludeID})
	}

	sql, args, err := builder.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build dictionary exists: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "dictionary", excludeID)
	}

	return exists, nil
}

// List returns all dictionaries ordered by ascending id.
func (r *Repo) List(ctx context.Context) ([]domain.Dictionary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list dictionaries: %w", err)
	}

	var out []domain.Dictionary
	if err := pgxscan.Select(ctx, q, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("list dictionaries: %w", err)
	}
	if out == nil {
		out = []domain.Dictionary{}
	}

	return out, nil
}

// Create inserts a new dictionary and returns it with the store-assigned id.
// A (name, type) collision surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name, typ string) (*domain.Dictionary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "type").
		Values(name, typ).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create dictionary: %w", err)
	}

	var d domain.Dictionary
	if err := pgxscan.Get(ctx, q, &d, sql, args...); err != nil {
		return nil, postgres.MapError(err, "dictionary", 0)
	}

	return &d, nil
}

// Update renames/retypes a dictionary in place.
func (r *Repo) Update(ctx context.Context, id int64, name, typ string) (*domain.Dictionary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("name", name).
		Set("type", typ).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update dictionary: %w", err)
	}

	var d domain.Dictionary
	if err := pgxscan.Get(ctx, q, &d, sql, args...); err != nil {
		return nil, postgres.MapError(err, "dictionary", id)
	}

	return &d, nil
}

// Delete removes a dictionary by id. Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete dictionary: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "dictionary", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dictionary %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

// Package meaning implements the Meaning repository using PostgreSQL.
package meaning

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/slovnyk/internal/adapter/postgres"
	"github.com/heartmarshall/slovnyk/internal/domain"
)

const table = "meanings"

var columns = []string{"id", "word_id", "text", "created_at"}

// Repo provides meaning persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meaning repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a meaning by its id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Meaning, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get meaning: %w", err)
	}

	var m domain.Meaning
	if err := pgxscan.Get(ctx, q, &m, sql, args...); err != nil {
		return nil, postgres.MapError(err, "meaning", id)
	}

	return &m, nil
}

// ListByWord returns a word's meanings ordered by ascending id.
func (r *Repo) ListByWord(ctx context.Context, wordID int64) ([]domain.Meaning, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"word_id": wordID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list meanings: %w", err)
	}

	var out []domain.Meaning
	if err := pgxscan.Select(ctx, q, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("list meanings: %w", err)
	}
	if out == nil {
		out = []domain.Meaning{}
	}

	return out, nil
}

// ExistsByText reports whether the word already has a meaning with exactly
// this text. Exact comparison: the importer's dedup key.
func (r *Repo) ExistsByText(ctx context.Context, wordID int64, text string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"word_id": wordID, "text": text}).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build meaning exists: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "meaning", wordID)
	}

	return exists, nil
}

// ExistsByTextFold reports whether the word already has a meaning with the
// given text, compared case-insensitively. excludeID, when non-zero,
// excludes that meaning (used when editing in place).
func (r *Repo) ExistsByTextFold(ctx context.Context, wordID int64, text string, excludeID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	builder := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"word_id": wordID}).
		Where(sq.Expr("LOWER(text) = LOWER(?)", text))
	if excludeID != 0 {
		builder = builder.Where(sq.NotEq{"id": excludeID})
	}

	sql, args, err := builder.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build meaning exists fold: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "meaning", excludeID)
	}

	return exists, nil
}

// CountByWord returns the number of meanings a word has. The last-meaning
// guard re-checks this inside the delete transaction.
func (r *Repo) CountByWord(ctx context.Context, wordID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"word_id": wordID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count meanings: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "meaning", wordID)
	}

	return count, nil
}

// Create inserts a new meaning and returns it with the store-assigned id.
func (r *Repo) Create(ctx context.Context, wordID int64, text string) (*domain.Meaning, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("word_id", "text").
		Values(wordID, text).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create meaning: %w", err)
	}

	var m domain.Meaning
	if err := pgxscan.Get(ctx, q, &m, sql, args...); err != nil {
		return nil, postgres.MapError(err, "meaning", 0)
	}

	return &m, nil
}

// UpdateText rewrites a meaning's text in place.
func (r *Repo) UpdateText(ctx context.Context, id int64, text string) (*domain.Meaning, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("text", text).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update meaning: %w", err)
	}

	var m domain.Meaning
	if err := pgxscan.Get(ctx, q, &m, sql, args...); err != nil {
		return nil, postgres.MapError(err, "meaning", id)
	}

	return &m, nil
}

// Delete removes a meaning by id. Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete meaning: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "meaning", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meaning %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByWord removes all meanings of a word and returns the count.
func (r *Repo) DeleteByWord(ctx context.Context, wordID int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"word_id": wordID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete word meanings: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "meaning", wordID)
	}

	return tag.RowsAffected(), nil
}

// DeleteByDictionary removes the meanings of every word in a dictionary.
// First phase of the explicit dictionary cascade.
func (r *Repo) DeleteByDictionary(ctx context.Context, dictionaryID int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	const query = `
DELETE FROM meanings
WHERE word_id IN (SELECT id FROM words WHERE dictionary_id = $1)`

	tag, err := q.Exec(ctx, query, dictionaryID)
	if err != nil {
		return 0, postgres.MapError(err, "meaning", dictionaryID)
	}

	return tag.RowsAffected(), nil
}

// Package word implements the Word repository using PostgreSQL.
package word

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/slovnyk/internal/adapter/postgres"
	"github.com/heartmarshall/slovnyk/internal/domain"
)

const table = "words"

var columns = []string{"id", "dictionary_id", "text", "created_at"}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a word by its id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word: %w", err)
	}

	var w domain.Word
	if err := pgxscan.Get(ctx, q, &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	return &w, nil
}

// GetByText returns a word by its natural key (dictionary, exact text).
// The comparison is exact: the importer relies on it for merge-by-key.
func (r *Repo) GetByText(ctx context.Context, dictionaryID int64, text string) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"dictionary_id": dictionaryID, "text": text}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word by text: %w", err)
	}

	var w domain.Word
	if err := pgxscan.Get(ctx, q, &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", 0)
	}

	return &w, nil
}

// ExistsByTextFold reports whether the dictionary already holds a word with
// the given text, compared case-insensitively. excludeID, when non-zero,
// excludes that word (used when renaming in place).
func (r *Repo) ExistsByTextFold(ctx context.Context, dictionaryID int64, text string, excludeID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	builder := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"dictionary_id": dictionaryID}).
		Where(sq.Expr("LOWER(text) = LOWER(?)", text))
	if excludeID != 0 {
		builder = builder.Where(sq.NotEq{"id": excludeID})
	}

	sql, args, err := builder.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build word exists: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "word", excludeID)
	}

	return exists, nil
}

// ListByDictionary returns a dictionary's words ordered by ascending id.
func (r *Repo) ListByDictionary(ctx context.Context, dictionaryID int64) ([]domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"dictionary_id": dictionaryID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	var out []domain.Word
	if err := pgxscan.Select(ctx, q, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	if out == nil {
		out = []domain.Word{}
	}

	return out, nil
}

// ListByDictionaryWithCounts returns a dictionary's words with their meaning
// counts, sorted by word text ascending. The join is an outer join so a word
// with zero meanings (possible mid-import) still appears.
func (r *Repo) ListByDictionaryWithCounts(ctx context.Context, dictionaryID int64) ([]domain.WordWithCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	const query = `
SELECT w.id, w.dictionary_id, w.text, w.created_at,
       COUNT(m.id) AS meaning_count
FROM words w
LEFT JOIN meanings m ON m.word_id = w.id
WHERE w.dictionary_id = $1
GROUP BY w.id
ORDER BY w.text ASC`

	var out []domain.WordWithCount
	if err := pgxscan.Select(ctx, q, &out, query, dictionaryID); err != nil {
		return nil, fmt.Errorf("list words with counts: %w", err)
	}
	if out == nil {
		out = []domain.WordWithCount{}
	}

	return out, nil
}

// Create inserts a new word and returns it with the store-assigned id.
func (r *Repo) Create(ctx context.Context, dictionaryID int64, text string) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("dictionary_id", "text").
		Values(dictionaryID, text).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create word: %w", err)
	}

	var w domain.Word
	if err := pgxscan.Get(ctx, q, &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", 0)
	}

	return &w, nil
}

// UpdateText renames a word in place.
func (r *Repo) UpdateText(ctx context.Context, id int64, text string) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("text", text).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update word: %w", err)
	}

	var w domain.Word
	if err := pgxscan.Get(ctx, q, &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	return &w, nil
}

// Delete removes a word by id. Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete word: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByDictionary removes all words of a dictionary and returns the count.
// Part of the explicit two-phase cascade in the catalog service.
func (r *Repo) DeleteByDictionary(ctx context.Context, dictionaryID int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"dictionary_id": dictionaryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete dictionary words: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "word", dictionaryID)
	}

	return tag.RowsAffected(), nil
}

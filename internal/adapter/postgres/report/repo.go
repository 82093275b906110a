// Package report implements the aggregate query repository: counts per
// dictionary, top words by meanings, recent words, and substring search.
// The queries are fixed raw SQL with aggregate joins.
package report

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/slovnyk/internal/adapter/postgres"
	"github.com/heartmarshall/slovnyk/internal/domain"
)

// Repo provides read-only report queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const countsByDictionarySQL = `
SELECT d.id, d.name, d.type, COUNT(w.id) AS words_count
FROM dictionaries d
LEFT JOIN words w ON w.dictionary_id = d.id
GROUP BY d.id
ORDER BY COUNT(w.id) DESC, d.id DESC`

// CountsByDictionary returns the word count per dictionary, including
// zero-word dictionaries, ordered by count descending then id descending.
func (r *Repo) CountsByDictionary(ctx context.Context) ([]domain.DictionaryCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out []domain.DictionaryCount
	if err := pgxscan.Select(ctx, q, &out, countsByDictionarySQL); err != nil {
		return nil, fmt.Errorf("counts by dictionary: %w", err)
	}
	if out == nil {
		out = []domain.DictionaryCount{}
	}

	return out, nil
}

const topWordsSQL = `
SELECT w.id AS word_id, w.text, d.name AS dictionary_name,
       d.type AS dictionary_type, COUNT(m.id) AS meaning_count
FROM words w
JOIN dictionaries d ON d.id = w.dictionary_id
JOIN meanings m ON m.word_id = w.id
GROUP BY w.id, d.name, d.type
ORDER BY COUNT(m.id) DESC, w.id DESC
LIMIT $1`

// TopWordsByMeanings returns up to limit words ordered by descending meaning
// count then descending word id. The inner join hides words without meanings.
func (r *Repo) TopWordsByMeanings(ctx context.Context, limit int) ([]domain.TopWordRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out []domain.TopWordRow
	if err := pgxscan.Select(ctx, q, &out, topWordsSQL, limit); err != nil {
		return nil, fmt.Errorf("top words by meanings: %w", err)
	}
	if out == nil {
		out = []domain.TopWordRow{}
	}

	return out, nil
}

const recentWordsSQL = `
SELECT w.id AS word_id, w.text, w.created_at,
       d.name AS dictionary_name, d.type AS dictionary_type
FROM words w
JOIN dictionaries d ON d.id = w.dictionary_id
ORDER BY w.id DESC
LIMIT $1`

// RecentWords returns up to limit most recently created words. Descending id
// stands in for recency: ids are store-assigned and monotonic.
func (r *Repo) RecentWords(ctx context.Context, limit int) ([]domain.RecentWordRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out []domain.RecentWordRow
	if err := pgxscan.Select(ctx, q, &out, recentWordsSQL, limit); err != nil {
		return nil, fmt.Errorf("recent words: %w", err)
	}
	if out == nil {
		out = []domain.RecentWordRow{}
	}

	return out, nil
}

const searchWordsSQL = `
SELECT d.id AS dictionary_id, d.name AS dictionary_name, d.type AS dictionary_type,
       w.id AS word_id, w.text AS word_text,
       m.id AS meaning_id, m.text AS meaning_text
FROM dictionaries d
JOIN words w ON w.dictionary_id = d.id
JOIN meanings m ON m.word_id = w.id
WHERE w.text LIKE '%' || $1 || '%'
ORDER BY d.id DESC, w.text ASC, m.id ASC`

// SearchWords returns every (dictionary, word, meaning) row whose word text
// contains the query, ordered for grouped display.
func (r *Repo) SearchWords(ctx context.Context, query string) ([]domain.SearchRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out []domain.SearchRow
	if err := pgxscan.Select(ctx, q, &out, searchWordsSQL, query); err != nil {
		return nil, fmt.Errorf("search words: %w", err)
	}
	if out == nil {
		out = []domain.SearchRow{}
	}

	return out, nil
}

package report

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Repo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, New(mock)
}

func TestRepo_CountsByDictionary(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	rows := pgxmock.NewRows([]string{"id", "name", "type", "words_count"}).
		AddRow(int64(2), "Великий", "en-uk", 12).
		AddRow(int64(1), "Порожній", "de-uk", 0)
	mock.ExpectQuery(`LEFT JOIN words w ON w.dictionary_id = d.id`).
		WillReturnRows(rows)

	got, err := repo.CountsByDictionary(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 12, got[0].WordsCount)
	assert.Equal(t, 0, got[1].WordsCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_CountsByDictionary_Empty(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	mock.ExpectQuery(`LEFT JOIN words w ON w.dictionary_id = d.id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "type", "words_count"}))

	got, err := repo.CountsByDictionary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_TopWordsByMeanings(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	rows := pgxmock.NewRows([]string{"word_id", "text", "dictionary_name", "dictionary_type", "meaning_count"}).
		AddRow(int64(10), "cat", "Базовий", "en-uk", 5).
		AddRow(int64(8), "dog", "Базовий", "en-uk", 3)
	mock.ExpectQuery(`JOIN meanings m ON m.word_id = w.id`).
		WithArgs(10).
		WillReturnRows(rows)

	got, err := repo.TopWordsByMeanings(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].MeaningCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_RecentWords(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"word_id", "text", "created_at", "dictionary_name", "dictionary_type"}).
		AddRow(int64(20), "newest", now, "Базовий", "en-uk")
	mock.ExpectQuery(`ORDER BY w.id DESC`).
		WithArgs(5).
		WillReturnRows(rows)

	got, err := repo.RecentWords(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(20), got[0].WordID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_SearchWords(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	rows := pgxmock.NewRows([]string{
		"dictionary_id", "dictionary_name", "dictionary_type",
		"word_id", "word_text", "meaning_id", "meaning_text",
	}).
		AddRow(int64(2), "Великий", "en-uk", int64(10), "cat", int64(100), "кіт").
		AddRow(int64(2), "Великий", "en-uk", int64(10), "cat", int64(101), "кішка")
	mock.ExpectQuery(`WHERE w.text LIKE`).
		WithArgs("cat").
		WillReturnRows(rows)

	got, err := repo.SearchWords(context.Background(), "cat")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "кіт", got[0].MeaningText)
	require.NoError(t, mock.ExpectationsWereMet())
}

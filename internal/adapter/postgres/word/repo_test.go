package word

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Repo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, New(mock)
}

func wordRows(w domain.Word) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "dictionary_id", "text", "created_at"}).
		AddRow(w.ID, w.DictionaryID, w.Text, w.CreatedAt)
}

func TestRepo_GetByText(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	want := domain.Word{ID: 10, DictionaryID: 1, Text: "cat", CreatedAt: time.Now()}
	mock.ExpectQuery(`SELECT id, dictionary_id, text, created_at FROM words WHERE dictionary_id = .+ AND text =`).
		WithArgs(int64(1), "cat").
		WillReturnRows(wordRows(want))

	got, err := repo.GetByText(context.Background(), 1, "cat")
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByText_ExactCase(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	// Lookup is exact: "Cat" is not "cat".
	mock.ExpectQuery(`SELECT id, dictionary_id, text, created_at FROM words WHERE dictionary_id = .+ AND text =`).
		WithArgs(int64(1), "Cat").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByText(context.Background(), 1, "Cat")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_ExistsByTextFold(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM words WHERE dictionary_id = .+ AND LOWER\(text\) = LOWER\(`).
		WithArgs(int64(1), "Cat").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByTextFold(context.Background(), 1, "Cat", 0)
	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_ExistsByTextFold_ExcludesSelf(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM words WHERE dictionary_id = .+ AND LOWER\(text\) = LOWER\(.+ AND id <>`).
		WithArgs(int64(1), "cat", int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByTextFold(context.Background(), 1, "cat", 10)
	require.NoError(t, err)
	assert.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_ListByDictionaryWithCounts(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "dictionary_id", "text", "created_at", "meaning_count"}).
		AddRow(int64(11), int64(1), "apple", now, 2).
		AddRow(int64(10), int64(1), "zebra", now, 0)
	mock.ExpectQuery(`LEFT JOIN meanings m ON m.word_id = w.id`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := repo.ListByDictionaryWithCounts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].MeaningCount)
	// Outer join keeps the zero-meaning word.
	assert.Equal(t, 0, got[1].MeaningCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Create_UniqueViolation(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	mock.ExpectQuery(`INSERT INTO words \(dictionary_id,text\)`).
		WithArgs(int64(1), "cat").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_word_dictionary_text"})

	_, err := repo.Create(context.Background(), 1, "cat")
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Create_DictionaryGone(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	mock.ExpectQuery(`INSERT INTO words \(dictionary_id,text\)`).
		WithArgs(int64(42), "cat").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_word_dictionary"})

	_, err := repo.Create(context.Background(), 42, "cat")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_UpdateText(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	want := domain.Word{ID: 10, DictionaryID: 1, Text: "dog", CreatedAt: time.Now()}
	mock.ExpectQuery(`UPDATE words SET text = \$1 WHERE id = \$2 RETURNING`).
		WithArgs("dog", int64(10)).
		WillReturnRows(wordRows(want))

	got, err := repo.UpdateText(context.Background(), 10, "dog")
	require.NoError(t, err)
	assert.Equal(t, "dog", got.Text)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_DeleteByDictionary_ReturnsRowCount(t *testing.T) {
	t.Parallel()
	mock, repo := newMock(t)

	mock.ExpectExec(`DELETE FROM words WHERE dictionary_id =`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 5))

	n, err := repo.DeleteByDictionary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

func TestTypeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "англійсько-український", typeLabel("en-uk"))
	assert.Equal(t, "тлумачний", typeLabel("uk-uk"))
	assert.Equal(t, "es-uk", typeLabel("es-uk"))
}

func TestPrintSearchResults_GroupsByDictionaryAndWord(t *testing.T) {
	t.Parallel()

	rows := []domain.SearchRow{
		{DictionaryID: 2, DictionaryName: "Великий", DictionaryType: "en-uk", WordID: 10, WordText: "cat", MeaningID: 100, MeaningText: "кіт"},
		{DictionaryID: 2, DictionaryName: "Великий", DictionaryType: "en-uk", WordID: 10, WordText: "cat", MeaningID: 101, MeaningText: "кішка"},
		{DictionaryID: 2, DictionaryName: "Великий", DictionaryType: "en-uk", WordID: 11, WordText: "catfish", MeaningID: 102, MeaningText: "сом"},
		{DictionaryID: 1, DictionaryName: "Базовий", DictionaryType: "en-uk", WordID: 5, WordText: "cat", MeaningID: 50, MeaningText: "кіт"},
	}

	out := &bytes.Buffer{}
	printSearchResults(out, rows)
	got := out.String()

	// Two dictionary headers, three word lines, four meanings.
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("Словник: ")))
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("  [")))
	assert.Equal(t, 4, bytes.Count(out.Bytes(), []byte("      - ")))

	// The same word id in a different dictionary gets its own line.
	assert.Contains(t, got, "Словник: Базовий")
	assert.Contains(t, got, "[5] cat")
}

func TestPrintSearchResults_Empty(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	printSearchResults(out, nil)
	assert.Contains(t, out.String(), "Нічого не знайдено")
}

func TestPrintError_OneLinePerFailure(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err  error
		want string
	}{
		"cancelled":    {ErrCancelled, "Операцію скасовано."},
		"not found":    {domain.ErrNotFound, "Запис не знайдено."},
		"duplicate":    {domain.ErrAlreadyExists, "уже існує"},
		"last meaning": {domain.ErrLastMeaning, "останнє тлумачення"},
		"malformed":    {domain.ErrMalformedInput, "неправильну структуру"},
		"validation":   {domain.NewValidationError("name", "required"), "Некоректні дані"},
		"wrapped":      {errors.New("disk full"), "Помилка: disk full"},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}
			printError(out, tc.err)
			assert.Contains(t, out.String(), tc.want)
			assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("\n")))
		})
	}
}

func TestPrintCounts_IncludesZeroWordDictionaries(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	printCounts(out, []domain.DictionaryCount{
		{ID: 2, Name: "Великий", Type: "en-uk", WordsCount: 7},
		{ID: 1, Name: "Порожній", Type: "de-uk", WordsCount: 0},
	})

	assert.Contains(t, out.String(), "слів: 7")
	assert.Contains(t, out.String(), "Порожній (німецько-український) — слів: 0")
}

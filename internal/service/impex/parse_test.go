package impex

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var doc any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestNormalizeDocument_WrappedList(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"dictionaries": [
		{"nazva": "Базовий", "typ": "en-uk", "slova": [
			{"slovo": "cat", "tlumachennia": ["кіт", "кішка"]}
		]}
	]}`)

	dicts, err := normalizeDocument(doc)
	require.NoError(t, err)
	require.Len(t, dicts, 1)
	assert.Equal(t, "Базовий", dicts[0].Name)
	assert.Equal(t, "en-uk", dicts[0].Type)
	require.Len(t, dicts[0].Words, 1)
	assert.Equal(t, "cat", dicts[0].Words[0].Text)
	assert.Equal(t, []string{"кіт", "кішка"}, dicts[0].Words[0].Meanings)
}

func TestNormalizeDocument_LocalizedKeys(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"словники": [
		{"name": "Basic", "type": "en-uk", "слова": [
			{"word": "dog", "meanings": ["пес"]}
		]}
	]}`)

	dicts, err := normalizeDocument(doc)
	require.NoError(t, err)
	require.Len(t, dicts, 1)
	assert.Equal(t, "Basic", dicts[0].Name)
	require.Len(t, dicts[0].Words, 1)
	assert.Equal(t, "dog", dicts[0].Words[0].Text)
}

func TestNormalizeDocument_KeyPrecedence(t *testing.T) {
	t.Parallel()

	// When both accepted keys are present the first one wins.
	doc := decode(t, `{"nazva": "Основний", "name": "ignored", "typ": "en-uk"}`)

	dicts, err := normalizeDocument(doc)
	require.NoError(t, err)
	require.Len(t, dicts, 1)
	assert.Equal(t, "Основний", dicts[0].Name)
}

func TestNormalizeDocument_BareList(t *testing.T) {
	t.Parallel()

	doc := decode(t, `[
		{"nazva": "A", "typ": "en-uk"},
		{"nazva": "B", "typ": "de-uk"}
	]`)

	dicts, err := normalizeDocument(doc)
	require.NoError(t, err)
	require.Len(t, dicts, 2)
	assert.Equal(t, "B", dicts[1].Name)
}

func TestNormalizeDocument_SingleObject(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"nazva": "Один", "typ": "en-uk"}`)

	dicts, err := normalizeDocument(doc)
	require.NoError(t, err)
	require.Len(t, dicts, 1)
	assert.Empty(t, dicts[0].Words)
}

func TestNormalizeDocument_ScalarMeaning(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"nazva": "A", "typ": "en-uk", "slova": [
		{"slovo": "one", "tlumachennia": "один"},
		{"slovo": "two", "tlumachennia": 2}
	]}`)

	dicts, err := normalizeDocument(doc)
	require.NoError(t, err)
	require.Len(t, dicts[0].Words, 2)
	assert.Equal(t, []string{"один"}, dicts[0].Words[0].Meanings)
	assert.Equal(t, []string{"2"}, dicts[0].Words[1].Meanings)
}

func TestNormalizeDocument_MissingName(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"typ": "en-uk"}`)

	_, err := normalizeDocument(doc)
	require.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestNormalizeDocument_WrongTypes(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"scalar top level":     `42`,
		"name not a string":    `{"nazva": 7, "typ": "en-uk"}`,
		"words not an array":   `{"nazva": "A", "typ": "en-uk", "slova": "cat"}`,
		"word not an object":   `{"nazva": "A", "typ": "en-uk", "slova": ["cat"]}`,
		"meaning is an object": `{"nazva": "A", "typ": "en-uk", "slova": [{"slovo": "cat", "tlumachennia": [{}]}]}`,
		"list not an array":    `{"dictionaries": {"nazva": "A"}}`,
	}

	for name, raw := range cases {
		raw := raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := normalizeDocument(decode(t, raw))
			require.ErrorIs(t, err, domain.ErrMalformedInput)
		})
	}
}

func TestNormalizeDocument_MissingWordsDefaultsEmpty(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"dictionaries": [{"nazva": "A", "typ": "en-uk"}]}`)

	dicts, err := normalizeDocument(doc)
	require.NoError(t, err)
	assert.Empty(t, dicts[0].Words)
}

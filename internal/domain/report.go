package domain

import "time"

// DictionaryCount is one row of the words-per-dictionary report.
// Dictionaries with zero words appear with WordsCount 0.
type DictionaryCount struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	WordsCount int    `db:"words_count"`
}

// TopWordRow is one row of the top-N-words-by-meanings report.
type TopWordRow struct {
	WordID         int64  `db:"word_id"`
	Text           string `db:"text"`
	DictionaryName string `db:"dictionary_name"`
	DictionaryType string `db:"dictionary_type"`
	MeaningCount   int    `db:"meaning_count"`
}

// RecentWordRow is one row of the recently-added-words report.
type RecentWordRow struct {
	WordID         int64     `db:"word_id"`
	Text           string    `db:"text"`
	CreatedAt      time.Time `db:"created_at"`
	DictionaryName string    `db:"dictionary_name"`
	DictionaryType string    `db:"dictionary_type"`
}

// SearchRow is one (dictionary, word, meaning) row of a substring search.
// Rows arrive ordered for grouped display: dictionary id descending, word
// text ascending, meaning id ascending.
type SearchRow struct {
	DictionaryID   int64  `db:"dictionary_id"`
	DictionaryName string `db:"dictionary_name"`
	DictionaryType string `db:"dictionary_type"`
	WordID         int64  `db:"word_id"`
	WordText       string `db:"word_text"`
	MeaningID      int64  `db:"meaning_id"`
	MeaningText    string `db:"meaning_text"`
}

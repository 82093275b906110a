package domain

import "time"

// Dictionary is a named, typed collection of words, e.g. ("Basic", "en-uk").
// Type is a free-text language-pair code; the CLI knows display labels for
// the common codes but anything else passes through unchanged.
type Dictionary struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

// Word is a lexical entry belonging to exactly one dictionary.
// A word created interactively always has at least one meaning; only the
// importer may leave a word meaning-less while it attaches meanings in the
// same transaction.
type Word struct {
	ID           int64     `db:"id"`
	DictionaryID int64     `db:"dictionary_id"`
	Text         string    `db:"text"`
	CreatedAt    time.Time `db:"created_at"`
}

// Meaning is one textual explanation or translation of a word.
type Meaning struct {
	ID        int64     `db:"id"`
	WordID    int64     `db:"word_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

// WordWithCount is a word annotated with its meaning count, as shown in
// per-dictionary listings.
type WordWithCount struct {
	Word
	MeaningCount int `db:"meaning_count"`
}

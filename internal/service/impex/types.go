package impex

import "github.com/google/uuid"

// exportWord is a word with its ordered meaning texts, as written to disk.
type exportWord struct {
	ID           int64    `json:"id"`
	Slovo        string   `json:"slovo"`
	Tlumachennia []string `json:"tlumachennia"`
}

// exportDictionary is one element of the full export array.
type exportDictionary struct {
	ID        int64        `json:"id"`
	Nazva     string       `json:"nazva"`
	Typ       string       `json:"typ"`
	CreatedAt string       `json:"created_at"`
	Slova     []exportWord `json:"slova"`
}

// exportDictionaryRef is the owning-dictionary header of a single-word export.
type exportDictionaryRef struct {
	ID    int64  `json:"id"`
	Nazva string `json:"nazva"`
	Typ   string `json:"typ"`
}

// exportWordDocument is the single-word export document.
type exportWordDocument struct {
	Dictionary exportDictionaryRef `json:"dictionary"`
	Word       exportWord          `json:"word"`
	ExportedAt string              `json:"exported_at"`
}

// exportCount is one element of the counts report export.
type exportCount struct {
	ID         int64  `json:"id"`
	Nazva      string `json:"nazva"`
	Typ        string `json:"typ"`
	WordsCount int    `json:"words_count"`
}

// ImportReport contains per-level statistics of one import run.
type ImportReport struct {
	RunID uuid.UUID

	DictionariesCreated int
	DictionariesMatched int
	WordsCreated        int
	WordsSkipped        int
	MeaningsCreated     int
	MeaningsSkipped     int
}

// importDictionary is a dictionary object after document normalization.
type importDictionary struct {
	Name  string
	Type  string
	Words []importWord
}

// importWord is a word object after document normalization.
type importWord struct {
	Text     string
	Meanings []string
}

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/heartmarshall/slovnyk/internal/domain"
	"github.com/heartmarshall/slovnyk/internal/service/catalog"
	"github.com/heartmarshall/slovnyk/internal/service/impex"
)

// typeLabels maps the stored type code to a display label. Unknown codes are
// shown as-is.
var typeLabels = map[string]string{
	"en-uk": "англійсько-український",
	"de-uk": "німецько-український",
	"fr-uk": "французько-український",
	"pl-uk": "польсько-український",
	"uk-uk": "тлумачний",
}

func typeLabel(typ string) string {
	if label, ok := typeLabels[typ]; ok {
		return label
	}
	return typ
}

func printDictionaries(w io.Writer, dicts []domain.Dictionary) {
	if len(dicts) == 0 {
		fmt.Fprintln(w, "Словників ще немає.")
		return
	}
	for _, d := range dicts {
		fmt.Fprintf(w, "  [%d] %s (%s)\n", d.ID, d.Name, typeLabel(d.Type))
	}
}

func printWords(w io.Writer, words []domain.WordWithCount) {
	if len(words) == 0 {
		fmt.Fprintln(w, "Слів ще немає.")
		return
	}
	for _, word := range words {
		fmt.Fprintf(w, "  [%d] %s — тлумачень: %d\n", word.ID, word.Text, word.MeaningCount)
	}
}

func printWordDetails(w io.Writer, details *catalog.WordDetails) {
	fmt.Fprintf(w, "Слово [%d] %s\n", details.Word.ID, details.Word.Text)
	fmt.Fprintf(w, "Словник: %s (%s)\n", details.Dictionary.Name, typeLabel(details.Dictionary.Type))
	fmt.Fprintln(w, "Тлумачення:")
	for _, m := range details.Meanings {
		fmt.Fprintf(w, "  [%d] %s\n", m.ID, m.Text)
	}
}

func printMeanings(w io.Writer, meanings []domain.Meaning) {
	if len(meanings) == 0 {
		fmt.Fprintln(w, "Тлумачень немає.")
		return
	}
	for _, m := range meanings {
		fmt.Fprintf(w, "  [%d] %s\n", m.ID, m.Text)
	}
}

func printCounts(w io.Writer, counts []domain.DictionaryCount) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "Словників ще немає.")
		return
	}
	for _, c := range counts {
		fmt.Fprintf(w, "  [%d] %s (%s) — слів: %d\n", c.ID, c.Name, typeLabel(c.Type), c.WordsCount)
	}
}

func printTopWords(w io.Writer, rows []domain.TopWordRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "Немає слів із тлумаченнями.")
		return
	}
	for i, r := range rows {
		fmt.Fprintf(w, "  %d. %s (%s) — тлумачень: %d\n", i+1, r.Text, r.DictionaryName, r.MeaningCount)
	}
}

func printRecentWords(w io.Writer, rows []domain.RecentWordRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "Слів ще немає.")
		return
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  [%d] %s (%s, %s)\n",
			r.WordID, r.Text, r.DictionaryName, r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}

// printSearchResults groups flat rows by dictionary and word transitions.
func printSearchResults(w io.Writer, rows []domain.SearchRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "Нічого не знайдено.")
		return
	}

	var lastDict, lastWord int64 = -1, -1
	for _, r := range rows {
		if r.DictionaryID != lastDict {
			fmt.Fprintf(w, "Словник: %s (%s)\n", r.DictionaryName, typeLabel(r.DictionaryType))
			lastDict = r.DictionaryID
			lastWord = -1
		}
		if r.WordID != lastWord {
			fmt.Fprintf(w, "  [%d] %s\n", r.WordID, r.WordText)
			lastWord = r.WordID
		}
		fmt.Fprintf(w, "      - %s\n", r.MeaningText)
	}
}

func printImportReport(w io.Writer, report *impex.ImportReport) {
	fmt.Fprintln(w, "Імпорт завершено.")
	fmt.Fprintf(w, "  Словники: створено %d, знайдено %d\n",
		report.DictionariesCreated, report.DictionariesMatched)
	fmt.Fprintf(w, "  Слова: створено %d, пропущено %d\n",
		report.WordsCreated, report.WordsSkipped)
	fmt.Fprintf(w, "  Тлумачення: створено %d, пропущено %d\n",
		report.MeaningsCreated, report.MeaningsSkipped)
}

// printError renders any failure as a single line; the menu loop stays alive.
func printError(w io.Writer, err error) {
	switch {
	case errors.Is(err, ErrCancelled):
		fmt.Fprintln(w, "Операцію скасовано.")
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(w, "Запис не знайдено.")
	case errors.Is(err, domain.ErrAlreadyExists):
		fmt.Fprintln(w, "Такий запис уже існує.")
	case errors.Is(err, domain.ErrLastMeaning):
		fmt.Fprintln(w, "Не можна видалити останнє тлумачення слова.")
	case errors.Is(err, domain.ErrMalformedInput):
		fmt.Fprintf(w, "Файл імпорту має неправильну структуру: %v\n", err)
	case errors.Is(err, domain.ErrValidation):
		fmt.Fprintf(w, "Некоректні дані: %v\n", err)
	default:
		fmt.Fprintf(w, "Помилка: %v\n", err)
	}
}

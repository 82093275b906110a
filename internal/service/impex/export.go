package impex

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

// ExportAll writes the whole hierarchy to <export_dir>/slovnyky_export.json:
// dictionaries in ascending id order, words sorted case-insensitively by
// text, meanings in ascending id order. Returns the written path.
func (s *Service) ExportAll(ctx context.Context) (string, error) {
	dicts, err := s.dictionaries.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list dictionaries: %w", err)
	}

	out := make([]exportDictionary, 0, len(dicts))
	for _, dict := range dicts {
		words, err := s.words.ListByDictionary(ctx, dict.ID)
		if err != nil {
			return "", fmt.Errorf("list words of %d: %w", dict.ID, err)
		}
		sortWordsFold(words)

		item := exportDictionary{
			ID:        dict.ID,
			Nazva:     dict.Name,
			Typ:       dict.Type,
			CreatedAt: dict.CreatedAt.Format(timeLayout),
			Slova:     make([]exportWord, 0, len(words)),
		}
		for _, word := range words {
			meanings, err := s.meanings.ListByWord(ctx, word.ID)
			if err != nil {
				return "", fmt.Errorf("list meanings of %d: %w", word.ID, err)
			}
			item.Slova = append(item.Slova, exportWord{
				ID:           word.ID,
				Slovo:        word.Text,
				Tlumachennia: meaningTexts(meanings),
			})
		}
		out = append(out, item)
	}

	path := filepath.Join(s.paths.ExportDir, fullExportFileName)
	if err := s.writeJSON(path, out); err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "full export written",
		slog.String("file", path),
		slog.Int("dictionaries", len(out)),
	)

	return path, nil
}

// ExportWord writes one word with its owning dictionary and meanings to
// <export_dir>/slovo_<id>_<slug>.json. Returns the written path.
func (s *Service) ExportWord(ctx context.Context, wordID int64) (string, error) {
	word, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return "", err
	}

	dict, err := s.dictionaries.GetByID(ctx, word.DictionaryID)
	if err != nil {
		return "", err
	}

	meanings, err := s.meanings.ListByWord(ctx, word.ID)
	if err != nil {
		return "", fmt.Errorf("list meanings: %w", err)
	}

	doc := exportWordDocument{
		Dictionary: exportDictionaryRef{ID: dict.ID, Nazva: dict.Name, Typ: dict.Type},
		Word: exportWord{
			ID:           word.ID,
			Slovo:        word.Text,
			Tlumachennia: meaningTexts(meanings),
		},
		ExportedAt: s.now().Format(timeLayout),
	}

	name := fmt.Sprintf("slovo_%d_%s.json", word.ID, domain.Slug(word.Text))
	path := filepath.Join(s.paths.ExportDir, name)
	if err := s.writeJSON(path, doc); err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "word export written",
		slog.String("file", path),
		slog.Int64("word_id", word.ID),
	)

	return path, nil
}

// ExportCounts writes the words-per-dictionary report to
// <export_dir>/zvit_kilkist_sliv_u_slovnykakh.json, ordered by descending
// count then descending id. Returns the written path.
func (s *Service) ExportCounts(ctx context.Context) (string, error) {
	counts, err := s.reports.CountsByDictionary(ctx)
	if err != nil {
		return "", fmt.Errorf("count words: %w", err)
	}

	out := make([]exportCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, exportCount{
			ID:         c.ID,
			Nazva:      c.Name,
			Typ:        c.Type,
			WordsCount: c.WordsCount,
		})
	}

	path := filepath.Join(s.paths.ExportDir, countsExportFileName)
	if err := s.writeJSON(path, out); err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "counts export written", slog.String("file", path))

	return path, nil
}

// writeJSON writes v pretty-printed with 2-space indentation and HTML
// escaping off, creating the export directory when needed.
func (s *Service) writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}

	return f.Close()
}

func meaningTexts(meanings []domain.Meaning) []string {
	texts := make([]string, 0, len(meanings))
	for _, m := range meanings {
		texts = append(texts, m.Text)
	}
	return texts
}

// sortWordsFold orders words case-insensitively by text, falling back to the
// original text for stable ordering of case-only duplicates.
func sortWordsFold(words []domain.Word) {
	slices.SortFunc(words, func(a, b domain.Word) int {
		la, lb := strings.ToLower(a.Text), strings.ToLower(b.Text)
		if la != lb {
			return strings.Compare(la, lb)
		}
		return strings.Compare(a.Text, b.Text)
	})
}

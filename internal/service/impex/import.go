package impex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

// ResolveImportPath turns a user-supplied path into the concrete file to
// import. An empty path means the default demo file under the input
// directory; a directory means its first *.json file in lexicographic order.
func (s *Service) ResolveImportPath(path string) (string, error) {
	if path == "" {
		path = filepath.Join(s.paths.InputDir, defaultImportFileName)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat import path: %w", err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return "", fmt.Errorf("read import dir: %w", err)
		}
		var names []string
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".json") {
				names = append(names, e.Name())
			}
		}
		if len(names) == 0 {
			return "", fmt.Errorf("no *.json files in %s", path)
		}
		sort.Strings(names)
		return filepath.Join(path, names[0]), nil
	}

	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return "", fmt.Errorf("not a .json file: %s", path)
	}
	return path, nil
}

// Import reads a JSON document from path (resolved via ResolveImportPath)
// and merges it into the store. The merge is get-or-create at every level,
// so re-running the same file creates no new rows. The whole import is one
// transaction; any failure rolls back everything.
func (s *Service) Import(ctx context.Context, path string) (*ImportReport, error) {
	resolved, err := s.ResolveImportPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(resolved), err)
	}

	// Structural validation happens before the transaction opens: a
	// malformed document never touches the store.
	dicts, err := normalizeDocument(doc)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{RunID: uuid.New()}

	s.log.InfoContext(ctx, "import started",
		slog.String("run_id", report.RunID.String()),
		slog.String("file", resolved),
		slog.Int("dictionaries", len(dicts)),
	)

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, dict := range dicts {
			if err := s.importDictionary(txCtx, dict, report); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		s.log.ErrorContext(ctx, "import rolled back",
			slog.String("run_id", report.RunID.String()),
			slog.String("error", txErr.Error()),
		)
		return nil, txErr
	}

	s.log.InfoContext(ctx, "import finished",
		slog.String("run_id", report.RunID.String()),
		slog.Int("dictionaries_created", report.DictionariesCreated),
		slog.Int("words_created", report.WordsCreated),
		slog.Int("meanings_created", report.MeaningsCreated),
	)

	return report, nil
}

func (s *Service) importDictionary(ctx context.Context, in importDictionary, report *ImportReport) error {
	dict, err := s.dictionaries.GetByNameType(ctx, in.Name, in.Type)
	switch {
	case err == nil:
		report.DictionariesMatched++
	case errors.Is(err, domain.ErrNotFound):
		dict, err = s.dictionaries.Create(ctx, in.Name, in.Type)
		if err != nil {
			return fmt.Errorf("create dictionary %q: %w", in.Name, err)
		}
		report.DictionariesCreated++
	default:
		return fmt.Errorf("lookup dictionary %q: %w", in.Name, err)
	}

	for _, word := range in.Words {
		if err := s.importWord(ctx, dict.ID, word, report); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) importWord(ctx context.Context, dictionaryID int64, in importWord, report *ImportReport) error {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil
	}

	// Import deliberately skips the interactive invariants: lookup is
	// exact-text, and a word may exist with zero meanings while its
	// meanings are attached in the same pass.
	word, err := s.words.GetByText(ctx, dictionaryID, text)
	switch {
	case err == nil:
		report.WordsSkipped++
	case errors.Is(err, domain.ErrNotFound):
		word, err = s.words.Create(ctx, dictionaryID, text)
		if err != nil {
			return fmt.Errorf("create word %q: %w", text, err)
		}
		report.WordsCreated++
	default:
		return fmt.Errorf("lookup word %q: %w", text, err)
	}

	for _, meaning := range in.Meanings {
		meaning = strings.TrimSpace(meaning)
		if meaning == "" {
			continue
		}

		exists, err := s.meanings.ExistsByText(ctx, word.ID, meaning)
		if err != nil {
			return fmt.Errorf("check meaning %q: %w", meaning, err)
		}
		if exists {
			report.MeaningsSkipped++
			continue
		}

		if _, err := s.meanings.Create(ctx, word.ID, meaning); err != nil {
			return fmt.Errorf("create meaning %q: %w", meaning, err)
		}
		report.MeaningsCreated++
	}

	return nil
}

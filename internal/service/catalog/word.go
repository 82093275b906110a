package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

// ListWords returns the words of a dictionary with their meaning counts,
// ordered alphabetically.
func (s *Service) ListWords(ctx context.Context, dictionaryID int64) ([]domain.WordWithCount, error) {
	if _, err := s.dictionaries.GetByID(ctx, dictionaryID); err != nil {
		return nil, err
	}
	return s.words.ListByDictionaryWithCounts(ctx, dictionaryID)
}

// GetWordDetails returns a word together with its dictionary and all meanings.
func (s *Service) GetWordDetails(ctx context.Context, wordID int64) (*WordDetails, error) {
	word, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return nil, err
	}

	dict, err := s.dictionaries.GetByID(ctx, word.DictionaryID)
	if err != nil {
		return nil, err
	}

	meanings, err := s.meanings.ListByWord(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("list meanings: %w", err)
	}

	return &WordDetails{
		Dictionary: *dict,
		Word:       *word,
		Meanings:   meanings,
	}, nil
}

// CreateWord creates a word together with its first meaning in one
// transaction. Word text must be unique within the dictionary
// (case-insensitive).
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (*WordDetails, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	meaning := strings.TrimSpace(input.FirstMeaning)

	dict, err := s.dictionaries.GetByID(ctx, input.DictionaryID)
	if err != nil {
		return nil, err
	}

	exists, err := s.words.ExistsByTextFold(ctx, dict.ID, text, 0)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("word %q: %w", text, domain.ErrAlreadyExists)
	}

	var details *WordDetails
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		word, err := s.words.Create(txCtx, dict.ID, text)
		if err != nil {
			return fmt.Errorf("create word: %w", err)
		}

		first, err := s.meanings.Create(txCtx, word.ID, meaning)
		if err != nil {
			return fmt.Errorf("create meaning: %w", err)
		}

		details = &WordDetails{
			Dictionary: *dict,
			Word:       *word,
			Meanings:   []domain.Meaning{*first},
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "word created",
		slog.Int64("id", details.Word.ID),
		slog.Int64("dictionary_id", dict.ID),
	)

	return details, nil
}

// EditWord changes the text of a word. The new text must stay unique within
// the word's dictionary (case-insensitive, excluding the word itself).
func (s *Service) EditWord(ctx context.Context, wordID int64, text string) (*domain.Word, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("text", "required")
	}

	word, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return nil, err
	}

	exists, err := s.words.ExistsByTextFold(ctx, word.DictionaryID, text, word.ID)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("word %q: %w", text, domain.ErrAlreadyExists)
	}

	return s.words.UpdateText(ctx, wordID, text)
}

// DeleteWord removes a word with all its meanings in one transaction.
func (s *Service) DeleteWord(ctx context.Context, wordID int64, confirmed bool) (*CascadeResult, error) {
	if !confirmed {
		return nil, domain.NewValidationError("confirm", "required")
	}

	if _, err := s.words.GetByID(ctx, wordID); err != nil {
		return nil, err
	}

	result := &CascadeResult{Words: 1}
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		meanings, err := s.meanings.DeleteByWord(txCtx, wordID)
		if err != nil {
			return fmt.Errorf("delete meanings: %w", err)
		}
		result.Meanings = meanings

		if err := s.words.Delete(txCtx, wordID); err != nil {
			return fmt.Errorf("delete word: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.Int64("id", wordID),
		slog.Int64("meanings", result.Meanings),
	)

	return result, nil
}

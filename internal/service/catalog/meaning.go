package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

// ListMeanings returns the meanings of a word ordered by ascending id.
func (s *Service) ListMeanings(ctx context.Context, wordID int64) ([]domain.Meaning, error) {
	if _, err := s.words.GetByID(ctx, wordID); err != nil {
		return nil, err
	}
	return s.meanings.ListByWord(ctx, wordID)
}

// AddMeaning attaches another meaning to a word. Meaning text must be unique
// within the word (case-insensitive).
func (s *Service) AddMeaning(ctx context.Context, wordID int64, text string) (*domain.Meaning, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("text", "required")
	}

	if _, err := s.words.GetByID(ctx, wordID); err != nil {
		return nil, err
	}

	exists, err := s.meanings.ExistsByTextFold(ctx, wordID, text, 0)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("meaning %q: %w", text, domain.ErrAlreadyExists)
	}

	return s.meanings.Create(ctx, wordID, text)
}

// EditMeaning changes the text of a meaning. The new text must stay unique
// within the word (case-insensitive, excluding the meaning itself).
func (s *Service) EditMeaning(ctx context.Context, meaningID int64, text string) (*domain.Meaning, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("text", "required")
	}

	meaning, err := s.meanings.GetByID(ctx, meaningID)
	if err != nil {
		return nil, err
	}

	exists, err := s.meanings.ExistsByTextFold(ctx, meaning.WordID, text, meaning.ID)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("meaning %q: %w", text, domain.ErrAlreadyExists)
	}

	return s.meanings.UpdateText(ctx, meaningID, text)
}

// DeleteMeaning removes a single meaning. A word always keeps at least one
// meaning: deleting the last one fails with domain.ErrLastMeaning. The count
// is re-checked inside the transaction so two concurrent deletes cannot strip
// a word bare.
func (s *Service) DeleteMeaning(ctx context.Context, meaningID int64, confirmed bool) error {
	if !confirmed {
		return domain.NewValidationError("confirm", "required")
	}

	meaning, err := s.meanings.GetByID(ctx, meaningID)
	if err != nil {
		return err
	}

	count, err := s.meanings.CountByWord(ctx, meaning.WordID)
	if err != nil {
		return fmt.Errorf("count meanings: %w", err)
	}
	if count <= 1 {
		return domain.ErrLastMeaning
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.meanings.CountByWord(txCtx, meaning.WordID)
		if err != nil {
			return fmt.Errorf("count meanings: %w", err)
		}
		if count <= 1 {
			return domain.ErrLastMeaning
		}

		if err := s.meanings.Delete(txCtx, meaningID); err != nil {
			return fmt.Errorf("delete meaning: %w", err)
		}
		return nil
	})
}

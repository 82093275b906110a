package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

// ListDictionaries returns all dictionaries ordered by ascending id.
func (s *Service) ListDictionaries(ctx context.Context) ([]domain.Dictionary, error) {
	return s.dictionaries.List(ctx)
}

// GetDictionary returns a dictionary by id.
func (s *Service) GetDictionary(ctx context.Context, id int64) (*domain.Dictionary, error) {
	return s.dictionaries.GetByID(ctx, id)
}

// CreateDictionary creates a new dictionary. The (name, type) pair must be
// unique across all dictionaries; a collision returns domain.ErrAlreadyExists.
func (s *Service) CreateDictionary(ctx context.Context, input CreateDictionaryInput) (*domain.Dictionary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	typ := strings.TrimSpace(input.Type)

	exists, err := s.dictionaries.ExistsByNameType(ctx, name, typ, 0)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("dictionary (%s, %s): %w", name, typ, domain.ErrAlreadyExists)
	}

	// The unique constraint backs up the pre-check; repo maps 23505.
	created, err := s.dictionaries.Create(ctx, name, typ)
	if err != nil {
		return nil, fmt.Errorf("create dictionary: %w", err)
	}

	s.log.InfoContext(ctx, "dictionary created",
		slog.Int64("id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}

// EditDictionary renames/retypes a dictionary in place. The new (name, type)
// pair is re-validated against every other dictionary.
func (s *Service) EditDictionary(ctx context.Context, input EditDictionaryInput) (*domain.Dictionary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.dictionaries.GetByID(ctx, input.ID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	typ := strings.TrimSpace(input.Type)

	exists, err := s.dictionaries.ExistsByNameType(ctx, name, typ, input.ID)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("dictionary (%s, %s): %w", name, typ, domain.ErrAlreadyExists)
	}

	updated, err := s.dictionaries.Update(ctx, input.ID, name, typ)
	if err != nil {
		return nil, fmt.Errorf("update dictionary: %w", err)
	}

	return updated, nil
}

// DeleteDictionary removes a dictionary with all its words and meanings.
// The caller must have obtained an explicit confirmation; deletion is an
// explicit two-phase cascade (meanings, then words, then the dictionary)
// inside one transaction.
func (s *Service) DeleteDictionary(ctx context.Context, id int64, confirmed bool) (*CascadeResult, error) {
	if !confirmed {
		return nil, domain.NewValidationError("confirm", "required")
	}

	if _, err := s.dictionaries.GetByID(ctx, id); err != nil {
		return nil, err
	}

	result := &CascadeResult{}
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		meanings, err := s.meanings.DeleteByDictionary(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete meanings: %w", err)
		}
		result.Meanings = meanings

		words, err := s.words.DeleteByDictionary(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete words: %w", err)
		}
		result.Words = words

		if err := s.dictionaries.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete dictionary: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "dictionary deleted",
		slog.Int64("id", id),
		slog.Int64("words", result.Words),
		slog.Int64("meanings", result.Meanings),
	)

	return result, nil
}

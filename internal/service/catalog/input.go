package catalog

import (
	"strings"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

// CreateDictionaryInput holds the parameters for creating a dictionary.
type CreateDictionaryInput struct {
	Name string
	Type string
}

// Validate checks all fields and collects all errors.
func (i *CreateDictionaryInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.Type) == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EditDictionaryInput holds the parameters for renaming/retyping a dictionary.
type EditDictionaryInput struct {
	ID   int64
	Name string
	Type string
}

// Validate checks all fields and collects all errors.
func (i *EditDictionaryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.Type) == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateWordInput holds the parameters for creating a word. A word cannot be
// created without its first meaning.
type CreateWordInput struct {
	DictionaryID int64
	Text         string
	FirstMeaning string
}

// Validate checks all fields and collects all errors.
func (i *CreateWordInput) Validate() error {
	var errs []domain.FieldError

	if i.DictionaryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "dictionary_id", Message: "required"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if strings.TrimSpace(i.FirstMeaning) == "" {
		errs = append(errs, domain.FieldError{Field: "first_meaning", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

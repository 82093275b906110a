package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "dictionary", 1); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "word", 42)
	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) = %v, want ErrNotFound", got)
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	got := MapError(context.Canceled, "word", 1)
	if !errors.Is(got, context.Canceled) {
		t.Errorf("MapError(Canceled) = %v, want context.Canceled preserved", got)
	}
	if errors.Is(got, domain.ErrNotFound) {
		t.Error("context error should not map to a domain error")
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want error
	}{
		{name: "unique violation", code: "23505", want: domain.ErrAlreadyExists},
		{name: "foreign key violation", code: "23503", want: domain.ErrNotFound},
		{name: "check violation", code: "23514", want: domain.ErrValidation},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(&pgconn.PgError{Code: tt.code}, "meaning", 7)
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(code %s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMapError_UnknownWrapped(t *testing.T) {
	t.Parallel()

	base := errors.New("connection reset")
	got := MapError(base, "dictionary", 3)
	if !errors.Is(got, base) {
		t.Errorf("MapError should preserve the original error, got %v", got)
	}
}

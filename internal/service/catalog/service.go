// Package catalog implements the CRUD engine over the dictionary → word →
// meaning hierarchy: invariant enforcement, duplicate checks, and explicit
// cascading deletes.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionaryRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Dictionary, error)
	ExistsByNameType(ctx context.Context, name, typ string, excludeID int64) (bool, error)
	List(ctx context.Context) ([]domain.Dictionary, error)
	Create(ctx context.Context, name, typ string) (*domain.Dictionary, error)
	Update(ctx context.Context, id int64, name, typ string) (*domain.Dictionary, error)
	Delete(ctx context.Context, id int64) error
}

type wordRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Word, error)
	ExistsByTextFold(ctx context.Context, dictionaryID int64, text string, excludeID int64) (bool, error)
	ListByDictionaryWithCounts(ctx context.Context, dictionaryID int64) ([]domain.WordWithCount, error)
	Create(ctx context.Context, dictionaryID int64, text string) (*domain.Word, error)
	UpdateText(ctx context.Context, id int64, text string) (*domain.Word, error)
	Delete(ctx context.Context, id int64) error
	DeleteByDictionary(ctx context.Context, dictionaryID int64) (int64, error)
}

type meaningRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Meaning, error)
	ListByWord(ctx context.Context, wordID int64) ([]domain.Meaning, error)
	ExistsByTextFold(ctx context.Context, wordID int64, text string, excludeID int64) (bool, error)
	CountByWord(ctx context.Context, wordID int64) (int, error)
	Create(ctx context.Context, wordID int64, text string) (*domain.Meaning, error)
	UpdateText(ctx context.Context, id int64, text string) (*domain.Meaning, error)
	Delete(ctx context.Context, id int64) error
	DeleteByWord(ctx context.Context, wordID int64) (int64, error)
	DeleteByDictionary(ctx context.Context, dictionaryID int64) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the catalog business logic.
type Service struct {
	log          *slog.Logger
	dictionaries dictionaryRepo
	words        wordRepo
	meanings     meaningRepo
	tx           txManager
}

// NewService creates a new catalog service.
func NewService(
	logger *slog.Logger,
	dictionaries dictionaryRepo,
	words wordRepo,
	meanings meaningRepo,
	tx txManager,
) *Service {
	return &Service{
		log:          logger.With("service", "catalog"),
		dictionaries: dictionaries,
		words:        words,
		meanings:     meanings,
		tx:           tx,
	}
}

// CascadeResult reports how many dependent rows a cascading delete removed.
type CascadeResult struct {
	Words    int64
	Meanings int64
}

// WordDetails is a word together with its owning dictionary and ordered meanings.
type WordDetails struct {
	Dictionary domain.Dictionary
	Word       domain.Word
	Meanings   []domain.Meaning
}

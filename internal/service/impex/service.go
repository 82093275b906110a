// Package impex implements the reconciliation importer and the canonical
// JSON exporters. Import merges a document into the store inside one
// transaction without creating duplicates; exports are pure read-and-serialize
// operations.
package impex

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/slovnyk/internal/config"
	"github.com/heartmarshall/slovnyk/internal/domain"
)

// Fixed output filenames inside the export directory.
const (
	fullExportFileName   = "slovnyky_export.json"
	countsExportFileName = "zvit_kilkist_sliv_u_slovnykakh.json"

	defaultImportFileName = "demo_import.json"
)

// timeLayout is the second-resolution timestamp format used in exports.
const timeLayout = "2006-01-02 15:04:05"

type dictionaryRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Dictionary, error)
	GetByNameType(ctx context.Context, name, typ string) (*domain.Dictionary, error)
	List(ctx context.Context) ([]domain.Dictionary, error)
	Create(ctx context.Context, name, typ string) (*domain.Dictionary, error)
}

type wordRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Word, error)
	GetByText(ctx context.Context, dictionaryID int64, text string) (*domain.Word, error)
	ListByDictionary(ctx context.Context, dictionaryID int64) ([]domain.Word, error)
	Create(ctx context.Context, dictionaryID int64, text string) (*domain.Word, error)
}

type meaningRepo interface {
	ListByWord(ctx context.Context, wordID int64) ([]domain.Meaning, error)
	ExistsByText(ctx context.Context, wordID int64, text string) (bool, error)
	Create(ctx context.Context, wordID int64, text string) (*domain.Meaning, error)
}

type reportRepo interface {
	CountsByDictionary(ctx context.Context) ([]domain.DictionaryCount, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements import/export business logic.
type Service struct {
	log          *slog.Logger
	dictionaries dictionaryRepo
	words        wordRepo
	meanings     meaningRepo
	reports      reportRepo
	tx           txManager
	paths        config.PathsConfig

	now func() time.Time
}

// NewService creates a new import/export service.
func NewService(
	logger *slog.Logger,
	dictionaries dictionaryRepo,
	words wordRepo,
	meanings meaningRepo,
	reports reportRepo,
	tx txManager,
	paths config.PathsConfig,
) *Service {
	return &Service{
		log:          logger.With("service", "impex"),
		dictionaries: dictionaries,
		words:        words,
		meanings:     meanings,
		reports:      reports,
		tx:           tx,
		paths:        paths,
		now:          time.Now,
	}
}

// Package report implements the read-only query layer: word counts per
// dictionary, top words by meaning count, recently added words, and
// substring search.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/slovnyk/internal/config"
	"github.com/heartmarshall/slovnyk/internal/domain"
)

// maxLimit caps user-supplied row limits.
const maxLimit = 100

type reportRepo interface {
	CountsByDictionary(ctx context.Context) ([]domain.DictionaryCount, error)
	TopWordsByMeanings(ctx context.Context, limit int) ([]domain.TopWordRow, error)
	RecentWords(ctx context.Context, limit int) ([]domain.RecentWordRow, error)
	SearchWords(ctx context.Context, query string) ([]domain.SearchRow, error)
}

// Service implements the report business logic.
type Service struct {
	log     *slog.Logger
	reports reportRepo
	cfg     config.ReportsConfig
}

// NewService creates a new report service.
func NewService(logger *slog.Logger, reports reportRepo, cfg config.ReportsConfig) *Service {
	return &Service{
		log:     logger.With("service", "report"),
		reports: reports,
		cfg:     cfg,
	}
}

// CountsByDictionary returns the word count of every dictionary, zero-word
// dictionaries included, ordered by descending count then descending id.
func (s *Service) CountsByDictionary(ctx context.Context) ([]domain.DictionaryCount, error) {
	return s.reports.CountsByDictionary(ctx)
}

// TopWords returns up to limit words ordered by descending meaning count
// then descending word id. Words without meanings never appear. A
// non-positive limit falls back to the configured default.
func (s *Service) TopWords(ctx context.Context, limit int) ([]domain.TopWordRow, error) {
	return s.reports.TopWordsByMeanings(ctx, s.clamp(limit, s.cfg.TopWordsLimit))
}

// RecentWords returns up to limit most recently created words, newest first.
// A non-positive limit falls back to the configured default.
func (s *Service) RecentWords(ctx context.Context, limit int) ([]domain.RecentWordRow, error) {
	return s.reports.RecentWords(ctx, s.clamp(limit, s.cfg.RecentWordsLimit))
}

// Search returns every (dictionary, word, meaning) row whose word text
// contains the query, ordered for grouped display: dictionary id descending,
// word text ascending, meaning id ascending.
func (s *Service) Search(ctx context.Context, query string) ([]domain.SearchRow, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("query", "required")
	}

	rows, err := s.reports.SearchWords(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search words: %w", err)
	}

	s.log.DebugContext(ctx, "search executed",
		slog.String("query", query),
		slog.Int("rows", len(rows)),
	)

	return rows, nil
}

func (s *Service) clamp(limit, fallback int) int {
	if limit <= 0 {
		limit = fallback
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}

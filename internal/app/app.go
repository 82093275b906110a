package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/slovnyk/internal/adapter/postgres"
	dictrepo "github.com/heartmarshall/slovnyk/internal/adapter/postgres/dictionary"
	meaningrepo "github.com/heartmarshall/slovnyk/internal/adapter/postgres/meaning"
	reportrepo "github.com/heartmarshall/slovnyk/internal/adapter/postgres/report"
	wordrepo "github.com/heartmarshall/slovnyk/internal/adapter/postgres/word"
	"github.com/heartmarshall/slovnyk/internal/config"
	"github.com/heartmarshall/slovnyk/internal/service/catalog"
	"github.com/heartmarshall/slovnyk/internal/service/impex"
	"github.com/heartmarshall/slovnyk/internal/service/report"
	"github.com/heartmarshall/slovnyk/internal/transport/cli"
)

// Services bundles everything the transports need.
type Services struct {
	Catalog *catalog.Service
	Impex   *impex.Service
	Report  *report.Service

	close func()
}

// Close releases the database pool.
func (s *Services) Close() {
	if s.close != nil {
		s.close()
	}
}

// Build connects to the database, applies migrations, and wires repositories
// into services. The returned Services owns the connection pool; callers must
// Close it.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	txm := postgres.NewTxManager(pool)

	dictionaries := dictrepo.New(pool)
	words := wordrepo.New(pool)
	meanings := meaningrepo.New(pool)
	reports := reportrepo.New(pool)

	return &Services{
		Catalog: catalog.NewService(logger, dictionaries, words, meanings, txm),
		Impex:   impex.NewService(logger, dictionaries, words, meanings, reports, txm, cfg.Paths),
		Report:  report.NewService(logger, reports, cfg.Reports),
		close:   pool.Close,
	}, nil
}

// Run is the interactive entry point. It loads configuration, initializes
// the logger, wires services, and hands control to the console menu until
// the user exits.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting slovnyk",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	services, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer services.Close()

	menu := cli.NewMenu(services.Catalog, services.Impex, services.Report)
	return menu.Run(ctx)
}

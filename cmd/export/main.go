// Command export writes the full dictionary export and the words-per-
// dictionary counts report to the configured export directory.
//
// Usage:
//
//	export [-word id]
//
// With -word only that single word is exported instead.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/slovnyk/internal/app"
	"github.com/heartmarshall/slovnyk/internal/config"
)

func main() {
	wordID := flag.Int64("word", 0, "export a single word by id")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	services, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("build services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer services.Close()

	if *wordID > 0 {
		path, err := services.Impex.ExportWord(ctx, *wordID)
		if err != nil {
			logger.Error("export word", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Word written to %s.\n", path)
		return
	}

	fullPath, err := services.Impex.ExportAll(ctx)
	if err != nil {
		logger.Error("export all", slog.String("error", err.Error()))
		os.Exit(1)
	}

	countsPath, err := services.Impex.ExportCounts(ctx)
	if err != nil {
		logger.Error("export counts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Export written to %s and %s.\n", fullPath, countsPath)
}

// Command import merges a JSON dictionary document into the store without
// entering the interactive menu.
//
// Usage:
//
//	import [-file path]
//
// With no -file flag the default demo file under the configured input
// directory is used. The path may also name a directory; its first *.json
// file in lexicographic order is imported.
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
	file := flag.String("file", "", "path to a JSON file or a directory of JSON files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "import: %v\n", err)
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

	report, err := services.Impex.Import(ctx, *file)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Import %s: dictionaries +%d, words +%d (skipped %d), meanings +%d (skipped %d).\n",
		report.RunID,
		report.DictionariesCreated,
		report.WordsCreated, report.WordsSkipped,
		report.MeaningsCreated, report.MeaningsSkipped,
	)
}

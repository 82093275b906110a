// Command slovnyk runs the interactive personal dictionary console.
//
// Usage:
//
//	slovnyk
//
// Requires DATABASE_DSN (or a YAML config via CONFIG_PATH). Migrations are
// applied automatically on start. Ctrl-C exits the menu cleanly.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/slovnyk/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "slovnyk: %v\n", err)
		os.Exit(1)
	}
}

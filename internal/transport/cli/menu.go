// Package cli implements the interactive console menu. It is a thin layer:
// all input is validated by the Prompter, all business decisions live in the
// services, and every failure is rendered as one line without breaking the
// loop.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/slovnyk/internal/service/catalog"
	"github.com/heartmarshall/slovnyk/internal/service/impex"
	"github.com/heartmarshall/slovnyk/internal/service/report"
)

// Menu is the interactive entry point over the three services.
type Menu struct {
	catalog *catalog.Service
	impex   *impex.Service
	report  *report.Service

	prompt *Prompter
	out    io.Writer
}

// NewMenu creates a menu bound to stdin/stdout.
func NewMenu(catalogSvc *catalog.Service, impexSvc *impex.Service, reportSvc *report.Service) *Menu {
	return newMenu(catalogSvc, impexSvc, reportSvc, os.Stdin, os.Stdout)
}

func newMenu(catalogSvc *catalog.Service, impexSvc *impex.Service, reportSvc *report.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		catalog: catalogSvc,
		impex:   impexSvc,
		report:  reportSvc,
		prompt:  NewPrompter(in, out),
		out:     out,
	}
}

// Run loops over the main menu until the user exits or the context is
// cancelled. EOF on input is treated as exit.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Особистий словник ===")
		fmt.Fprintln(m.out, "1. Словники")
		fmt.Fprintln(m.out, "2. Слова")
		fmt.Fprintln(m.out, "3. Тлумачення")
		fmt.Fprintln(m.out, "4. Імпорт та експорт")
		fmt.Fprintln(m.out, "5. Звіти")
		fmt.Fprintln(m.out, "0. Вийти")

		choice, err := m.prompt.Choice("Ваш вибір", 5)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case 0:
			fmt.Fprintln(m.out, "До побачення!")
			return nil
		case 1:
			err = m.dictionaryMenu(ctx)
		case 2:
			err = m.wordMenu(ctx)
		case 3:
			err = m.meaningMenu(ctx)
		case 4:
			err = m.impexMenu(ctx)
		case 5:
			err = m.reportMenu(ctx)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// submenu runs one handler round chosen from items; a zero choice returns to
// the caller. Handler failures are printed, never propagated.
func (m *Menu) submenu(ctx context.Context, title string, items []string, handlers []func(context.Context) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprintln(m.out)
		fmt.Fprintf(m.out, "--- %s ---\n", title)
		for i, item := range items {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, item)
		}
		fmt.Fprintln(m.out, "0. Назад")

		choice, err := m.prompt.Choice("Ваш вибір", len(items))
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}

		if err := handlers[choice-1](ctx); err != nil {
			printError(m.out, err)
		}
	}
}

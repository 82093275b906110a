package cli

import (
	"context"
	"fmt"
)

func (m *Menu) impexMenu(ctx context.Context) error {
	return m.submenu(ctx, "Імпорт та експорт",
		[]string{"Імпортувати JSON", "Експортувати все", "Експортувати слово", "Експортувати звіт про кількість"},
		[]func(context.Context) error{
			m.importJSON,
			m.exportAll,
			m.exportWord,
			m.exportCounts,
		})
}

func (m *Menu) importJSON(ctx context.Context) error {
	fmt.Fprintln(m.out, "Порожній шлях — стандартний файл demo_import.json.")
	path, err := m.prompt.readLine("Шлях до файлу або теки")
	if err != nil {
		return err
	}

	report, err := m.impex.Import(ctx, path)
	if err != nil {
		return err
	}
	printImportReport(m.out, report)
	return nil
}

func (m *Menu) exportAll(ctx context.Context) error {
	path, err := m.impex.ExportAll(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Експорт записано у %s.\n", path)
	return nil
}

func (m *Menu) exportWord(ctx context.Context) error {
	id, err := m.prompt.ID("ID слова")
	if err != nil {
		return err
	}

	path, err := m.impex.ExportWord(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Слово записано у %s.\n", path)
	return nil
}

func (m *Menu) exportCounts(ctx context.Context) error {
	path, err := m.impex.ExportCounts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Звіт записано у %s.\n", path)
	return nil
}

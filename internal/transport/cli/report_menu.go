package cli

import "context"

func (m *Menu) reportMenu(ctx context.Context) error {
	return m.submenu(ctx, "Звіти",
		[]string{"Кількість слів у словниках", "Топ слів за тлумаченнями", "Останні додані слова", "Пошук слова"},
		[]func(context.Context) error{
			m.showCounts,
			m.showTopWords,
			m.showRecentWords,
			m.searchWords,
		})
}

func (m *Menu) showCounts(ctx context.Context) error {
	counts, err := m.report.CountsByDictionary(ctx)
	if err != nil {
		return err
	}
	printCounts(m.out, counts)
	return nil
}

func (m *Menu) showTopWords(ctx context.Context) error {
	rows, err := m.report.TopWords(ctx, 0)
	if err != nil {
		return err
	}
	printTopWords(m.out, rows)
	return nil
}

func (m *Menu) showRecentWords(ctx context.Context) error {
	rows, err := m.report.RecentWords(ctx, 0)
	if err != nil {
		return err
	}
	printRecentWords(m.out, rows)
	return nil
}

func (m *Menu) searchWords(ctx context.Context) error {
	query, err := m.prompt.Text("Фрагмент слова")
	if err != nil {
		return err
	}

	rows, err := m.report.Search(ctx, query)
	if err != nil {
		return err
	}
	printSearchResults(m.out, rows)
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/heartmarshall/slovnyk/internal/service/catalog"
)

func (m *Menu) dictionaryMenu(ctx context.Context) error {
	return m.submenu(ctx, "Словники",
		[]string{"Список", "Створити", "Редагувати", "Видалити"},
		[]func(context.Context) error{
			m.listDictionaries,
			m.createDictionary,
			m.editDictionary,
			m.deleteDictionary,
		})
}

func (m *Menu) listDictionaries(ctx context.Context) error {
	dicts, err := m.catalog.ListDictionaries(ctx)
	if err != nil {
		return err
	}
	printDictionaries(m.out, dicts)
	return nil
}

func (m *Menu) createDictionary(ctx context.Context) error {
	name, err := m.prompt.Text("Назва словника")
	if err != nil {
		return err
	}
	typ, err := m.prompt.Text("Тип (наприклад en-uk)")
	if err != nil {
		return err
	}

	dict, err := m.catalog.CreateDictionary(ctx, catalog.CreateDictionaryInput{Name: name, Type: typ})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Створено словник [%d] %s.\n", dict.ID, dict.Name)
	return nil
}

func (m *Menu) editDictionary(ctx context.Context) error {
	id, err := m.prompt.ID("ID словника")
	if err != nil {
		return err
	}
	name, err := m.prompt.Text("Нова назва")
	if err != nil {
		return err
	}
	typ, err := m.prompt.Text("Новий тип")
	if err != nil {
		return err
	}

	dict, err := m.catalog.EditDictionary(ctx, catalog.EditDictionaryInput{ID: id, Name: name, Type: typ})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Оновлено словник [%d] %s.\n", dict.ID, dict.Name)
	return nil
}

func (m *Menu) deleteDictionary(ctx context.Context) error {
	id, err := m.prompt.ID("ID словника")
	if err != nil {
		return err
	}
	ok, err := m.prompt.Confirm("Видалити словник з усіма словами й тлумаченнями?")
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}

	result, err := m.catalog.DeleteDictionary(ctx, id, true)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Видалено словник, слів: %d, тлумачень: %d.\n", result.Words, result.Meanings)
	return nil
}

func (m *Menu) wordMenu(ctx context.Context) error {
	return m.submenu(ctx, "Слова",
		[]string{"Список у словнику", "Деталі слова", "Додати", "Редагувати", "Видалити"},
		[]func(context.Context) error{
			m.listWords,
			m.showWordDetails,
			m.createWord,
			m.editWord,
			m.deleteWord,
		})
}

func (m *Menu) listWords(ctx context.Context) error {
	id, err := m.prompt.ID("ID словника")
	if err != nil {
		return err
	}
	words, err := m.catalog.ListWords(ctx, id)
	if err != nil {
		return err
	}
	printWords(m.out, words)
	return nil
}

func (m *Menu) showWordDetails(ctx context.Context) error {
	id, err := m.prompt.ID("ID слова")
	if err != nil {
		return err
	}
	details, err := m.catalog.GetWordDetails(ctx, id)
	if err != nil {
		return err
	}
	printWordDetails(m.out, details)
	return nil
}

func (m *Menu) createWord(ctx context.Context) error {
	dictID, err := m.prompt.ID("ID словника")
	if err != nil {
		return err
	}
	text, err := m.prompt.Text("Слово")
	if err != nil {
		return err
	}
	meaning, err := m.prompt.Text("Перше тлумачення")
	if err != nil {
		return err
	}

	details, err := m.catalog.CreateWord(ctx, catalog.CreateWordInput{
		DictionaryID: dictID,
		Text:         text,
		FirstMeaning: meaning,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Додано слово [%d] %s.\n", details.Word.ID, details.Word.Text)
	return nil
}

func (m *Menu) editWord(ctx context.Context) error {
	id, err := m.prompt.ID("ID слова")
	if err != nil {
		return err
	}
	text, err := m.prompt.Text("Новий текст")
	if err != nil {
		return err
	}

	word, err := m.catalog.EditWord(ctx, id, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Оновлено слово [%d] %s.\n", word.ID, word.Text)
	return nil
}

func (m *Menu) deleteWord(ctx context.Context) error {
	id, err := m.prompt.ID("ID слова")
	if err != nil {
		return err
	}
	ok, err := m.prompt.Confirm("Видалити слово з усіма тлумаченнями?")
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}

	result, err := m.catalog.DeleteWord(ctx, id, true)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Видалено слово, тлумачень: %d.\n", result.Meanings)
	return nil
}

func (m *Menu) meaningMenu(ctx context.Context) error {
	return m.submenu(ctx, "Тлумачення",
		[]string{"Список для слова", "Додати", "Редагувати", "Видалити"},
		[]func(context.Context) error{
			m.listMeanings,
			m.addMeaning,
			m.editMeaning,
			m.deleteMeaning,
		})
}

func (m *Menu) listMeanings(ctx context.Context) error {
	id, err := m.prompt.ID("ID слова")
	if err != nil {
		return err
	}
	meanings, err := m.catalog.ListMeanings(ctx, id)
	if err != nil {
		return err
	}
	printMeanings(m.out, meanings)
	return nil
}

func (m *Menu) addMeaning(ctx context.Context) error {
	id, err := m.prompt.ID("ID слова")
	if err != nil {
		return err
	}
	text, err := m.prompt.Text("Тлумачення")
	if err != nil {
		return err
	}

	meaning, err := m.catalog.AddMeaning(ctx, id, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Додано тлумачення [%d].\n", meaning.ID)
	return nil
}

func (m *Menu) editMeaning(ctx context.Context) error {
	id, err := m.prompt.ID("ID тлумачення")
	if err != nil {
		return err
	}
	text, err := m.prompt.Text("Новий текст")
	if err != nil {
		return err
	}

	meaning, err := m.catalog.EditMeaning(ctx, id, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Оновлено тлумачення [%d].\n", meaning.ID)
	return nil
}

func (m *Menu) deleteMeaning(ctx context.Context) error {
	id, err := m.prompt.ID("ID тлумачення")
	if err != nil {
		return err
	}
	ok, err := m.prompt.Confirm("Видалити тлумачення?")
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}

	if err := m.catalog.DeleteMeaning(ctx, id, true); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Тлумачення видалено.")
	return nil
}

package impex

import (
	"fmt"
	"strconv"

	"github.com/heartmarshall/slovnyk/internal/domain"
)

// Accepted field names, tried in order. Documents produced by older tooling
// use the Ukrainian/transliterated names; the English ones are fallbacks.
var (
	dictionaryListKeys = []string{"dictionaries", "словники"}
	nameKeys           = []string{"nazva", "name"}
	typeKeys           = []string{"typ", "type"}
	wordListKeys       = []string{"slova", "слова"}
	wordTextKeys       = []string{"slovo", "word"}
	meaningKeys        = []string{"tlumachennia", "meanings"}
)

// normalizeDocument validates a decoded JSON document and flattens it into a
// list of dictionary objects. Accepted shapes, tried in order: an object with
// a dictionary list under an accepted key, a bare list, a single dictionary
// object. Any structural violation fails the whole document.
func normalizeDocument(doc any) ([]importDictionary, error) {
	switch v := doc.(type) {
	case map[string]any:
		if raw, ok := lookup(v, dictionaryListKeys); ok {
			list, ok := raw.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: dictionary list is not an array", domain.ErrMalformedInput)
			}
			return normalizeDictionaries(list)
		}
		// No list field: the object itself must be a dictionary.
		dict, err := normalizeDictionary(v)
		if err != nil {
			return nil, err
		}
		return []importDictionary{*dict}, nil
	case []any:
		return normalizeDictionaries(v)
	default:
		return nil, fmt.Errorf("%w: top level must be an object or an array", domain.ErrMalformedInput)
	}
}

func normalizeDictionaries(list []any) ([]importDictionary, error) {
	out := make([]importDictionary, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: dictionary #%d is not an object", domain.ErrMalformedInput, i+1)
		}
		dict, err := normalizeDictionary(obj)
		if err != nil {
			return nil, fmt.Errorf("dictionary #%d: %w", i+1, err)
		}
		out = append(out, *dict)
	}
	return out, nil
}

func normalizeDictionary(obj map[string]any) (*importDictionary, error) {
	name, err := requireString(obj, nameKeys, "name")
	if err != nil {
		return nil, err
	}
	typ, err := requireString(obj, typeKeys, "type")
	if err != nil {
		return nil, err
	}

	dict := &importDictionary{Name: name, Type: typ}

	raw, ok := lookup(obj, wordListKeys)
	if !ok || raw == nil {
		return dict, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: word list is not an array", domain.ErrMalformedInput)
	}

	dict.Words = make([]importWord, 0, len(list))
	for i, item := range list {
		wordObj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: word #%d is not an object", domain.ErrMalformedInput, i+1)
		}
		word, err := normalizeWord(wordObj)
		if err != nil {
			return nil, fmt.Errorf("word #%d: %w", i+1, err)
		}
		dict.Words = append(dict.Words, *word)
	}

	return dict, nil
}

func normalizeWord(obj map[string]any) (*importWord, error) {
	text, err := requireString(obj, wordTextKeys, "word text")
	if err != nil {
		return nil, err
	}

	word := &importWord{Text: text}

	raw, ok := lookup(obj, meaningKeys)
	if !ok || raw == nil {
		return word, nil
	}

	// A scalar meaning is coerced to a one-element list.
	values, ok := raw.([]any)
	if !ok {
		values = []any{raw}
	}

	word.Meanings = make([]string, 0, len(values))
	for i, v := range values {
		text, err := stringify(v)
		if err != nil {
			return nil, fmt.Errorf("%w: meaning #%d: %v", domain.ErrMalformedInput, i+1, err)
		}
		word.Meanings = append(word.Meanings, text)
	}

	return word, nil
}

// lookup returns the first present key from an ordered candidate list.
func lookup(obj map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func requireString(obj map[string]any, keys []string, field string) (string, error) {
	raw, ok := lookup(obj, keys)
	if !ok {
		return "", fmt.Errorf("%w: missing %s", domain.ErrMalformedInput, field)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", domain.ErrMalformedInput, field)
	}
	return s, nil
}

// stringify converts a scalar meaning value to text. nil becomes the empty
// string and is skipped later as blank.
func stringify(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

package domain

import "strings"

// translit maps Ukrainian letters to an ASCII approximation for filenames.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d", 'е': "e",
	'є': "ie", 'ж': "zh", 'з': "z", 'и': "y", 'і': "i", 'ї': "i", 'й': "i",
	'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r",
	'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ь': "", 'ю': "iu", 'я': "ia",
}

// SlugMaxLen bounds the length of filename slugs.
const SlugMaxLen = 40

// Slug converts word text into a filesystem-safe ASCII slug: lowercase,
// spaces become underscores, Ukrainian letters are transliterated, anything
// outside [a-z0-9_] is dropped, underscore runs collapse to one. An empty
// result falls back to "slovo".
func Slug(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.ReplaceAll(text, " ", "_")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if repl, ok := translit[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}

	var out strings.Builder
	prevUnderscore := false
	for _, r := range b.String() {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out.WriteRune(r)
			prevUnderscore = false
		case r == '_':
			if !prevUnderscore {
				out.WriteRune(r)
			}
			prevUnderscore = true
		}
	}

	s := strings.Trim(out.String(), "_")
	if len(s) > SlugMaxLen {
		s = s[:SlugMaxLen]
	}
	if s == "" {
		return "slovo"
	}
	return s
}

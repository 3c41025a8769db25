package synnexxml

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelCase reescreve nomes de tag do distribuidor ("PONumber", "synnexSKU",
// "Ship-To_Zip") em camelCase. Dígitos ficam presos à palavra anterior e
// siglas viram uma palavra só. Aplicar duas vezes não muda o resultado.
func CamelCase(key string) string {
	words := splitWords(key)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(key))
	for i, word := range words {
		lower := strings.ToLower(word)
		if i == 0 {
			b.WriteString(lower)
			continue
		}
		r, size := utf8.DecodeRuneInString(lower)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(lower[size:])
	}

	return b.String()
}

func splitWords(s string) []string {
	runes := []rune(s)
	words := []string{}
	start := -1

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
			continue
		}

		if start < 0 {
			start = i
			continue
		}

		prev := runes[i-1]
		switch {
		// fooBar, foo1Bar
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			words = append(words, string(runes[start:i]))
			start = i
		// PONumber: a última maiúscula da sigla abre a próxima palavra
		case unicode.IsLower(r) && unicode.IsUpper(prev) && i-1 > start:
			words = append(words, string(runes[start:i-1]))
			start = i - 1
		}
	}

	if start >= 0 {
		words = append(words, string(runes[start:]))
	}

	return words
}

// CanonicalizeKeys aplica CamelCase a todas as chaves da árvore, atravessando mapas e listas.
func CanonicalizeKeys(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for key, value := range node {
			out[CamelCase(key)] = CanonicalizeKeys(value)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, value := range node {
			out[i] = CanonicalizeKeys(value)
		}
		return out
	default:
		return v
	}
}

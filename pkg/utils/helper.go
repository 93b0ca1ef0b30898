package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// TitleCase lowercases the input and uppercases the first letter of each word.
// Idempotent: applying it to an already title-cased name is a no-op.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Initialism builds an abbreviation from the first letters of each word,
// capped at max letters. A single word is truncated instead. Letter counts
// are in runes so names like "Örebro" keep their initial intact.
func Initialism(s string, max int) string {
	words := strings.Fields(strings.ToUpper(strings.TrimSpace(s)))
	if len(words) == 0 {
		return ""
	}

	if len(words) == 1 {
		word := []rune(words[0])
		if len(word) > max {
			return string(word[:max])
		}
		return string(word)
	}

	var b strings.Builder
	for _, w := range words {
		first, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(first)
	}

	abbr := []rune(b.String())
	if len(abbr) > max {
		return string(abbr[:max])
	}
	return string(abbr)
}

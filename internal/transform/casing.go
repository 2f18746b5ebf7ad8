package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casing adjusts a renamed key. Nil means leave keys untouched.
type Casing func(string) string

var (
	titleCaser = cases.Title(language.Und)
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// Capitalize uppercases the first rune and lowercases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(lowerCaser.String(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Title uppercases the first letter of every word.
func Title(s string) string { return titleCaser.String(s) }

// Upper uppercases the whole key.
func Upper(s string) string { return upperCaser.String(s) }

// Lower lowercases the whole key.
func Lower(s string) string { return lowerCaser.String(s) }

// CasingByName resolves a casing referenced by name in a preset file.
// Unknown or empty names resolve to nil.
func CasingByName(name string) Casing {
	switch strings.ToLower(name) {
	case "capitalize":
		return Capitalize
	case "title":
		return Title
	case "upper":
		return Upper
	case "lower":
		return Lower
	}
	return nil
}

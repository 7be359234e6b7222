package game

import (
	"strings"

	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// normalize lowercases a guess or name with full Unicode case folding and
// trims surrounding whitespace, so "LUFFY", "Luffy" and "luffy" compare
// equal regardless of the user's locale.
func normalize(s string) string {
	return strings.TrimSpace(foldCaser.String(s))
}

// IsMatch reports whether guess names the character called canonical. A
// guess matches when, after normalization, it equals the full name, equals
// a significant token of the name, or equals a known alias.
//
// Significant tokens are the space-separated parts of the canonical name
// longer than one character and not ending in a period, so "D." in
// "Monkey D. Luffy" and the lone "L" in "L Lawliet" never match on their
// own; "L" is accepted for Lawliet through the alias table instead.
func IsMatch(guess, canonical string) bool {
	g := normalize(guess)
	if g == "" {
		return false
	}
	c := normalize(canonical)
	if g == c {
		return true
	}
	for _, tok := range strings.Fields(c) {
		if len(tok) > 1 && !strings.HasSuffix(tok, ".") && g == tok {
			return true
		}
	}
	for _, alias := range aliasesFor(c) {
		if g == alias {
			return true
		}
	}
	return false
}

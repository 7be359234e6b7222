package game

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

// Fact produces one hint for the named character without revealing the
// name. Tiers, most to least specific:
//
//  1. a curated fact for the exact character (random angle per call),
//  2. a visual hint for the series inferred from name fragments,
//  3. a generic appearance or ability hint.
//
// Fact is total: any name, known or not, yields some hint, and the hint
// never contains the character's name or its first token. The only
// name-derived hint is the explicit FirstLetter.
func Fact(name string) string {
	var hint string
	if f, ok := characterFacts[name]; ok {
		switch rand.IntN(3) {
		case 0:
			hint = f.Appearance
		case 1:
			hint = f.Ability
		default:
			hint = f.Role
		}
	} else if series := guessSeries(name); series != "" {
		if hints, ok := seriesHints[series]; ok {
			hint = hints[rand.IntN(len(hints))]
		}
	}

	if hint == "" || revealsName(hint, name) {
		if rand.IntN(2) == 0 {
			return genericAbilityHints[rand.IntN(len(genericAbilityHints))]
		}
		return genericAppearanceHints[rand.IntN(len(genericAppearanceHints))]
	}
	return hint
}

// revealsName reports whether the hint leaks the full name or its first
// significant token.
func revealsName(hint, name string) bool {
	h := normalize(hint)
	n := normalize(name)
	if n == "" {
		return false
	}
	if strings.Contains(h, n) {
		return true
	}
	if first := strings.Fields(n); len(first) > 0 && len(first[0]) > 1 {
		return strings.Contains(h, first[0])
	}
	return false
}

// FirstLetter returns the uppercased first letter of the character's name,
// for the progressive-hint UI. Empty names yield an empty string.
func FirstLetter(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// guessSeries infers the series from fragments of the character's name.
// Returns "" when nothing matches.
func guessSeries(name string) string {
	n := normalize(name)
	for _, rule := range seriesRules {
		for _, kw := range rule.keywords {
			if strings.Contains(n, kw) {
				return rule.series
			}
		}
	}
	return ""
}

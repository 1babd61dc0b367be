// Package langhint guesses the writing script of a text so callers can pick a
// delimiter preset when the client did not name one
package langhint

import (
	"unicode"
)

// Script returns the predominant script name of s, or "" when s has no letters.
// Ties prefer specific scripts over Latin
func Script(s string) string {
	counts := map[string]int{}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		counts[scriptOf(r)]++
	}

	order := []string{
		"Hiragana", "Katakana", "Hangul", "Han", "Arabic", "Hebrew", "Thai",
		"Greek", "Cyrillic", "Georgian", "Armenian", "Devanagari", "Latin",
	}
	best, bestN := "", 0
	for _, name := range order {
		if n := counts[name]; n > bestN {
			best, bestN = name, n
		}
	}
	return best
}

func scriptOf(r rune) string {
	switch {
	case unicode.In(r, unicode.Hangul):
		return "Hangul"
	case unicode.In(r, unicode.Hiragana):
		return "Hiragana"
	case unicode.In(r, unicode.Katakana):
		return "Katakana"
	case unicode.In(r, unicode.Han):
		return "Han"
	case unicode.In(r, unicode.Arabic):
		return "Arabic"
	case unicode.In(r, unicode.Hebrew):
		return "Hebrew"
	case unicode.In(r, unicode.Thai):
		return "Thai"
	case unicode.In(r, unicode.Greek):
		return "Greek"
	case unicode.In(r, unicode.Cyrillic):
		return "Cyrillic"
	case unicode.In(r, unicode.Georgian):
		return "Georgian"
	case unicode.In(r, unicode.Armenian):
		return "Armenian"
	case unicode.In(r, unicode.Devanagari):
		return "Devanagari"
	case unicode.In(r, unicode.Latin):
		return "Latin"
	default:
		return "Other"
	}
}

// Preset maps the predominant script of s to a delimiter preset name.
// Chinese and Japanese text gets "cjk" for ideographic punctuation; everything else "default"
func Preset(s string) string {
	switch Script(s) {
	case "Han", "Hiragana", "Katakana":
		return "cjk"
	default:
		return "default"
	}
}

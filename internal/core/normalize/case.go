package normalize

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Shape is the casing pattern of a word
type Shape int

const (
	// ShapeOther is mixed or caseless text (digits, CJK, "iPhone")
	ShapeOther Shape = iota
	// ShapeLower is all lower case
	ShapeLower
	// ShapeTitle is an upper case first letter followed by lower case
	ShapeTitle
	// ShapeUpper is all upper case with at least two cased letters
	ShapeUpper
)

// ShapeOf classifies the casing of word
func ShapeOf(word string) Shape {
	var upper, lower, cased int
	first := true
	firstUpper := false
	for _, r := range word {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			upper++
			cased++
			if first {
				firstUpper = true
			}
		case unicode.IsLower(r):
			lower++
			cased++
		}
		if unicode.IsLetter(r) {
			first = false
		}
	}
	switch {
	case cased == 0:
		return ShapeOther
	case upper == 0:
		return ShapeLower
	case lower == 0 && upper >= 2:
		return ShapeUpper
	case firstUpper && upper == 1:
		return ShapeTitle
	default:
		return ShapeOther
	}
}

// MatchCase rewrites replacement to follow the casing shape of original.
// tag selects language specific rules (Turkish dotted i for example); use language.Und
// when unknown. Mixed or caseless originals leave the replacement untouched
func MatchCase(original, replacement string, tag language.Tag) string {
	switch ShapeOf(original) {
	case ShapeLower:
		return cases.Lower(tag).String(replacement)
	case ShapeUpper:
		return cases.Upper(tag).String(replacement)
	case ShapeTitle:
		return cases.Title(tag, cases.NoLower).String(replacement)
	default:
		return replacement
	}
}

// ParseTag parses a BCP 47 tag, falling back to language.Und on empty or invalid input
func ParseTag(s string) language.Tag {
	if s == "" {
		return language.Und
	}
	t, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return t
}

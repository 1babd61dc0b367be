// Package delimiter decides which grapheme clusters end a word.
//
// The analyzer in package words only ever asks a Classifier; everything locale or
// product specific lives here as data. Presets are embedded (presets.json) and user
// packs can be loaded from JSON, YAML or TOML files and hot reloaded through Live
package delimiter

import (
	"unicode"
	"unicode/utf8"

	"wordbound/internal/core/normalize"
)

// Classifier reports whether a grapheme cluster is a word delimiter.
// Implementations must treat the empty cluster as a delimiter so that the end of a
// text behaves like a boundary
type Classifier interface {
	IsWordDelimiter(g string) bool
}

// SentenceClassifier reports whether a grapheme cluster ends a sentence
type SentenceClassifier interface {
	IsSentenceDelimiter(g string) bool
}

// Func adapts a plain predicate to Classifier. The empty cluster is always a delimiter
type Func func(g string) bool

// IsWordDelimiter implements Classifier
func (f Func) IsWordDelimiter(g string) bool { return g == "" || f(g) }

// Set is a compiled Pack. It is immutable and safe for concurrent use
type Set struct {
	name        string
	words       map[string]struct{}
	sentences   map[string]struct{}
	keep        map[string]struct{}
	whitespace  bool
	punctuation bool
	fold        bool
}

// Name is the preset or pack name the set was compiled from
func (s *Set) Name() string { return s.name }

// IsWordDelimiter implements Classifier.
// Order: empty cluster, keep list, explicit delimiters, whitespace, punctuation category
func (s *Set) IsWordDelimiter(g string) bool {
	if g == "" {
		return true
	}
	if s.lookup(s.keep, g) {
		return false
	}
	if s.lookup(s.words, g) {
		return true
	}
	if s.whitespace && allSpace(g) {
		return true
	}
	return s.punctuation && basePunct(g)
}

// IsSentenceDelimiter implements SentenceClassifier
func (s *Set) IsSentenceDelimiter(g string) bool {
	return g != "" && s.lookup(s.sentences, g)
}

func (s *Set) lookup(m map[string]struct{}, g string) bool {
	if len(m) == 0 {
		return false
	}
	if _, ok := m[g]; ok {
		return true
	}
	if !s.fold {
		return false
	}
	f := normalize.Fold(g)
	if f == g {
		return false
	}
	_, ok := m[f]
	return ok
}

// allSpace is true for clusters made only of whitespace, which covers "\r\n"
func allSpace(g string) bool {
	for _, r := range g {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// basePunct looks at the base rune only; trailing combining marks do not change the class
func basePunct(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return unicode.IsPunct(r)
}

// Package document answers questions about the text around an editing cursor
package document

import (
	"strings"

	"wordbound/internal/core/delimiter"
	"wordbound/internal/core/normalize"
	"wordbound/internal/core/words"

	"golang.org/x/text/language"
)

// Document is the text on either side of the cursor
type Document struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Text returns the whole document
func (d Document) Text() string { return d.Before + d.After }

// Inspector evaluates a Document with an analyzer and a sentence classifier
type Inspector struct {
	words     *words.Analyzer
	sentences delimiter.SentenceClassifier
}

// NewInspector builds an Inspector. When sc is nil the analyzer's classifier is used if it
// also knows sentence delimiters, otherwise the default preset
func NewInspector(a *words.Analyzer, sc delimiter.SentenceClassifier) *Inspector {
	if a == nil {
		a = words.New(nil)
	}
	if sc == nil {
		if c, ok := a.Classifier().(delimiter.SentenceClassifier); ok {
			sc = c
		} else {
			sc = delimiter.Default()
		}
	}
	return &Inspector{words: a, sentences: sc}
}

// cursor segments the whole document and locates the cursor as a cluster offset
func cursor(doc Document) (words.Text, int) {
	t := words.NewText(doc.Text())
	return t, t.OffsetOf(len(doc.Before))
}

// CurrentWord is the word touching the cursor
func (in *Inspector) CurrentWord(doc Document) (string, bool) {
	sp, ok := in.currentSpan(doc)
	return sp.Word, ok
}

func (in *Inspector) currentSpan(doc Document) (words.Span, bool) {
	t, pos := cursor(doc)
	// pos is in [0, t.Len()] by construction
	sp, ok, _ := in.words.Span(t.String(), pos)
	return sp, ok
}

// PreCursorPart is the part of the current word left of the cursor
func (in *Inspector) PreCursorPart(doc Document) string {
	return in.words.FragmentAtEnd(doc.Before)
}

// PostCursorPart is the part of the current word right of the cursor
func (in *Inspector) PostCursorPart(doc Document) string {
	return in.words.FragmentAtStart(doc.After)
}

// IsCursorAtNewWord reports whether typing now would start a new word
func (in *Inspector) IsCursorAtNewWord(doc Document) bool {
	return doc.Before == "" || in.words.HasDelimiterSuffix(doc.Before)
}

// IsCursorAtNewSentence reports whether typing now would start a new sentence.
// Trailing spaces and tabs are ignored, line breaks are not
func (in *Inspector) IsCursorAtNewSentence(doc Document) bool {
	trimmed := strings.TrimRight(doc.Before, " \t\u00a0\u3000")
	if trimmed == "" {
		return true
	}
	return in.sentences.IsSentenceDelimiter(words.NewText(trimmed).Last())
}

// ReplaceOptions tunes ReplaceCurrentWord
type ReplaceOptions struct {
	// MatchCase reshapes the replacement after the case of the replaced word
	MatchCase bool
	// Lang selects case mapping rules, language.Und when unset
	Lang language.Tag
}

// ReplaceCurrentWord swaps the current word for replacement and leaves the cursor after it.
// Without a current word the replacement is inserted at the cursor
func (in *Inspector) ReplaceCurrentWord(doc Document, replacement string, opts ReplaceOptions) (Document, string) {
	t, pos := cursor(doc)
	sp, ok, _ := in.words.Span(t.String(), pos)
	if !ok {
		return Document{Before: doc.Before + replacement, After: doc.After}, ""
	}
	if opts.MatchCase {
		replacement = normalize.MatchCase(sp.Word, replacement, opts.Lang)
	}
	return Document{
		Before: t.Prefix(sp.Start) + replacement,
		After:  t.Suffix(sp.End),
	}, sp.Word
}

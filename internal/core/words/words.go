// Package words finds the word, or word fragment, touching a character offset.
//
// Text is treated as a sequence of grapheme clusters and every cluster is either a
// word member or a delimiter. Which clusters are delimiters is decided by a
// delimiter.Classifier supplied at construction, so the scanning here never assumes
// anything about punctuation or locale.
//
// A fragment is the run of word members at one end of a string: FragmentAtStart scans
// forward until the first delimiter, FragmentAtEnd scans backward until the last one.
// The word at an offset is the fragment ending at that offset joined with the fragment
// starting there.
package words

import (
	"wordbound/internal/core/delimiter"
	perr "wordbound/internal/platform/errors"

	"github.com/rivo/uniseg"
)

// Analyzer extracts word fragments using a delimiter classifier.
// It holds no mutable state and is safe for concurrent use
type Analyzer struct {
	delim delimiter.Classifier
}

// New builds an Analyzer. A nil classifier selects delimiter.Default()
func New(c delimiter.Classifier) *Analyzer {
	if c == nil {
		c = delimiter.Default()
	}
	return &Analyzer{delim: c}
}

// Span is a word located inside a text. Start and End are cluster offsets, End exclusive
type Span struct {
	Word  string `json:"word"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Classifier returns the delimiter classifier in use
func (a *Analyzer) Classifier() delimiter.Classifier { return a.delim }

// IsWordDelimiter reports whether the cluster g terminates a word
func (a *Analyzer) IsWordDelimiter(g string) bool { return a.delim.IsWordDelimiter(g) }

// HasDelimiterSuffix reports whether the last cluster of text is a delimiter.
// Empty text tests the empty cluster, which always counts as a delimiter
func (a *Analyzer) HasDelimiterSuffix(text string) bool {
	return a.delim.IsWordDelimiter(NewText(text).Last())
}

// FragmentAtStart returns the leading run of word members.
// Scanning stops at the first delimiter, so only the returned clusters are visited
func (a *Analyzer) FragmentAtStart(text string) string {
	rest, n, state := text, 0, -1
	for len(rest) > 0 {
		var c string
		c, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if a.delim.IsWordDelimiter(c) {
			break
		}
		n += len(c)
	}
	return text[:n]
}

// FragmentAtEnd returns the trailing run of word members in left-to-right order
func (a *Analyzer) FragmentAtEnd(text string) string {
	t := NewText(text)
	end := t.Len()
	return t.Slice(a.runStart(t, end), end)
}

// FragmentBefore returns the fragment ending exactly at pos
func (a *Analyzer) FragmentBefore(text string, pos int) (string, error) {
	t := NewText(text)
	if err := checkOffset(t, pos, "FragmentBefore"); err != nil {
		return "", err
	}
	return t.Slice(a.runStart(t, pos), pos), nil
}

// FragmentAfter returns the fragment starting exactly at pos
func (a *Analyzer) FragmentAfter(text string, pos int) (string, error) {
	t := NewText(text)
	if err := checkOffset(t, pos, "FragmentAfter"); err != nil {
		return "", err
	}
	return t.Slice(pos, a.runEnd(t, pos)), nil
}

// WordAt returns the word straddling pos: the fragment before pos followed by the
// fragment after it. ok is false when both fragments are empty
func (a *Analyzer) WordAt(text string, pos int) (word string, ok bool, err error) {
	sp, ok, err := a.Span(text, pos)
	if err != nil || !ok {
		return "", false, err
	}
	return sp.Word, true, nil
}

// Span is WordAt with the cluster offsets of the word
func (a *Analyzer) Span(text string, pos int) (Span, bool, error) {
	t := NewText(text)
	if err := checkOffset(t, pos, "WordAt"); err != nil {
		return Span{}, false, err
	}
	start, end := a.runStart(t, pos), a.runEnd(t, pos)
	if start == end {
		return Span{}, false, nil
	}
	return Span{Word: t.Slice(start, end), Start: start, End: end}, true, nil
}

// runStart walks back from end while clusters are word members
func (a *Analyzer) runStart(t Text, end int) int {
	i := end
	for i > 0 && !a.delim.IsWordDelimiter(t.Cluster(i-1)) {
		i--
	}
	return i
}

// runEnd walks forward from start while clusters are word members
func (a *Analyzer) runEnd(t Text, start int) int {
	i, n := start, t.Len()
	for i < n && !a.delim.IsWordDelimiter(t.Cluster(i)) {
		i++
	}
	return i
}

func checkOffset(t Text, pos int, op string) error {
	if pos < 0 || pos > t.Len() {
		err := perr.OutOfRangef("position %d outside [0,%d]", pos, t.Len())
		return perr.WithOp(perr.WithField(err, "position"), op)
	}
	return nil
}

// IsOutOfRange reports whether err is an invalid character offset
func IsOutOfRange(err error) bool { return perr.IsCode(err, perr.ErrorCodeOutOfRange) }

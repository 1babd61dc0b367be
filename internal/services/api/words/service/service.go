// Package service contains the word lookup workflows behind the words endpoints
package service

import (
	"context"

	"wordbound/internal/core/delimiter"
	"wordbound/internal/core/document"
	"wordbound/internal/core/langhint"
	"wordbound/internal/core/words"
	perr "wordbound/internal/platform/errors"
	"wordbound/internal/platform/logger"
	"wordbound/internal/platform/metrics"
	"wordbound/internal/services/api/words/domain"

	"golang.org/x/text/language"
)

// AutoPreset picks a preset from the script of the text
const AutoPreset = "auto"

// Service defines the words service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the words service
type Svc struct {
	presets *delimiter.Registry
	active  *delimiter.Live
	metrics *metrics.Collector
}

// New constructs a words service. metrics may be nil
func New(presets *delimiter.Registry, active *delimiter.Live, m *metrics.Collector) *Svc {
	if presets == nil {
		panic("words.Service requires a non nil preset registry")
	}
	if active == nil {
		panic("words.Service requires a non nil active set")
	}
	return &Svc{presets: presets, active: active, metrics: m}
}

// resolve picks the delimiter set for a request and tags ctx with its name.
// The active set is snapshotted so a concurrent reload cannot change it mid request
func (s *Svc) resolve(ctx context.Context, name, text string) (context.Context, *delimiter.Set, error) {
	var set *delimiter.Set
	switch name {
	case "":
		set = s.active.Load()
	case AutoPreset:
		var err error
		if set, err = s.presets.Get(langhint.Preset(text)); err != nil {
			return ctx, nil, err
		}
	default:
		var err error
		if set, err = s.presets.Get(name); err != nil {
			return ctx, nil, err
		}
	}
	return logger.WithPreset(ctx, set.Name()), set, nil
}

func (s *Svc) count(ctx context.Context, op, preset string, found bool, err error) {
	outcome := "found"
	switch {
	case err != nil:
		outcome = "error"
		logger.C(ctx).Debug().Err(err).Str("op", op).Msg("word lookup failed")
	case !found:
		outcome = "empty"
	}
	s.metrics.Lookup(op, preset, outcome)
}

// At returns the word straddling in.Position
func (s *Svc) At(ctx context.Context, in domain.PositionInput) (domain.WordResult, error) {
	ctx, set, err := s.resolve(ctx, in.Preset, in.Text)
	if err != nil {
		return domain.WordResult{}, err
	}
	sp, ok, err := words.New(set).Span(in.Text, in.Position)
	s.count(ctx, "at", set.Name(), ok, err)
	if err != nil {
		return domain.WordResult{}, err
	}
	return domain.WordResult{Preset: set.Name(), Found: ok, Word: sp.Word, Start: sp.Start, End: sp.End}, nil
}

// Before returns the fragment ending at in.Position
func (s *Svc) Before(ctx context.Context, in domain.PositionInput) (domain.FragmentResult, error) {
	return s.fragment(ctx, "before", in, (*words.Analyzer).FragmentBefore)
}

// After returns the fragment starting at in.Position
func (s *Svc) After(ctx context.Context, in domain.PositionInput) (domain.FragmentResult, error) {
	return s.fragment(ctx, "after", in, (*words.Analyzer).FragmentAfter)
}

func (s *Svc) fragment(ctx context.Context, op string, in domain.PositionInput, fn func(*words.Analyzer, string, int) (string, error)) (domain.FragmentResult, error) {
	ctx, set, err := s.resolve(ctx, in.Preset, in.Text)
	if err != nil {
		return domain.FragmentResult{}, err
	}
	frag, err := fn(words.New(set), in.Text, in.Position)
	s.count(ctx, op, set.Name(), frag != "", err)
	if err != nil {
		return domain.FragmentResult{}, err
	}
	return domain.FragmentResult{Preset: set.Name(), Fragment: frag}, nil
}

// Edges returns the leading and trailing fragments of the text
func (s *Svc) Edges(ctx context.Context, in domain.TextInput) (domain.EdgesResult, error) {
	ctx, set, err := s.resolve(ctx, in.Preset, in.Text)
	if err != nil {
		return domain.EdgesResult{}, err
	}
	a := words.New(set)
	out := domain.EdgesResult{
		Preset:          set.Name(),
		Start:           a.FragmentAtStart(in.Text),
		End:             a.FragmentAtEnd(in.Text),
		DelimiterSuffix: a.HasDelimiterSuffix(in.Text),
		Length:          words.Len(in.Text),
	}
	s.count(ctx, "edges", set.Name(), out.Start != "" || out.End != "", nil)
	return out, nil
}

// Cursor inspects the text around a cursor
func (s *Svc) Cursor(ctx context.Context, in domain.CursorInput) (domain.CursorResult, error) {
	doc := document.Document{Before: in.Before, After: in.After}
	ctx, set, err := s.resolve(ctx, in.Preset, doc.Text())
	if err != nil {
		return domain.CursorResult{}, err
	}
	insp := document.NewInspector(words.New(set), set)
	word, ok := insp.CurrentWord(doc)
	s.count(ctx, "cursor", set.Name(), ok, nil)
	return domain.CursorResult{
		Preset:      set.Name(),
		Word:        word,
		Found:       ok,
		PreCursor:   insp.PreCursorPart(doc),
		PostCursor:  insp.PostCursorPart(doc),
		NewWord:     insp.IsCursorAtNewWord(doc),
		NewSentence: insp.IsCursorAtNewSentence(doc),
	}, nil
}

// Replace swaps the word at the cursor for in.Replacement
func (s *Svc) Replace(ctx context.Context, in domain.ReplaceInput) (domain.ReplaceResult, error) {
	lang := language.Und
	if in.Lang != "" {
		tag, err := language.Parse(in.Lang)
		if err != nil {
			return domain.ReplaceResult{}, perr.WithField(perr.InvalidArgf("invalid language tag %q", in.Lang), "lang")
		}
		lang = tag
	}
	doc := document.Document{Before: in.Before, After: in.After}
	ctx, set, err := s.resolve(ctx, in.Preset, doc.Text())
	if err != nil {
		return domain.ReplaceResult{}, err
	}
	insp := document.NewInspector(words.New(set), set)
	out, replaced := insp.ReplaceCurrentWord(doc, in.Replacement, document.ReplaceOptions{MatchCase: in.MatchCase, Lang: lang})
	s.count(ctx, "replace", set.Name(), replaced != "", nil)
	return domain.ReplaceResult{Preset: set.Name(), Before: out.Before, After: out.After, Replaced: replaced}, nil
}

// Presets lists the registered presets. A hot loaded pack that is not registered
// is listed too, so the active set always appears
func (s *Svc) Presets(_ context.Context) ([]domain.PresetInfo, error) {
	active := s.active.Name()
	names := s.presets.Names()
	out := make([]domain.PresetInfo, 0, len(names)+1)
	seen := false
	for _, n := range names {
		out = append(out, domain.PresetInfo{Name: n, Description: s.presets.Describe(n), Active: n == active})
		seen = seen || n == active
	}
	if !seen {
		out = append(out, domain.PresetInfo{Name: active, Active: true})
	}
	return out, nil
}

// Active returns the name of the server-wide set
func (s *Svc) Active() string { return s.active.Name() }

// Names returns the registered preset names
func (s *Svc) Names() []string { return s.presets.Names() }

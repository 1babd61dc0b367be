package service

import (
	"context"
	"testing"

	"wordbound/internal/core/delimiter"
	perr "wordbound/internal/platform/errors"
	"wordbound/internal/platform/metrics"
	"wordbound/internal/services/api/words/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newSvc(t *testing.T) (*Svc, *metrics.Collector) {
	t.Helper()
	reg, err := delimiter.NewRegistry()
	require.NoError(t, err)
	def, err := reg.Get(delimiter.DefaultPreset)
	require.NoError(t, err)
	m := metrics.New("wordbound_test")
	return New(reg, delimiter.NewLive(def), m), m
}

func TestAt(t *testing.T) {
	s, m := newSvc(t)
	ctx := context.Background()

	got, err := s.At(ctx, domain.PositionInput{Text: "hello world", Position: 3})
	require.NoError(t, err)
	require.Equal(t, domain.WordResult{Preset: "default", Found: true, Word: "hello", Start: 0, End: 5}, got)

	// on the space the left side wins
	got, err = s.At(ctx, domain.PositionInput{Text: "hello world", Position: 5})
	require.NoError(t, err)
	require.Equal(t, "hello", got.Word)

	got, err = s.At(ctx, domain.PositionInput{Text: "a , b", Position: 2})
	require.NoError(t, err)
	require.False(t, got.Found)

	_, err = s.At(ctx, domain.PositionInput{Text: "abc", Position: 4})
	require.True(t, perr.IsCode(err, perr.ErrorCodeOutOfRange))

	require.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("at", "default", "empty")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("at", "default", "error")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues("at", "default", "found")))
}

func TestBeforeAfter(t *testing.T) {
	s, _ := newSvc(t)
	ctx := context.Background()

	b, err := s.Before(ctx, domain.PositionInput{Text: "don't stop", Position: 3})
	require.NoError(t, err)
	require.Equal(t, "don", b.Fragment)

	a, err := s.After(ctx, domain.PositionInput{Text: "don't stop", Position: 3})
	require.NoError(t, err)
	require.Equal(t, "'t", a.Fragment)

	a, err = s.After(ctx, domain.PositionInput{Text: "don't stop", Position: 3, Preset: "strict"})
	require.NoError(t, err)
	require.Equal(t, "strict", a.Preset)
	require.Equal(t, "", a.Fragment)
}

func TestPresetResolution(t *testing.T) {
	s, _ := newSvc(t)
	ctx := context.Background()

	_, err := s.Edges(ctx, domain.TextInput{Text: "x", Preset: "klingon"})
	require.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	e, ok := perr.As(err)
	require.True(t, ok)
	require.Equal(t, "preset", e.Field())

	got, err := s.Edges(ctx, domain.TextInput{Text: "你好。世界", Preset: AutoPreset})
	require.NoError(t, err)
	require.Equal(t, "cjk", got.Preset)
	require.Equal(t, "你好", got.Start)
	require.Equal(t, "世界", got.End)

	got, err = s.Edges(ctx, domain.TextInput{Text: "hello", Preset: AutoPreset})
	require.NoError(t, err)
	require.Equal(t, "default", got.Preset)
}

func TestEdges(t *testing.T) {
	s, _ := newSvc(t)
	got, err := s.Edges(context.Background(), domain.TextInput{Text: "hello world!"})
	require.NoError(t, err)
	require.Equal(t, domain.EdgesResult{
		Preset:          "default",
		Start:           "hello",
		End:             "",
		DelimiterSuffix: true,
		Length:          12,
	}, got)

	got, err = s.Edges(context.Background(), domain.TextInput{})
	require.NoError(t, err)
	require.True(t, got.DelimiterSuffix)
	require.Zero(t, got.Length)
}

func TestCursorAndReplace(t *testing.T) {
	s, _ := newSvc(t)
	ctx := context.Background()

	c, err := s.Cursor(ctx, domain.CursorInput{Before: "Thanks. hel", After: "lo there"})
	require.NoError(t, err)
	require.Equal(t, domain.CursorResult{
		Preset:     "default",
		Word:       "hello",
		Found:      true,
		PreCursor:  "hel",
		PostCursor: "lo",
	}, c)

	c, err = s.Cursor(ctx, domain.CursorInput{Before: "Thanks. "})
	require.NoError(t, err)
	require.True(t, c.NewWord)
	require.True(t, c.NewSentence)
	require.False(t, c.Found)

	r, err := s.Replace(ctx, domain.ReplaceInput{Before: "I sea", After: "d it", Replacement: "said"})
	require.NoError(t, err)
	require.Equal(t, domain.ReplaceResult{Preset: "default", Before: "I said", After: " it", Replaced: "sead"}, r)

	r, err = s.Replace(ctx, domain.ReplaceInput{Before: "Teh", After: " end", Replacement: "the", MatchCase: true, Lang: "en"})
	require.NoError(t, err)
	require.Equal(t, "The", r.Before)
}

func TestActiveFollowsLive(t *testing.T) {
	s, _ := newSvc(t)
	strict, err := s.presets.Get("strict")
	require.NoError(t, err)
	s.active.Store(strict)

	got, err := s.After(context.Background(), domain.PositionInput{Text: "don't", Position: 3})
	require.NoError(t, err)
	require.Equal(t, "strict", got.Preset)
	require.Equal(t, "strict", s.Active())

	list, err := s.Presets(context.Background())
	require.NoError(t, err)
	require.Len(t, list, len(s.Names()))
	for _, p := range list {
		require.Equal(t, p.Name == "strict", p.Active, p.Name)
	}
}

func TestPresets_ListsUnregisteredActive(t *testing.T) {
	s, _ := newSvc(t)
	set, err := s.presets.Compile(delimiter.Pack{Name: "house", Extends: "default", Words: []string{"/"}})
	require.NoError(t, err)
	s.active.Store(set)

	list, err := s.Presets(context.Background())
	require.NoError(t, err)
	last := list[len(list)-1]
	require.Equal(t, domain.PresetInfo{Name: "house", Active: true}, last)
}

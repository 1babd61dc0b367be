package delimiter

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	perr "wordbound/internal/platform/errors"
)

//go:embed presets.json
var embedded []byte

// maxExtendsDepth bounds extends chains so a cycle fails instead of looping
const maxExtendsDepth = 8

// Pack is the declarative form of a delimiter set.
// When Extends names another pack, lists are unioned and flags are ORed with it
type Pack struct {
	Name        string   `json:"name"                  yaml:"name"                  toml:"name"`
	Extends     string   `json:"extends,omitempty"     yaml:"extends,omitempty"     toml:"extends"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description"`
	Words       []string `json:"words,omitempty"       yaml:"words,omitempty"       toml:"words"`
	Sentences   []string `json:"sentences,omitempty"   yaml:"sentences,omitempty"   toml:"sentences"`
	Keep        []string `json:"keep,omitempty"        yaml:"keep,omitempty"        toml:"keep"`
	Whitespace  bool     `json:"whitespace,omitempty"  yaml:"whitespace,omitempty"  toml:"whitespace"`
	Punctuation bool     `json:"punctuation,omitempty" yaml:"punctuation,omitempty" toml:"punctuation"`
	Fold        bool     `json:"fold,omitempty"        yaml:"fold,omitempty"        toml:"fold"`
}

type rawPresets struct {
	Version int    `json:"version"`
	Presets []Pack `json:"presets"`
}

// Presets parses the embedded preset packs
func Presets() ([]Pack, error) {
	var rp rawPresets
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("delimiter: parse presets.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("delimiter: unsupported presets.json version %d (want 1)", rp.Version)
	}
	return rp.Presets, nil
}

// Compile turns a pack into a Set. resolve looks up packs named by Extends and may be nil
// when the pack extends nothing
func Compile(p Pack, resolve func(name string) (Pack, bool)) (*Set, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, perr.InvalidArgf("delimiter pack has no name")
	}
	flat, err := flatten(p, resolve, 0)
	if err != nil {
		return nil, perr.WithField(err, name)
	}
	return &Set{
		name:        name,
		words:       toSet(flat.Words),
		sentences:   toSet(flat.Sentences),
		keep:        toSet(flat.Keep),
		whitespace:  flat.Whitespace,
		punctuation: flat.Punctuation,
		fold:        flat.Fold,
	}, nil
}

// flatten merges p with its extends chain
func flatten(p Pack, resolve func(string) (Pack, bool), depth int) (Pack, error) {
	if p.Extends == "" {
		return p, nil
	}
	if depth >= maxExtendsDepth {
		return Pack{}, perr.InvalidArgf("delimiter pack %q: extends chain too deep or cyclic", p.Name)
	}
	if resolve == nil {
		return Pack{}, perr.NotFoundf("delimiter pack %q extends unknown pack %q", p.Name, p.Extends)
	}
	parent, ok := resolve(p.Extends)
	if !ok {
		return Pack{}, perr.NotFoundf("delimiter pack %q extends unknown pack %q", p.Name, p.Extends)
	}
	base, err := flatten(parent, resolve, depth+1)
	if err != nil {
		return Pack{}, err
	}
	return Pack{
		Name:        p.Name,
		Description: p.Description,
		Words:       append(append([]string(nil), base.Words...), p.Words...),
		Sentences:   append(append([]string(nil), base.Sentences...), p.Sentences...),
		Keep:        append(append([]string(nil), base.Keep...), p.Keep...),
		Whitespace:  base.Whitespace || p.Whitespace,
		Punctuation: base.Punctuation || p.Punctuation,
		Fold:        base.Fold || p.Fold,
	}, nil
}

// toSet drops empty entries; the empty cluster is handled by Set itself
func toSet(in []string) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		out[s] = struct{}{}
	}
	return out
}

// Clusters lists the explicit word delimiters of a set in sorted order, for debugging and docs
func (s *Set) Clusters() []string {
	out := make([]string, 0, len(s.words))
	for g := range s.words {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

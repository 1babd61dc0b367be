package delimiter

import (
	"sort"
	"sync"

	perr "wordbound/internal/platform/errors"
)

// DefaultPreset is the preset used when callers do not pick one
const DefaultPreset = "default"

// Registry holds named packs and their compiled sets
type Registry struct {
	mu    sync.RWMutex
	packs map[string]Pack
	sets  map[string]*Set
}

// NewRegistry creates a Registry seeded with the embedded presets
func NewRegistry() (*Registry, error) {
	presets, err := Presets()
	if err != nil {
		return nil, err
	}
	r := &Registry{
		packs: make(map[string]Pack, len(presets)),
		sets:  make(map[string]*Set, len(presets)),
	}
	// register raw packs first so extends can point at any preset regardless of order
	for _, p := range presets {
		r.packs[p.Name] = p
	}
	for _, p := range presets {
		s, err := Compile(p, r.lookupLocked)
		if err != nil {
			return nil, err
		}
		r.sets[p.Name] = s
	}
	return r, nil
}

// Get returns the set registered under name
func (r *Registry) Get(name string) (*Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sets[name]
	if !ok {
		return nil, perr.WithField(perr.NotFoundf("unknown delimiter preset %q", name), "preset")
	}
	return s, nil
}

// Register compiles p and adds it under p.Name. Names are unique
func (r *Registry) Register(p Pack) (*Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.packs[p.Name]; exists {
		return nil, perr.InvalidArgf("delimiter preset already registered: %q", p.Name)
	}
	s, err := Compile(p, r.lookupLocked)
	if err != nil {
		return nil, err
	}
	r.packs[p.Name] = p
	r.sets[p.Name] = s
	return s, nil
}

// Compile compiles p against the registry without registering it
func (r *Registry) Compile(p Pack) (*Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Compile(p, r.lookupLocked)
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the description of a registered pack
func (r *Registry) Describe(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.packs[name].Description
}

// lookupLocked expects r.mu to be held by the caller
func (r *Registry) lookupLocked(name string) (Pack, bool) {
	p, ok := r.packs[name]
	return p, ok
}

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns a process-wide registry of the embedded presets.
// It panics if the embedded presets do not compile, which only a broken build can cause
func Builtin() *Registry {
	builtinOnce.Do(func() {
		r, err := NewRegistry()
		if err != nil {
			panic("delimiter: embedded presets: " + err.Error())
		}
		builtin = r
	})
	return builtin
}

// Default returns the default preset of the builtin registry
func Default() *Set {
	s, err := Builtin().Get(DefaultPreset)
	if err != nil {
		panic("delimiter: " + err.Error())
	}
	return s
}

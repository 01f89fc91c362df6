package dotmap

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	ErrInvalidJSON = errors.New("input is not valid JSON")
	ErrNotMapping  = errors.New("decoded document is not a mapping")
)

///////////////////////////////////////////////////////////////////////////////
// Map Facade
///////////////////////////////////////////////////////////////////////////////

// MapOpts configures a Map at construction time.
type MapOpts struct {
	// Immutable makes every write return a fresh root instead of mutating
	// the bound one. The Map keeps its original binding either way;
	// adopting a returned root is the caller's choice.
	Immutable bool

	// Cache overrides the global segment cache for this Map. Useful for
	// isolating cache state, e.g. between tests.
	Cache *SegmentCache
}

// Map binds one root mapping to the accessor, merge, enumeration and
// validation operations.
//
// In mutable mode (the default) the Map shares the root with the caller and
// writes are visible through every alias. In immutable mode writes return a
// structural clone carrying the change and the bound root is never touched.
type Map struct {
	root      map[string]any
	immutable bool
	cache     *SegmentCache
}

// New binds root. A nil root is bound as an empty mapping.
func New(root map[string]any, opts ...MapOpts) *Map {
	var o MapOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	cache := o.Cache
	if cache == nil {
		cache = _globalSegmentCache
	}
	if root == nil {
		root = make(map[string]any)
	}

	return &Map{root: root, immutable: o.Immutable, cache: cache}
}

// FromJSON decodes a JSON document and binds the resulting mapping.
func FromJSON(data []byte, opts ...MapOpts) (*Map, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	root, ok := gjson.ParseBytes(data).Value().(map[string]any)
	if !ok {
		return nil, ErrNotMapping
	}
	return New(root, opts...), nil
}

// FromYAML decodes a YAML document and binds the resulting mapping.
func FromYAML(data []byte, opts ...MapOpts) (*Map, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding YAML document: %w", err)
	}
	return New(root, opts...), nil
}

// Root returns the bound root mapping.
func (m *Map) Root() map[string]any {
	return m.root
}

// Get reads the value at path. See Get.
func (m *Map) Get(path string) (any, bool) {
	return getWith(m.cache, m.root, path)
}

// Has reports whether path resolves to an existing key. See Has.
func (m *Map) Has(path string) bool {
	_, found := getWith(m.cache, m.root, path)
	return found
}

// Set writes value at path and returns the resulting root: the bound root
// in mutable mode, a clone carrying the change in immutable mode.
func (m *Map) Set(path string, value any) map[string]any {
	return setWith(m.cache, m.root, path, value, Options{Immutable: m.immutable})
}

// Delete removes the key at path and returns the resulting root.
func (m *Map) Delete(path string) map[string]any {
	return deleteWith(m.cache, m.root, path, Options{Immutable: m.immutable})
}

// Update reads the current value at path (fn receives ok=false when the
// path does not resolve), then writes whatever fn returns.
func (m *Map) Update(path string, fn func(current any, ok bool) any) map[string]any {
	current, found := m.Get(path)
	return m.Set(path, fn(current, found))
}

// Merge merges source into the bound root. See Merge.
func (m *Map) Merge(source map[string]any) map[string]any {
	return Merge(m.root, source, Options{Immutable: m.immutable})
}

// Paths enumerates every reachable dot-path in the bound root. See Paths.
func (m *Map) Paths() []string {
	return Paths(m.root)
}

///////////////////////////////////////////////////////////////////////////////
// Validation Integration
///////////////////////////////////////////////////////////////////////////////

// SetOpts adjusts ValidateAndSet.
type SetOpts struct {
	// Strict surfaces validation failure as an error. Cleared, a failed
	// validation leaves the root unchanged and returns no error.
	Strict bool
}

// Validate reads path and checks the value found there against schema. A
// path that does not resolve is validated as Missing, so Optional and
// Default schemas still apply.
func (m *Map) Validate(path string, schema Schema) Result {
	value, found := m.Get(path)
	if !found {
		return schema.Validate(Missing)
	}
	return schema.Validate(value)
}

// ValidateAndSet validates value against schema and, on success, writes
// the validated (possibly transformed or defaulted) value at path,
// returning the resulting root.
//
// On failure the bound root comes back unchanged. Strict mode — the
// default when no opts are given — additionally returns the accumulated
// Issues as the error.
func (m *Map) ValidateAndSet(path string, value any, schema Schema, opts ...SetOpts) (map[string]any, error) {
	strict := true
	if len(opts) > 0 {
		strict = opts[0].Strict
	}

	result := schema.Validate(value)
	if !result.Valid {
		if strict {
			return m.root, result.Issues
		}
		return m.root, nil
	}

	return m.Set(path, result.Value), nil
}

package dotmap

///////////////////////////////////////////////////////////////////////////////
// Accessor Options
///////////////////////////////////////////////////////////////////////////////

// Options adjusts a single accessor call. The zero value mutates in place.
type Options struct {
	// Immutable leaves the input root untouched: the write is applied to a
	// deep clone, which becomes the returned root. Callers that want the
	// change must adopt the return value.
	Immutable bool
}

// callOpts collapses a variadic Options list to a single value.
func callOpts(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[0]
}

///////////////////////////////////////////////////////////////////////////////
// Package Functions (global segment cache)
///////////////////////////////////////////////////////////////////////////////

// Get walks path from root and returns the value found there. The second
// return is false when any step of the walk hits a missing key or a value
// that is not a mapping, and for the empty path.
func Get(root map[string]any, path string) (any, bool) {
	return getWith(_globalSegmentCache, root, path)
}

// Has reports whether path resolves to an existing key. Key existence is
// what counts: a key explicitly holding nil or false is still present.
func Has(root map[string]any, path string) bool {
	_, found := getWith(_globalSegmentCache, root, path)
	return found
}

// Set writes value at path, creating intermediate mappings as needed.
// Intermediate values that are not mappings are replaced by fresh empty
// mappings. An empty final segment makes the call a no-op.
//
// The returned root is root itself, or a deep clone of it when called with
// Immutable. A nil root yields a freshly allocated root.
func Set(root map[string]any, path string, value any, opts ...Options) map[string]any {
	return setWith(_globalSegmentCache, root, path, value, callOpts(opts))
}

// Delete removes the key at path. Unlike Set it never creates structure:
// if any intermediate segment is missing or not a mapping, the root comes
// back unchanged.
func Delete(root map[string]any, path string, opts ...Options) map[string]any {
	return deleteWith(_globalSegmentCache, root, path, callOpts(opts))
}

///////////////////////////////////////////////////////////////////////////////
// Traversal
///////////////////////////////////////////////////////////////////////////////

func getWith(cache *SegmentCache, root map[string]any, path string) (any, bool) {
	segments := cache.Resolve(path)

	var current any = root
	for _, segment := range segments {
		m, ok := asMapping(current)
		if !ok {
			return nil, false
		}
		value, exists := m[segment]
		if !exists {
			return nil, false
		}
		current = value
	}

	return current, true
}

func setWith(cache *SegmentCache, root map[string]any, path string, value any, opts Options) map[string]any {
	segments := cache.Resolve(path)

	final := segments[len(segments)-1]
	if final == "" {
		return root
	}

	base := root
	if opts.Immutable {
		base = cloneMapping(root)
	}
	if base == nil {
		base = make(map[string]any)
	}

	current := base
	for _, segment := range segments[:len(segments)-1] {
		next, ok := asMapping(current[segment])
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[final] = value

	return base
}

func deleteWith(cache *SegmentCache, root map[string]any, path string, opts Options) map[string]any {
	segments := cache.Resolve(path)

	base := root
	if opts.Immutable {
		base = cloneMapping(root)
	}

	current := base
	for _, segment := range segments[:len(segments)-1] {
		next, ok := asMapping(current[segment])
		if !ok {
			return base
		}
		current = next
	}
	if current == nil {
		return base
	}
	delete(current, segments[len(segments)-1])

	return base
}

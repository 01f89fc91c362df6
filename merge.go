package dotmap

///////////////////////////////////////////////////////////////////////////////
// Deep Merge
///////////////////////////////////////////////////////////////////////////////

// Merge merges source into target and returns the merged root.
//
// A key whose value is a mapping on both sides merges recursively. Every
// other pairing is overwritten by the source value outright: sequences are
// atomic and are never concatenated or merged element-wise, and a nil
// source value counts as an explicit null that overwrites.
//
// The returned root is always a fresh top-level map so the caller never
// aliases target at depth zero. In mutable mode nested mappings below the
// top level are still shared with target and mutated through it; with
// Immutable the merge works on a full structural clone.
func Merge(target, source map[string]any, opts ...Options) map[string]any {
	o := callOpts(opts)

	var base map[string]any
	if o.Immutable {
		base = cloneMapping(target)
	} else {
		base = shallowCopy(target)
	}

	mergeInto(base, source)
	return base
}

func mergeInto(target, source map[string]any) {
	for key, sourceValue := range source {
		sourceChild, sourceIsMap := asMapping(sourceValue)
		targetChild, targetIsMap := asMapping(target[key])
		if sourceIsMap && targetIsMap {
			mergeInto(targetChild, sourceChild)
			continue
		}
		target[key] = sourceValue
	}
}

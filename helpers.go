package dotmap

import "strconv"

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

// asMapping reports whether v is a usable mapping, returning it typed.
// A nil map is not usable: it cannot hold keys.
func asMapping(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

// deepClone returns a structural copy of v. Mappings and sequences are
// copied recursively; scalars are shared with the original.
func deepClone(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		clone := make(map[string]any, len(tv))
		for key, child := range tv {
			clone[key] = deepClone(child)
		}
		return clone
	case []any:
		clone := make([]any, len(tv))
		for i, child := range tv {
			clone[i] = deepClone(child)
		}
		return clone
	default:
		return v
	}
}

// cloneMapping deep-clones a root mapping, normalizing nil to empty.
func cloneMapping(m map[string]any) map[string]any {
	return deepClone(m).(map[string]any)
}

// shallowCopy copies the top level of m only; nested values are shared.
func shallowCopy(m map[string]any) map[string]any {
	copied := make(map[string]any, len(m))
	for key, value := range m {
		copied[key] = value
	}
	return copied
}

// toFloat normalizes any Go numeric kind to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// parseBoolString converts common boolean representations.
//
// Supported:
//   - "true", "1", "yes", "on" (case variants)
//   - "false", "0", "no", "off" (case variants)
//   - anything strconv.ParseBool accepts
func parseBoolString(value string) (bool, bool) {
	switch value {
	case "true", "1", "yes", "on", "True", "TRUE", "YES", "ON":
		return true, true
	case "false", "0", "no", "off", "False", "FALSE", "NO", "OFF":
		return false, true
	default:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, false
		}
		return parsed, true
	}
}

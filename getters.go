package dotmap

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Typed Getters
///////////////////////////////////////////////////////////////////////////////

// Typed getters read a path and convert the value to a concrete type. The
// boolean return is false when the path does not resolve or the conversion
// fails. Conversions accept the target type itself plus the string forms
// listed per getter, so documents decoded from looser formats still read
// cleanly.

// timeLayouts are tried in order when converting strings to time.Time.
var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05",
}

// GetString reads a string at path.
func (m *Map) GetString(path string) (string, bool) {
	value, found := m.Get(path)
	if !found {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}

// GetInt reads an integer at path. Floats convert when they carry no
// fractional part; strings convert through strconv.ParseInt.
func (m *Map) GetInt(path string) (int64, bool) {
	value, found := m.Get(path)
	if !found {
		return 0, false
	}

	switch n := value.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

// GetFloat reads a number at path. Any numeric kind converts; strings
// convert through strconv.ParseFloat.
func (m *Map) GetFloat(path string) (float64, bool) {
	value, found := m.Get(path)
	if !found {
		return 0, false
	}

	if f, ok := toFloat(value); ok {
		return f, true
	}
	if str, ok := value.(string); ok {
		parsed, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

// GetBool reads a boolean at path. Strings convert through the common
// representations ("true"/"1"/"yes"/"on" and their negatives).
func (m *Map) GetBool(path string) (bool, bool) {
	value, found := m.Get(path)
	if !found {
		return false, false
	}

	switch b := value.(type) {
	case bool:
		return b, true
	case string:
		return parseBoolString(b)
	}
	return false, false
}

// GetTime reads a time at path. Strings are tried against RFC3339 and a
// handful of common layouts.
func (m *Map) GetTime(path string) (time.Time, bool) {
	value, found := m.Get(path)
	if !found {
		return time.Time{}, false
	}

	switch t := value.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

// GetUUID reads a UUID at path. Strings convert through uuid.Parse.
func (m *Map) GetUUID(path string) (uuid.UUID, bool) {
	value, found := m.Get(path)
	if !found {
		return uuid.UUID{}, false
	}

	switch u := value.(type) {
	case uuid.UUID:
		return u, true
	case string:
		parsed, err := uuid.Parse(u)
		if err != nil {
			return uuid.UUID{}, false
		}
		return parsed, true
	}
	return uuid.UUID{}, false
}

package dotmap

import (
	"fmt"
	"reflect"
	"sort"
)

///////////////////////////////////////////////////////////////////////////////
// Slice Schema
///////////////////////////////////////////////////////////////////////////////

// SliceSchema validates sequences, checking every element against the
// element schema. A failing element does not stop later elements from
// being checked; its issues are qualified with the element index ([i],
// then [i].sub for nested paths) and concatenated across all indices.
type SliceSchema struct {
	mods    modifiers
	element Schema
}

// Slice returns a schema accepting sequences whose elements satisfy
// element.
func Slice(element Schema) *SliceSchema {
	return &SliceSchema{element: element}
}

// Optional accepts an absent value as-is.
func (s SliceSchema) Optional() *SliceSchema {
	s.mods.optional = true
	return &s
}

// Nullable accepts an explicit null as-is.
func (s SliceSchema) Nullable() *SliceSchema {
	s.mods.nullable = true
	return &s
}

// Default substitutes v for an absent or null value.
func (s SliceSchema) Default(v any) *SliceSchema {
	s.mods.defaultSet = true
	s.mods.defaultVal = v
	return &s
}

// Transform rewrites the validated value on success.
func (s SliceSchema) Transform(fn TransformFunc) *SliceSchema {
	s.mods.transform = fn
	return &s
}

// Validate implements Schema. Any Go slice or array is accepted; the
// validated value is always a fresh []any of the element results.
func (s *SliceSchema) Validate(value any) Result {
	if result, done := s.mods.apply(value); done {
		return result
	}

	if value == nil || IsMissing(value) {
		return reject(Issue{
			Message:  fmt.Sprintf("expected array, received %s", typeName(value)),
			Received: value,
			Expected: "array",
		})
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return reject(Issue{
			Message:  fmt.Sprintf("expected array, received %s", typeName(value)),
			Received: value,
			Expected: "array",
		})
	}

	var issues Issues
	validated := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		result := s.element.Validate(rv.Index(i).Interface())
		if !result.Valid {
			issues = append(issues, result.Issues.qualify(fmt.Sprintf("[%d]", i))...)
			continue
		}
		validated = append(validated, result.Value)
	}

	if len(issues) > 0 {
		return reject(issues...)
	}
	return accept(s.mods.finish(validated))
}

// Parse implements Schema.
func (s *SliceSchema) Parse(value any) (any, error) {
	return parseSchema(s, value)
}

// SafeParse implements Schema.
func (s *SliceSchema) SafeParse(value any) Result {
	return s.Validate(value)
}

///////////////////////////////////////////////////////////////////////////////
// Object Schema
///////////////////////////////////////////////////////////////////////////////

// ObjectSchema validates mappings against a declared shape. Input keys not
// named in the shape are ignored; shape validation is not strict. Issues
// from every failing key are qualified with the key name and concatenated.
// The validated value is a freshly built mapping of the successful keys,
// so the input is never mutated.
type ObjectSchema struct {
	mods  modifiers
	shape map[string]Schema
}

// Object returns a schema accepting mappings matching shape.
func Object(shape map[string]Schema) *ObjectSchema {
	return &ObjectSchema{shape: shape}
}

// Optional accepts an absent value as-is.
func (s ObjectSchema) Optional() *ObjectSchema {
	s.mods.optional = true
	return &s
}

// Nullable accepts an explicit null as-is.
func (s ObjectSchema) Nullable() *ObjectSchema {
	s.mods.nullable = true
	return &s
}

// Default substitutes v for an absent or null value.
func (s ObjectSchema) Default(v any) *ObjectSchema {
	s.mods.defaultSet = true
	s.mods.defaultVal = v
	return &s
}

// Transform rewrites the validated value on success.
func (s ObjectSchema) Transform(fn TransformFunc) *ObjectSchema {
	s.mods.transform = fn
	return &s
}

// Validate implements Schema. Shape keys are checked in sorted order so
// issue ordering is deterministic. A key absent from the input is checked
// as Missing, letting Optional and Default sub-schemas react; a sub-result
// of Missing leaves the key out of the built mapping.
func (s *ObjectSchema) Validate(value any) Result {
	if result, done := s.mods.apply(value); done {
		return result
	}

	m, isMap := asMapping(value)
	if !isMap {
		return reject(Issue{
			Message:  fmt.Sprintf("expected object, received %s", typeName(value)),
			Received: value,
			Expected: "object",
		})
	}

	keys := make([]string, 0, len(s.shape))
	for key := range s.shape {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var issues Issues
	validated := make(map[string]any, len(s.shape))
	for _, key := range keys {
		fieldValue, exists := m[key]
		if !exists {
			fieldValue = Missing
		}

		result := s.shape[key].Validate(fieldValue)
		if !result.Valid {
			issues = append(issues, result.Issues.qualify(key)...)
			continue
		}
		if IsMissing(result.Value) {
			continue
		}
		validated[key] = result.Value
	}

	if len(issues) > 0 {
		return reject(issues...)
	}
	return accept(s.mods.finish(validated))
}

// Parse implements Schema.
func (s *ObjectSchema) Parse(value any) (any, error) {
	return parseSchema(s, value)
}

// SafeParse implements Schema.
func (s *ObjectSchema) SafeParse(value any) Result {
	return s.Validate(value)
}

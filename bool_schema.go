package dotmap

import "fmt"

///////////////////////////////////////////////////////////////////////////////
// Bool Schema
///////////////////////////////////////////////////////////////////////////////

// BoolSchema validates boolean values. There are no constraints beyond the
// type check.
type BoolSchema struct {
	mods modifiers
}

// Bool returns a schema accepting boolean values.
func Bool() *BoolSchema {
	return &BoolSchema{}
}

// Optional accepts an absent value as-is.
func (s BoolSchema) Optional() *BoolSchema {
	s.mods.optional = true
	return &s
}

// Nullable accepts an explicit null as-is.
func (s BoolSchema) Nullable() *BoolSchema {
	s.mods.nullable = true
	return &s
}

// Default substitutes v for an absent or null value.
func (s BoolSchema) Default(v any) *BoolSchema {
	s.mods.defaultSet = true
	s.mods.defaultVal = v
	return &s
}

// Transform rewrites the validated value on success.
func (s BoolSchema) Transform(fn TransformFunc) *BoolSchema {
	s.mods.transform = fn
	return &s
}

// Validate implements Schema.
func (s *BoolSchema) Validate(value any) Result {
	if result, done := s.mods.apply(value); done {
		return result
	}

	b, isBool := value.(bool)
	if !isBool {
		return reject(Issue{
			Message:  fmt.Sprintf("expected boolean, received %s", typeName(value)),
			Received: value,
			Expected: "boolean",
		})
	}

	return accept(s.mods.finish(b))
}

// Parse implements Schema.
func (s *BoolSchema) Parse(value any) (any, error) {
	return parseSchema(s, value)
}

// SafeParse implements Schema.
func (s *BoolSchema) SafeParse(value any) Result {
	return s.Validate(value)
}

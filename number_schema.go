package dotmap

import (
	"fmt"
	"math"
)

///////////////////////////////////////////////////////////////////////////////
// Number Schema
///////////////////////////////////////////////////////////////////////////////

// NumberSchema validates numeric values. Any Go numeric kind is accepted
// and compared as float64; NaN always fails the type check. Constraint
// violations accumulate the same way StringSchema's do.
type NumberSchema struct {
	mods     modifiers
	min      *float64
	max      *float64
	integer  bool
	positive bool
}

// Number returns a schema accepting numeric values.
func Number() *NumberSchema {
	return &NumberSchema{}
}

// Min requires the value to be at least n.
func (s NumberSchema) Min(n float64) *NumberSchema {
	s.min = &n
	return &s
}

// Max requires the value to be at most n.
func (s NumberSchema) Max(n float64) *NumberSchema {
	s.max = &n
	return &s
}

// Int requires the value to have no fractional part.
func (s NumberSchema) Int() *NumberSchema {
	s.integer = true
	return &s
}

// Positive requires the value to be strictly greater than zero.
func (s NumberSchema) Positive() *NumberSchema {
	s.positive = true
	return &s
}

// Optional accepts an absent value as-is.
func (s NumberSchema) Optional() *NumberSchema {
	s.mods.optional = true
	return &s
}

// Nullable accepts an explicit null as-is.
func (s NumberSchema) Nullable() *NumberSchema {
	s.mods.nullable = true
	return &s
}

// Default substitutes v for an absent or null value.
func (s NumberSchema) Default(v any) *NumberSchema {
	s.mods.defaultSet = true
	s.mods.defaultVal = v
	return &s
}

// Transform rewrites the validated value on success.
func (s NumberSchema) Transform(fn TransformFunc) *NumberSchema {
	s.mods.transform = fn
	return &s
}

// Validate implements Schema. The validated value keeps its original Go
// type; constraints compare through float64.
func (s *NumberSchema) Validate(value any) Result {
	if result, done := s.mods.apply(value); done {
		return result
	}

	num, isNumber := toFloat(value)
	if !isNumber || math.IsNaN(num) {
		return reject(Issue{
			Message:  fmt.Sprintf("expected number, received %s", typeName(value)),
			Received: value,
			Expected: "number",
		})
	}

	var issues Issues
	if s.min != nil && num < *s.min {
		issues = append(issues, Issue{
			Message:  fmt.Sprintf("must be at least %v", *s.min),
			Received: value,
			Expected: fmt.Sprintf(">= %v", *s.min),
		})
	}
	if s.max != nil && num > *s.max {
		issues = append(issues, Issue{
			Message:  fmt.Sprintf("must be at most %v", *s.max),
			Received: value,
			Expected: fmt.Sprintf("<= %v", *s.max),
		})
	}
	if s.integer && num != math.Trunc(num) {
		issues = append(issues, Issue{
			Message:  "must be an integer",
			Received: value,
			Expected: "integer",
		})
	}
	if s.positive && num <= 0 {
		issues = append(issues, Issue{
			Message:  "must be positive",
			Received: value,
			Expected: "> 0",
		})
	}

	if len(issues) > 0 {
		return reject(issues...)
	}
	return accept(s.mods.finish(value))
}

// Parse implements Schema.
func (s *NumberSchema) Parse(value any) (any, error) {
	return parseSchema(s, value)
}

// SafeParse implements Schema.
func (s *NumberSchema) SafeParse(value any) Result {
	return s.Validate(value)
}

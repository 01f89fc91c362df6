package dotmap

import (
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Missing Sentinel
///////////////////////////////////////////////////////////////////////////////

// Missing marks a value that was absent entirely, as opposed to an explicit
// null. The accessor reports absence through its boolean return; the schema
// engine receives Missing instead so Optional and Default can react to it.
var Missing = missingValue{}

type missingValue struct{}

func (missingValue) String() string { return "<missing>" }

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missingValue)
	return ok
}

///////////////////////////////////////////////////////////////////////////////
// Issues
///////////////////////////////////////////////////////////////////////////////

// Issue is a single validation failure, located by a dot-path relative to
// the validation root: "" at the root, key names for shape fields, and
// sequence indices rendered as [i].
type Issue struct {
	Path     string // location relative to the validated value
	Message  string // human-readable description of the violation
	Received any    // the raw value that failed
	Expected string // optional description of the violated constraint
}

// Issues is an ordered collection of validation failures. It implements
// error by joining every path-qualified message, so a strict Parse surfaces
// the full set of violations in one message.
type Issues []Issue

// Error implements the error interface.
func (is Issues) Error() string {
	if len(is) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(is))
	for _, issue := range is {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// qualify re-roots every issue under prefix, the way a containing shape key
// or sequence index sees it.
func (is Issues) qualify(prefix string) Issues {
	qualified := make(Issues, len(is))
	for i, issue := range is {
		if issue.Path == "" {
			issue.Path = prefix
		} else {
			issue.Path = prefix + PathDelimiter + issue.Path
		}
		qualified[i] = issue
	}
	return qualified
}

///////////////////////////////////////////////////////////////////////////////
// Result
///////////////////////////////////////////////////////////////////////////////

// Result is the outcome of a validation. Either Valid is true and Value
// holds the validated (possibly transformed or defaulted) value, or Valid
// is false and Issues is non-empty.
type Result struct {
	Valid  bool
	Value  any
	Issues Issues
}

func accept(value any) Result {
	return Result{Valid: true, Value: value}
}

func reject(issues ...Issue) Result {
	return Result{Issues: issues}
}

///////////////////////////////////////////////////////////////////////////////
// Schema Interface
///////////////////////////////////////////////////////////////////////////////

// Schema is the capability shared by every validator variant.
//
// Schemas are immutable: modifier methods on the variants copy the receiver
// and return the copy, so a configured schema can be shared freely and used
// as the base of independently modified variants.
type Schema interface {
	// Validate checks value and returns a structured Result. It never
	// fails fatally.
	Validate(value any) Result

	// Parse checks value and returns the validated value, or an Issues
	// error joining every accumulated failure.
	Parse(value any) (any, error)

	// SafeParse is Validate under its conventional name.
	SafeParse(value any) Result
}

// TransformFunc rewrites a successfully validated value. Transforms never
// run on failed validations.
type TransformFunc func(value any) any

// parseSchema backs the Parse method of every variant.
func parseSchema(s Schema, value any) (any, error) {
	result := s.Validate(value)
	if !result.Valid {
		return nil, result.Issues
	}
	return result.Value, nil
}

///////////////////////////////////////////////////////////////////////////////
// Shared Modifier State
///////////////////////////////////////////////////////////////////////////////

// modifiers is the modifier state shared by every schema variant.
type modifiers struct {
	optional   bool
	nullable   bool
	defaultSet bool
	defaultVal any
	transform  TransformFunc
}

// apply runs the shared short-circuits in their fixed priority order:
// optional beats nullable beats default beats the variant check. When the
// second return is true the result stands on its own and the variant check
// must not run.
func (m modifiers) apply(value any) (Result, bool) {
	if IsMissing(value) {
		if m.optional {
			return accept(Missing), true
		}
		if m.defaultSet {
			return accept(m.finish(m.defaultVal)), true
		}
		return Result{}, false
	}

	if value == nil {
		if m.nullable {
			return accept(nil), true
		}
		if m.defaultSet {
			return accept(m.finish(m.defaultVal)), true
		}
	}

	return Result{}, false
}

// finish applies the configured transform to a validated value.
func (m modifiers) finish(value any) any {
	if m.transform == nil {
		return value
	}
	return m.transform(value)
}

///////////////////////////////////////////////////////////////////////////////
// Type Naming
///////////////////////////////////////////////////////////////////////////////

// typeName renders the received value's type for error messages.
func typeName(v any) string {
	if IsMissing(v) {
		return "missing"
	}
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if _, ok := toFloat(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

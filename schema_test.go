package dotmap

import (
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSchema(t *testing.T) {
	t.Run("accepts strings", func(t *testing.T) {
		result := String().Validate("hello")
		require.True(t, result.Valid)
		assert.Equal(t, "hello", result.Value)
		assert.Empty(t, result.Issues)
	})

	t.Run("type failure short-circuits constraints", func(t *testing.T) {
		result := String().Min(5).Email().Validate(42)
		require.False(t, result.Valid)
		require.Len(t, result.Issues, 1)
		assert.Contains(t, result.Issues[0].Message, "expected string")
		assert.Equal(t, 42, result.Issues[0].Received)
	})

	t.Run("constraint violations accumulate", func(t *testing.T) {
		result := String().Min(5).Email().Validate("ab")
		require.False(t, result.Valid)
		require.Len(t, result.Issues, 2)
		assert.Contains(t, result.Issues[0].Message, "at least 5")
		assert.Contains(t, result.Issues[1].Message, "email")
	})

	t.Run("length bounds", func(t *testing.T) {
		assert.True(t, String().Min(2).Max(4).Validate("abc").Valid)
		assert.False(t, String().Min(2).Validate("a").Valid)
		assert.False(t, String().Max(2).Validate("abc").Valid)
	})

	t.Run("regex", func(t *testing.T) {
		re := regexp.MustCompile(`^[a-z]+$`)
		assert.True(t, String().Regex(re).Validate("abc").Valid)
		assert.False(t, String().Regex(re).Validate("ABC").Valid)
	})

	t.Run("email", func(t *testing.T) {
		assert.True(t, String().Email().Validate("john@example.com").Valid)
		assert.False(t, String().Email().Validate("not-an-email").Valid)
		assert.False(t, String().Email().Validate("john@nodot").Valid)
	})

	t.Run("url", func(t *testing.T) {
		assert.True(t, String().URL().Validate("https://example.com/x").Valid)
		assert.False(t, String().URL().Validate("example.com").Valid)
		assert.False(t, String().URL().Validate("not a url").Valid)
	})

	t.Run("uuid", func(t *testing.T) {
		assert.True(t, String().UUID().Validate("123e4567-e89b-12d3-a456-426614174000").Valid)
		assert.False(t, String().UUID().Validate("123e4567").Valid)
	})

	t.Run("missing without modifiers fails the type check", func(t *testing.T) {
		result := String().Validate(Missing)
		require.False(t, result.Valid)
		assert.Contains(t, result.Issues[0].Message, "missing")
	})
}

func TestNumberSchema(t *testing.T) {
	t.Run("accepts any numeric kind", func(t *testing.T) {
		assert.True(t, Number().Validate(42).Valid)
		assert.True(t, Number().Validate(int64(42)).Valid)
		assert.True(t, Number().Validate(4.2).Valid)
		assert.True(t, Number().Validate(uint8(4)).Valid)
	})

	t.Run("rejects non-numbers and NaN", func(t *testing.T) {
		assert.False(t, Number().Validate("42").Valid)
		assert.False(t, Number().Validate(nil).Valid)

		result := Number().Validate(math.NaN())
		require.False(t, result.Valid)
		assert.Contains(t, result.Issues[0].Message, "expected number")
	})

	t.Run("min violation reports exactly one issue", func(t *testing.T) {
		result := Number().Min(0).Max(10).Validate(-5)
		require.False(t, result.Valid)
		require.Len(t, result.Issues, 1)
		assert.Contains(t, result.Issues[0].Message, "at least 0")
	})

	t.Run("violations accumulate", func(t *testing.T) {
		result := Number().Min(0).Int().Positive().Validate(-1.5)
		require.False(t, result.Valid)
		assert.Len(t, result.Issues, 3)
	})

	t.Run("int and positive", func(t *testing.T) {
		assert.True(t, Number().Int().Validate(3.0).Valid)
		assert.False(t, Number().Int().Validate(3.5).Valid)
		assert.True(t, Number().Positive().Validate(0.1).Valid)
		assert.False(t, Number().Positive().Validate(0).Valid)
	})

	t.Run("validated value keeps its type", func(t *testing.T) {
		result := Number().Min(0).Validate(7)
		require.True(t, result.Valid)
		assert.Equal(t, 7, result.Value)
	})
}

func TestBoolSchema(t *testing.T) {
	assert.True(t, Bool().Validate(true).Valid)
	assert.True(t, Bool().Validate(false).Valid)

	result := Bool().Validate("true")
	require.False(t, result.Valid)
	assert.Contains(t, result.Issues[0].Message, "expected boolean")
}

func TestModifiers(t *testing.T) {
	t.Run("optional accepts missing", func(t *testing.T) {
		result := String().Optional().Validate(Missing)
		require.True(t, result.Valid)
		assert.True(t, IsMissing(result.Value))
	})

	t.Run("optional does not accept null", func(t *testing.T) {
		assert.False(t, String().Optional().Validate(nil).Valid)
	})

	t.Run("nullable accepts null", func(t *testing.T) {
		result := String().Nullable().Validate(nil)
		require.True(t, result.Valid)
		assert.Nil(t, result.Value)
	})

	t.Run("nullable does not accept missing", func(t *testing.T) {
		assert.False(t, String().Nullable().Validate(Missing).Valid)
	})

	t.Run("default covers missing and null", func(t *testing.T) {
		schema := String().Default("fallback")

		result := schema.Validate(Missing)
		require.True(t, result.Valid)
		assert.Equal(t, "fallback", result.Value)

		result = schema.Validate(nil)
		require.True(t, result.Valid)
		assert.Equal(t, "fallback", result.Value)
	})

	t.Run("optional wins over default for missing", func(t *testing.T) {
		result := String().Optional().Default("fallback").Validate(Missing)
		require.True(t, result.Valid)
		assert.True(t, IsMissing(result.Value))
	})

	t.Run("nullable wins over default for null", func(t *testing.T) {
		result := String().Nullable().Default("fallback").Validate(nil)
		require.True(t, result.Valid)
		assert.Nil(t, result.Value)
	})

	t.Run("transform runs on success", func(t *testing.T) {
		upper := func(v any) any { return strings.ToUpper(v.(string)) }
		result := String().Transform(upper).Validate("abc")
		require.True(t, result.Valid)
		assert.Equal(t, "ABC", result.Value)
	})

	t.Run("transform runs on the default", func(t *testing.T) {
		upper := func(v any) any { return strings.ToUpper(v.(string)) }
		result := String().Default("abc").Transform(upper).Validate(nil)
		require.True(t, result.Valid)
		assert.Equal(t, "ABC", result.Value)
	})

	t.Run("transform never runs on failure", func(t *testing.T) {
		called := false
		schema := String().Min(5).Transform(func(v any) any {
			called = true
			return v
		})
		result := schema.Validate("ab")
		require.False(t, result.Valid)
		assert.False(t, called)
	})

	t.Run("modifiers copy, never mutate", func(t *testing.T) {
		base := String().Min(3)
		optional := base.Optional()
		defaulted := base.Default("dflt")

		// The base stays strict.
		assert.False(t, base.Validate(Missing).Valid)

		// Each variant carries only its own modifier.
		assert.True(t, optional.Validate(Missing).Valid)
		assert.Equal(t, "dflt", defaulted.Validate(Missing).Value)
		assert.False(t, optional.Validate(nil).Valid)

		// The shared constraint survives in every variant.
		assert.False(t, optional.Validate("ab").Valid)
		assert.False(t, defaulted.Validate("ab").Valid)
	})
}

func TestParseAndSafeParse(t *testing.T) {
	t.Run("Parse returns the validated value", func(t *testing.T) {
		value, err := Number().Min(0).Parse(5)
		require.NoError(t, err)
		assert.Equal(t, 5, value)
	})

	t.Run("Parse joins every issue into one error", func(t *testing.T) {
		_, err := Object(map[string]Schema{
			"name": String().Min(1),
			"age":  Number().Min(0),
		}).Parse(map[string]any{"name": "", "age": -1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
		assert.Contains(t, err.Error(), "name: ")
		assert.Contains(t, err.Error(), "age: ")

		var issues Issues
		require.ErrorAs(t, err, &issues)
		assert.Len(t, issues, 2)
	})

	t.Run("SafeParse never errors", func(t *testing.T) {
		result := String().SafeParse(42)
		assert.False(t, result.Valid)
		assert.NotEmpty(t, result.Issues)
	})
}

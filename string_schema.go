package dotmap

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// String Schema
///////////////////////////////////////////////////////////////////////////////

// StringSchema validates string values.
//
// Every configured constraint is evaluated: a value that is both too short
// and not an email reports both violations in one Result. Only the base
// type check short-circuits the rest.
type StringSchema struct {
	mods      modifiers
	minLen    *int
	maxLen    *int
	pattern   *regexp.Regexp
	email     bool
	urlCheck  bool
	uuidCheck bool
}

// String returns a schema accepting string values.
func String() *StringSchema {
	return &StringSchema{}
}

// Min requires at least n bytes.
func (s StringSchema) Min(n int) *StringSchema {
	s.minLen = &n
	return &s
}

// Max allows at most n bytes.
func (s StringSchema) Max(n int) *StringSchema {
	s.maxLen = &n
	return &s
}

// Regex requires the value to match re.
func (s StringSchema) Regex(re *regexp.Regexp) *StringSchema {
	s.pattern = re
	return &s
}

// Email requires the value to parse as a single address with a non-empty
// local part and a dotted domain.
func (s StringSchema) Email() *StringSchema {
	s.email = true
	return &s
}

// URL requires the value to parse as a URL carrying a scheme and a host.
func (s StringSchema) URL() *StringSchema {
	s.urlCheck = true
	return &s
}

// UUID requires the value to parse as a UUID in any of the formats
// uuid.Parse accepts.
func (s StringSchema) UUID() *StringSchema {
	s.uuidCheck = true
	return &s
}

// Optional accepts an absent value as-is.
func (s StringSchema) Optional() *StringSchema {
	s.mods.optional = true
	return &s
}

// Nullable accepts an explicit null as-is.
func (s StringSchema) Nullable() *StringSchema {
	s.mods.nullable = true
	return &s
}

// Default substitutes v for an absent or null value.
func (s StringSchema) Default(v any) *StringSchema {
	s.mods.defaultSet = true
	s.mods.defaultVal = v
	return &s
}

// Transform rewrites the validated value on success.
func (s StringSchema) Transform(fn TransformFunc) *StringSchema {
	s.mods.transform = fn
	return &s
}

// Validate implements Schema.
func (s *StringSchema) Validate(value any) Result {
	if result, done := s.mods.apply(value); done {
		return result
	}

	str, isString := value.(string)
	if !isString {
		return reject(Issue{
			Message:  fmt.Sprintf("expected string, received %s", typeName(value)),
			Received: value,
			Expected: "string",
		})
	}

	var issues Issues
	if s.minLen != nil && len(str) < *s.minLen {
		issues = append(issues, Issue{
			Message:  fmt.Sprintf("must be at least %d characters", *s.minLen),
			Received: value,
			Expected: fmt.Sprintf("length >= %d", *s.minLen),
		})
	}
	if s.maxLen != nil && len(str) > *s.maxLen {
		issues = append(issues, Issue{
			Message:  fmt.Sprintf("must be at most %d characters", *s.maxLen),
			Received: value,
			Expected: fmt.Sprintf("length <= %d", *s.maxLen),
		})
	}
	if s.pattern != nil && !s.pattern.MatchString(str) {
		issues = append(issues, Issue{
			Message:  fmt.Sprintf("must match pattern %s", s.pattern.String()),
			Received: value,
			Expected: s.pattern.String(),
		})
	}
	if s.email && !validEmail(str) {
		issues = append(issues, Issue{
			Message:  "must be a valid email address",
			Received: value,
			Expected: "email",
		})
	}
	if s.urlCheck && !validURL(str) {
		issues = append(issues, Issue{
			Message:  "must be a valid URL",
			Received: value,
			Expected: "url",
		})
	}
	if s.uuidCheck {
		if _, err := uuid.Parse(str); err != nil {
			issues = append(issues, Issue{
				Message:  "must be a valid UUID",
				Received: value,
				Expected: "uuid",
			})
		}
	}

	if len(issues) > 0 {
		return reject(issues...)
	}
	return accept(s.mods.finish(str))
}

// Parse implements Schema.
func (s *StringSchema) Parse(value any) (any, error) {
	return parseSchema(s, value)
}

// SafeParse implements Schema.
func (s *StringSchema) SafeParse(value any) Result {
	return s.Validate(value)
}

// validEmail parses with the mail package first, then narrows to typical
// web use: exactly one @, a non-empty local part, a dotted domain.
func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}
	return parts[0] != "" && strings.Contains(parts[1], ".")
}

// validURL stops at scheme and host; it does not check reachability.
func validURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

package validate

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/pathkit/slurp/pattern"
)

// each lifts a per-part predicate over a captured value: a scalar part
// must pass directly, every element of a list must pass. The empty list
// passes vacuously (a slurpy-optional segment that consumed nothing).
func each(f func(string) bool) pattern.Validator {
	return pattern.ValidatorFunc(func(v pattern.Value) bool {
		if !v.IsList() {
			return f(v.String())
		}
		for _, part := range v.List() {
			if !f(part) {
				return false
			}
		}
		return true
	})
}

// regexpValidator anchors and compiles the expression, with an optional
// maximum part length checked before the regexp.
func regexpValidator(expr string, maxLen int) pattern.Validator {
	re := regexp.MustCompile(fmt.Sprintf("^%s$", expr))
	return each(func(s string) bool {
		if maxLen > 0 && len(s) > maxLen {
			return false
		}
		return re.MatchString(s)
	})
}

// named maps validator names to their pre-built validators.
// Route files reference validators by these names.
var named = map[string]pattern.Validator{
	"int":      regexpValidator(`[0-9]+`, 0),
	"float":    regexpValidator(`[0-9]*\.?[0-9]+`, 0),
	"slug":     regexpValidator(`[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`, 0),
	"alpha":    regexpValidator(`[a-zA-Z]+`, 0),
	"alphanum": regexpValidator(`[a-zA-Z0-9]+`, 0),
	"date":     regexpValidator(`[0-9]{4}-[0-9]{2}-[0-9]{2}`, 0),
	"hex":      regexpValidator(`[0-9a-fA-F]+`, 0),
	// RFC 1035/1123: labels 1-63 chars, total up to 253 chars.
	"domain": regexpValidator(`(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`, 253),
	"uuid": each(func(s string) bool {
		// Canonical RFC 4122 form only; uuid.Validate also accepts urn:,
		// braced and bare-hex forms.
		return len(s) == 36 && uuid.Validate(s) == nil
	}),
}

// Lookup returns the validator registered under name, used by route
// files to resolve validator references.
func Lookup(name string) (pattern.Validator, bool) {
	v, ok := named[name]
	return v, ok
}

// Int accepts unsigned integers (e.g. 42).
func Int() pattern.Validator { return named["int"] }

// Float accepts decimal numbers (e.g. 3.14, 42, .5).
func Float() pattern.Validator { return named["float"] }

// Slug accepts URL-safe slugs (e.g. my-post-title).
func Slug() pattern.Validator { return named["slug"] }

// Alpha accepts alphabetic parts (e.g. hello).
func Alpha() pattern.Validator { return named["alpha"] }

// Alphanum accepts alphanumeric parts (e.g. abc123).
func Alphanum() pattern.Validator { return named["alphanum"] }

// Date accepts ISO 8601 dates (e.g. 2024-01-15).
func Date() pattern.Validator { return named["date"] }

// Hex accepts hexadecimal strings (e.g. deadBEEF).
func Hex() pattern.Validator { return named["hex"] }

// Domain accepts domain names per RFC 1123 (e.g. sub.example.co.uk).
func Domain() pattern.Validator { return named["domain"] }

// UUID accepts RFC 4122 UUIDs in canonical form
// (e.g. 550e8400-e29b-41d4-a716-446655440000).
func UUID() pattern.Validator { return named["uuid"] }

// Enum accepts only the given values.
func Enum(values ...string) pattern.Validator {
	allowed := make(map[string]bool, len(values))
	for _, v := range values {
		allowed[v] = true
	}
	return each(func(s string) bool { return allowed[s] })
}

// Regexp returns a validator for an anchored regular expression. The
// compiled expression is cached, so building many routes from the same
// handful of expressions compiles each once.
func Regexp(expr string) (pattern.Validator, error) {
	re, err := compileRegexp(fmt.Sprintf("^%s$", expr))
	if err != nil {
		return nil, fmt.Errorf("validate: invalid expression %q: %w", expr, err)
	}
	return each(re.MatchString), nil
}

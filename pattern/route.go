package pattern

import "fmt"

// Validator accepts or rejects a captured value for one route variable.
// Implementations receive the value exactly as captured: a scalar for
// plain variables, a list for slurpy variables. A rejection turns the
// whole match attempt into a no-match, never into an error.
type Validator interface {
	Check(Value) bool
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(Value) bool

// Check calls f(v).
func (f ValidatorFunc) Check(v Value) bool { return f(v) }

// Route holds the match metadata for one route: ordered segment
// specifiers, default variable values and per-variable validators.
// A Route is read-only after construction and safe for concurrent use
// by any number of simultaneous Match calls.
type Route struct {
	segments    []string
	defaults    map[string]Value
	validations map[string]Validator
	varsN       []string
	required    int
	slurpy      bool
	err         error
}

// NewRoute builds a Route from ordered segment specifiers.
//
// Invalid patterns record an error on the route: a slurpy segment not in
// final position, a variable without a name, a duplicated variable name,
// or a required segment following an optional one. The error is surfaced
// by GetError, and a route with an error never matches.
func NewRoute(segments ...string) *Route {
	r := &Route{segments: append([]string(nil), segments...)}

	seen := make(map[string]bool, len(segments))
	optionalSeen := false

	for i, seg := range r.segments {
		if IsSlurpy(seg) && i != len(r.segments)-1 {
			r.err = fmt.Errorf("pattern: slurpy segment %q must be the final segment", seg)
			return r
		}

		if IsOptional(seg) {
			optionalSeen = true
		} else {
			if optionalSeen {
				r.err = fmt.Errorf("pattern: required segment %q follows an optional segment", seg)
				return r
			}
			r.required++
		}

		if IsSlurpy(seg) {
			r.slurpy = true
		}

		if IsVariable(seg) {
			name, _ := VarName(seg)
			if name == "" {
				r.err = fmt.Errorf("pattern: missing variable name in segment %q", seg)
				return r
			}
			if seen[name] {
				r.err = fmt.Errorf("pattern: duplicated route variable %q", name)
				return r
			}
			seen[name] = true
			r.varsN = append(r.varsN, name)
		}
	}

	return r
}

// Defaults sets default variable values, copied into the capture mapping
// of every match attempt before any segment is consumed. Values captured
// from the path overwrite their defaults. Default names need not appear
// in the pattern; fixed route metadata such as a controller name is a
// common use. The given values are copied in, and list values are
// deep-copied out per attempt, so neither the caller nor a match result
// ever shares state with the route.
//
// Calling Defaults replaces any previously set defaults.
func (r *Route) Defaults(defaults map[string]Value) *Route {
	if r.err != nil {
		return r
	}
	r.defaults = make(map[string]Value, len(defaults))
	for name, v := range defaults {
		r.defaults[name] = v.clone()
	}
	return r
}

// Validate registers a validator for a named route variable. Returns an
// error state (see GetError) if the pattern has no variable with that
// name. Registering a second validator for the same name replaces the
// first.
func (r *Route) Validate(name string, v Validator) *Route {
	if r.err != nil {
		return r
	}
	if !r.hasVar(name) {
		r.err = fmt.Errorf("pattern: no route variable %q to validate", name)
		return r
	}
	if r.validations == nil {
		r.validations = make(map[string]Validator)
	}
	r.validations[name] = v
	return r
}

// GetError returns any error recorded during route construction.
func (r *Route) GetError() error {
	return r.err
}

// Pattern returns a copy of the route's ordered segment specifiers.
func (r *Route) Pattern() []string {
	return append([]string(nil), r.segments...)
}

// GetVarNames returns the route's variable names in pattern order.
func (r *Route) GetVarNames() []string {
	return append([]string(nil), r.varsN...)
}

// HasSlurpy reports whether the route's final segment is slurpy.
func (r *Route) HasSlurpy() bool {
	return r.slurpy
}

// MinParts returns the minimum number of path parts the route can match:
// the count of non-optional segments.
func (r *Route) MinParts() int {
	return r.required
}

// MaxParts returns the maximum number of path parts the route can match.
// The second return is false for slurpy routes, which have no upper
// bound.
func (r *Route) MaxParts() (int, bool) {
	if r.slurpy {
		return 0, false
	}
	return len(r.segments), true
}

// hasVar reports whether name is a variable of the pattern.
func (r *Route) hasVar(name string) bool {
	for _, n := range r.varsN {
		if n == name {
			return true
		}
	}
	return false
}

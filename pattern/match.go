package pattern

import "fmt"

// Match holds the result of a successful match attempt. A Match is
// freshly allocated per attempt and owned by the caller; it shares no
// state with the route or with other results.
type Match struct {
	// Route is the matched route.
	Route *Route

	// Vars maps variable names to captured values. Defaults fill in
	// variables (and other route metadata) the path did not supply;
	// slurpy variables are always present as list values, empty when
	// they consumed nothing.
	Vars map[string]Value

	// Leftover holds path parts not consumed by the pattern. With the
	// length pre-checks in place every walk consumes the whole path, so
	// Leftover is empty on every match this package can produce.
	Leftover []string
}

// Match matches the route pattern against ordered path parts in a single
// deterministic left-to-right pass with no backtracking; a slurpy
// segment greedily captures everything that remains. It returns the
// match and true on success, or nil and false when the path does not
// match. The input slice is never modified.
func (r *Route) Match(parts []string) (*Match, bool) {
	if r.err != nil {
		return nil, false
	}
	if len(parts) < r.required {
		return nil, false
	}
	if !r.slurpy && len(parts) > len(r.segments) {
		return nil, false
	}

	vars := r.seedVars()
	remaining := append([]string(nil), parts...)

	for _, seg := range r.segments {
		if len(remaining) == 0 {
			if !IsOptional(seg) {
				// NewRoute rejects required-after-optional patterns and the
				// length pre-check guarantees enough parts for the required
				// ones, so running out of path here is a logic bug, not an
				// unmatched input.
				panic(fmt.Sprintf("pattern: path exhausted at required segment %q after length pre-check (pattern %v, path %v)",
					seg, r.segments, parts))
			}
			if IsSlurpy(seg) {
				name, _ := VarName(seg)
				if !r.store(vars, name, ListValue()) {
					return nil, false
				}
			}
			continue
		}

		if IsSlurpy(seg) {
			name, _ := VarName(seg)
			captured := ListValue(remaining...)
			remaining = nil
			if !r.store(vars, name, captured) {
				return nil, false
			}
			continue
		}

		part := remaining[0]
		remaining = remaining[1:]

		if !IsVariable(seg) {
			if part != seg {
				return nil, false
			}
			continue
		}

		name, _ := VarName(seg)
		if !r.store(vars, name, StringValue(part)) {
			return nil, false
		}
	}

	return &Match{Route: r, Vars: vars, Leftover: remaining}, true
}

// seedVars builds the initial capture mapping from the route defaults,
// deep-copying list values so no result ever aliases the stored
// defaults.
func (r *Route) seedVars() map[string]Value {
	vars := make(map[string]Value, len(r.defaults)+len(r.varsN))
	for name, v := range r.defaults {
		vars[name] = v.clone()
	}
	return vars
}

// store runs the variable's validator, if one is registered, and records
// the captured value. It reports false when the validator rejects the
// value.
func (r *Route) store(vars map[string]Value, name string, v Value) bool {
	if check, ok := r.validations[name]; ok && !check.Check(v) {
		return false
	}
	vars[name] = v
	return true
}

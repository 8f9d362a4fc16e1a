// Package pattern matches URL-style path patterns with slurpy segment
// semantics against ordered path parts, producing named captures.
//
// A pattern is an ordered list of segment specifiers. Each specifier is
// either literal text, matched verbatim and case-sensitively, or a
// variable that captures path parts:
//
//	users      - literal, matches exactly "users"
//	:name      - required variable, captures exactly one part
//	?:name     - optional variable, captures one part if present
//	+:name     - slurpy variable, captures one or more remaining parts
//	*:name     - slurpy variable, captures zero or more remaining parts
//
// A slurpy segment must be the final segment of its pattern; it greedily
// captures every remaining path part as an ordered list. Patterns with a
// slurpy segment in any other position, duplicated variable names, or a
// required segment after an optional one are rejected at construction.
//
// # Matching
//
// Build a route and match it against pre-split path parts:
//
//	r := pattern.NewRoute("blog", ":year", "?:month")
//	m, ok := r.Match([]string{"blog", "2024", "06"})
//	if ok {
//	    year := m.Vars["year"].String()   // "2024"
//	    month := m.Vars["month"].String() // "06"
//	}
//
// Matching is a pure function over the route and the input: each attempt
// allocates its own capture mapping, so a single route can be matched
// from any number of goroutines concurrently. A failed attempt reports
// false; it is never an error. This package matches one pattern against
// one path; selecting a candidate route among many is the caller's
// concern.
//
// # Slurpy Captures
//
//	r := pattern.NewRoute("attachment", "*:file")
//	m, _ := r.Match([]string{"attachment", "dir", "a.txt"})
//	m.Vars["file"].List() // ["dir", "a.txt"]
//
// Slurpy variables are always present in the result as list values, even
// when they consumed nothing:
//
//	m, _ = r.Match([]string{"attachment"})
//	m.Vars["file"].List() // []
//
// A "+:" segment with nothing left to consume is a no-match.
//
// # Defaults
//
// Routes can carry default values, copied into the capture mapping of
// every attempt before matching begins. Captured values overwrite their
// defaults; defaults for names not in the pattern pass through untouched,
// which is the usual way to attach fixed metadata to a route:
//
//	r := pattern.NewRoute("blog", "?:page").Defaults(map[string]pattern.Value{
//	    "controller": pattern.StringValue("blog"),
//	    "page":       pattern.StringValue("1"),
//	})
//
// List defaults are deep-copied per attempt, so mutating a match result
// never changes the route.
//
// # Validation
//
// A validator registered for a variable name accepts or rejects the
// captured value. Rejection makes the whole attempt a no-match:
//
//	r := pattern.NewRoute("posts", ":id").
//	    Validate("id", pattern.ValidatorFunc(func(v pattern.Value) bool {
//	        _, err := strconv.Atoi(v.String())
//	        return err == nil
//	    }))
//
// Slurpy variables hand their validator the captured list. The validate
// package provides common validators by name.
//
// # Compiled Matching
//
// Some routing frameworks compile patterns into generated matching code.
// This package is deliberately interpretive: Compile always returns an
// error wrapping ErrCompileUnsupported, and SupportsCompilation reports
// false for slurpy routes so frameworks can pick the interpretive path
// at registration time instead of discovering the limitation per
// request.
package pattern

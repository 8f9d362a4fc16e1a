package pattern

import (
	"errors"
	"fmt"
)

// ErrCompileUnsupported is returned by Compile. This package implements
// only the interpretive matcher and never produces compiled matching
// code.
var ErrCompileUnsupported = errors.New("pattern: compiled matching is not supported")

// SupportsCompilation reports whether the route is eligible for a
// compiled matching fast path. Slurpy routes never are. Frameworks that
// generate matchers for plain routes should check this at registration
// time and keep slurpy routes on the interpretive matcher.
func (r *Route) SupportsCompilation() bool {
	return r.err == nil && !r.slurpy
}

// Compile is the hook for a surrounding router's compiled-matcher
// extension point. It always fails: slurpy segments cannot be expressed
// by the compiled fast path at all, and this package provides no code
// generation for the remaining routes either. Callers must disable
// compiled matching for routes handled by this package and use Match.
func (r *Route) Compile() error {
	if r.err != nil {
		return r.err
	}
	if r.slurpy {
		return fmt.Errorf("%w: route %v has a slurpy segment; disable compiled matching for this route",
			ErrCompileUnsupported, r.segments)
	}
	return fmt.Errorf("%w: use Match", ErrCompileUnsupported)
}

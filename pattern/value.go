package pattern

import "strings"

// Value is one captured route variable value: either a single path part
// or an ordered list of parts captured by a slurpy segment. The zero
// Value is an empty scalar.
type Value struct {
	value []string
	list  bool
}

// StringValue returns a scalar Value holding a single path part.
func StringValue(s string) Value {
	return Value{value: []string{s}}
}

// ListValue returns a list Value holding ordered path parts. Slurpy
// captures are list values even when empty.
func ListValue(parts ...string) Value {
	if parts == nil {
		parts = []string{}
	}
	return Value{value: parts, list: true}
}

// IsList reports whether the value is an ordered list of parts rather
// than a single scalar.
func (v Value) IsList() bool {
	return v.list
}

// String returns the scalar part, or the list parts joined with "/" for
// display.
func (v Value) String() string {
	if len(v.value) == 0 {
		return ""
	}
	if v.list {
		return strings.Join(v.value, "/")
	}
	return v.value[0]
}

// List returns the ordered parts of a list value. The returned slice is
// owned by the value's holder; mutating it never affects a route's
// stored defaults. For scalar values List returns nil.
func (v Value) List() []string {
	if !v.list {
		return nil
	}
	return v.value
}

// clone returns a Value with a freshly allocated backing slice, so the
// copy can be handed out without aliasing the original.
func (v Value) clone() Value {
	if v.value == nil {
		return v
	}
	parts := make([]string, len(v.value))
	copy(parts, v.value)
	return Value{value: parts, list: v.list}
}

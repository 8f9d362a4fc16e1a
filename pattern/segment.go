package pattern

import "strings"

// Segment specifier prefixes. A segment is either literal text or a
// variable introduced by ":" with an optional one-character modifier.
const (
	prefixRequired       = ":"
	prefixOptional       = "?:"
	prefixSlurpyRequired = "+:"
	prefixSlurpyOptional = "*:"
)

// IsVariable reports whether seg is a variable segment specifier:
// a ":" optionally preceded by one of '?', '+' or '*'. Everything else
// is literal text matched verbatim.
func IsVariable(seg string) bool {
	return strings.HasPrefix(seg, prefixRequired) ||
		strings.HasPrefix(seg, prefixOptional) ||
		strings.HasPrefix(seg, prefixSlurpyRequired) ||
		strings.HasPrefix(seg, prefixSlurpyOptional)
}

// IsSlurpy reports whether seg captures a variable number of path parts
// as an ordered list: "+:" captures one or more, "*:" zero or more.
func IsSlurpy(seg string) bool {
	return strings.HasPrefix(seg, prefixSlurpyRequired) ||
		strings.HasPrefix(seg, prefixSlurpyOptional)
}

// IsOptional reports whether seg may be entirely absent from a matching
// path: "?:" and "*:" segments consume nothing when the path runs out.
func IsOptional(seg string) bool {
	return strings.HasPrefix(seg, prefixOptional) ||
		strings.HasPrefix(seg, prefixSlurpyOptional)
}

// VarName returns the variable name of a variable segment specifier and
// true. For literal segments it returns "" and false; callers should
// check IsVariable or the returned bool before using the name.
func VarName(seg string) (string, bool) {
	if !IsVariable(seg) {
		return "", false
	}
	return seg[strings.Index(seg, prefixRequired)+1:], true
}

// HasSlurpy reports whether any segment of the pattern is slurpy.
// Callers use it to decide whether strict-length pre-filtering applies:
// a pattern without a slurpy segment matches only paths of bounded length.
func HasSlurpy(segments []string) bool {
	for _, seg := range segments {
		if IsSlurpy(seg) {
			return true
		}
	}
	return false
}

// Package pathsub subtracts one path from another.
//
// Subtraction removes a leading run of components equal to other from path
// and returns what remains of path. It is not a relative path computation:
// the result never contains .. elements, and subtraction only succeeds when
// other's components line up with path's, component for component.
//
//	pathsub.SubPath("foo/bar", "foo")  // "bar", true
//	pathsub.SubPath("foo/bar", "baz")  // "", false
//
// Path handling is purely lexical, using the [lesiw.io/pathsub/path]
// subpackage. Paths are never cleaned, canonicalized, or resolved against the
// filesystem; callers that want canonical input should prepare it first.
package pathsub

import "lesiw.io/pathsub/path"

// Sub subtracts other from name, in that order.
//
// Sub walks the components of both paths in lock-step. It reports false if
// exactly one of the paths is absolute, or if any pair of components visited
// differ. Once other is exhausted, the remaining components of name form the
// result. Once name is exhausted, the walk stops, even if other has
// components left: subtracting a longer path succeeds with an empty result.
//
// An empty result with ok set is a successful subtraction, distinct from
// failure.
//
// Components are compared by kind and exact text. Only drive letters are
// case-insensitive, and . or .. elements are never interpreted. See
// [path.Components] for how paths are split.
func Sub(name, other string) (Components, bool) {
	if path.IsAbs(name) != path.IsAbs(other) {
		return Components{}, false
	}

	a, b := path.Components(name), path.Components(other)
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return Components{}, false
		}
	}

	return Components{list: a[n:], sep: path.Separator(name)}, true
}

// SubPath subtracts other from name and returns the result as a path.
//
// It is equivalent to calling [Sub] and formatting the result with
// [Components.String]. A successful subtraction leaving nothing behind
// returns "" and true.
func SubPath(name, other string) (string, bool) {
	c, ok := Sub(name, other)
	if !ok {
		return "", false
	}
	return c.String(), true
}

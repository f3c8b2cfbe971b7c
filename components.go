package pathsub

import (
	"iter"
	"slices"

	"lesiw.io/pathsub/path"
)

// Components is an ordered sequence of path components returned by [Sub].
//
// A Components value owns its storage; it never aliases another result.
// The zero value is an empty sequence.
type Components struct {
	list []path.Component
	sep  byte
}

// Len returns the number of components.
func (c Components) Len() int {
	return len(c.list)
}

// All returns an iterator over the components and their positions.
func (c Components) All() iter.Seq2[int, path.Component] {
	return slices.All(c.list)
}

// Slice returns a copy of the components.
func (c Components) Slice() []path.Component {
	return slices.Clone(c.list)
}

// String joins the components into a path, using the separator style of the
// path they were taken from. An empty sequence returns "".
func (c Components) String() string {
	sep := c.sep
	if sep == 0 {
		sep = '/'
	}
	return path.Format(sep, c.list)
}

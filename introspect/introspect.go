package introspect

import (
	"github.com/signadot/nested"
)

// Depth returns the maximum nesting depth of v.  Leaves have depth 0 and
// empty containers depth 1.
func Depth(v any) int {
	depth := 0
	_ = Walk(v, func(p nested.Path, x any) error {
		d := len(p)
		if nested.KindOf(x).IsContainer() {
			d++
		}
		depth = max(depth, d)
		return nil
	})
	return depth
}

// CountLeaves returns the number of leaf values in v.  Empty containers
// hold no leaves; a leaf v counts as one.
func CountLeaves(v any) int {
	n := 0
	_ = Walk(v, func(_ nested.Path, x any) error {
		if !nested.KindOf(x).IsContainer() {
			n++
		}
		return nil
	})
	return n
}

// Paths returns the path to every leaf in v, in walk order.  Empty
// containers contribute no paths and a leaf v yields a single empty path.
func Paths(v any) []nested.Path {
	res := []nested.Path{}
	_ = Walk(v, func(p nested.Path, x any) error {
		if !nested.KindOf(x).IsContainer() {
			res = append(res, p)
		}
		return nil
	})
	return res
}

// Leaves returns the path and value of every leaf in v, in walk order.
func Leaves(v any) []Leaf {
	var res []Leaf
	_ = Walk(v, func(p nested.Path, x any) error {
		if !nested.KindOf(x).IsContainer() {
			res = append(res, Leaf{Path: p, Value: x})
		}
		return nil
	})
	return res
}

// Leaf is a leaf value and where it was found.
type Leaf struct {
	Path  nested.Path
	Value any
}

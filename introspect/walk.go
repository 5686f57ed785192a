package introspect

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/nested"
)

// SkipContainer may be returned by a WalkFunc visiting a container to skip
// its children.
var SkipContainer = errors.New("skip container")

// WalkFunc is called for every value reached by Walk, containers before
// their children.
type WalkFunc func(p nested.Path, v any) error

// Walk visits v depth first.  Mapping keys are visited in sorted order, so
// the visit order is deterministic.
func Walk(v any, fn WalkFunc) error {
	err := walk(nil, v, fn, 0)
	if errors.Is(err, SkipContainer) {
		return nil
	}
	return err
}

func walk(p nested.Path, v any, fn WalkFunc, depth int) error {
	if depth > maxWalkDepth {
		return fmt.Errorf("%w: nesting deeper than %d at %q", nested.ErrInvalidPath, maxWalkDepth, p)
	}
	if err := fn(p, v); err != nil {
		return err
	}
	switch nested.KindOf(v) {
	case nested.MappingKind:
		for _, e := range entries(v) {
			if err := walkChild(p.Append(e.tok), e.v, fn, depth); err != nil {
				return err
			}
		}
	case nested.SequenceKind, nested.TupleKind:
		for i, x := range elements(v) {
			if err := walkChild(p.Append(nested.Index(i)), x, fn, depth); err != nil {
				return err
			}
		}
	case nested.LeafKind:
	default:
		panic(fmt.Sprintf("unhandled kind %s", nested.KindOf(v)))
	}
	return nil
}

func walkChild(p nested.Path, v any, fn WalkFunc, depth int) error {
	err := walk(p, v, fn, depth+1)
	if errors.Is(err, SkipContainer) {
		return nil
	}
	return err
}

// maxWalkDepth bounds recursion on cyclic or absurdly deep values.
const maxWalkDepth = 10 * nested.DefaultMaxDepth

type entry struct {
	tok nested.Token
	v   any
}

func entries(v any) []entry {
	var res []entry
	switch m := v.(type) {
	case map[string]any:
		res = make([]entry, 0, len(m))
		for k, x := range m {
			res = append(res, entry{tok: nested.Key(k), v: x})
		}
	case map[any]any:
		res = make([]entry, 0, len(m))
		for k, x := range m {
			res = append(res, entry{tok: keyToken(k), v: x})
		}
	}
	slices.SortFunc(res, func(a, b entry) int {
		return nested.Path{a.tok}.Compare(nested.Path{b.tok})
	})
	return res
}

func keyToken(k any) nested.Token {
	switch x := k.(type) {
	case string:
		return nested.Key(x)
	case int:
		return nested.Index(x)
	}
	return nested.Key(fmt.Sprint(k))
}

func elements(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case *[]any:
		return *x
	case nested.Tuple:
		return x.Items()
	}
	return nil
}

package nested

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/signadot/nested/debug"
)

// Get returns the value at path in root.
//
// It fails with ErrMissingKey when a mapping lacks a key, ErrInvalidIndex
// when a sequence step is not an index or is out of range, and
// ErrNonNavigable when a step would enter a leaf.
func Get[P PathLike](root any, path P, opts ...Option) (any, error) {
	o := newOptions(opts)
	p, err := Normalize(path, o.maxDepth)
	if err != nil {
		return nil, opError("get", nil, err)
	}
	v, err := get(root, p)
	if err != nil {
		return nil, opError("get", p, err)
	}
	return v, nil
}

// GetOr is like Get but returns def when the path does not resolve.
// Malformed paths are still reported.
func GetOr[P PathLike](root any, path P, def any, opts ...Option) (any, error) {
	v, err := Get(root, path, opts...)
	if err != nil {
		if IsNotFound(err) {
			return def, nil
		}
		return nil, err
	}
	return v, nil
}

// Exists reports whether path resolves in root.  Only malformed paths
// produce an error.
func Exists[P PathLike](root any, path P, opts ...Option) (bool, error) {
	o := newOptions(opts)
	p, err := Normalize(path, o.maxDepth)
	if err != nil {
		return false, opError("exists", nil, err)
	}
	if _, err := get(root, p); err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, opError("exists", p, err)
	}
	return true, nil
}

// Set stores value at path in root, mutating root in place.
//
// Without Create, every step but the last must already exist.  With
// Create, missing or nil steps are replaced by containers chosen by the
// fill strategy.  Sequences only grow by exact append unless Create is set
// and the fill strategy fills gaps.  Immutable sequences are never
// modified.  A failure may leave earlier steps already created.
func Set[P PathLike](root any, path P, value any, opts ...Option) error {
	o := newOptions(opts)
	if !o.fill.valid() {
		return opError("set", nil, newError(CodeInvalidFillStrategy, "invalid fill strategy %d", int(o.fill)))
	}
	p, err := Normalize(path, o.maxDepth)
	if err != nil {
		return opError("set", nil, err)
	}
	if err := set(root, p, value, o); err != nil {
		return opError("set", p, err)
	}
	return nil
}

// Delete removes the value at path from root and returns it.  Deleting a
// sequence element requires AllowSequenceDelete.
func Delete[P PathLike](root any, path P, opts ...Option) (any, error) {
	o := newOptions(opts)
	p, err := Normalize(path, o.maxDepth)
	if err != nil {
		return nil, opError("delete", nil, err)
	}
	v, err := del(root, p, o)
	if err != nil {
		return nil, opError("delete", p, err)
	}
	return v, nil
}

func opError(op string, p Path, err error) error {
	var pe *PathError
	if !errors.As(err, &pe) {
		return err
	}
	if pe.Op == "" {
		pe.Op = op
	}
	if pe.Path == "" && p != nil {
		pe.Path = p.String()
	}
	return pe
}

func get(root any, p Path) (any, error) {
	cur := root
	for i, tok := range p {
		if debug.Walk() {
			debug.Logf("get %s step %d %q on %s\n", p, i, tok, KindOf(cur))
		}
		switch KindOf(cur) {
		case MappingKind:
			v, ok := lookup(cur, tok)
			if !ok {
				return nil, newError(CodeMissingKey, "key %q not found at %q", tok.String(), p[:i+1])
			}
			cur = v
		case SequenceKind, TupleKind:
			items := elements(cur)
			idx, ok, err := resolveRead(len(items), tok)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, newError(CodeInvalidIndex,
					"index %s out of range for sequence of length %d at %q", tok, len(items), p[:i+1])
			}
			cur = items[idx]
		case LeafKind:
			return nil, newError(CodeNonNavigable, "cannot navigate into %s at %q", typeName(cur), p[:i+1])
		default:
			panic(fmt.Sprintf("unhandled kind %s", KindOf(cur)))
		}
	}
	return cur, nil
}

// cursor tracks the container under the walker together with the means of
// storing a replacement for it in whatever holds it.
type cursor struct {
	node any
	// put rewrites node in its holder; nil for the root and for values held
	// by a Tuple.
	put   func(any)
	tuple bool
}

func (c *cursor) descendKey(m any, tok Token, child any) {
	c.node = child
	c.put = func(v any) { assign(m, tok, v) }
	c.tuple = false
}

func (c *cursor) descendIndex(items []any, i int) {
	c.node = items[i]
	c.put = func(v any) { items[i] = v }
	c.tuple = false
}

func (c *cursor) descendTuple(t Tuple, i int) {
	c.node = t.items[i]
	c.put = nil
	c.tuple = true
}

func set(root any, p Path, value any, o *options) error {
	c := &cursor{node: root}
	last := len(p) - 1
	gapFill := o.create && o.fill.fillsGaps()
	for i, tok := range p[:last] {
		next := p[i+1]
		if debug.Set() {
			debug.Logf("set %s step %d %q on %s\n", p, i, tok, KindOf(c.node))
		}
		switch KindOf(c.node) {
		case MappingKind:
			m := c.node
			if isNil(m) {
				return newError(CodeNonNavigable, "cannot navigate into a nil map at %q", p[:i+1])
			}
			child, ok := lookup(m, tok)
			if !ok || isNil(child) {
				if !o.create {
					if ok {
						return newError(CodeMissingKey, "key %q is nil at %q and create is disabled", tok.String(), p[:i+1])
					}
					return newError(CodeMissingKey, "key %q not found at %q and create is disabled", tok.String(), p[:i+1])
				}
				child = newContainer(o.fill, next)
				assign(m, tok, child)
			}
			c.descendKey(m, tok, child)
		case SequenceKind:
			s := seqOf(c)
			idx, err := resolveWrite(len(s.items), tok, gapFill, o.maxIndex)
			if err != nil {
				return err
			}
			if idx >= len(s.items) {
				if !o.create {
					return newError(CodeInvalidIndex,
						"index %d is past the end of sequence of length %d at %q and create is disabled", idx, len(s.items), p[:i+1])
				}
				items, err := s.extend(idx, o.fill, newContainer(o.fill, next))
				if err != nil {
					return err
				}
				s.items = items
			} else if isNil(s.items[idx]) && o.create {
				s.items[idx] = newContainer(o.fill, next)
			}
			c.descendIndex(s.items, idx)
		case TupleKind:
			return newError(CodeImmutableContainer, "cannot modify immutable sequence at %q", p[:i+1])
		case LeafKind:
			return newError(CodeNonNavigable, "cannot navigate into %s at %q", typeName(c.node), p[:i+1])
		default:
			panic(fmt.Sprintf("unhandled kind %s", KindOf(c.node)))
		}
	}

	tok := p[last]
	if debug.Set() {
		debug.Logf("set %s final %q on %s\n", p, tok, KindOf(c.node))
	}
	switch KindOf(c.node) {
	case MappingKind:
		if isNil(c.node) {
			return newError(CodeNonNavigable, "cannot set %q in a nil map", tok.String())
		}
		assign(c.node, tok, value)
		return nil
	case SequenceKind:
		s := seqOf(c)
		idx, err := resolveWrite(len(s.items), tok, gapFill, o.maxIndex)
		if err != nil {
			return err
		}
		if idx < len(s.items) {
			s.items[idx] = value
			return nil
		}
		_, err = s.extend(idx, o.fill, value)
		return err
	case TupleKind:
		return newError(CodeImmutableContainer, "cannot set %q in immutable sequence", tok.String())
	case LeafKind:
		return newError(CodeNonNavigable, "cannot set %q in %s", tok.String(), typeName(c.node))
	default:
		panic(fmt.Sprintf("unhandled kind %s", KindOf(c.node)))
	}
}

func del(root any, p Path, o *options) (any, error) {
	c := &cursor{node: root}
	last := len(p) - 1
	for i, tok := range p[:last] {
		if debug.Delete() {
			debug.Logf("delete %s step %d %q on %s\n", p, i, tok, KindOf(c.node))
		}
		switch KindOf(c.node) {
		case MappingKind:
			m := c.node
			child, ok := lookup(m, tok)
			if !ok {
				return nil, newError(CodeMissingKey, "key %q not found at %q", tok.String(), p[:i+1])
			}
			c.descendKey(m, tok, child)
		case SequenceKind:
			items := seqOf(c).items
			idx, ok, err := resolveRead(len(items), tok)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, newError(CodeInvalidIndex,
					"index %s out of range for sequence of length %d at %q", tok, len(items), p[:i+1])
			}
			c.descendIndex(items, idx)
		case TupleKind:
			t := c.node.(Tuple)
			idx, ok, err := resolveRead(t.Len(), tok)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, newError(CodeInvalidIndex,
					"index %s out of range for immutable sequence of length %d at %q", tok, t.Len(), p[:i+1])
			}
			c.descendTuple(t, idx)
		case LeafKind:
			return nil, newError(CodeNonNavigable, "cannot navigate into %s at %q", typeName(c.node), p[:i+1])
		default:
			panic(fmt.Sprintf("unhandled kind %s", KindOf(c.node)))
		}
	}

	tok := p[last]
	if debug.Delete() {
		debug.Logf("delete %s final %q on %s\n", p, tok, KindOf(c.node))
	}
	switch KindOf(c.node) {
	case MappingKind:
		v, ok := remove(c.node, tok)
		if !ok {
			return nil, newError(CodeMissingKey, "key %q not found", tok.String())
		}
		return v, nil
	case SequenceKind:
		if !o.seqDelete {
			return nil, newError(CodeOperationDisabled, "sequence deletion disabled, allow sequence deletion to remove %q", tok.String())
		}
		s := seqOf(c)
		idx, ok, err := resolveRead(len(s.items), tok)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, newError(CodeInvalidIndex, "index %s out of range for sequence of length %d", tok, len(s.items))
		}
		if err := s.resizable(); err != nil {
			return nil, err
		}
		v := s.items[idx]
		s.resize(slices.Delete(s.items, idx, idx+1))
		return v, nil
	case TupleKind:
		return nil, newError(CodeImmutableContainer, "cannot delete %q from immutable sequence", tok.String())
	case LeafKind:
		return nil, newError(CodeNonNavigable, "cannot delete %q from %s", tok.String(), typeName(c.node))
	default:
		panic(fmt.Sprintf("unhandled kind %s", KindOf(c.node)))
	}
}

// seqRef is a mutable sequence and the means of storing it after a resize.
type seqRef struct {
	items  []any
	resize func([]any)
	tuple  bool
}

func seqOf(c *cursor) seqRef {
	switch x := c.node.(type) {
	case *[]any:
		return seqRef{items: *x, resize: func(s []any) { *x = s }}
	case []any:
		r := seqRef{items: x, tuple: c.tuple}
		if put := c.put; put != nil {
			r.resize = func(s []any) { put(s) }
		}
		return r
	}
	panic(fmt.Sprintf("seqOf: %T is not a mutable sequence", c.node))
}

func (s seqRef) resizable() error {
	if s.resize != nil {
		return nil
	}
	if s.tuple {
		return newError(CodeImmutableContainer, "cannot resize a sequence held by an immutable sequence")
	}
	return newError(CodeInvalidIndex, "cannot shrink a root []any, pass a *[]any to resize it")
}

// extend grows s so that it ends with v at index idx, filling any skipped
// slots according to f.
func (s seqRef) extend(idx int, f FillStrategy, v any) ([]any, error) {
	if s.resize == nil {
		if s.tuple {
			return nil, newError(CodeImmutableContainer, "cannot grow a sequence held by an immutable sequence")
		}
		return nil, newError(CodeInvalidIndex,
			"index %d is past the end of root sequence of length %d, pass a *[]any to grow it", idx, len(s.items))
	}
	items := s.items
	for len(items) < idx {
		items = append(items, gapFiller(f))
	}
	items = append(items, v)
	s.resize(items)
	return items, nil
}

func elements(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case *[]any:
		return *x
	case Tuple:
		return x.items
	}
	return nil
}

func mapKey(tok Token) any {
	if tok.isInt {
		return tok.index
	}
	return tok.key
}

func lookup(m any, tok Token) (any, bool) {
	switch x := m.(type) {
	case map[string]any:
		v, ok := x[tok.String()]
		return v, ok
	case map[any]any:
		v, ok := x[mapKey(tok)]
		return v, ok
	}
	return nil, false
}

func assign(m any, tok Token, v any) {
	switch x := m.(type) {
	case map[string]any:
		x[tok.String()] = v
	case map[any]any:
		x[mapKey(tok)] = v
	default:
		panic(fmt.Sprintf("assign: %T is not a mapping", m))
	}
}

func remove(m any, tok Token) (any, bool) {
	switch x := m.(type) {
	case map[string]any:
		k := tok.String()
		v, ok := x[k]
		if ok {
			delete(x, k)
		}
		return v, ok
	case map[any]any:
		k := mapKey(tok)
		v, ok := x[k]
		if ok {
			delete(x, k)
		}
		return v, ok
	}
	return nil, false
}

// isNil reports whether v is nil or a nil map, neither of which can take a
// key.
func isNil(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case map[string]any:
		return x == nil
	case map[any]any:
		return x == nil
	}
	return false
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch x := v.(type) {
	case string:
		return "string " + strconv.Quote(x)
	}
	return fmt.Sprintf("%T", v)
}

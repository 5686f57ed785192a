package jsonpatch

import (
	"encoding/json"
	"fmt"
	"math"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/nested"
	"github.com/signadot/nested/debug"
	"github.com/signadot/nested/format"
)

// Op is a single RFC 6902 operation.
type Op struct {
	Op    string
	Path  string
	Value any
}

func (o Op) MarshalJSON() ([]byte, error) {
	if o.Op == "remove" {
		return json.Marshal(struct {
			Op   string `json:"op"`
			Path string `json:"path"`
		}{o.Op, o.Path})
	}
	return json.Marshal(struct {
		Op    string `json:"op"`
		Path  string `json:"path"`
		Value any    `json:"value"`
	}{o.Op, o.Path, format.Plain(o.Value)})
}

func (o *Op) UnmarshalJSON(d []byte) error {
	var x struct {
		Op    string `json:"op"`
		Path  string `json:"path"`
		Value any    `json:"value"`
	}
	if err := json.Unmarshal(d, &x); err != nil {
		return err
	}
	*o = Op{Op: x.Op, Path: x.Path, Value: x.Value}
	return nil
}

// step records what the document held at one prefix of a path before a
// mutation.
type step struct {
	exists bool
	null   bool
	// parentLen is the length of the parent sequence, or -1 when the
	// parent is not a sequence.
	parentLen int
}

// SetOps performs nested.Set and returns the operations that turn the
// document as it was into the document as it is.
//
// The full path is replaced when it already resolved.  Otherwise the first
// step that had to be created is added, preceded by one add per skipped
// sequence slot.  A step that held nil is replaced.  Indices in the
// returned pointers are never negative.
func SetOps[P nested.PathLike](root any, path P, value any, opts ...nested.Option) ([]Op, error) {
	p, err := nested.Normalize(path, math.MaxInt)
	if err != nil {
		return nil, err
	}
	before := survey(root, p)
	if err := nested.Set(root, path, value, opts...); err != nil {
		return nil, err
	}
	rp, err := resolve(root, p)
	if err != nil {
		return nil, err
	}
	last := len(p) - 1
	k := -1
	for i, s := range before {
		if !s.exists || (s.null && i < last) {
			k = i
			break
		}
	}
	if k == -1 {
		return []Op{{Op: "replace", Path: rp.Pointer(), Value: format.Plain(value)}}, nil
	}
	var ops []Op
	if n := before[k].parentLen; n >= 0 {
		parent := root
		if k > 0 {
			parent, err = nested.Get(root, rp[:k])
			if err != nil {
				return nil, err
			}
		}
		items := elements(parent)
		idx, _ := rp[k].Int()
		for j := n; j < idx; j++ {
			ops = append(ops, Op{Op: "add", Path: rp[:k].Append(nested.Index(j)).Pointer(), Value: format.Plain(items[j])})
		}
	}
	created, err := nested.Get(root, rp[:k+1])
	if err != nil {
		return nil, err
	}
	op := "add"
	if before[k].exists {
		op = "replace"
	}
	ops = append(ops, Op{Op: op, Path: rp[:k+1].Pointer(), Value: format.Plain(created)})
	if debug.Set() {
		debug.Logf("set ops for %s: %d\n", p, len(ops))
	}
	return ops, nil
}

// DeleteOps performs nested.Delete and returns the removed value with the
// equivalent remove operation.
func DeleteOps[P nested.PathLike](root any, path P, opts ...nested.Option) (any, []Op, error) {
	p, err := nested.Normalize(path, math.MaxInt)
	if err != nil {
		return nil, nil, err
	}
	rp, rerr := resolve(root, p)
	v, err := nested.Delete(root, path, opts...)
	if err != nil {
		return nil, nil, err
	}
	if rerr != nil {
		return nil, nil, rerr
	}
	return v, []Op{{Op: "remove", Path: rp.Pointer()}}, nil
}

// Marshal encodes ops as a JSON patch document.
func Marshal(ops []Op) ([]byte, error) {
	if ops == nil {
		ops = []Op{}
	}
	return json.Marshal(ops)
}

// Apply applies ops to a copy of doc and returns the result decoded as
// JSON.
func Apply(doc any, ops []Op) (any, error) {
	d, err := json.Marshal(format.Plain(doc))
	if err != nil {
		return nil, err
	}
	pd, err := Marshal(ops)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	out, err := patch.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}
	return format.Decode(out, format.JSONFormat)
}

func survey(root any, p nested.Path) []step {
	res := make([]step, len(p))
	cur := root
	alive := true
	for i, tok := range p {
		res[i].parentLen = -1
		if !alive {
			continue
		}
		if nested.KindOf(cur) == nested.SequenceKind {
			res[i].parentLen = len(elements(cur))
		}
		next, err := nested.Get(cur, nested.Path{tok})
		if err != nil {
			alive = false
			continue
		}
		res[i].exists = true
		res[i].null = isNull(next)
		cur = next
	}
	return res
}

// resolve rewrites every sequence step of p as a non-negative index.
func resolve(root any, p nested.Path) (nested.Path, error) {
	res := make(nested.Path, 0, len(p))
	cur := root
	for _, tok := range p {
		switch nested.KindOf(cur) {
		case nested.SequenceKind, nested.TupleKind:
			i, err := nested.ParseIndex(tok)
			if err != nil {
				return nil, err
			}
			if i < 0 {
				i += len(elements(cur))
			}
			tok = nested.Index(i)
		}
		res = append(res, tok)
		next, err := nested.Get(cur, nested.Path{tok})
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return res, nil
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

func isNull(v any) bool {
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

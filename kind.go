package nested

import (
	"encoding/json"
	"fmt"
)

// Kind is the structural role a value plays during traversal.
type Kind int

const (
	LeafKind Kind = iota
	MappingKind
	SequenceKind
	TupleKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		LeafKind:     "Leaf",
		MappingKind:  "Mapping",
		SequenceKind: "Sequence",
		TupleKind:    "Tuple",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Leaf":     LeafKind,
		"Mapping":  MappingKind,
		"Sequence": SequenceKind,
		"Tuple":    TupleKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{LeafKind, MappingKind, SequenceKind, TupleKind}
}

func (k Kind) IsContainer() bool {
	return k != LeafKind
}

// KindOf classifies v.
//
//   - map[string]any, map[any]any: MappingKind
//   - []any, non-nil *[]any: SequenceKind
//   - Tuple: TupleKind
//   - everything else, including nil, typed slices and sets: LeafKind
func KindOf(v any) Kind {
	switch x := v.(type) {
	case map[string]any, map[any]any:
		return MappingKind
	case []any:
		return SequenceKind
	case *[]any:
		if x == nil {
			return LeafKind
		}
		return SequenceKind
	case Tuple:
		return TupleKind
	default:
		return LeafKind
	}
}

// Tuple is a fixed-size, read-only sequence.  Path operations may read
// through a Tuple but never modify one.
type Tuple struct {
	items []any
}

// NewTuple returns a Tuple holding a copy of items.
func NewTuple(items ...any) Tuple {
	return Tuple{items: append([]any(nil), items...)}
}

func (t Tuple) Len() int { return len(t.items) }

func (t Tuple) At(i int) any { return t.items[i] }

// Items returns a copy of the elements.
func (t Tuple) Items() []any {
	return append([]any(nil), t.items...)
}

func (t Tuple) MarshalJSON() ([]byte, error) {
	if t.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.items)
}

// MarshalYAML encodes a Tuple as a YAML sequence.
func (t Tuple) MarshalYAML() (any, error) {
	if t.items == nil {
		return []any{}, nil
	}
	return t.items, nil
}

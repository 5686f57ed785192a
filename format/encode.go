package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/nested"
)

type encState struct {
	indent  int
	compact bool
}

type EncodeOption func(*encState)

// Indent sets the indentation width.  The default is 2.
func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// Compact writes JSON on a single line.  It has no effect on YAML.
func Compact(v bool) EncodeOption {
	return func(es *encState) { es.compact = v }
}

// Encode writes v to w in format f.  Tuples and *[]any are written as
// sequences.  HCL cannot be encoded.
func Encode(w io.Writer, v any, f Format, opts ...EncodeOption) error {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	v = Plain(v)
	switch f {
	case YAMLFormat:
		d, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent))
		if err != nil {
			return fmt.Errorf("could not encode yaml: %w", err)
		}
		_, err = w.Write(d)
		return err
	case JSONFormat:
		enc := json.NewEncoder(w)
		if !es.compact {
			enc.SetIndent("", string(bytes.Repeat([]byte{' '}, es.indent)))
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("could not encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrBadFormat, f)
	}
}

// Marshal is Encode into a byte slice.
func Marshal(v any, f Format, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(buf, v, f, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Plain returns a copy of v in which every container is a map[string]any
// or a []any, as the standard encoders expect.  Leaves are shared.
func Plain(v any) any {
	switch x := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = Plain(e)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = Plain(e)
		}
		return m
	case []any:
		return plainSeq(x)
	case *[]any:
		if x == nil {
			return nil
		}
		return plainSeq(*x)
	case nested.Tuple:
		return plainSeq(x.Items())
	}
	return v
}

func plainSeq(items []any) []any {
	res := make([]any, len(items))
	for i, e := range items {
		res[i] = Plain(e)
	}
	return res
}

package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/signadot/nested"
	"github.com/signadot/nested/debug"
)

// Decode parses data as a single document in format f.
//
// Mappings decode to map[string]any, sequences to []any and integral
// numbers to int64.  HCL tuples decode to nested.Tuple.
func Decode(data []byte, f Format) (any, error) {
	var (
		v   any
		err error
	)
	switch f {
	case YAMLFormat:
		v, err = decodeYAML(data)
	case JSONFormat:
		v, err = decodeJSON(data)
	case HCLFormat:
		v, err = decodeHCL(data, "<input>")
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	if err != nil {
		return nil, err
	}
	if debug.Format() {
		debug.Logf("decoded %s document: %v\n", f, v)
	}
	return v, nil
}

// Read reads all of r and decodes it with Decode.
func Read(r io.Reader, f Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, f)
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("could not decode yaml: %w", err)
	}
	return normalize(v), nil
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("could not decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode json: trailing data after document")
	}
	return normalize(v), nil
}

// normalize converts the scalar and container types produced by the
// decoders to the ones nested navigates.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
		return x
	case nested.Tuple:
		items := x.Items()
		for i, e := range items {
			items[i] = normalize(e)
		}
		return nested.NewTuple(items...)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, err := x.Float64()
		if err != nil {
			return x.String()
		}
		return f
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return unsigned(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return unsigned(x)
	case float32:
		return float64(x)
	}
	return v
}

func unsigned(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

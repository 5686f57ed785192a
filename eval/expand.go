package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/nested/format"
)

// ExpandString replaces each $[expr] in v with the result of evaluating
// expr in env, rendered as text.  Inside an expression a backslash escapes
// the next character, so \] does not close it.  An unclosed $[ is kept
// literally.
func ExpandString(v string, env Env, doc any) (string, error) {
	if !strings.Contains(v, "$[") {
		return v, nil
	}
	var (
		out strings.Builder
		key strings.Builder
	)
	start := -1
	for i := 0; i < len(v); i++ {
		c := v[i]
		if start == -1 {
			if c == '$' && i+1 < len(v) && v[i+1] == '[' {
				start = i
				key.Reset()
				i++
				continue
			}
			out.WriteByte(c)
			continue
		}
		switch c {
		case '\\':
			if i+1 < len(v) {
				i++
				key.WriteByte(v[i])
			}
		case ']':
			src := strings.TrimSpace(key.String())
			x, err := Eval(src, env, doc)
			if err != nil {
				return "", err
			}
			s, err := text(x)
			if err != nil {
				return "", fmt.Errorf("could not render result of %q: %w", src, err)
			}
			out.WriteString(s)
			start = -1
		default:
			key.WriteByte(c)
		}
	}
	if start != -1 {
		out.WriteString(v[start:])
	}
	return out.String(), nil
}

// ExpandAny expands strings found anywhere in v in place.  A string that is
// exactly $[expr] is replaced by the result of expr whatever its type.
func ExpandAny(v any, env Env, doc any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			ee, err := ExpandAny(e, env, doc)
			if err != nil {
				return nil, err
			}
			x[k] = ee
		}
		return x, nil
	case []any:
		for i, e := range x {
			ee, err := ExpandAny(e, env, doc)
			if err != nil {
				return nil, err
			}
			x[i] = ee
		}
		return x, nil
	case string:
		if src, ok := whole(x); ok {
			return Eval(src, env, doc)
		}
		return ExpandString(x, env, doc)
	}
	return v, nil
}

// whole reports whether s is a single $[expr] and returns expr.
func whole(s string) (string, bool) {
	if !strings.HasPrefix(s, "$[") || !strings.HasSuffix(s, "]") {
		return "", false
	}
	inner := s[2 : len(s)-1]
	if strings.ContainsAny(inner, "[]\\") {
		return "", false
	}
	return strings.TrimSpace(inner), true
}

func text(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	}
	d, err := format.Marshal(v, format.JSONFormat, format.Compact(true))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(d), "\n"), nil
}

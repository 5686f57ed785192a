package encode

import (
	"fmt"
	"strings"

	"github.com/signadot/nested"
	"github.com/signadot/nested/format"
	"github.com/signadot/nested/libdiff"
)

// PathString renders p as Path.String does, colouring keys, indices and
// separators.
func PathString(p nested.Path, c *Colors) string {
	var b strings.Builder
	for i, tok := range p {
		if i != 0 {
			b.WriteString(c.Color(MappingType, SepColor, "."))
		}
		if tok.IsInt() || nested.IsIndexToken(tok) {
			b.WriteString(c.Color(SequenceType, IndexColor, tok.String()))
			continue
		}
		b.WriteString(c.Color(MappingType, KeyColor, tok.String()))
	}
	return b.String()
}

// Leaf renders v on a single line.  Strings are written as is, other
// values as compact JSON.
func Leaf(v any, c *Colors) string {
	t := TypeOf(v)
	if s, ok := v.(string); ok {
		return c.Color(t, ValueColor, s)
	}
	d, err := format.Marshal(v, format.JSONFormat, format.Compact(true))
	if err != nil {
		return c.Color(t, ValueColor, fmt.Sprint(v))
	}
	return c.Color(t, ValueColor, strings.TrimSuffix(string(d), "\n"))
}

// LeafLine renders "path: value".
func LeafLine(p nested.Path, v any, c *Colors) string {
	return PathString(p, c) + c.Color(MappingType, SepColor, ":") + " " + Leaf(v, c)
}

// DiffLine renders l as it appears in a unified diff.
func DiffLine(l libdiff.Line, c *Colors) string {
	switch l.Op {
	case libdiff.Insert:
		return c.Color(MappingType, AddedColor, l.String())
	case libdiff.Delete:
		return c.Color(MappingType, RemovedColor, l.String())
	default:
		return l.String()
	}
}

// Unified colours the output of libdiff.Unified line by line.
func Unified(u string, c *Colors) string {
	if u == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(u, "\n"), "\n")
	var b strings.Builder
	for _, ln := range lines {
		switch {
		case strings.HasPrefix(ln, "@@"):
			ln = c.Color(MappingType, HunkColor, ln)
		case strings.HasPrefix(ln, "+"):
			ln = c.Color(MappingType, AddedColor, ln)
		case strings.HasPrefix(ln, "-"):
			ln = c.Color(MappingType, RemovedColor, ln)
		}
		b.WriteString(ln)
		b.WriteByte('\n')
	}
	return b.String()
}

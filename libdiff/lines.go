package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Equal:
		return " "
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "?"
	}
}

// Line is one line of a line diff.  Text excludes the line terminator.
type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return l.Op.String() + l.Text
}

// Lines computes a line by line diff from from to to.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range splitLines(d.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Changed reports whether lines contains any insertion or deletion.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// From reconstructs the text the diff was computed from.
func From(lines []Line) string {
	return join(lines, Delete)
}

// To reconstructs the text the diff was computed to.
func To(lines []Line) string {
	return join(lines, Insert)
}

func join(lines []Line, keep Op) string {
	var b strings.Builder
	for _, l := range lines {
		if l.Op == Equal || l.Op == keep {
			b.WriteString(l.Text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Reverse returns the diff from to to from.
func Reverse(lines []Line) []Line {
	res := make([]Line, len(lines))
	for i, l := range lines {
		switch l.Op {
		case Insert:
			l.Op = Delete
		case Delete:
			l.Op = Insert
		}
		res[i] = l
	}
	return res
}

// Unified renders the diff of from and to with context lines of context
// around each change, in the style of diff -u without file headers.  It
// returns "" when from and to are equal.
func Unified(from, to string, context int) string {
	lines := Lines(from, to)
	if !Changed(lines) {
		return ""
	}
	var b strings.Builder
	for _, h := range hunks(lines, context) {
		fmt.Fprintf(&b, "@@ -%s +%s @@\n", span(h.fromStart, h.fromLen), span(h.toStart, h.toLen))
		for _, l := range h.lines {
			b.WriteString(l.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

type hunk struct {
	fromStart, fromLen int
	toStart, toLen     int
	lines              []Line
}

func hunks(lines []Line, context int) []hunk {
	var (
		res    []hunk
		cur    *hunk
		fi, ti int // 0-based positions in from and to before lines[i]
		trail  int // equal lines since the last change in cur
	)
	for i, l := range lines {
		if l.Op != Equal {
			if cur == nil {
				lo := max(0, i-context)
				for j := i - 1; j >= lo && lines[j].Op == Equal; j-- {
					lo = j
				}
				pre := lines[lo:i]
				cur = &hunk{fromStart: fi - len(pre), toStart: ti - len(pre)}
				cur.lines = append(cur.lines, pre...)
				cur.fromLen += len(pre)
				cur.toLen += len(pre)
			}
			cur.lines = append(cur.lines, l)
			if l.Op == Delete {
				cur.fromLen++
			} else {
				cur.toLen++
			}
			trail = 0
		} else if cur != nil {
			if trail < context {
				cur.lines = append(cur.lines, l)
				cur.fromLen++
				cur.toLen++
				trail++
			} else if !changeWithin(lines[i:], context+1) {
				res = append(res, *cur)
				cur = nil
			} else {
				cur.lines = append(cur.lines, l)
				cur.fromLen++
				cur.toLen++
				trail++
			}
		}
		switch l.Op {
		case Equal:
			fi++
			ti++
		case Delete:
			fi++
		case Insert:
			ti++
		}
	}
	if cur != nil {
		res = append(res, *cur)
	}
	return res
}

func changeWithin(lines []Line, n int) bool {
	for i := 0; i < n && i < len(lines); i++ {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// span renders a hunk range with 1-based line numbers.
func span(start, n int) string {
	if n == 0 {
		return fmt.Sprintf("%d,0", start)
	}
	if n == 1 {
		return fmt.Sprintf("%d", start+1)
	}
	return fmt.Sprintf("%d,%d", start+1, n)
}

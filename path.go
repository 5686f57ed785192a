package nested

import (
	"cmp"
	"math"
	"strings"
)

const (
	// DefaultMaxDepth bounds the number of tokens in a path.
	DefaultMaxDepth = 100
	// DefaultMaxIndex bounds the sequence offset a write may address.
	DefaultMaxIndex = 10000
)

// Path is a normalized, non-empty sequence of tokens.
type Path []Token

// PathLike is the set of forms a path argument may take: a '.'-delimited
// string or an explicit token sequence.
type PathLike interface {
	string | []string | []int | []any | Path
}

// Parse normalizes a '.'-delimited path under DefaultMaxDepth.
func Parse(s string) (Path, error) {
	return Normalize(s, DefaultMaxDepth)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Normalize converts path into a Path.
//
// A string is split on '.'; every piece is a key token.  A sequence keeps
// the native kind of each element: strings become key tokens, Go integers
// become integer tokens and Tokens are kept as is.  The result must hold at
// least one token and at most maxDepth tokens, none of which may be an empty
// key.
func Normalize(path any, maxDepth int) (Path, error) {
	var res Path
	switch p := path.(type) {
	case string:
		if p == "" {
			return nil, newError(CodeEmptyPath, "path cannot be empty")
		}
		parts := strings.Split(p, ".")
		res = make(Path, len(parts))
		for i, part := range parts {
			res[i] = Key(part)
		}
	case []string:
		res = make(Path, len(p))
		for i, part := range p {
			res[i] = Key(part)
		}
	case []int:
		res = make(Path, len(p))
		for i, n := range p {
			res[i] = Index(n)
		}
	case Path:
		res = append(Path(nil), p...)
	case []Token:
		res = append(Path(nil), p...)
	case []any:
		res = make(Path, len(p))
		for i, elt := range p {
			tok, err := tokenOf(elt)
			if err != nil {
				return nil, err
			}
			res[i] = tok
		}
	default:
		return nil, newError(CodeInvalidPath, "path must be a string or a token sequence, got %T", path)
	}
	if len(res) == 0 {
		return nil, newError(CodeEmptyPath, "path cannot be empty")
	}
	if len(res) > maxDepth {
		return nil, newError(CodeInvalidPath, "path depth %d exceeds maximum of %d", len(res), maxDepth)
	}
	for _, tok := range res {
		if tok.empty() {
			return nil, newError(CodeEmptyPath, "path cannot contain empty keys")
		}
	}
	return res, nil
}

func tokenOf(v any) (Token, error) {
	switch x := v.(type) {
	case Token:
		return x, nil
	case string:
		return Key(x), nil
	case int:
		return Index(x), nil
	case int8:
		return Index(int(x)), nil
	case int16:
		return Index(int(x)), nil
	case int32:
		return Index(int(x)), nil
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return Token{}, newError(CodeInvalidPath, "path element %d overflows int", x)
		}
		return Index(int(x)), nil
	case uint:
		if x > math.MaxInt {
			return Token{}, newError(CodeInvalidPath, "path element %d overflows int", x)
		}
		return Index(int(x)), nil
	case uint8:
		return Index(int(x)), nil
	case uint16:
		return Index(int(x)), nil
	case uint32:
		return Index(int(x)), nil
	case uint64:
		if x > math.MaxInt {
			return Token{}, newError(CodeInvalidPath, "path element %d overflows int", x)
		}
		return Index(int(x)), nil
	default:
		return Token{}, newError(CodeInvalidPath, "path element must be a string or an integer, got %T", v)
	}
}

// String renders p in '.'-delimited form.  Keys containing '.' do not
// survive a round trip through Parse; use Pointer for those.
func (p Path) String() string {
	var b strings.Builder
	for i, tok := range p {
		if i != 0 {
			b.WriteByte('.')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}

// Pointer renders p as an RFC 6901 JSON pointer.
func (p Path) Pointer() string {
	var b strings.Builder
	for _, tok := range p {
		b.WriteByte('/')
		b.WriteString(EscapeKey(tok.String()))
	}
	return b.String()
}

// ParsePointer parses an RFC 6901 JSON pointer into a Path.  Every segment
// becomes a key token.
func ParsePointer(s string) (Path, error) {
	if s == "" {
		return nil, newError(CodeEmptyPath, "pointer cannot be empty")
	}
	if s[0] != '/' {
		return nil, newError(CodeInvalidPath, "pointer %q must start with '/'", s)
	}
	parts := strings.Split(s[1:], "/")
	res := make(Path, len(parts))
	for i, part := range parts {
		k, err := UnescapeKey(part)
		if err != nil {
			return nil, err
		}
		res[i] = Key(k)
	}
	return Normalize(res, DefaultMaxDepth)
}

var keyEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// EscapeKey escapes a key for use as a JSON pointer segment.
func EscapeKey(k string) string {
	return keyEscaper.Replace(k)
}

// UnescapeKey reverses EscapeKey.  A '~' not followed by '0' or '1' is an
// error.
func UnescapeKey(s string) (string, error) {
	if !strings.Contains(s, "~") {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '~' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(s) {
			return "", newError(CodeInvalidPath, "dangling '~' in pointer segment %q", s)
		}
		switch s[i+1] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", newError(CodeInvalidPath, "bad escape '~%c' in pointer segment %q", s[i+1], s)
		}
		i++
	}
	return b.String(), nil
}

// Parent returns p without its last token, or nil if p has one token.
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return nil
	}
	return append(Path(nil), p[:len(p)-1]...)
}

// Last returns the last token of p.  p must not be empty.
func (p Path) Last() Token {
	return p[len(p)-1]
}

// Append returns a new path with toks added to the end of p.
func (p Path) Append(toks ...Token) Path {
	res := make(Path, 0, len(p)+len(toks))
	res = append(res, p...)
	return append(res, toks...)
}

// Compare orders paths token by token; integer tokens order before keys
// and a path orders before any path it prefixes.
func (p Path) Compare(other Path) int {
	for i := range min(len(p), len(other)) {
		if c := compareTokens(p[i], other[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(p), len(other))
}

func (p Path) Equal(other Path) bool {
	return p.Compare(other) == 0
}

func compareTokens(a, b Token) int {
	switch {
	case a.isInt && b.isInt:
		return cmp.Compare(a.index, b.index)
	case a.isInt:
		return -1
	case b.isInt:
		return 1
	default:
		return strings.Compare(a.key, b.key)
	}
}

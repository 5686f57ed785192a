package nested

import (
	"strconv"
)

// Token is one step of a Path: either a mapping key or an integer.
//
// A key token whose text is a decimal numeral ("0", "-1") still acts as an
// index when it is applied to a sequence; on a mapping it is always the
// literal key.
type Token struct {
	key   string
	index int
	isInt bool
}

// Key returns a key token.
func Key(k string) Token {
	return Token{key: k}
}

// Index returns an integer token.
func Index(i int) Token {
	return Token{index: i, isInt: true}
}

// IsInt reports whether t was built as an integer rather than a key.
func (t Token) IsInt() bool { return t.isInt }

// Int returns the integer of an integer token.
func (t Token) Int() (int, bool) {
	return t.index, t.isInt
}

// KeyString returns the key of a key token.
func (t Token) KeyString() (string, bool) {
	return t.key, !t.isInt
}

// String returns the text of the token: the key, or the decimal integer.
func (t Token) String() string {
	if t.isInt {
		return strconv.Itoa(t.index)
	}
	return t.key
}

func (t Token) empty() bool {
	return !t.isInt && t.key == ""
}

// IsIndexToken reports whether t can address a sequence element: it is an
// integer token, or a key consisting of an optional '-' followed by one or
// more decimal digits which fits in an int.
func IsIndexToken(t Token) bool {
	_, ok := indexOf(t)
	return ok
}

// ParseIndex returns the integer addressed by t.  It fails with
// ErrInvalidIndex when t is not an index token.
func ParseIndex(t Token) (int, error) {
	i, ok := indexOf(t)
	if !ok {
		return 0, newError(CodeInvalidIndex, "expected numeric index, got %q", t.key)
	}
	return i, nil
}

func indexOf(t Token) (int, bool) {
	if t.isInt {
		return t.index, true
	}
	s := t.key
	if s == "" {
		return 0, false
	}
	digits := s
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

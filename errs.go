package nested

import (
	"errors"
	"fmt"
)

// Code classifies a failure.  The set of codes is closed.
type Code int

const (
	CodeNone Code = iota
	CodeInvalidPath
	CodeEmptyPath
	CodeMissingKey
	CodeInvalidIndex
	CodeNonNavigable
	CodeImmutableContainer
	CodeOperationDisabled
	CodeInvalidFillStrategy
)

var (
	ErrInvalidPath         = errors.New("invalid path")
	ErrEmptyPath           = errors.New("empty path")
	ErrMissingKey          = errors.New("missing key")
	ErrInvalidIndex        = errors.New("invalid index")
	ErrNonNavigable        = errors.New("non-navigable value")
	ErrImmutableContainer  = errors.New("immutable container")
	ErrOperationDisabled   = errors.New("operation disabled")
	ErrInvalidFillStrategy = errors.New("invalid fill strategy")
)

var codeSentinels = map[Code]error{
	CodeInvalidPath:         ErrInvalidPath,
	CodeEmptyPath:           ErrEmptyPath,
	CodeMissingKey:          ErrMissingKey,
	CodeInvalidIndex:        ErrInvalidIndex,
	CodeNonNavigable:        ErrNonNavigable,
	CodeImmutableContainer:  ErrImmutableContainer,
	CodeOperationDisabled:   ErrOperationDisabled,
	CodeInvalidFillStrategy: ErrInvalidFillStrategy,
}

var codeNames = map[Code]string{
	CodeNone:                "NONE",
	CodeInvalidPath:         "INVALID_PATH",
	CodeEmptyPath:           "EMPTY_PATH",
	CodeMissingKey:          "MISSING_KEY",
	CodeInvalidIndex:        "INVALID_INDEX",
	CodeNonNavigable:        "NON_NAVIGABLE",
	CodeImmutableContainer:  "IMMUTABLE_CONTAINER",
	CodeOperationDisabled:   "OPERATION_DISABLED",
	CodeInvalidFillStrategy: "INVALID_FILL_STRATEGY",
}

func (c Code) String() string {
	s, ok := codeNames[c]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown code %d>", int(c))
}

func (c Code) MarshalText() ([]byte, error) {
	s, ok := codeNames[c]
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a code>", int(c))
	}
	return []byte(s), nil
}

func (c *Code) UnmarshalText(d []byte) error {
	for k, v := range codeNames {
		if v == string(d) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unrecognized code %q", d)
}

// Sentinel returns the sentinel error matched by errors.Is for c.
func (c Code) Sentinel() error {
	return codeSentinels[c]
}

// PathError reports a classified failure of a path operation.
type PathError struct {
	Op   string // get, set, delete, exists, normalize
	Path string // dotted rendering of the path, if it was normalized
	Code Code
	Msg  string
}

func (e *PathError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %q: %s: %s", e.Op, e.Path, e.Code.Sentinel(), e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code.Sentinel(), e.Msg)
}

// Unwrap returns the sentinel error for the code, so that
// errors.Is(err, ErrMissingKey) and friends work.
func (e *PathError) Unwrap() error {
	return e.Code.Sentinel()
}

func newError(code Code, format string, args ...any) *PathError {
	return &PathError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf returns the classification of err, or CodeNone if err is nil or
// unclassified.
func CodeOf(err error) Code {
	var pe *PathError
	if errors.As(err, &pe) {
		return pe.Code
	}
	for c, s := range codeSentinels {
		if errors.Is(err, s) {
			return c
		}
	}
	return CodeNone
}

// IsNotFound reports whether err means the path did not resolve to a value:
// a missing key, an unusable or out of range index, or a step into a leaf.
func IsNotFound(err error) bool {
	switch CodeOf(err) {
	case CodeMissingKey, CodeInvalidIndex, CodeNonNavigable:
		return true
	}
	return false
}

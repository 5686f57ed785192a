package nested

import "fmt"

// FillStrategy selects what Set synthesizes for missing steps and, when
// gap filling is permitted, for skipped sequence slots.
type FillStrategy int

const (
	// FillAuto creates a sequence when the next token is an index and a
	// mapping otherwise.  Sequences may only grow by exact append.
	FillAuto FillStrategy = iota
	// FillNone creates containers like FillAuto but permits writing past
	// the end of a sequence, filling skipped slots with nil.
	FillNone
	// FillMapping always creates mappings; skipped slots get fresh empty
	// mappings.
	FillMapping
	// FillSequence always creates sequences; skipped slots get fresh empty
	// sequences.
	FillSequence
)

func (f FillStrategy) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f FillStrategy) MarshalText() ([]byte, error) {
	switch f {
	case FillAuto:
		return []byte("auto"), nil
	case FillNone:
		return []byte("none"), nil
	case FillMapping:
		return []byte("mapping"), nil
	case FillSequence:
		return []byte("sequence"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a fill strategy>", int(f))
	}
}

func (f *FillStrategy) UnmarshalText(d []byte) error {
	pf, err := ParseFillStrategy(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// ParseFillStrategy accepts "auto", "none", "mapping" (or "dict") and
// "sequence" (or "list").
func ParseFillStrategy(v string) (FillStrategy, error) {
	f, ok := map[string]FillStrategy{
		"auto":     FillAuto,
		"none":     FillNone,
		"mapping":  FillMapping,
		"dict":     FillMapping,
		"sequence": FillSequence,
		"list":     FillSequence,
	}[v]
	if ok {
		return f, nil
	}
	return 0, newError(CodeInvalidFillStrategy, "invalid fill strategy %q, valid: auto, none, mapping, sequence", v)
}

func (f FillStrategy) valid() bool {
	switch f {
	case FillAuto, FillNone, FillMapping, FillSequence:
		return true
	}
	return false
}

// fillsGaps reports whether f lets a write skip past the end of a sequence.
func (f FillStrategy) fillsGaps() bool {
	return f != FillAuto
}

// newContainer returns the empty container that a missing step followed by
// next should become.
func newContainer(f FillStrategy, next Token) any {
	switch f {
	case FillMapping:
		return map[string]any{}
	case FillSequence:
		return []any{}
	}
	if IsIndexToken(next) {
		return []any{}
	}
	return map[string]any{}
}

// gapFiller returns a value for a skipped sequence slot.
func gapFiller(f FillStrategy) any {
	switch f {
	case FillMapping:
		return map[string]any{}
	case FillSequence:
		return []any{}
	}
	return nil
}

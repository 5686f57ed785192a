package encode

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/signadot/nested"
)

// Type refines nested.Kind for colouring: leaves are split by their
// JSON type.
type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	MappingType
	SequenceType
	TupleType
)

func Types() []Type {
	return []Type{NullType, BoolType, NumberType, StringType, MappingType, SequenceType, TupleType}
}

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:     "Null",
		BoolType:     "Bool",
		NumberType:   "Number",
		StringType:   "String",
		MappingType:  "Mapping",
		SequenceType: "Sequence",
		TupleType:    "Tuple",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// TypeOf classifies v.  Leaves which are neither null, bool, nor a string
// count as numbers.
func TypeOf(v any) Type {
	switch nested.KindOf(v) {
	case nested.MappingKind:
		return MappingType
	case nested.SequenceKind:
		return SequenceType
	case nested.TupleKind:
		return TupleType
	}
	switch v.(type) {
	case nil:
		return NullType
	case bool:
		return BoolType
	case string:
		return StringType
	default:
		return NumberType
	}
}

type Colorable struct {
	Type Type
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	IndexColor
	SepColor
	ValueColor
	AddedColor
	RemovedColor
	HunkColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = AddedColor
		colors.Map[able] = color.GreenString
		able.Attr = RemovedColor
		colors.Map[able] = color.RedString
		able.Attr = HunkColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = BoolType
	colors.Map[able] = color.CyanString

	able.Type = StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = MappingType
	able.Attr = KeyColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able.Type = SequenceType
	able.Attr = IndexColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Type = TupleType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

// Plain returns colours which leave text unchanged.
func Plain() *Colors {
	return &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
}

// ForWriter returns NewColors if w is a terminal and Plain otherwise.
func ForWriter(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return Plain()
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t Type, a ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

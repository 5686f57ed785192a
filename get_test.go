package nested

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 5},
		},
		"items": []any{
			map[string]any{"name": "apple"},
			map[string]any{"name": "banana"},
		},
		"matrix": []any{[]any{1, 2}, []any{3, 4}},
		"tuple":  NewTuple("x", map[string]any{"y": 1}),
		"nil":    nil,
		"zero":   0,
		"0":      "string zero",
		"set":    map[string]struct{}{"k": {}},
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		path any
		want any
		code Code
	}{
		{name: "nested mapping", path: "a.b.c", want: 5},
		{name: "intermediate mapping", path: "a.b", want: map[string]any{"c": 5}},
		{name: "sequence index", path: "items.1.name", want: "banana"},
		{name: "negative index", path: "items.-1.name", want: "banana"},
		{name: "negative first", path: "items.-2.name", want: "apple"},
		{name: "nested sequences", path: "matrix.1.0", want: 3},
		{name: "token sequence", path: []any{"items", 0, "name"}, want: "apple"},
		{name: "numeral key on mapping", path: "0", want: "string zero"},
		{name: "int token on string mapping", path: []any{0}, want: "string zero"},
		{name: "tuple element", path: "tuple.0", want: "x"},
		{name: "through tuple", path: "tuple.-1.y", want: 1},
		{name: "nil value", path: "nil", want: nil},
		{name: "falsy value", path: "zero", want: 0},
		{name: "missing key", path: "a.b.d", code: CodeMissingKey},
		{name: "missing top key", path: "nope", code: CodeMissingKey},
		{name: "out of range", path: "items.5.name", code: CodeInvalidIndex},
		{name: "negative out of range", path: "items.-5.name", code: CodeInvalidIndex},
		{name: "key on sequence", path: "items.name", code: CodeInvalidIndex},
		{name: "into leaf", path: "a.b.c.d", code: CodeNonNavigable},
		{name: "into nil", path: "nil.x", code: CodeNonNavigable},
		{name: "into set", path: "set.k", code: CodeNonNavigable},
		{name: "empty path", path: "", code: CodeEmptyPath},
		{name: "bad element", path: []any{"a", 2.5}, code: CodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := sampleDoc()
			var (
				got any
				err error
			)
			switch p := tt.path.(type) {
			case string:
				got, err = Get(root, p)
			case []any:
				got, err = Get(root, p)
			default:
				t.Fatalf("unexpected path type %T", p)
			}
			if tt.code != CodeNone {
				if CodeOf(err) != tt.code {
					t.Fatalf("got error %v, want code %s", err, tt.code)
				}
				if !errors.Is(err, tt.code.Sentinel()) {
					t.Errorf("errors.Is(%v, %v) is false", err, tt.code.Sentinel())
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Get mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetAnyKeyedMapping(t *testing.T) {
	root := map[any]any{
		0:   "int zero",
		"0": "string zero",
	}
	got, err := Get(root, []any{0})
	if err != nil {
		t.Fatal(err)
	}
	if got != "int zero" {
		t.Errorf("int token got %v", got)
	}
	got, err = Get(root, "0")
	if err != nil {
		t.Fatal(err)
	}
	if got != "string zero" {
		t.Errorf("string token got %v", got)
	}
}

func TestGetPointerSequence(t *testing.T) {
	items := []any{"a", "b"}
	got, err := Get(&items, "-1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "b" {
		t.Errorf("got %v", got)
	}
}

func TestGetOr(t *testing.T) {
	root := sampleDoc()
	tests := []struct {
		name string
		path string
		want any
	}{
		{name: "present", path: "a.b.c", want: 5},
		{name: "present nil", path: "nil", want: nil},
		{name: "missing key", path: "a.b.d", want: 99},
		{name: "out of range", path: "items.-5.name", want: 99},
		{name: "into leaf", path: "a.b.c.d", want: 99},
		{name: "key on sequence", path: "items.x", want: 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetOr(root, tt.path, 99)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GetOr mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if _, err := GetOr(root, "a..b", 99); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("malformed path: got %v", err)
	}
}

func TestExists(t *testing.T) {
	root := sampleDoc()
	tests := []struct {
		path string
		want bool
	}{
		{path: "a.b.c", want: true},
		{path: "a.b.d"},
		{path: "items.-1.name", want: true},
		{path: "items.-5.name"},
		{path: "items.5.name"},
		{path: "items.0", want: true},
		{path: "nil", want: true},
		{path: "nil.x"},
		{path: "tuple.1.y", want: true},
		{path: "items.name"},
	}
	for _, tt := range tests {
		got, err := Exists(root, tt.path)
		if err != nil {
			t.Fatalf("Exists(%q): %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
	for _, bad := range []string{"", ".", "a..b"} {
		if _, err := Exists(root, bad); !errors.Is(err, ErrEmptyPath) {
			t.Errorf("Exists(%q) error = %v, want ErrEmptyPath", bad, err)
		}
	}
	if _, err := Exists(root, []any{struct{}{}}); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("bad element: got %v", err)
	}
}

func TestGetDoesNotMutate(t *testing.T) {
	root := sampleDoc()
	before := sampleDoc()
	for _, p := range []string{"a.b.c", "items.-1.name", "a.x.y", "items.9"} {
		_, _ = Get(root, p)
		_, _ = Exists(root, p)
	}
	if diff := cmp.Diff(before, root, cmp.AllowUnexported(Tuple{})); diff != "" {
		t.Errorf("read operations mutated root (-want +got):\n%s", diff)
	}
}

func TestGetMaxDepthOption(t *testing.T) {
	if _, err := Get(sampleDoc(), "a.b.c", MaxDepth(2)); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("got %v", err)
	}
}

func TestPathErrorFields(t *testing.T) {
	_, err := Get(sampleDoc(), "a.b.d")
	var pe *PathError
	if !errors.As(err, &pe) {
		t.Fatalf("not a *PathError: %v", err)
	}
	if pe.Op != "get" || pe.Path != "a.b.d" || pe.Code != CodeMissingKey {
		t.Errorf("unexpected fields %+v", pe)
	}
}

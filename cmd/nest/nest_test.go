package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nested"
	"github.com/signadot/nested/format"
)

func newMain(f format.Format) *MainConfig {
	return &MainConfig{InFormat: &f, profile: &Profile{}}
}

func readTestDoc(t *testing.T, cfg *MainConfig, src string) *document {
	t.Helper()
	doc, err := cfg.readDoc(strings.NewReader(src), "-")
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func decodeJSON(t *testing.T, d []byte) any {
	t.Helper()
	v, err := format.Decode(d, format.JSONFormat)
	if err != nil {
		t.Fatalf("%v in %q", err, d)
	}
	return v
}

const sample = `{"a": {"b": [1, 2]}, "name": "svc"}`

func TestGetDoc(t *testing.T) {
	tests := []struct {
		name string
		path string
		def  *string
		want string
		code nested.Code
	}{
		{name: "leaf", path: "name", want: "\"svc\"\n"},
		{name: "negative", path: "a.b.-1", want: "2\n"},
		{name: "pointer", path: "/a/b/0", want: "1\n"},
		{name: "missing", path: "a.c", code: nested.CodeMissingKey},
		{name: "default", path: "a.c", def: ptr("x"), want: "\"x\"\n"},
		{name: "default unused", path: "name", def: ptr("x"), want: "\"svc\"\n"},
		{name: "empty", path: "", code: nested.CodeEmptyPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &GetConfig{MainConfig: newMain(format.JSONFormat)}
			if tt.def != nil {
				cfg.hasDefault = true
				cfg.Default = *tt.def
			}
			doc := readTestDoc(t, cfg.MainConfig, sample)
			var buf bytes.Buffer
			err := getDoc(cfg, &buf, doc, tt.path)
			if tt.code != nested.CodeNone {
				if got := nested.CodeOf(err); got != tt.code {
					t.Fatalf("code = %s, want %s (err %v)", got, tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestExistsDoc(t *testing.T) {
	cfg := &ExistsConfig{MainConfig: newMain(format.JSONFormat)}
	doc := readTestDoc(t, cfg.MainConfig, sample)
	for _, tt := range []struct {
		path string
		want bool
	}{
		{"a.b.1", true},
		{"a.b.2", false},
		{"name.x", false},
	} {
		var buf bytes.Buffer
		ok, err := existsDoc(cfg, &buf, doc, tt.path)
		if err != nil {
			t.Fatal(err)
		}
		if ok != tt.want {
			t.Errorf("%s: got %t", tt.path, ok)
		}
		if want := fmt.Sprintln(tt.want); buf.String() != want {
			t.Errorf("%s: printed %q", tt.path, buf.String())
		}
	}
	cfg.Quiet = true
	var buf bytes.Buffer
	if _, err := existsDoc(cfg, &buf, doc, "a"); err != nil || buf.Len() != 0 {
		t.Errorf("quiet printed %q, err %v", buf.String(), err)
	}
}

func TestSetDoc(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		path  string
		value string
		cfg   func(*SetConfig)
		want  any
		code  nested.Code
	}{
		{
			name:  "replace",
			src:   sample,
			path:  "name",
			value: "other",
			want:  map[string]any{"a": map[string]any{"b": []any{int64(1), int64(2)}}, "name": "other"},
		},
		{
			name:  "append",
			src:   sample,
			path:  "a.b.2",
			value: "{x: 1}",
			want: map[string]any{
				"a":    map[string]any{"b": []any{int64(1), int64(2), map[string]any{"x": int64(1)}}},
				"name": "svc",
			},
		},
		{
			name:  "missing intermediate",
			src:   sample,
			path:  "a.x.y",
			value: "1",
			code:  nested.CodeMissingKey,
		},
		{
			name:  "create",
			src:   sample,
			path:  "a.x.y",
			value: "1",
			cfg: func(c *SetConfig) {
				c.createSet = true
				c.Create = true
			},
			want: map[string]any{
				"a":    map[string]any{"b": []any{int64(1), int64(2)}, "x": map[string]any{"y": int64(1)}},
				"name": "svc",
			},
		},
		{
			name:  "string",
			src:   sample,
			path:  "name",
			value: "3",
			cfg:   func(c *SetConfig) { c.String = true },
			want:  map[string]any{"a": map[string]any{"b": []any{int64(1), int64(2)}}, "name": "3"},
		},
		{
			name:  "expand",
			src:   sample,
			path:  "name",
			value: "$[name]-2",
			cfg: func(c *SetConfig) {
				c.String = true
				c.Expand = true
			},
			want: map[string]any{"a": map[string]any{"b": []any{int64(1), int64(2)}}, "name": "svc-2"},
		},
		{
			name:  "expression",
			src:   sample,
			path:  "count",
			value: "len(a.b)",
			cfg:   func(c *SetConfig) { c.Expr = true },
			want: map[string]any{
				"a":     map[string]any{"b": []any{int64(1), int64(2)}},
				"name":  "svc",
				"count": int64(2),
			},
		},
		{
			name:  "sequence root grows",
			src:   `[1, 2]`,
			path:  "2",
			value: "3",
			want:  []any{int64(1), int64(2), int64(3)},
		},
		{
			name:  "sparse",
			src:   `[1]`,
			path:  "3",
			value: "3",
			code:  nested.CodeInvalidIndex,
		},
		{
			name:  "gap fill",
			src:   `[1]`,
			path:  "3",
			value: "3",
			cfg: func(c *SetConfig) {
				c.createSet = true
				c.Create = true
				f := nested.FillNone
				c.Fill = &f
			},
			want: []any{int64(1), nil, nil, int64(3)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &SetConfig{MainConfig: newMain(format.JSONFormat)}
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			doc := readTestDoc(t, cfg.MainConfig, tt.src)
			var buf bytes.Buffer
			err := setDoc(cfg, &buf, doc, tt.path, tt.value)
			if tt.code != nested.CodeNone {
				if got := nested.CodeOf(err); got != tt.code {
					t.Fatalf("code = %s, want %s (err %v)", got, tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, decodeJSON(t, buf.Bytes())); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetDocPatch(t *testing.T) {
	cfg := &SetConfig{MainConfig: newMain(format.JSONFormat), Patch: true}
	doc := readTestDoc(t, cfg.MainConfig, sample)
	var buf bytes.Buffer
	if err := setDoc(cfg, &buf, doc, "a.c", "3"); err != nil {
		t.Fatal(err)
	}
	want := `[{"op":"add","path":"/a/c","value":3}]` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSetDocDiff(t *testing.T) {
	cfg := &SetConfig{MainConfig: newMain(format.JSONFormat), Diff: true}
	doc := readTestDoc(t, cfg.MainConfig, `{"a": 1}`)
	var buf bytes.Buffer
	if err := setDoc(cfg, &buf, doc, "a", "2"); err != nil {
		t.Fatal(err)
	}
	want := "@@ -1,3 +1,3 @@\n {\n-  \"a\": 1\n+  \"a\": 2\n }\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSetDocUsage(t *testing.T) {
	cfg := &SetConfig{MainConfig: newMain(format.JSONFormat), Diff: true, Patch: true}
	doc := readTestDoc(t, cfg.MainConfig, sample)
	err := setDoc(cfg, &bytes.Buffer{}, doc, "a", "1")
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}

func TestSetDocImmutable(t *testing.T) {
	cfg := &SetConfig{MainConfig: newMain(format.HCLFormat)}
	doc := readTestDoc(t, cfg.MainConfig, "a = 1\nb = [1, 2]\n")
	err := setDoc(cfg, &bytes.Buffer{}, doc, "b.0", "5")
	if got := nested.CodeOf(err); got != nested.CodeImmutableContainer {
		t.Errorf("code = %s (err %v)", got, err)
	}
	if got := cfg.outFormat(doc.format); got != format.YAMLFormat {
		t.Errorf("hcl input writes %s", got)
	}
}

func TestDeleteDoc(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		path  string
		seq   bool
		patch bool
		want  any
		code  nested.Code
	}{
		{
			name: "key",
			src:  sample,
			path: "name",
			want: map[string]any{"a": map[string]any{"b": []any{int64(1), int64(2)}}},
		},
		{
			name: "sequence disabled",
			src:  sample,
			path: "a.b.0",
			code: nested.CodeOperationDisabled,
		},
		{
			name: "sequence",
			src:  sample,
			path: "a.b.0",
			seq:  true,
			want: map[string]any{"a": map[string]any{"b": []any{int64(2)}}, "name": "svc"},
		},
		{
			name: "sequence root",
			src:  `[1, 2, 3]`,
			path: "-1",
			seq:  true,
			want: []any{int64(1), int64(2)},
		},
		{
			name:  "patch",
			src:   sample,
			path:  "a.b.-1",
			seq:   true,
			patch: true,
			want:  []any{map[string]any{"op": "remove", "path": "/a/b/1"}},
		},
		{
			name: "missing",
			src:  sample,
			path: "nope",
			code: nested.CodeMissingKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &DeleteConfig{MainConfig: newMain(format.JSONFormat), Seq: tt.seq, seqSet: tt.seq, Patch: tt.patch}
			doc := readTestDoc(t, cfg.MainConfig, tt.src)
			var buf bytes.Buffer
			err := deleteDoc(cfg, &buf, doc, tt.path)
			if tt.code != nested.CodeNone {
				if got := nested.CodeOf(err); got != tt.code {
					t.Fatalf("code = %s, want %s (err %v)", got, tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, decodeJSON(t, buf.Bytes())); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestListings(t *testing.T) {
	src := "a:\n  b: 1\nc: [x, y]\n"
	mc := newMain(format.YAMLFormat)
	doc := readTestDoc(t, mc, src)

	var buf bytes.Buffer
	if err := pathsDoc(&PathsConfig{MainConfig: mc}, &buf, doc); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("a.b\nc.0\nc.1\n", buf.String()); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := pathsDoc(&PathsConfig{MainConfig: mc, Pointer: true}, &buf, doc); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("/a/b\n/c/0\n/c/1\n", buf.String()); diff != "" {
		t.Errorf("pointers (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := leavesDoc(mc, &buf, doc); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("a.b: 1\nc.0: x\nc.1: y\n", buf.String()); diff != "" {
		t.Errorf("leaves (-want +got):\n%s", diff)
	}

	buf.Reset()
	j := format.JSONFormat
	mc.OutFormat = &j
	if err := depthDoc(mc, &buf, doc); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"depth": int64(2), "leaves": int64(3)}
	if diff := cmp.Diff(want, decodeJSON(t, buf.Bytes())); diff != "" {
		t.Errorf("depth (-want +got):\n%s", diff)
	}
}

func TestEvalDoc(t *testing.T) {
	mc := newMain(format.JSONFormat)
	doc := readTestDoc(t, mc, sample)
	var buf bytes.Buffer
	if err := evalDoc(mc, &buf, doc, `name + ":" + string(len(a.b))`); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("\"svc:2\"\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFormats(t *testing.T) {
	cfg := &MainConfig{profile: &Profile{}}
	if got := cfg.inFormat("x.json"); got != format.JSONFormat {
		t.Errorf("suffix gave %s", got)
	}
	if got := cfg.inFormat("-"); got != format.YAMLFormat {
		t.Errorf("stdin gave %s", got)
	}
	cfg.profile.Format = ptr("json")
	if got := cfg.inFormat("-"); got != format.JSONFormat {
		t.Errorf("profile gave %s", got)
	}
	if got := cfg.outFormat(format.YAMLFormat); got != format.JSONFormat {
		t.Errorf("profile out gave %s", got)
	}
	cfg.Y = true
	if got := cfg.inFormat("x.json"); got != format.YAMLFormat {
		t.Errorf("-y gave %s", got)
	}
	h := format.HCLFormat
	cfg.InFormat = &h
	if got := cfg.inFormat("x.json"); got != format.HCLFormat {
		t.Errorf("-I gave %s", got)
	}
}

func TestFileArg(t *testing.T) {
	if f, err := fileArg([]string{"p"}, 1, ""); err != nil || f != "-" {
		t.Errorf("got %q, %v", f, err)
	}
	if f, err := fileArg([]string{"p", "x.yaml"}, 1, ""); err != nil || f != "x.yaml" {
		t.Errorf("got %q, %v", f, err)
	}
	if _, err := fileArg([]string{"p", "a", "b"}, 1, "too many"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}

func TestReport(t *testing.T) {
	if report(nil) != nil {
		t.Error("nil error reported")
	}
	plain := errors.New("plain")
	if report(plain) != plain {
		t.Error("plain error changed")
	}
	_, err := nested.Get(map[string]any{}, "x")
	got := report(err)
	if got == nil {
		t.Fatal("path error dropped")
	}
	var pe *nested.PathError
	if errors.As(got, &pe) {
		t.Errorf("path error not converted: %v", got)
	}
}

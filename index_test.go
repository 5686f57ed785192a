package nested

import (
	"strings"
	"testing"
)

func TestResolveRead(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		tok   Token
		want  int
		found bool
		err   bool
	}{
		{name: "first", n: 3, tok: Key("0"), want: 0, found: true},
		{name: "last", n: 3, tok: Key("2"), want: 2, found: true},
		{name: "past end", n: 3, tok: Key("3")},
		{name: "minus one", n: 3, tok: Key("-1"), want: 2, found: true},
		{name: "minus len", n: 3, tok: Key("-3"), want: 0, found: true},
		{name: "too negative", n: 3, tok: Key("-4")},
		{name: "empty negative", n: 0, tok: Index(-1)},
		{name: "empty zero", n: 0, tok: Index(0)},
		{name: "not an index", n: 3, tok: Key("x"), err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := resolveRead(tt.n, tt.tok)
			if tt.err {
				if CodeOf(err) != CodeInvalidIndex {
					t.Fatalf("got error %v, want invalid index", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if found && got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveWrite(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		tok      Token
		gapFill  bool
		maxIndex int
		want     int
		errSub   string
	}{
		{name: "replace", n: 3, tok: Key("1"), want: 1},
		{name: "append", n: 3, tok: Key("3"), want: 3},
		{name: "append to empty", n: 0, tok: Index(0), want: 0},
		{name: "sparse", n: 3, tok: Key("5"), errSub: "no sparse lists"},
		{name: "sparse with gap fill", n: 3, tok: Key("5"), gapFill: true, want: 5},
		{name: "negative existing", n: 3, tok: Key("-1"), want: 2},
		{name: "negative first", n: 3, tok: Key("-3"), want: 0},
		{name: "negative out of range", n: 3, tok: Key("-4"), errSub: "out of bounds"},
		{name: "negative on empty", n: 0, tok: Key("-1"), errSub: "out of bounds"},
		{name: "negative ignores gap fill", n: 3, tok: Key("-5"), gapFill: true, errSub: "out of bounds"},
		{name: "over max", n: 0, tok: Key("11"), gapFill: true, maxIndex: 10, errSub: "exceeds maximum"},
		{name: "at max", n: 0, tok: Key("10"), gapFill: true, maxIndex: 10, want: 10},
		{name: "not an index", n: 3, tok: Key("name"), errSub: "numeric index"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxIndex := tt.maxIndex
			if maxIndex == 0 {
				maxIndex = DefaultMaxIndex
			}
			got, err := resolveWrite(tt.n, tt.tok, tt.gapFill, maxIndex)
			if tt.errSub != "" {
				if CodeOf(err) != CodeInvalidIndex {
					t.Fatalf("got error %v, want invalid index", err)
				}
				if !strings.Contains(err.Error(), tt.errSub) {
					t.Errorf("error %q does not mention %q", err, tt.errSub)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

package eval

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/nested"
	"github.com/signadot/nested/introspect"
)

func exprOpts(doc any) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			return nested.Get(doc, params[0].(string))
		},
			new(func(string) any)),
		expr.Function("getor", func(params ...any) (any, error) {
			return nested.GetOr(doc, params[0].(string), params[1])
		},
			new(func(string, any) any)),
		expr.Function("exists", func(params ...any) (any, error) {
			return nested.Exists(doc, params[0].(string))
		},
			new(func(string) bool)),
		expr.Function("paths", func(params ...any) (any, error) {
			ps := introspect.Paths(params[0])
			res := make([]any, len(ps))
			for i, p := range ps {
				res[i] = p.String()
			}
			return res, nil
		},
			new(func(any) []any)),
		expr.Function("depth", func(params ...any) (any, error) {
			return introspect.Depth(params[0]), nil
		},
			new(func(any) int)),
		expr.Function("leaves", func(params ...any) (any, error) {
			return introspect.CountLeaves(params[0]), nil
		},
			new(func(any) int)),
		expr.Function("kind", func(params ...any) (any, error) {
			return nested.KindOf(params[0]).String(), nil
		},
			new(func(any) string)),
		expr.Function("tuple", func(params ...any) (any, error) {
			items, ok := params[0].([]any)
			if !ok {
				return nil, fmt.Errorf("tuple expects a list, got %T", params[0])
			}
			return nested.NewTuple(items...), nil
		},
			new(func(any) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

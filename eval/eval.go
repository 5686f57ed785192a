package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/nested/debug"
)

// Env holds the variables visible to expressions.
type Env = map[string]any

// NewEnv returns an environment in which doc is bound to "doc" and, when
// doc is a mapping with string keys, each top level key is bound to its
// value.  "doc" wins over a top level key of the same name.
func NewEnv(doc any) Env {
	env := Env{}
	switch m := doc.(type) {
	case map[string]any:
		for k, v := range m {
			env[k] = v
		}
	case map[any]any:
		for k, v := range m {
			if s, ok := k.(string); ok {
				env[s] = v
			}
		}
	}
	env["doc"] = doc
	return env
}

// Value evaluates src against doc.
func Value(src string, doc any) (any, error) {
	return Eval(src, NewEnv(doc), doc)
}

// Eval compiles src and runs it in env.  Path functions such as getpath
// resolve against doc.  Undefined variables evaluate to nil.
func Eval(src string, env Env, doc any) (any, error) {
	prg, err := compile(src, doc)
	if err != nil {
		return nil, err
	}
	res, err := vm.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", src, res)
	}
	return res, nil
}

func compile(src string, doc any) (*vm.Program, error) {
	opts := append(exprOpts(doc), expr.AllowUndefinedVariables())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return prg, nil
}

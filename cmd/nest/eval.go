package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nested/eval"
)

func evalExpr(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	file, err := fileArg(args, 1, "eval takes an expression and at most one file")
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(cc.In, file)
	if err != nil {
		return err
	}
	return report(evalDoc(cfg.MainConfig, cc.Out, doc, args[0]))
}

func evalDoc(cfg *MainConfig, w io.Writer, doc *document, src string) error {
	v, err := eval.Value(src, doc.root)
	if err != nil {
		return err
	}
	return cfg.writeValue(w, doc, v)
}

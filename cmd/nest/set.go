package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nested/eval"
	"github.com/signadot/nested/jsonpatch"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	cfg.createSet = optSet(cfg.Set, "c")
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	file, err := fileArg(args, 2, "set takes a path, a value and at most one file")
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(cc.In, file)
	if err != nil {
		return err
	}
	return report(setDoc(cfg, cc.Out, doc, args[0], args[1]))
}

func setDoc(cfg *SetConfig, w io.Writer, doc *document, arg, value string) error {
	if count(cfg.Diff, cfg.Patch) > 1 {
		return fmt.Errorf("%w: -diff and -patch are exclusive", cli.ErrUsage)
	}
	if count(cfg.Expr, cfg.String) > 1 {
		return fmt.Errorf("%w: -e and -s are exclusive", cli.ErrUsage)
	}
	path, err := parsePath(arg)
	if err != nil {
		return err
	}
	v, err := cfg.value(doc, value)
	if err != nil {
		return err
	}
	m := mutation{diff: cfg.Diff, patch: cfg.Patch}
	before, err := m.before(cfg.MainConfig, doc)
	if err != nil {
		return err
	}
	root, sync := seqRoot(doc)
	ops, err := jsonpatch.SetOps(root, path, v, cfg.pathOpts()...)
	if err != nil {
		return err
	}
	sync()
	theLog.Debug("set", "path", path, "ops", len(ops))
	return m.write(cfg.MainConfig, w, doc, before, ops)
}

// value computes the value to set from the command line argument.
func (cfg *SetConfig) value(doc *document, arg string) (any, error) {
	if cfg.String {
		if cfg.Expand {
			return eval.ExpandString(arg, eval.NewEnv(doc.root), doc.root)
		}
		return arg, nil
	}
	if cfg.Expr {
		return eval.Value(arg, doc.root)
	}
	v, err := decodeValue(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid value: %w", cli.ErrUsage, err)
	}
	if cfg.Expand {
		return eval.ExpandAny(v, eval.NewEnv(doc.root), doc.root)
	}
	return v, nil
}

package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nested"
)

func exists(cfg *ExistsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Exists.Parse(cc, args)
	if err != nil {
		cfg.Exists.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: exists requires one argument, a path", cli.ErrUsage)
	}
	file, err := fileArg(args, 1, "exists takes a path and at most one file")
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(cc.In, file)
	if err != nil {
		return err
	}
	ok, err := existsDoc(cfg, cc.Out, doc, args[0])
	if err != nil {
		return report(err)
	}
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func existsDoc(cfg *ExistsConfig, w io.Writer, doc *document, arg string) (bool, error) {
	path, err := parsePath(arg)
	if err != nil {
		return false, err
	}
	ok, err := nested.Exists(doc.root, path, cfg.pathOpts()...)
	if err != nil {
		return false, err
	}
	if !cfg.Quiet {
		if _, err := fmt.Fprintln(w, ok); err != nil {
			return false, err
		}
	}
	return ok, nil
}

package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nested/jsonpatch"
)

func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		cfg.Delete.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	cfg.seqSet = optSet(cfg.Delete, "seq")
	if len(args) == 0 {
		return fmt.Errorf("%w: delete requires one argument, a path", cli.ErrUsage)
	}
	file, err := fileArg(args, 1, "delete takes a path and at most one file")
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(cc.In, file)
	if err != nil {
		return err
	}
	return report(deleteDoc(cfg, cc.Out, doc, args[0]))
}

func deleteDoc(cfg *DeleteConfig, w io.Writer, doc *document, arg string) error {
	if count(cfg.Diff, cfg.Patch) > 1 {
		return fmt.Errorf("%w: -diff and -patch are exclusive", cli.ErrUsage)
	}
	path, err := parsePath(arg)
	if err != nil {
		return err
	}
	m := mutation{diff: cfg.Diff, patch: cfg.Patch}
	before, err := m.before(cfg.MainConfig, doc)
	if err != nil {
		return err
	}
	root, sync := seqRoot(doc)
	removed, ops, err := jsonpatch.DeleteOps(root, path, cfg.pathOpts()...)
	if err != nil {
		return err
	}
	sync()
	theLog.Debug("delete", "path", path, "removed", removed)
	return m.write(cfg.MainConfig, w, doc, before, ops)
}

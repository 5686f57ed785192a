package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nested/encode"
	"github.com/signadot/nested/introspect"
)

func paths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		cfg.Paths.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file, err := fileArg(args, 0, "paths takes at most one file")
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(cc.In, file)
	if err != nil {
		return err
	}
	return pathsDoc(cfg, cc.Out, doc)
}

func pathsDoc(cfg *PathsConfig, w io.Writer, doc *document) error {
	c := cfg.colors(w)
	for _, p := range introspect.Paths(doc.root) {
		s := encode.PathString(p, c)
		if cfg.Pointer {
			s = p.Pointer()
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func leaves(cfg *LeavesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Leaves.Parse(cc, args)
	if err != nil {
		cfg.Leaves.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file, err := fileArg(args, 0, "leaves takes at most one file")
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(cc.In, file)
	if err != nil {
		return err
	}
	return leavesDoc(cfg.MainConfig, cc.Out, doc)
}

func leavesDoc(cfg *MainConfig, w io.Writer, doc *document) error {
	c := cfg.colors(w)
	for _, l := range introspect.Leaves(doc.root) {
		if _, err := fmt.Fprintln(w, encode.LeafLine(l.Path, l.Value, c)); err != nil {
			return err
		}
	}
	return nil
}

func depth(cfg *DepthConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Depth.Parse(cc, args)
	if err != nil {
		cfg.Depth.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file, err := fileArg(args, 0, "depth takes at most one file")
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(cc.In, file)
	if err != nil {
		return err
	}
	return depthDoc(cfg.MainConfig, cc.Out, doc)
}

func depthDoc(cfg *MainConfig, w io.Writer, doc *document) error {
	res := map[string]any{
		"depth":  introspect.Depth(doc.root),
		"leaves": introspect.CountLeaves(doc.root),
	}
	return cfg.writeValue(w, doc, res)
}

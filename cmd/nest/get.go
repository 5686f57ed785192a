package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nested"
	"github.com/signadot/nested/format"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	cfg.hasDefault = optSet(cfg.Get, "default")
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	file, err := fileArg(args, 1, "get takes a path and at most one file")
	if err != nil {
		return err
	}
	doc, err := cfg.readDoc(cc.In, file)
	if err != nil {
		return err
	}
	return report(getDoc(cfg, cc.Out, doc, args[0]))
}

func getDoc(cfg *GetConfig, w io.Writer, doc *document, arg string) error {
	path, err := parsePath(arg)
	if err != nil {
		return err
	}
	var v any
	if cfg.hasDefault {
		def, derr := decodeValue(cfg.Default)
		if derr != nil {
			return fmt.Errorf("%w: invalid default: %w", cli.ErrUsage, derr)
		}
		v, err = nested.GetOr(doc.root, path, def, cfg.pathOpts()...)
	} else {
		v, err = nested.Get(doc.root, path, cfg.pathOpts()...)
	}
	if err != nil {
		return err
	}
	theLog.Debug("get", "path", path, "kind", nested.KindOf(v))
	return cfg.writeValue(w, doc, v)
}

// parsePath accepts dotted paths and, when arg starts with '/', JSON
// pointers.
func parsePath(arg string) (nested.Path, error) {
	if strings.HasPrefix(arg, "/") {
		return nested.ParsePointer(arg)
	}
	return nested.Parse(arg)
}

// decodeValue reads a command line value as a YAML document, so that
// "3" is a number and "{a: 1}" a mapping.
func decodeValue(s string) (any, error) {
	return format.Decode([]byte(s), format.YAMLFormat)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nested"
	"github.com/signadot/nested/format"
)

func nestMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if cfg.OutFormat != nil && !cfg.OutFormat.CanEncode() {
		return fmt.Errorf("%w: cannot write %s", cli.ErrUsage, *cfg.OutFormat)
	}
	setVerbose(cfg.Verbose)
	cfg.colorSet = optSet(cfg.Main, "color")
	cfg.profile, err = loadProfile(cfg.Profile)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// document is a decoded input along with where it came from.
type document struct {
	name   string
	format format.Format
	root   any
}

// fileArg returns the optional file argument following n required ones.
func fileArg(args []string, n int, what string) (string, error) {
	switch len(args) {
	case n:
		return "-", nil
	case n + 1:
		return args[n], nil
	default:
		return "", fmt.Errorf("%w: %s", cli.ErrUsage, what)
	}
}

// readDoc decodes name, reading in when name is "-".
func (cfg *MainConfig) readDoc(in io.Reader, name string) (*document, error) {
	var r io.Reader
	if name == "-" {
		r = in
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}
	fmat := cfg.inFormat(name)
	v, err := format.Read(r, fmat)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	theLog.Debug("read document", "file", name, "format", fmat)
	return &document{name: name, format: fmat, root: v}, nil
}

func (cfg *MainConfig) writeValue(w io.Writer, doc *document, v any) error {
	if err := format.Encode(w, v, cfg.outFormat(doc.format)); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// report logs a classified path error and turns it into exit status 1.
// Other errors are returned as is.
func report(err error) error {
	if err == nil {
		return nil
	}
	var pe *nested.PathError
	if !errors.As(err, &pe) {
		return err
	}
	theLog.Error(pe.Msg, "op", pe.Op, "path", pe.Path, "code", pe.Code)
	return cli.ExitCodeErr(1)
}

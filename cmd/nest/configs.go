package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nested"
	"github.com/signadot/nested/encode"
	"github.com/signadot/nested/format"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='colour output'"`
	Verbose bool   `cli:"name=v desc='log each operation'"`
	Profile string `cli:"name=config desc='HCL profile with default options (default $NEST_CONFIG)'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	// colorSet records whether -color was given, so that -color=false
	// overrides both the profile and terminal detection.
	colorSet bool
	profile  *Profile

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat returns the format selected by -j or -y.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return 0, false
}

// inFormat picks the format for reading name: -I, then -j/-y, then the
// file suffix, then the profile, then YAML.
func (cfg *MainConfig) inFormat(name string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if f, ok := format.FromFilename(name); ok {
		return f
	}
	if f, ok := cfg.profile.format(); ok {
		return f
	}
	return format.YAMLFormat
}

// outFormat picks the format for writing a document read in in: -O, then
// -j/-y, then the profile, then in if it can be encoded, then YAML.
func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if f, ok := cfg.profile.format(); ok {
		return f
	}
	if in.CanEncode() {
		return in
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.colorSet {
		if cfg.Color {
			return encode.NewColors()
		}
		return encode.Plain()
	}
	if cfg.profile != nil && cfg.profile.Color != nil {
		if *cfg.profile.Color {
			return encode.NewColors()
		}
		return encode.Plain()
	}
	return encode.ForWriter(w)
}

// pathOpts returns the profile options followed by opts, so that command
// line options take precedence.
func (cfg *MainConfig) pathOpts(opts ...nested.Option) []nested.Option {
	return append(cfg.profile.options(), opts...)
}

type GetConfig struct {
	*MainConfig

	Default    string `cli:"name=default desc='value (yaml) to print when the path does not resolve'"`
	hasDefault bool

	Get *cli.Command
}

type ExistsConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='print nothing, only set the exit code'"`

	Exists *cli.Command
}

type SetConfig struct {
	*MainConfig

	Create bool   `cli:"name=c aliases=create desc='create missing containers'"`
	Expr   bool   `cli:"name=e desc='the value is an expression over the document'"`
	Expand bool   `cli:"name=x desc='expand $[expr] references in the value'"`
	String bool   `cli:"name=s desc='the value is a literal string'"`
	Diff   bool   `cli:"name=diff desc='print a diff instead of the document'"`
	Patch  bool   `cli:"name=patch desc='print a json patch instead of the document'"`
	Fill   *nested.FillStrategy
	// createSet is true when -c was given.
	createSet bool

	Set *cli.Command
}

func (cfg *SetConfig) fillFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := nested.ParseFillStrategy(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Fill = &f
		return f, nil
	})
}

func (cfg *SetConfig) pathOpts() []nested.Option {
	var opts []nested.Option
	if cfg.createSet {
		opts = append(opts, nested.Create(cfg.Create))
	}
	if cfg.Fill != nil {
		opts = append(opts, nested.Fill(*cfg.Fill))
	}
	return cfg.MainConfig.pathOpts(opts...)
}

type DeleteConfig struct {
	*MainConfig

	Seq    bool `cli:"name=seq desc='allow deleting sequence elements'"`
	Diff   bool `cli:"name=diff desc='print a diff instead of the document'"`
	Patch  bool `cli:"name=patch desc='print a json patch instead of the document'"`
	seqSet bool

	Delete *cli.Command
}

func (cfg *DeleteConfig) pathOpts() []nested.Option {
	var opts []nested.Option
	if cfg.seqSet {
		opts = append(opts, nested.AllowSequenceDelete(cfg.Seq))
	}
	return cfg.MainConfig.pathOpts(opts...)
}

type PathsConfig struct {
	*MainConfig

	Pointer bool `cli:"name=p desc='print json pointers'"`

	Paths *cli.Command
}

type LeavesConfig struct {
	*MainConfig

	Leaves *cli.Command
}

type DepthConfig struct {
	*MainConfig

	Depth *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

// optSet reports whether the option name of cmd was given.
func optSet(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	for _, opt := range cmd.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

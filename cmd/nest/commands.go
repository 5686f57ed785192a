package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: yaml/y, json/j, hcl/h",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "nest").
		WithSynopsis("nest [opts] command [opts]").
		WithDescription("nest reads and writes values at paths in nested documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nestMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			ExistsCommand(cfg),
			SetCommand(cfg),
			DeleteCommand(cfg),
			PathsCommand(cfg),
			LeavesCommand(cfg),
			DepthCommand(cfg),
			EvalCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-default v] <path> [file]").
		WithDescription("print the value at a path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ExistsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExistsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Exists, "exists").
		WithAliases("x", "ex").
		WithSynopsis("exists [-q] <path> [file]").
		WithDescription("report whether a path resolves, exiting 1 when it does not").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exists(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "fill",
		Description: "fill strategy: auto, none, mapping, sequence",
		Type:        cli.NamedFuncOpt(cfg.fillFunc(), "(strategy)"),
	})
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [opts] <path> <value> [file]").
		WithDescription("set the value at a path and print the document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func DeleteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeleteConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Delete, "delete").
		WithAliases("d", "del", "rm").
		WithSynopsis("delete [opts] <path> [file]").
		WithDescription("delete the value at a path and print the document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
}

func PathsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Paths, "paths").
		WithAliases("p", "ls").
		WithSynopsis("paths [-p] [file]").
		WithDescription("list the path of every leaf").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return paths(cfg, cc, args)
		})
}

func LeavesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LeavesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Leaves, "leaves").
		WithAliases("l").
		WithSynopsis("leaves [file]").
		WithDescription("list every leaf with its path").
		WithRun(func(cc *cli.Context, args []string) error {
			return leaves(cfg, cc, args)
		})
}

func DepthCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DepthConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Depth, "depth").
		WithSynopsis("depth [file]").
		WithDescription("print the nesting depth and leaf count of a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return depth(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithSynopsis("eval <expr> [file]").
		WithDescription("evaluate an expression over a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return evalExpr(cfg, cc, args)
		})
}

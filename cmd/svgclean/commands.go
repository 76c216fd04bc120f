package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: -1, Quote: "double"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "svgclean").
		WithSynopsis("svgclean [opts] command [opts]").
		WithDescription("svgclean removes redundant markup from SVG documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return svgcleanMain(cfg, cc, args)
		}).
		WithSubs(
			CleanCommand(cfg),
			DiffCommand(cfg),
			ListCommand(cfg),
			PassesCommand(cfg),
			BatchCommand(cfg))
}

func CleanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CleanConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, passOpts(&cfg.Passes)...)
	return cli.NewCommandAt(&cfg.Clean, "clean").
		WithAliases("c").
		WithSynopsis("clean [opts] <in> [-o out|-]").
		WithDescription("clean a document, reading stdin when <in> is -").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return clean(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, passOpts(&cfg.Passes)...)
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] <in>").
		WithDescription("show what cleaning changes in a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg, Where: "true"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, passOpts(&cfg.Passes)...)
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list [-where expr] [-raw] <in>").
		WithDescription("list the elements of a cleaned document matching an expr-lang predicate").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func PassesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PassesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Passes, "passes").
		WithAliases("p").
		WithSynopsis("passes").
		WithDescription("list the registered passes in pipeline order").
		WithRun(func(cc *cli.Context, args []string) error {
			return passes(cfg, cc, args)
		})
}

func BatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BatchConfig{MainConfig: mainCfg, Jobs: 4}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, passOpts(&cfg.Passes)...)
	return cli.NewCommandAt(&cfg.Batch, "batch").
		WithAliases("b").
		WithSynopsis("batch -outdir dir [-j n] files...").
		WithDescription("clean many documents concurrently").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return batch(cfg, cc, args)
		})
}

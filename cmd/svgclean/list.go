package main

import (
	"fmt"

	"github.com/signadot/svgclean"
	"github.com/signadot/svgclean/libdiff"
	"github.com/signadot/svgclean/query"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	in, err := oneArg("list", args)
	if err != nil {
		return err
	}
	q, err := query.Compile(cfg.Where)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	_, doc, err := readArg(cfg.MainConfig, cc, in)
	if err != nil {
		return err
	}
	if !cfg.Raw {
		opts, err := cfg.Passes.options(cfg.List)
		if err != nil {
			return err
		}
		if err := svgclean.Clean(doc, opts); err != nil {
			return fmt.Errorf("error cleaning %s: %w", in, err)
		}
	}
	nodes, err := query.Select(doc, q)
	if err != nil {
		return fmt.Errorf("error querying %s with %s: %w", in, q, err)
	}
	for _, n := range nodes {
		if _, err := fmt.Fprintf(cc.Out, "%s\t%s\n", n.Path(), libdiff.Signature(n)); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/signadot/svgclean/task"

	"github.com/scott-cotton/cli"
)

func passes(cfg *PassesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Passes.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: passes takes no arguments", cli.ErrUsage)
	}
	tw := tabwriter.NewWriter(cc.Out, 0, 4, 2, ' ', 0)
	for i, p := range task.Passes() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, p.Name, p.Doc)
	}
	return tw.Flush()
}

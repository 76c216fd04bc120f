package main

import (
	"fmt"

	"github.com/signadot/svgclean"
	"github.com/signadot/svgclean/encode"
	"github.com/signadot/svgclean/libdiff"
	"github.com/signadot/svgclean/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	in, err := oneArg("diff", args)
	if err != nil {
		return err
	}
	opts, err := cfg.Passes.options(cfg.Diff)
	if err != nil {
		return err
	}
	orig, doc, err := readArg(cfg.MainConfig, cc, in)
	if err != nil {
		return err
	}
	before, err := parse.Parse(orig, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", in, err)
	}
	if err := svgclean.Clean(doc, opts); err != nil {
		return fmt.Errorf("error cleaning %s: %w", in, err)
	}
	colored := cfg.useColor(cc.Out)
	if cfg.Elements {
		for _, c := range libdiff.Elements(before, doc) {
			if _, err := fmt.Fprintln(cc.Out, c.Op.Prefix()+libdiff.Signature(c.Node)); err != nil {
				return err
			}
		}
		return nil
	}
	q, _ := cfg.quote()
	// a line diff needs one element per line
	indent := max(cfg.Indent, 1)
	eo := []encode.EncodeOption{encode.Indent(indent), encode.Quote(q)}
	ls := libdiff.Lines(encode.EncodeString(before, eo...), encode.EncodeString(doc, eo...))
	if err := libdiff.Write(cc.Out, ls, cfg.Context, colored); err != nil {
		return err
	}
	if d, i := libdiff.Stats(ls); d+i > 0 {
		theLog.Info("diff", "in", in, "deleted", d, "inserted", i)
	}
	return nil
}

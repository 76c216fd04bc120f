package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/svgclean"

	"github.com/scott-cotton/cli"
)

func clean(cfg *CleanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Clean.Parse(cc, args)
	if err != nil {
		return err
	}
	in, err := oneArg("clean", args)
	if err != nil {
		return err
	}
	opts, err := cfg.Passes.options(cfg.Clean)
	if err != nil {
		return err
	}
	orig, doc, err := readArg(cfg.MainConfig, cc, in)
	if err != nil {
		return err
	}
	if err := svgclean.Clean(doc, opts); err != nil {
		return fmt.Errorf("error cleaning %s: %w", in, err)
	}
	toFile := cfg.Output != "" && cfg.Output != "-"
	// colors are detected on the final destination
	var dst io.Writer = cc.Out
	if toFile {
		dst = nil
	}
	buf := bytes.NewBuffer(nil)
	if err := svgclean.Write(doc, buf, cfg.encOpts(dst)...); err != nil {
		return err
	}
	if cfg.Stats {
		theLog.Info("cleaned", "in", in, "from", len(orig), "to", buf.Len())
	}
	if cfg.DryRun {
		return nil
	}
	if toFile {
		if err := os.WriteFile(cfg.Output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", cfg.Output, err)
		}
		return nil
	}
	_, err = cc.Out.Write(buf.Bytes())
	return err
}

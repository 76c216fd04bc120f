package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/signadot/svgclean"

	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"
)

type batchResult struct {
	in, out  string
	from, to int64
	err      error
}

func batch(cfg *BatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Batch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.OutDir == "" {
		return fmt.Errorf("%w: batch requires -outdir", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: batch requires at least one input", cli.ErrUsage)
	}
	opts, err := cfg.Passes.options(cfg.Batch)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("error creating %s: %w", cfg.OutDir, err)
	}
	seen := map[string]string{}
	for _, in := range args {
		base := filepath.Base(in)
		if prev, ok := seen[base]; ok {
			return fmt.Errorf("%w: %s and %s would both be written to %s", cli.ErrUsage, prev, in, base)
		}
		seen[base] = in
	}
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	encOpts := cfg.encOpts(nil)
	parseOpts := cfg.parseOpts()

	// each worker owns its result slot and its document
	results := make([]batchResult, len(args))
	g := new(errgroup.Group)
	g.SetLimit(min(jobs, len(args)))
	for i, in := range args {
		g.Go(func() error {
			res := &results[i]
			res.in = in
			res.out = filepath.Join(cfg.OutDir, filepath.Base(in))
			doc, err := svgclean.LoadFile(in, parseOpts...)
			if err != nil {
				res.err = err
				return nil
			}
			if err := svgclean.Clean(doc, opts); err != nil {
				res.err = fmt.Errorf("%s: %w", in, err)
				return nil
			}
			if err := svgclean.SaveFile(doc, res.out, encOpts...); err != nil {
				res.err = fmt.Errorf("%s: %w", res.out, err)
				return nil
			}
			res.from = fileSize(in)
			res.to = fileSize(res.out)
			return nil
		})
	}
	// workers report failures in their result
	_ = g.Wait()

	failed := 0
	for i := range results {
		res := &results[i]
		if res.err != nil {
			failed++
			theLog.Error("clean failed", "in", res.in, "error", res.err)
			continue
		}
		theLog.Info("cleaned", "in", res.in, "out", res.out, "from", res.from, "to", res.to)
	}
	if failed != 0 {
		theLog.Error("batch", "failed", failed, "total", len(results))
		return cli.ExitCodeErr(1)
	}
	return nil
}

func fileSize(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return fi.Size()
}

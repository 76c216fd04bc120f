package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/svgclean/parse"
	"github.com/signadot/svgclean/svg"

	"github.com/scott-cotton/cli"
)

func svgcleanMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if _, err := cfg.quote(); err != nil {
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

// readArg reads the document named by arg, stdin for "-".
func readArg(cfg *MainConfig, cc *cli.Context, arg string) ([]byte, *svg.Document, error) {
	var r io.Reader
	if arg == "-" {
		r = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	doc, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return d, doc, nil
}

func oneArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s requires exactly one input, got %d", cli.ErrUsage, cmd, len(args))
	}
	return args[0], nil
}

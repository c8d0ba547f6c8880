package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/go-dom/debug"

	"github.com/scott-cotton/cli"
)

func domctlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		debug.SetLogger(theLog)
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

func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Out = a
	return a, nil
}

// openOut directs cc.Out to the -o file. Commands call it once every input
// is loaded, so the output file may also be an input.
func (cfg *MainConfig) openOut(cc *cli.Context) error {
	if cfg.Out == "" || cfg.Out == "-" || cfg.CloseOut != nil {
		return nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil
}

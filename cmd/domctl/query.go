package main

import (
	"fmt"

	"github.com/signadot/go-dom/dom"
	"github.com/signadot/go-dom/selector"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: query requires -e", cli.ErrUsage)
	}
	sel, err := selector.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	els := make([]*dom.Element, len(args))
	for i, file := range args {
		els[i], _, err = loadElement(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
	}
	if err := cfg.openOut(cc); err != nil {
		return err
	}
	for i, file := range args {
		matches, err := sel.Select(els[i].Attributes())
		if err != nil {
			return err
		}
		for _, a := range matches.All() {
			if len(args) > 1 {
				fmt.Fprintf(cc.Out, "%s: ", file)
			}
			fmt.Fprintln(cc.Out, a.String())
		}
	}
	return nil
}

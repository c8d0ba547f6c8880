package main

import (
	"fmt"

	"github.com/signadot/go-dom/dom"
	"github.com/signadot/go-dom/encode"
	"github.com/signadot/go-dom/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	els := make([]*dom.Element, len(args))
	fmts := make([]format.Format, len(args))
	for i, file := range args {
		els[i], fmts[i], err = loadElement(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
	}
	if err := cfg.openOut(cc); err != nil {
		return err
	}
	for i, file := range args {
		el := els[i]
		out := cfg.outFormat(fmts[i])
		if i > 0 && out.IsYAML() {
			cc.Out.Write([]byte("---\n"))
		}
		if err := encode.Encode(el, cc.Out, cfg.encOpts(cc.Out, out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

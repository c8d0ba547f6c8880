package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-dom/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, _, err := loadElement(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, _, err := loadElement(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if err := cfg.openOut(cc); err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	changes := libdiff.DiffAttributes(from.Attributes(), to.Attributes())
	if from.TagName() != to.TagName() {
		fmt.Fprintf(cc.Out, "tag: %s -> %s\n", from.TagName(), to.TagName())
	}
	io.WriteString(cc.Out, libdiff.Format(changes, cfg.colors(cc.Out)))
	if len(changes) != 0 || from.TagName() != to.TagName() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: get requires an attribute name and at most one file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	el, _, err := loadElement(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	v, ok := el.GetAttribute(args[0])
	if !ok {
		return cli.ExitCodeErr(1)
	}
	if err := cfg.openOut(cc); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, v)
	return nil
}

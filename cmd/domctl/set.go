package main

import (
	"fmt"
	"strings"

	"github.com/signadot/go-dom/encode"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires a file", cli.ErrUsage)
	}
	file, assigns := args[0], args[1:]
	el, f, err := loadElement(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	for _, name := range splitNames(cfg.Remove) {
		if !el.RemoveAttribute(name) {
			theLog.Warn("no such attribute", "name", name)
			continue
		}
		if cfg.Verbose {
			theLog.Info("removed", "name", name)
		}
	}
	for _, assign := range assigns {
		name, value, err := parseAssign(assign)
		if err != nil {
			return err
		}
		el.SetAttribute(name, value)
		if cfg.Verbose {
			theLog.Info("set", "name", name, "value", value)
		}
	}
	if err := cfg.openOut(cc); err != nil {
		return err
	}
	return encode.Encode(el, cc.Out, cfg.encOpts(cc.Out, cfg.outFormat(f))...)
}

func parseAssign(a string) (string, string, error) {
	name, value, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: expected name=value, got %q", cli.ErrUsage, a)
	}
	return name, value, nil
}

func splitNames(v string) []string {
	var res []string
	for _, n := range strings.Split(v, ",") {
		n = strings.TrimSpace(n)
		if n != "" {
			res = append(res, n)
		}
	}
	return res
}

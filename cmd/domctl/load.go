package main

import (
	"fmt"

	"github.com/signadot/go-dom/dom"
	"github.com/signadot/go-dom/format"
	"github.com/signadot/go-dom/parse"

	"github.com/scott-cotton/cli"
)

// loadElement reads the element document in file, or stdin if file is "-".
// It returns the format the document was read in.
func loadElement(cfg *MainConfig, cc *cli.Context, file string) (*dom.Element, format.Format, error) {
	f, err := cfg.inFormat(file)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w (use -I)", cli.ErrUsage, err)
	}
	if !f.Decodable() {
		return nil, 0, fmt.Errorf("%w: cannot read %s input", cli.ErrUsage, f)
	}
	var el *dom.Element
	if file == "-" {
		el, err = parse.Parse(cc.In, cfg.parseOpts(f)...)
	} else {
		el, err = parse.ParseFile(file, cfg.parseOpts(f)...)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return el, f, nil
}

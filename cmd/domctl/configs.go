package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-dom/encode"
	"github.com/signadot/go-dom/format"
	"github.com/signadot/go-dom/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode markup and diffs with color'"`
	Strict  bool `cli:"name=strict desc='reject duplicate attribute names'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log attribute changes to stderr'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts(f format.Format) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(f),
		parse.ParseStrict(cfg.Strict),
	}
}

// inFormat is the format used to read file, "-" meaning stdin.
func (cfg *MainConfig) inFormat(file string) (format.Format, error) {
	if cfg.InFormat != nil {
		return *cfg.InFormat, nil
	}
	if file == "-" {
		return format.YAMLFormat, nil
	}
	return format.FromPath(file)
}

// outFormat is the format for writing, defaulting to the input format.
func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return in
}

// colors reports whether output to w should be colored: -color if given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer, f format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Remove string `cli:"name=rm desc='comma separated attribute names to remove'"`

	Set *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='selector expression'"`

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

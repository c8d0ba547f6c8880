package parse

import "github.com/signadot/go-dom/format"

type parseOpts struct {
	format format.Format
	strict bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseTOML() ParseOption {
	return ParseFormat(format.TOMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseStrict makes repeated attribute names an error.
func ParseStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

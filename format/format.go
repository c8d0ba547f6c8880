package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
	TOMLFormat
	MarkupFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
		"yml":    YAMLFormat,
		"j":      JSONFormat,
		"json":   JSONFormat,
		"t":      TOMLFormat,
		"toml":   TOMLFormat,
		"m":      MarkupFormat,
		"markup": MarkupFormat,
		"html":   MarkupFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath returns the format implied by the extension of path.
func FromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrBadFormat, path)
	}
	return ParseFormat(ext)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	case MarkupFormat:
		return []byte("markup"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsYAML() bool   { return f == YAMLFormat }
func (f Format) IsJSON() bool   { return f == JSONFormat }
func (f Format) IsTOML() bool   { return f == TOMLFormat }
func (f Format) IsMarkup() bool { return f == MarkupFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case TOMLFormat:
		return ".toml"
	case MarkupFormat:
		return ".html"
	default:
		return ".yaml"
	}
}

// Decodable reports whether documents in this format can be parsed.
func (f Format) Decodable() bool {
	return f != MarkupFormat
}

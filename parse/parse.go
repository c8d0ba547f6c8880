package parse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/signadot/go-dom/dom"
	"github.com/signadot/go-dom/format"
)

func Parse(r io.Reader, opts ...ParseOption) (*dom.Element, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	doc, err := decode(r, pOpts.format)
	if err != nil {
		return nil, err
	}
	if err := check(doc, pOpts.strict); err != nil {
		return nil, err
	}
	return doc.Element(), nil
}

func ParseString(s string, opts ...ParseOption) (*dom.Element, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseFile parses the file at path. The format is taken from the file
// extension unless an option sets it.
func ParseFile(path string, opts ...ParseOption) (*dom.Element, error) {
	f, err := format.FromPath(path)
	if err != nil {
		f = format.YAMLFormat
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	el, err := Parse(fh, append([]ParseOption{ParseFormat(f)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return el, nil
}

func decode(r io.Reader, f format.Format) (*format.Document, error) {
	doc := &format.Document{}
	switch f {
	case format.YAMLFormat, format.JSONFormat:
		// JSON documents are YAML documents.
		err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(doc)
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrParse)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	case format.TOMLFormat:
		md, err := toml.NewDecoder(r).Decode(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if und := md.Undecoded(); len(und) != 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrParse, und[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: cannot parse %s", format.ErrBadFormat, f)
	}
	return doc, nil
}

func check(doc *format.Document, strict bool) error {
	if doc.Tag == "" {
		return ErrNoTag
	}
	seen := make(map[string]bool, len(doc.Attributes))
	for i, a := range doc.Attributes {
		if a.Name == "" {
			return fmt.Errorf("%w (attribute %d)", ErrNoName, i)
		}
		if strict && seen[a.Name] {
			return fmt.Errorf("%w %q", ErrDuplicate, a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}

package encode

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/signadot/go-dom/dom"
	"github.com/signadot/go-dom/format"
)

type EncState struct {
	indent int
	format format.Format

	Color func(ColorAttr, string) string
}

func Encode(el *dom.Element, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.YAMLFormat:
		return encodeYAML(el, w, es, yaml.Indent(es.indent), yaml.IndentSequence(true),
			yaml.CustomMarshaler[string](marshalYAMLString))
	case format.JSONFormat:
		return encodeYAML(el, w, es, yaml.JSON())
	case format.TOMLFormat:
		return encodeTOML(el, w, es)
	case format.MarkupFormat:
		return encodeMarkup(el, w, es)
	default:
		return fmt.Errorf("%w: cannot encode %s", format.ErrBadFormat, es.format)
	}
}

// MustString encodes el with opts and panics on error.
func MustString(el *dom.Element, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(el, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func encodeYAML(el *dom.Element, w io.Writer, _ *EncState, opts ...yaml.EncodeOption) error {
	d, err := yaml.MarshalWithOptions(format.DocumentOf(el), opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// marshalYAMLString double quotes strings which a plain scalar would not
// carry intact: those with control characters or surrounding whitespace.
func marshalYAMLString(v string) ([]byte, error) {
	if strings.ContainsFunc(v, unicode.IsControl) || strings.TrimSpace(v) != v {
		return []byte(strconv.Quote(v)), nil
	}
	return yaml.Marshal(v)
}

func encodeTOML(el *dom.Element, w io.Writer, es *EncState) error {
	enc := toml.NewEncoder(w)
	enc.Indent = strings.Repeat(" ", es.indent)
	return enc.Encode(format.DocumentOf(el))
}

func encodeMarkup(el *dom.Element, w io.Writer, es *EncState) error {
	c := es.Color
	if c == nil {
		c = colorNone
	}
	var sb strings.Builder
	sb.WriteString(c(SepColor, "<"))
	sb.WriteString(c(TagColor, el.TagName()))
	for _, a := range el.Attributes().All() {
		sb.WriteByte(' ')
		sb.WriteString(c(NameColor, a.Name()))
		sb.WriteString(c(SepColor, "="))
		sb.WriteString(c(ValueColor, `"`+html.EscapeString(a.Value())+`"`))
	}
	sb.WriteString(c(SepColor, ">"))
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

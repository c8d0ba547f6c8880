package format

import "github.com/signadot/go-dom/dom"

// Document is the serialized form of an element.
type Document struct {
	Tag        string      `yaml:"tag" json:"tag" toml:"tag"`
	Attributes []Attribute `yaml:"attributes,omitempty" json:"attributes,omitempty" toml:"attributes,omitempty"`
}

type Attribute struct {
	Name  string `yaml:"name" json:"name" toml:"name"`
	Value string `yaml:"value" json:"value" toml:"value"`
}

// DocumentOf captures the current state of el.
func DocumentOf(el *dom.Element) *Document {
	doc := &Document{Tag: el.TagName()}
	for _, a := range el.Attributes().All() {
		doc.Attributes = append(doc.Attributes, Attribute{Name: a.Name(), Value: a.Value()})
	}
	return doc
}

// Element builds a new element from doc. Attributes are set by name, so a
// later duplicate overrides the value of an earlier one.
func (doc *Document) Element() *dom.Element {
	el := dom.NewElement(doc.Tag)
	for _, a := range doc.Attributes {
		el.SetAttribute(a.Name, a.Value)
	}
	return el
}

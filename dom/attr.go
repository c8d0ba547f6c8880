package dom

import (
	"strconv"

	"github.com/signadot/go-dom/debug"
)

// Attr is a name/value attribute record. The name is fixed at construction;
// the value may be replaced any number of times. An Attr must not be copied
// after first use.
type Attr struct {
	Leaf

	name  string
	g     guard
	value string
}

var _ TreeNode = (*Attr)(nil)

func NewAttr(name, value string) *Attr {
	a := &Attr{
		Leaf:  Leaf{Type: AttributeNode},
		name:  name,
		value: value,
	}
	a.g.label = "attr " + strconv.Quote(name)
	return a
}

func (a *Attr) Name() string {
	return a.name
}

// Value returns the value of the attribute at the time of the call.
func (a *Attr) Value() string {
	a.g.rlock()
	defer a.g.runlock()
	return a.value
}

func (a *Attr) SetValue(v string) {
	a.g.lock()
	defer a.g.unlock()
	if debug.Set() {
		debug.Logger().Debug("set value", "name", a.name, "from", a.value, "to", v)
	}
	a.value = v
}

// Update replaces the value with fn applied to the current value, with no
// other access to a in between. fn must not use a.
func (a *Attr) Update(fn func(old string) string) {
	a.g.lock()
	defer a.g.unlock()
	v := fn(a.value)
	if debug.Set() {
		debug.Logger().Debug("update value", "name", a.name, "from", a.value, "to", v)
	}
	a.value = v
}

func (a *Attr) String() string {
	return a.name + "=" + strconv.Quote(a.Value())
}

func (a *Attr) NodeName() string        { return a.name }
func (a *Attr) NodeType() NodeType      { return AttributeNode }
func (a *Attr) NodeValue() string       { return a.Value() }
func (a *Attr) SetNodeValue(v string)   { a.SetValue(v) }
func (a *Attr) TextContent() string     { return a.Value() }
func (a *Attr) SetTextContent(v string) { a.SetValue(v) }

package dom

import (
	"iter"
	"slices"

	"github.com/signadot/go-dom/debug"
)

// NamedNodeMap is an ordered collection of attributes keyed by name.
//
// SetNamedItem keeps names unique. Add does not; after Add the map may hold
// several attributes with one name, and name lookups find the first.
type NamedNodeMap struct {
	g     guard
	items []*Attr
}

func NewNamedNodeMap() *NamedNodeMap {
	m := &NamedNodeMap{}
	m.g.label = "named node map"
	return m
}

func (m *NamedNodeMap) Length() int {
	m.g.rlock()
	defer m.g.runlock()
	return len(m.items)
}

// Item returns the attribute at index i, or false if i is not in
// [0, Length()).
func (m *NamedNodeMap) Item(i int) (*Attr, bool) {
	m.g.rlock()
	defer m.g.runlock()
	if i < 0 || i >= len(m.items) {
		return nil, false
	}
	return m.items[i], true
}

// GetNamedItem returns the first attribute in insertion order with the given
// name.
func (m *NamedNodeMap) GetNamedItem(name string) (*Attr, bool) {
	m.g.rlock()
	defer m.g.runlock()
	i := m.indexOf(name)
	if i < 0 {
		return nil, false
	}
	return m.items[i], true
}

// SetNamedItem stores a under its name. If the map already holds an
// attribute with that name, that attribute keeps its place and identity and
// takes a's value; otherwise a is appended. The handle held by the map after
// the call is returned.
func (m *NamedNodeMap) SetNamedItem(a *Attr) *Attr {
	held := m.insert(a)
	if held != a {
		// the structural guard is released: only held's own guard is taken.
		held.SetValue(a.Value())
	}
	return held
}

func (m *NamedNodeMap) insert(a *Attr) *Attr {
	m.g.lock()
	defer m.g.unlock()
	if i := m.indexOf(a.Name()); i >= 0 {
		return m.items[i]
	}
	if debug.Set() {
		debug.Logger().Debug("append attribute", "name", a.Name(), "index", len(m.items))
	}
	m.items = append(m.items, a)
	return a
}

// Add appends a without checking for an attribute of the same name.
func (m *NamedNodeMap) Add(a *Attr) {
	m.g.lock()
	defer m.g.unlock()
	m.items = append(m.items, a)
}

// RemoveNamedItem removes the first attribute with the given name and
// returns it. If there is none, the map is unchanged and false is returned.
func (m *NamedNodeMap) RemoveNamedItem(name string) (*Attr, bool) {
	m.g.lock()
	defer m.g.unlock()
	i := m.indexOf(name)
	if i < 0 {
		return nil, false
	}
	a := m.items[i]
	m.items = slices.Delete(m.items, i, i+1)
	if debug.Set() {
		debug.Logger().Debug("remove attribute", "name", name, "index", i)
	}
	return a, true
}

// Names returns the attribute names in order.
func (m *NamedNodeMap) Names() []string {
	m.g.rlock()
	defer m.g.runlock()
	res := make([]string, len(m.items))
	for i, a := range m.items {
		res[i] = a.Name()
	}
	return res
}

// Items returns a snapshot of the held attributes in order.
func (m *NamedNodeMap) Items() []*Attr {
	m.g.rlock()
	defer m.g.runlock()
	return slices.Clone(m.items)
}

// All iterates over a snapshot taken when iteration starts, so the loop body
// may use m freely.
func (m *NamedNodeMap) All() iter.Seq2[int, *Attr] {
	return func(yield func(int, *Attr) bool) {
		for i, a := range m.Items() {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Range calls fn for each attribute in order until fn returns false. m is
// read-guarded for the whole iteration: fn must not call methods of m.
func (m *NamedNodeMap) Range(fn func(i int, a *Attr) bool) {
	m.g.rlock()
	defer m.g.runlock()
	for i, a := range m.items {
		if !fn(i, a) {
			return
		}
	}
}

// caller holds m.g
func (m *NamedNodeMap) indexOf(name string) int {
	return slices.IndexFunc(m.items, func(a *Attr) bool {
		return a.Name() == name
	})
}

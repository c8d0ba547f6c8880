// Package dom provides a small, concurrency-safe fragment of the Document
// Object Model: attribute records, the ordered name-keyed collection that
// holds them, a generic ordered node list, and an Element owning one
// attribute collection.
//
// # Shared Handles
//
// Every value in this package is used through a pointer, and the pointer is
// the shared handle. Two holders of the same *Attr observe the same value;
// two holders of the same *NamedNodeMap observe the same sequence. Nothing
// is copied when a handle is passed around or returned from a collection:
//
//	el := dom.NewElement("input")
//	el.SetAttribute("type", "text")
//	a, _ := el.Attributes().GetNamedItem("type")
//	el.SetAttribute("type", "password")
//	a.Value() // "password"
//
// # Attributes
//
// An Attr has an immutable name and a mutable value. Value returns a copy of
// the value at the time of the call; SetValue and Update are the only ways to
// change it.
//
// # Named Node Maps
//
// A NamedNodeMap keeps attributes in insertion order. SetNamedItem enforces
// at most one attribute per name: setting an existing name overwrites the
// value of the attribute already held, keeping its position and identity, so
// a handle obtained earlier from GetNamedItem sees the update. Add appends
// unconditionally and is meant for raw, bulk insertion.
//
// Lookups that miss return the zero value and false:
//
//	if _, ok := m.Item(m.Length()); !ok {
//	    // always the case
//	}
//
// # Node Lists
//
// NodeList is the position-keyed counterpart of NamedNodeMap, holding any
// Node type. Items returned by Item are the handles that were added.
//
// # Nodes
//
// Node is the identity and content contract every node kind implements.
// Navigator is the tree navigation contract; it is declared for node kinds
// that have a tree position. Attr is a leaf and answers every navigation
// request with ErrNotSupported instead of fabricating a result.
//
// # Thread Safety
//
// Each Attr guards its own value; each NamedNodeMap and NodeList guards its
// own sequence. Operations on one attribute or one collection are
// linearizable. There is no ordering between different attributes or
// collections, and a collection's guard is never held while an attribute's
// guard is taken.
//
// Contention between goroutines blocks. A goroutine that asks again for a
// guard it already holds, for example by calling Value from inside an Update
// callback on the same attribute, panics with a *ReentrantAccessError rather
// than deadlocking. This is a programming error and is not meant to be
// recovered from in normal operation.
//
// # Related Packages
//
//   - github.com/signadot/go-dom/parse - Decode element documents
//   - github.com/signadot/go-dom/encode - Encode elements
//   - github.com/signadot/go-dom/selector - Select attributes by expression
//   - github.com/signadot/go-dom/libdiff - Diff attribute collections
package dom

package dom

import (
	"iter"
	"slices"
)

// NodeList is an ordered collection of nodes keyed by position. It is safe
// for concurrent use and does not need further locking by its holders.
type NodeList[T Node] struct {
	g     guard
	items []T
}

func NewNodeList[T Node]() *NodeList[T] {
	l := &NodeList[T]{}
	l.g.label = "node list"
	return l
}

func (l *NodeList[T]) Length() int {
	l.g.rlock()
	defer l.g.runlock()
	return len(l.items)
}

// Item returns the node at index i, or false if i is not in [0, Length()).
func (l *NodeList[T]) Item(i int) (T, bool) {
	l.g.rlock()
	defer l.g.runlock()
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

func (l *NodeList[T]) Add(item T) {
	l.g.lock()
	defer l.g.unlock()
	l.items = append(l.items, item)
}

// Items returns a snapshot of the held nodes in order.
func (l *NodeList[T]) Items() []T {
	l.g.rlock()
	defer l.g.runlock()
	return slices.Clone(l.items)
}

// All iterates over a snapshot taken when iteration starts.
func (l *NodeList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, n := range l.Items() {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Range calls fn for each node in order until fn returns false. l is
// read-guarded for the whole iteration: fn must not call methods of l.
func (l *NodeList[T]) Range(fn func(i int, n T) bool) {
	l.g.rlock()
	defer l.g.runlock()
	for i, n := range l.items {
		if !fn(i, n) {
			return
		}
	}
}

package dom

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestNodeListLengths(t *testing.T) {
	l := NewNodeList[*Attr]()
	if l.Length() != 0 {
		t.Fatalf("Length() = %d, want 0", l.Length())
	}
	l.Add(NewAttr("data-age", "23"))
	if l.Length() != 1 {
		t.Fatalf("Length() = %d, want 1", l.Length())
	}
	l.Add(NewAttr("data-age", "24"))
	if l.Length() != 2 {
		t.Errorf("Length() = %d, want 2", l.Length())
	}
}

func TestNodeListInvalidIndices(t *testing.T) {
	l := NewNodeList[*Attr]()
	if _, ok := l.Item(0); ok {
		t.Fatal("the list should not have any items")
	}
	l.Add(NewAttr("type", "text"))
	if _, ok := l.Item(0); !ok {
		t.Fatal("the list should have a single item")
	}
	for _, i := range []int{-1, 1, 2} {
		if n, ok := l.Item(i); ok || n != nil {
			t.Errorf("Item(%d) = %v, %v", i, n, ok)
		}
	}
}

func TestNodeListItemsMaintainState(t *testing.T) {
	l := NewNodeList[*Attr]()
	a := NewAttr("type", "text")
	l.Add(a)
	got, _ := l.Item(0)
	if got != a {
		t.Fatal("Item(0) is not the added handle")
	}
	got.SetValue("password")
	if a.Value() != "password" {
		t.Errorf("Value() = %q, want %q", a.Value(), "password")
	}
}

func TestNodeListInterface(t *testing.T) {
	l := NewNodeList[Node]()
	l.Add(NewAttr("id", "x"))
	n, ok := l.Item(0)
	if !ok || n.NodeType() != AttributeNode || n.NodeName() != "id" {
		t.Errorf("Item(0) = %v, %v", n, ok)
	}
}

func TestNodeListMultithreadedMutations(t *testing.T) {
	const n = 25
	l := NewNodeList[*Attr]()
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			l.Add(NewAttr(fmt.Sprintf("data-%d", i), ""))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for i := range n {
		if _, ok := l.Item(i); !ok {
			t.Errorf("item %d not added", i)
		}
	}
	if l.Length() != n {
		t.Errorf("Length() = %d, want %d", l.Length(), n)
	}
	seen := map[string]bool{}
	for _, a := range l.All() {
		seen[a.Name()] = true
	}
	if len(seen) != n {
		t.Errorf("saw %d distinct items, want %d", len(seen), n)
	}
}

func TestNodeListRange(t *testing.T) {
	l := NewNodeList[*Attr]()
	for i := range 4 {
		l.Add(NewAttr(fmt.Sprint(i), ""))
	}
	count := 0
	l.Range(func(i int, a *Attr) bool {
		count++
		return i < 2
	})
	if count != 3 {
		t.Errorf("Range visited %d items, want 3", count)
	}
	expectReentrant(t, func() {
		l.Range(func(_ int, a *Attr) bool {
			l.Add(a)
			return false
		})
	})
	if l.Length() != 4 {
		t.Errorf("Length() = %d, want 4", l.Length())
	}
}

package dom

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

func TestNamedNodeMapSetSameName(t *testing.T) {
	m := NewNamedNodeMap()
	m.SetNamedItem(NewAttr("data-age", "forever"))
	if m.Length() != 1 {
		t.Fatalf("Length() = %d, want 1", m.Length())
	}
	m.SetNamedItem(NewAttr("data-age", "never"))
	if m.Length() != 1 {
		t.Fatalf("Length() = %d, want 1", m.Length())
	}
	a, ok := m.Item(0)
	if !ok {
		t.Fatal("Item(0) not found")
	}
	if a.Value() != "never" {
		t.Errorf("Item(0).Value() = %q, want %q", a.Value(), "never")
	}
}

func TestNamedNodeMapLength(t *testing.T) {
	m := NewNamedNodeMap()
	steps := []struct {
		name, value string
		want        int
	}{
		{"type", "text", 1},
		{"name", "q", 2},
		{"type", "search", 2},
		{"placeholder", "", 3},
		{"name", "query", 3},
	}
	for _, s := range steps {
		m.SetNamedItem(NewAttr(s.name, s.value))
		if got := m.Length(); got != s.want {
			t.Fatalf("after setting %s: Length() = %d, want %d", s.name, got, s.want)
		}
		a, ok := m.GetNamedItem(s.name)
		if !ok || a.Value() != s.value {
			t.Fatalf("GetNamedItem(%q) = %v, %v", s.name, a, ok)
		}
	}
	if diff := cmp.Diff([]string{"type", "name", "placeholder"}, m.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestNamedNodeMapGetNamedItem(t *testing.T) {
	m := NewNamedNodeMap()
	if _, ok := m.GetNamedItem("lang"); ok {
		t.Fatal("GetNamedItem found an item in an empty map")
	}
	m.SetNamedItem(NewAttr("lang", "en"))
	a, ok := m.GetNamedItem("lang")
	if !ok {
		t.Fatal("GetNamedItem(lang) not found after set")
	}
	if a.Value() != "en" {
		t.Errorf("Value() = %q, want %q", a.Value(), "en")
	}
	if _, ok := m.GetNamedItem("Lang"); ok {
		t.Error("names are case sensitive")
	}
}

func TestNamedNodeMapItemBounds(t *testing.T) {
	m := NewNamedNodeMap()
	for i := range 3 {
		m.Add(NewAttr(fmt.Sprintf("data-%d", i), ""))
	}
	for i := -1; i <= 5; i++ {
		a, ok := m.Item(i)
		valid := i >= 0 && i < m.Length()
		if ok != valid {
			t.Errorf("Item(%d) ok = %v, want %v", i, ok, valid)
		}
		if valid && a.Name() != fmt.Sprintf("data-%d", i) {
			t.Errorf("Item(%d).Name() = %q", i, a.Name())
		}
		if !valid && a != nil {
			t.Errorf("Item(%d) returned %v with ok=false", i, a)
		}
	}
}

func TestNamedNodeMapSetKeepsIdentity(t *testing.T) {
	m := NewNamedNodeMap()
	orig := NewAttr("type", "text")
	m.SetNamedItem(orig)
	cached, _ := m.GetNamedItem("type")

	repl := NewAttr("type", "password")
	held := m.SetNamedItem(repl)
	if held != orig {
		t.Errorf("SetNamedItem returned %p, want the held attribute %p", held, orig)
	}
	if cached.Value() != "password" || orig.Value() != "password" {
		t.Errorf("cached handle did not observe update: %q", cached.Value())
	}
	if a, _ := m.Item(0); a != orig {
		t.Errorf("Item(0) is not the original attribute")
	}
	// setting the held attribute itself is a no-op
	if m.SetNamedItem(orig) != orig || m.Length() != 1 {
		t.Errorf("SetNamedItem(orig) changed the map")
	}
}

func TestNamedNodeMapAdd(t *testing.T) {
	m := NewNamedNodeMap()
	m.Add(NewAttr("class", "a"))
	m.Add(NewAttr("class", "b"))
	if m.Length() != 2 {
		t.Fatalf("Length() = %d, want 2", m.Length())
	}
	a, _ := m.GetNamedItem("class")
	if a.Value() != "a" {
		t.Errorf("GetNamedItem should find the first match, got %q", a.Value())
	}
	m.SetNamedItem(NewAttr("class", "c"))
	if m.Length() != 2 {
		t.Errorf("Length() = %d, want 2", m.Length())
	}
	first, _ := m.Item(0)
	second, _ := m.Item(1)
	if first.Value() != "c" || second.Value() != "b" {
		t.Errorf("got %q %q, want %q %q", first.Value(), second.Value(), "c", "b")
	}
}

func TestNamedNodeMapRemoveNamedItem(t *testing.T) {
	m := NewNamedNodeMap()
	for _, n := range []string{"id", "class", "style"} {
		m.SetNamedItem(NewAttr(n, n+"-v"))
	}
	if _, ok := m.RemoveNamedItem("missing"); ok {
		t.Error("RemoveNamedItem(missing) reported a removal")
	}
	if m.Length() != 3 {
		t.Fatalf("Length() = %d, want 3", m.Length())
	}
	a, ok := m.RemoveNamedItem("class")
	if !ok || a.Name() != "class" || a.Value() != "class-v" {
		t.Fatalf("RemoveNamedItem(class) = %v, %v", a, ok)
	}
	if diff := cmp.Diff([]string{"id", "style"}, m.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := m.GetNamedItem("class"); ok {
		t.Error("class still present")
	}
	m.SetNamedItem(NewAttr("class", "again"))
	if diff := cmp.Diff([]string{"id", "style", "class"}, m.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestNamedNodeMapSharedHandle(t *testing.T) {
	m := NewNamedNodeMap()
	other := m
	other.SetNamedItem(NewAttr("dir", "ltr"))
	if m.Length() != 1 {
		t.Errorf("Length() = %d through the first handle", m.Length())
	}
}

func TestNamedNodeMapConcurrentSet(t *testing.T) {
	const n = 25
	m := NewNamedNodeMap()
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			m.SetNamedItem(NewAttr(fmt.Sprintf("data-%d", i), fmt.Sprint(i)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if m.Length() != n {
		t.Fatalf("Length() = %d, want %d", m.Length(), n)
	}
	for i := range n {
		a, ok := m.GetNamedItem(fmt.Sprintf("data-%d", i))
		if !ok || a.Value() != fmt.Sprint(i) {
			t.Errorf("data-%d = %v, %v", i, a, ok)
		}
	}
}

func TestNamedNodeMapConcurrentAdd(t *testing.T) {
	const n = 25
	m := NewNamedNodeMap()
	var g errgroup.Group
	for range n {
		g.Go(func() error {
			m.Add(NewAttr("dup", ""))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if m.Length() != n {
		t.Errorf("Length() = %d, want %d", m.Length(), n)
	}
}

func TestNamedNodeMapConcurrentSameName(t *testing.T) {
	const n = 25
	m := NewNamedNodeMap()
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			m.SetNamedItem(NewAttr("data-race", fmt.Sprint(i)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if m.Length() != 1 {
		t.Errorf("Length() = %d, want 1", m.Length())
	}
}

func TestNamedNodeMapIteration(t *testing.T) {
	m := NewNamedNodeMap()
	for _, n := range []string{"a", "b", "c"} {
		m.SetNamedItem(NewAttr(n, ""))
	}
	var names []string
	for _, a := range m.All() {
		names = append(names, a.Name())
		// the body may mutate m
		m.SetNamedItem(NewAttr(a.Name()+a.Name(), ""))
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, names); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	if m.Length() != 6 {
		t.Errorf("Length() = %d, want 6", m.Length())
	}

	names = names[:0]
	m.Range(func(i int, a *Attr) bool {
		names = append(names, a.Name())
		return i < 1
	})
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("Range() mismatch (-want +got):\n%s", diff)
	}
}

func TestNamedNodeMapRangeReentrant(t *testing.T) {
	m := NewNamedNodeMap()
	m.SetNamedItem(NewAttr("a", ""))
	expectReentrant(t, func() {
		m.Range(func(int, *Attr) bool {
			m.Add(NewAttr("b", ""))
			return true
		})
	})
	expectReentrant(t, func() {
		m.Range(func(int, *Attr) bool {
			_ = m.Length()
			return true
		})
	})
	if m.Length() != 1 {
		t.Errorf("Length() = %d, want 1", m.Length())
	}
	// an attribute's own guard is independent of the map's
	m.Range(func(_ int, a *Attr) bool {
		a.SetValue("x")
		return true
	})
	if a, _ := m.GetNamedItem("a"); a.Value() != "x" {
		t.Errorf("Value() = %q, want %q", a.Value(), "x")
	}
}

func TestNamedNodeMapRangeBlocksWriter(t *testing.T) {
	m := NewNamedNodeMap()
	m.SetNamedItem(NewAttr("a", "1"))
	started := make(chan struct{})
	done := make(chan any, 1)
	release := make(chan struct{})
	go m.Range(func(int, *Attr) bool {
		close(started)
		<-release
		return true
	})
	<-started
	go func() {
		defer func() { done <- recover() }()
		m.Add(NewAttr("b", "2"))
	}()
	select {
	case r := <-done:
		t.Fatalf("Add finished while Range held the map (recovered %v)", r)
	case <-time.After(20 * time.Millisecond):
	}
	close(release)
	select {
	case r := <-done:
		if r != nil {
			t.Fatalf("Add panicked: %v", r)
		}
	case <-time.After(time.Second):
		t.Fatal("Add still blocked after Range returned")
	}
	if diff := cmp.Diff([]string{"a", "b"}, m.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

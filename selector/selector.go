// Package selector selects attributes with boolean expressions written in
// the expr language (github.com/expr-lang/expr).
//
// An expression sees the attribute being tested as
//
//	name   string
//	value  string
//	index  int     position in the collection
//
// for example
//
//	name startsWith "data-" && value != ""
//	name in ["id", "class"] || index == 0
package selector

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/go-dom/debug"
	"github.com/signadot/go-dom/dom"
)

type Env struct {
	Name  string `expr:"name"`
	Value string `expr:"value"`
	Index int    `expr:"index"`
}

type Selector struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Selector, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling selector %q: %w", src, err)
	}
	return &Selector{src: src, prg: prg}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Selector {
	s, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Selector) String() string {
	return s.src
}

// Match reports whether the attribute a at position i satisfies s.
func (s *Selector) Match(i int, a *dom.Attr) (bool, error) {
	env := Env{Name: a.Name(), Value: a.Value(), Index: i}
	out, err := vm.Run(s.prg, env)
	if err != nil {
		return false, fmt.Errorf("error evaluating selector %q on %s: %w", s.src, a.Name(), err)
	}
	res := out.(bool)
	if debug.Select() {
		debug.Logger().Debug("select", "selector", s.src, "attr", a.Name(), "index", i, "match", res)
	}
	return res, nil
}

// Select returns the attributes of m which satisfy s, in order. The returned
// list holds the same handles as m.
func (s *Selector) Select(m *dom.NamedNodeMap) (*dom.NodeList[*dom.Attr], error) {
	res := dom.NewNodeList[*dom.Attr]()
	for i, a := range m.All() {
		ok, err := s.Match(i, a)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Add(a)
		}
	}
	return res, nil
}

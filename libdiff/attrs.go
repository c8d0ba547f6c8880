package libdiff

import (
	"fmt"
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/go-dom/dom"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Changed
	Moved
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Changed:
		return "~"
	case Moved:
		return ">"
	default:
		return "?"
	}
}

type Change struct {
	Kind     Kind
	Name     string
	From, To string
	// Diffs is the value diff for Changed entries.
	Diffs []diffpatch.Diff
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("%s %s=%s", c.Kind, c.Name, strconv.Quote(c.To))
	case Removed:
		return fmt.Sprintf("%s %s=%s", c.Kind, c.Name, strconv.Quote(c.From))
	case Moved:
		return fmt.Sprintf("%s %s", c.Kind, c.Name)
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Kind, c.Name, strconv.Quote(c.From), strconv.Quote(c.To))
	}
}

// Pretty is like String but renders value diffs inline with ANSI colors.
func (c Change) Pretty() string {
	if c.Kind != Changed {
		return c.String()
	}
	return fmt.Sprintf("%s %s: %s", c.Kind, c.Name, diffpatch.New().DiffPrettyText(c.Diffs))
}

// DiffAttributes returns the changes turning from into to. An empty result
// means the collections hold the same names, in the same order, with the
// same values.
//
// Attributes are aligned on name and value. A removal and an insertion of
// the same name are then reported as one Moved or Changed entry; with
// repeated names, the k-th removal pairs with the k-th insertion.
func DiffAttributes(from, to *dom.NamedNodeMap) []Change {
	fromItems, toItems := from.Items(), to.Items()
	keyMap := map[attrKey]rune{}
	fromRunes := mapAttrsTo(keyMap, fromItems)
	toRunes := mapAttrsTo(keyMap, toItems)
	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)

	var (
		res      []Change
		removed  = map[string][]int{}
		inserted = map[string][]int{}
		fi, ti   int
	)
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				a := fromItems[fi]
				removed[a.Name()] = append(removed[a.Name()], len(res))
				res = append(res, Change{Kind: Removed, Name: a.Name(), From: a.Value()})
				fi++
			}
		case diffpatch.DiffEqual:
			fi += n
			ti += n
		case diffpatch.DiffInsert:
			for range n {
				a := toItems[ti]
				inserted[a.Name()] = append(inserted[a.Name()], len(res))
				res = append(res, Change{Kind: Added, Name: a.Name(), To: a.Value()})
				ti++
			}
		}
	}
	return foldMoves(dmp, res, removed, inserted)
}

// foldMoves merges removals and insertions of the same name, in order of
// occurrence, into one change at the position of the insertion.
func foldMoves(dmp *diffpatch.DiffMatchPatch, res []Change, removed, inserted map[string][]int) []Change {
	drop := map[int]bool{}
	for name, ris := range removed {
		iis := inserted[name]
		for k := 0; k < len(ris) && k < len(iis); k++ {
			ri, ii := ris[k], iis[k]
			from, to := res[ri].From, res[ii].To
			c := Change{Kind: Moved, Name: name, From: from, To: to}
			if from != to {
				c.Kind = Changed
				c.Diffs = valueDiffs(dmp, from, to)
			}
			res[ii] = c
			drop[ri] = true
		}
	}
	if len(drop) == 0 {
		return res
	}
	out := make([]Change, 0, len(res)-len(drop))
	for i, c := range res {
		if !drop[i] {
			out = append(out, c)
		}
	}
	return out
}

func valueDiffs(dmp *diffpatch.DiffMatchPatch, from, to string) []diffpatch.Diff {
	return dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
}

type attrKey struct {
	name, value string
}

func mapAttrsTo(m map[attrKey]rune, items []*dom.Attr) []rune {
	rs := make([]rune, len(items))
	for i, a := range items {
		k := attrKey{a.Name(), a.Value()}
		r, ok := m[k]
		if !ok {
			// skip the first code point so runes are never NUL
			r = rune(len(m) + 1)
			m[k] = r
		}
		rs[i] = r
	}
	return rs
}

// Format renders changes one per line.
func Format(changes []Change, pretty bool) string {
	var sb strings.Builder
	for _, c := range changes {
		if pretty {
			sb.WriteString(c.Pretty())
		} else {
			sb.WriteString(c.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package libdiff

import (
	"strings"

	"github.com/signadot/svgclean/svg"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is an element present on one side of an element diff only.
type Change struct {
	Op   Op
	Node *svg.Node
}

// Elements diffs the elements of two documents in document order, each
// element standing for its tag, id and attributes. Elements equal on both
// sides are not reported.
func Elements(from, to *svg.Document) []Change {
	sigs := map[string]rune{}
	fromNodes, fromRunes := mapElementsTo(sigs, from)
	toNodes, toRunes := mapElementsTo(sigs, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	var res []Change
	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Change{Op: Delete, Node: fromNodes[fi]})
				fi++
			}
		case diffpatch.DiffEqual:
			fi += n
			ti += n
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Change{Op: Insert, Node: toNodes[ti]})
				ti++
			}
		}
	}
	return res
}

func mapElementsTo(m map[string]rune, doc *svg.Document) ([]*svg.Node, []rune) {
	var (
		nodes []*svg.Node
		rs    []rune
	)
	for n := range doc.Elements() {
		sig := Signature(n)
		r, ok := m[sig]
		if !ok {
			// stay clear of the surrogate range, which is not valid in
			// the strings the diff is computed on
			r = rune(0xe000 + len(m))
			m[sig] = r
		}
		nodes = append(nodes, n)
		rs = append(rs, r)
	}
	return nodes, rs
}

// Signature describes an element without its children, e.g.
// `linearGradient#a x1="2" xlink:href="#lg1"`.
func Signature(n *svg.Node) string {
	var b strings.Builder
	b.WriteString(n.String())
	for _, a := range n.Attrs() {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(a.String())
		b.WriteByte('"')
	}
	return b.String()
}

package task

import (
	"slices"
	"strings"

	"github.com/signadot/svgclean/svg"
)

// collect materializes the elements of doc accepted by keep, in document
// order, so that the tree can be mutated while walking the result.
func collect(doc *svg.Document, keep func(*svg.Node) bool) []*svg.Node {
	var res []*svg.Node
	for n := range doc.Elements() {
		if keep(n) {
			res = append(res, n)
		}
	}
	return res
}

// linkedFromOutside reports whether a node of the subtree at n is the
// target of a link held by a node outside of that subtree.
func linkedFromOutside(n *svg.Node) bool {
	for s := range n.Descendants() {
		for _, ref := range s.References() {
			if !n.IsAncestorOf(ref.Node) {
				return true
			}
		}
	}
	return false
}

// subtreeReferenced reports whether any node of the subtree at n is
// referenced.
func subtreeReferenced(n *svg.Node) bool {
	for s := range n.Descendants() {
		if s.IsReferenced() {
			return true
		}
	}
	return false
}

// childReferenced reports whether any node strictly below n is referenced.
func childReferenced(n *svg.Node) bool {
	for _, c := range n.Children() {
		if subtreeReferenced(c) {
			return true
		}
	}
	return false
}

func hasElement(doc *svg.Document, tags ...svg.Tag) bool {
	for n := range doc.Elements() {
		if slices.Contains(tags, n.Tag()) {
			return true
		}
	}
	return false
}

// hrefGradient returns the gradient n links to through xlink:href.
func hrefGradient(n *svg.Node) *svg.Node {
	t := n.Link(svg.AttrHref)
	if t == nil || !t.IsGradient() {
		return nil
	}
	return t
}

// chainAttr returns the attribute name as n inherits it along its href
// chain, without looking at n itself. Geometry attributes are only
// inherited from gradients of the same kind.
func chainAttr(n *svg.Node, name string) *svg.Attr {
	geometry := slices.Contains(svg.GeometryAttrs(n.Tag()), name)
	seen := map[*svg.Node]bool{n: true}
	for g := hrefGradient(n); g != nil && !seen[g]; g = hrefGradient(g) {
		seen[g] = true
		if geometry && g.Tag() != n.Tag() {
			return nil
		}
		if a := g.Attr(name); a != nil {
			return a
		}
	}
	return nil
}

func hasAncestorAttr(n *svg.Node, name string) bool {
	for p := range n.Ancestors() {
		if p.HasAttr(name) {
			return true
		}
	}
	return false
}

func stops(n *svg.Node) []*svg.Node {
	var res []*svg.Node
	for _, c := range n.ElementChildren() {
		if c.Is(svg.TagStop) {
			res = append(res, c)
		}
	}
	return res
}

// styleIDs returns the ids named by url(#id) inside style attributes and
// style elements. Such references are plain text and never links, but the
// nodes they name must be kept.
func styleIDs(doc *svg.Document) map[string]bool {
	res := map[string]bool{}
	add := func(s string) {
		for {
			i := strings.Index(s, "url(")
			if i < 0 {
				return
			}
			s = s[i:]
			if id, _, ok := svg.ParseFuncIRI(s); ok {
				res[id] = true
			}
			s = s[len("url("):]
		}
	}
	for n := range doc.Descendants() {
		if v, ok := n.AttrValue(svg.AttrStyle); ok {
			add(v)
		}
		if n.Kind() == svg.TextNode || n.Kind() == svg.CDataNode {
			if p := n.Parent(); p != nil && p.Is(svg.TagStyle) {
				add(n.Text())
			}
		}
	}
	return res
}

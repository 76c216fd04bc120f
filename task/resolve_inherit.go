package task

import (
	"strings"

	"github.com/signadot/svgclean/svg"
)

// ResolveInherit replaces attribute values "inherit" by the value of the
// closest ancestor setting the attribute, or removes the attribute when
// none does.
func ResolveInherit(doc *svg.Document) error {
	for _, n := range collect(doc, hasInherit) {
		for _, a := range n.Attrs() {
			if a.Link != nil || strings.TrimSpace(a.Value) != "inherit" {
				continue
			}
			src := inheritSource(n, a.Name)
			if src == nil {
				n.RemoveAttr(a.Name)
				continue
			}
			if err := n.CopyAttr(a.Name, src); err != nil {
				return err
			}
		}
	}
	return nil
}

func hasInherit(n *svg.Node) bool {
	for _, a := range n.Attrs() {
		if a.Link == nil && strings.TrimSpace(a.Value) == "inherit" {
			return true
		}
	}
	return false
}

// inheritSource returns the closest ancestor of n with an explicit value
// for name. Ancestors are resolved before their descendants in document
// order, so their values are never "inherit" themselves.
func inheritSource(n *svg.Node, name string) *svg.Node {
	for p := range n.Ancestors() {
		a := p.Attr(name)
		if a == nil {
			continue
		}
		if a.Link == nil && strings.TrimSpace(a.Value) == "inherit" {
			continue
		}
		return p
	}
	return nil
}

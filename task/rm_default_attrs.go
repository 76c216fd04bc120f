package task

import (
	"github.com/signadot/svgclean/svg"
)

// RemoveDefaultAttributes removes attributes set to the value they would
// have anyway. An inheritable attribute only goes when no ancestor sets
// it, a gradient attribute only when the href chain does not set it.
func RemoveDefaultAttributes(doc *svg.Document) error {
	for _, n := range collect(doc, func(n *svg.Node) bool { return n.AttrCount() > 0 }) {
		linked := n.IsGradient() && hrefGradient(n) != nil
		if n.Is(svg.TagRadialGradient) {
			removeDefaultFocus(n, linked)
		}
		for _, a := range n.Attrs() {
			if a.Link != nil || !svg.IsDefault(n.Tag(), a.Name, a.Value) {
				continue
			}
			if svg.IsInheritable(a.Name) && hasAncestorAttr(n, a.Name) {
				continue
			}
			if linked && chainAttr(n, a.Name) != nil {
				continue
			}
			n.RemoveAttr(a.Name)
		}
	}
	return nil
}

// removeDefaultFocus removes fx and fy when they equal cx and cy, which
// is their default.
func removeDefaultFocus(g *svg.Node, linked bool) {
	for _, p := range [][2]string{{svg.AttrFx, svg.AttrCx}, {svg.AttrFy, svg.AttrCy}} {
		f, c := g.Attr(p[0]), g.Attr(p[1])
		if f == nil || c == nil || f.Link != nil || c.Link != nil {
			continue
		}
		if linked && chainAttr(g, p[0]) != nil {
			continue
		}
		if svg.NormalizeValue(p[0], f.Value) == svg.NormalizeValue(p[1], c.Value) {
			g.RemoveAttr(p[0])
		}
	}
}

package task

import (
	"strings"

	"github.com/signadot/svgclean/svg"
)

// RemoveInvisibleElements removes elements that never render: display
// none, zero sized shapes and images, and use elements linking nowhere.
// Subtrees holding a referenced node are kept.
func RemoveInvisibleElements(doc *svg.Document) error {
	for _, n := range collect(doc, invisible) {
		if !n.Alive() || subtreeReferenced(n) || n == doc.Root() {
			continue
		}
		if err := n.Remove(); err != nil {
			return err
		}
	}
	return nil
}

func invisible(n *svg.Node) bool {
	if v, ok := n.AttrValue(svg.AttrDisplay); ok && strings.TrimSpace(v) == "none" {
		// definitions render through their users whatever their display
		return !n.Tag().IsDefinition() && !insideDefinition(n)
	}
	switch n.Tag() {
	case svg.TagRect, svg.TagImage:
		return isZero(n, svg.AttrWidth) || isZero(n, svg.AttrHeight)
	case svg.TagCircle:
		return isZero(n, svg.AttrR)
	case svg.TagEllipse:
		return isZero(n, svg.AttrRx) || isZero(n, svg.AttrRy)
	case svg.TagUse:
		return n.Link(svg.AttrHref) == nil && n.Link("href") == nil
	}
	return false
}

// isZero reports whether the attribute name is explicitly set to zero.
func isZero(n *svg.Node, name string) bool {
	v, ok := n.AttrValue(name)
	if !ok {
		return false
	}
	l, ok := svg.ParseLength(v)
	return ok && l.Num == 0
}

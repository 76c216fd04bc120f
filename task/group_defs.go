package task

import (
	"github.com/signadot/svgclean/svg"
)

// GroupDefs moves every definition, and the content of every other defs,
// into the first defs child of the root element, creating it when needed.
// Definitions nested in another definition keep their place.
func GroupDefs(doc *svg.Document) error {
	root := doc.Root()
	if root == nil {
		return nil
	}
	var top *svg.Node
	for _, c := range root.ElementChildren() {
		if c.Is(svg.TagDefs) {
			top = c
			break
		}
	}
	topDefs := func() *svg.Node {
		if top == nil {
			top = doc.CreateElement(svg.TagDefs)
			root.Prepend(top)
		}
		return top
	}
	for _, n := range collect(doc, func(n *svg.Node) bool {
		return n.Is(svg.TagDefs) || n.Tag().IsDefinition()
	}) {
		if n == top || n.Parent() == top || insideDefinition(n) {
			continue
		}
		if !n.Is(svg.TagDefs) {
			topDefs().Append(n)
			continue
		}
		dst := topDefs()
		for _, c := range n.Children() {
			dst.Append(c)
		}
		if !n.IsReferenced() && n.ID() == "" {
			if err := n.Remove(); err != nil {
				return err
			}
		}
	}
	return nil
}

func insideDefinition(n *svg.Node) bool {
	for p := range n.Ancestors() {
		if p.Tag().IsDefinition() {
			return true
		}
	}
	return false
}

package task

import (
	"strings"

	"github.com/signadot/svgclean/svg"
)

const xlinkNS = "http://www.w3.org/1999/xlink"

// RemoveVersion removes version and baseProfile from the root element.
func RemoveVersion(doc *svg.Document) error {
	root := doc.Root()
	if root == nil {
		return nil
	}
	root.RemoveAttr(svg.AttrVersion)
	root.RemoveAttr(svg.AttrBaseProfile)
	return nil
}

// RemoveEmptyDefs removes defs elements without children.
func RemoveEmptyDefs(doc *svg.Document) error {
	for _, n := range collect(doc, func(n *svg.Node) bool { return n.Is(svg.TagDefs) }) {
		if n.HasChildren() || n.IsReferenced() {
			continue
		}
		if err := n.Remove(); err != nil {
			return err
		}
	}
	return nil
}

// FixXmlnsAttribute declares the xlink namespace on the root element when
// an xlink attribute is used. When none is used and removeUnused is set, it
// drops the declaration.
func FixXmlnsAttribute(doc *svg.Document, removeUnused bool) error {
	root := doc.Root()
	if root == nil {
		return nil
	}
	used := false
	for n := range doc.Elements() {
		for _, a := range n.Attrs() {
			if strings.HasPrefix(a.Name, "xlink:") {
				used = true
				break
			}
		}
		if used {
			break
		}
	}
	switch {
	case used && !root.HasAttr(svg.AttrXmlnsXlink):
		root.SetAttr(svg.AttrXmlnsXlink, xlinkNS)
	case !used && removeUnused:
		root.RemoveAttr(svg.AttrXmlnsXlink)
	}
	return nil
}

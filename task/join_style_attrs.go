package task

import (
	"strings"

	"github.com/signadot/svgclean/svg"
)

// JoinStyleAttributes folds the presentation attributes of each element
// into its style attribute when that is shorter. Folded links become plain
// text, so no pass may run after this one. Documents with style sheets are
// left alone: a style attribute beats them where an attribute does not.
func JoinStyleAttributes(doc *svg.Document) error {
	if hasElement(doc, svg.TagStyle) {
		return nil
	}
	for _, n := range collect(doc, func(n *svg.Node) bool { return n.AttrCount() > 1 }) {
		joinStyle(n)
	}
	return nil
}

func joinStyle(n *svg.Node) {
	var (
		names []string
		decls []string
		size  int
	)
	style, hasStyle := n.AttrValue(svg.AttrStyle)
	if hasStyle {
		style = strings.TrimSuffix(strings.TrimSpace(style), ";")
		// ` style=""`
		size += len(svg.AttrStyle) + 4 + len(style)
	}
	for _, a := range n.Attrs() {
		if !svg.IsPresentation(a.Name) {
			continue
		}
		v := a.String()
		names = append(names, a.Name)
		decls = append(decls, a.Name+":"+v)
		size += len(a.Name) + 4 + len(v)
	}
	if len(names) == 0 {
		return
	}
	// properties already in style override attributes, keep them last
	if style != "" {
		decls = append(decls, style)
	}
	joined := strings.Join(decls, ";")
	if len(svg.AttrStyle)+4+len(joined) >= size {
		return
	}
	for _, name := range names {
		n.RemoveAttr(name)
	}
	n.SetAttr(svg.AttrStyle, joined)
}

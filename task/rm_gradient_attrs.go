package task

import (
	"slices"

	"github.com/signadot/svgclean/svg"
)

// RemoveGradientAttributes removes from linked gradients the attributes
// whose value they would inherit anyway.
func RemoveGradientAttributes(doc *svg.Document) error {
	for _, g := range collect(doc, (*svg.Node).IsGradient) {
		if hrefGradient(g) == nil {
			continue
		}
		names := append(slices.Clone(svg.GradientAttrs), svg.GeometryAttrs(g.Tag())...)
		for _, name := range names {
			a := g.Attr(name)
			if a == nil {
				continue
			}
			inherited := chainAttr(g, name)
			if inherited == nil || !svg.EqualAttr(a, inherited) {
				continue
			}
			g.RemoveAttr(name)
		}
	}
	return nil
}

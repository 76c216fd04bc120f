package task

import (
	"slices"

	"github.com/signadot/svgclean/svg"
)

// MergeGradients folds a gradient holding stops into the only gradient
// linking to it.
func MergeGradients(doc *svg.Document) error {
	keep := styleIDs(doc)
	for _, g := range collect(doc, (*svg.Node).IsGradient) {
		if !g.Alive() || g.HasChildren() {
			continue
		}
		src := hrefGradient(g)
		if src == nil || !src.HasChildren() || keep[src.ID()] {
			continue
		}
		refs := src.References()
		if len(refs) != 1 || refs[0].Node != g || refs[0].Attr != svg.AttrHref {
			continue
		}
		if err := mergeGradient(g, src); err != nil {
			return err
		}
	}
	return nil
}

func mergeGradient(g, src *svg.Node) error {
	if !g.RemoveAttr(svg.AttrHref) {
		return nil
	}
	for _, c := range src.Children() {
		g.Append(c)
	}
	var skip []string
	if src.Tag() != g.Tag() {
		skip = svg.GeometryAttrs(src.Tag())
	}
	for _, a := range src.Attrs() {
		if a.Name == svg.AttrHref || g.HasAttr(a.Name) || slices.Contains(skip, a.Name) {
			continue
		}
		if err := g.CopyAttr(a.Name, src); err != nil {
			return err
		}
	}
	return src.Remove()
}

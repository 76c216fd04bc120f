package task

import (
	"github.com/signadot/svgclean/svg"
)

// ResolveGradientAttributes copies onto every gradient the attributes it
// inherits through xlink:href, and points the href at the gradient that
// holds the stops.
func ResolveGradientAttributes(doc *svg.Document) error {
	return resolveGradientAttributes(doc, svg.TagUnknown)
}

// resolveGradientAttributes resolves gradients of kind t, or all of them
// for TagUnknown.
func resolveGradientAttributes(doc *svg.Document, t svg.Tag) error {
	r := &gradientResolver{done: map[*svg.Node]bool{}, busy: map[*svg.Node]bool{}}
	for _, g := range collect(doc, (*svg.Node).IsGradient) {
		if t != svg.TagUnknown && !g.Is(t) {
			continue
		}
		if err := r.resolve(g); err != nil {
			return err
		}
	}
	return nil
}

type gradientResolver struct {
	done map[*svg.Node]bool
	busy map[*svg.Node]bool
}

func (r *gradientResolver) resolve(g *svg.Node) error {
	if r.done[g] || r.busy[g] {
		return nil
	}
	r.busy[g] = true
	defer func() {
		delete(r.busy, g)
		r.done[g] = true
	}()
	target := hrefGradient(g)
	if target != nil {
		// targets first, so that their own inherited values are present
		if err := r.resolve(target); err != nil {
			return err
		}
		if err := copyMissing(g, target, svg.GradientAttrs); err != nil {
			return err
		}
		if target.Tag() == g.Tag() {
			if err := copyMissing(g, target, svg.GeometryAttrs(g.Tag())); err != nil {
				return err
			}
		}
		if err := retargetStops(g, target); err != nil {
			return err
		}
	}
	if g.Is(svg.TagRadialGradient) {
		focusDefaults(g)
	}
	return nil
}

func copyMissing(dst, src *svg.Node, names []string) error {
	for _, name := range names {
		if dst.HasAttr(name) {
			continue
		}
		if err := dst.CopyAttr(name, src); err != nil {
			return err
		}
	}
	return nil
}

// retargetStops makes a gradient without stops link directly to the
// gradient its stops come from.
func retargetStops(g, target *svg.Node) error {
	if g.HasChildren() || target.HasChildren() {
		return nil
	}
	owner := hrefGradient(target)
	if owner == nil || owner == g || !owner.HasChildren() || owner.Link(svg.AttrHref) == g {
		return nil
	}
	return g.SetLink(svg.AttrHref, owner)
}

// focusDefaults makes the focal point explicit when the center is.
func focusDefaults(g *svg.Node) {
	for _, p := range [][2]string{{svg.AttrFx, svg.AttrCx}, {svg.AttrFy, svg.AttrCy}} {
		if g.HasAttr(p[0]) {
			continue
		}
		if v, ok := g.AttrValue(p[1]); ok {
			g.SetAttr(p[0], v)
		}
	}
}

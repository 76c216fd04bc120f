package task

import (
	"math"

	"github.com/signadot/svgclean/svg"
)

// ApplyTransformToGradients folds a gradientTransform made of scaling and
// translation into the coordinates of userSpaceOnUse gradients. Radial
// gradients also need a uniform scale, since their radius cannot stretch.
// Identity transforms are dropped unless they override an inherited one.
func ApplyTransformToGradients(doc *svg.Document) error {
	for _, g := range collect(doc, (*svg.Node).IsGradient) {
		tv, ok := g.AttrValue(svg.AttrGradientTransform)
		if !ok {
			continue
		}
		ts, err := svg.ParseTransform(tv)
		if err != nil {
			continue
		}
		if ts.IsIdentity() && g.Link(svg.AttrHref) == nil {
			g.RemoveAttr(svg.AttrGradientTransform)
			continue
		}
		v, ok := g.AttrValue(svg.AttrGradientUnits)
		if !ok || v != "userSpaceOnUse" || !ts.IsScaleTranslate() {
			continue
		}
		switch g.Tag() {
		case svg.TagLinearGradient:
			applyLinear(g, ts)
		case svg.TagRadialGradient:
			applyRadial(g, ts)
		}
	}
	return nil
}

// userNumbers reads plain user space numbers, failing on missing values
// and on units.
func userNumbers(n *svg.Node, names ...string) ([]float64, bool) {
	res := make([]float64, len(names))
	for i, name := range names {
		v, ok := n.AttrValue(name)
		if !ok {
			return nil, false
		}
		l, ok := svg.ParseLength(v)
		if !ok || (l.Unit != "" && l.Unit != "px") {
			return nil, false
		}
		res[i] = l.Num
	}
	return res, true
}

func setNumber(n *svg.Node, name string, f float64) {
	n.SetAttr(name, svg.FormatNumber(f))
}

func applyLinear(g *svg.Node, ts svg.Transform) {
	c, ok := userNumbers(g, svg.AttrX1, svg.AttrY1, svg.AttrX2, svg.AttrY2)
	if !ok {
		return
	}
	x1, y1 := ts.Apply(c[0], c[1])
	x2, y2 := ts.Apply(c[2], c[3])
	setNumber(g, svg.AttrX1, x1)
	setNumber(g, svg.AttrY1, y1)
	setNumber(g, svg.AttrX2, x2)
	setNumber(g, svg.AttrY2, y2)
	g.RemoveAttr(svg.AttrGradientTransform)
}

func applyRadial(g *svg.Node, ts svg.Transform) {
	if math.Abs(ts.A) != math.Abs(ts.D) {
		return
	}
	c, ok := userNumbers(g, svg.AttrCx, svg.AttrCy, svg.AttrR)
	if !ok {
		return
	}
	f, hasFocus := userNumbers(g, svg.AttrFx, svg.AttrFy)
	if !hasFocus && (g.HasAttr(svg.AttrFx) || g.HasAttr(svg.AttrFy)) {
		return
	}
	cx, cy := ts.Apply(c[0], c[1])
	setNumber(g, svg.AttrCx, cx)
	setNumber(g, svg.AttrCy, cy)
	setNumber(g, svg.AttrR, c[2]*math.Abs(ts.A))
	if hasFocus {
		fx, fy := ts.Apply(f[0], f[1])
		setNumber(g, svg.AttrFx, fx)
		setNumber(g, svg.AttrFy, fy)
	}
	g.RemoveAttr(svg.AttrGradientTransform)
}

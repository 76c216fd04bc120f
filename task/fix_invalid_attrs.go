package task

import (
	"strings"

	"github.com/signadot/svgclean/svg"
)

// FixInvalidAttributes brings stop offsets into [0, 1] in increasing
// order, drops dangling xlink:href values and replaces dangling url(#id)
// paints by their fallback.
func FixInvalidAttributes(doc *svg.Document) error {
	for _, n := range collect(doc, func(*svg.Node) bool { return true }) {
		if n.IsGradient() {
			fixOffsets(n)
		}
		for _, a := range n.Attrs() {
			if a.Link != nil {
				continue
			}
			switch svg.LinkFormOf(a.Name) {
			case svg.IRILink:
				if strings.HasPrefix(strings.TrimSpace(a.Value), "#") {
					n.RemoveAttr(a.Name)
				}
			case svg.FuncLink:
				_, fallback, ok := svg.ParseFuncIRI(a.Value)
				if !ok {
					continue
				}
				if fallback == "" {
					fallback = "none"
				}
				n.SetAttr(a.Name, fallback)
			}
		}
	}
	return nil
}

func fixOffsets(g *svg.Node) {
	prev := 0.0
	for _, s := range stops(g) {
		v, ok := s.AttrValue(svg.AttrOffset)
		if !ok {
			if prev > 0 {
				s.SetAttr(svg.AttrOffset, svg.FormatNumber(prev))
			}
			continue
		}
		off := parseOffset(v)
		off = max(min(off, 1), 0)
		off = max(off, prev)
		prev = off
		s.SetAttr(svg.AttrOffset, svg.FormatNumber(off))
	}
}

// parseOffset reads a stop offset, a number or a percentage. Invalid values
// are 0.
func parseOffset(v string) float64 {
	l, ok := svg.ParseLength(v)
	if !ok {
		return 0
	}
	switch l.Unit {
	case "%":
		return l.Num / 100
	case "":
		return l.Num
	}
	return 0
}

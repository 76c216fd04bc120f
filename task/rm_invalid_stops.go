package task

import (
	"github.com/signadot/svgclean/svg"
)

// RemoveInvalidStops removes stops that do not change a gradient: a stop
// equal to the one before it, and the middle one of three stops sharing
// an offset.
func RemoveInvalidStops(doc *svg.Document) error {
	for _, g := range collect(doc, (*svg.Node).IsGradient) {
		if err := removeEqualStops(g); err != nil {
			return err
		}
		if err := removeMiddleStops(g); err != nil {
			return err
		}
	}
	return nil
}

func removeEqualStops(g *svg.Node) error {
	ss := stops(g)
	for i := 1; i < len(ss); i++ {
		if ss[i].IsReferenced() || !svg.Equal(ss[i-1], ss[i]) {
			continue
		}
		if err := ss[i].Remove(); err != nil {
			return err
		}
	}
	return nil
}

func removeMiddleStops(g *svg.Node) error {
	ss := stops(g)
	for i := 1; i+1 < len(ss); {
		prev, cur, next := offsetOf(ss[i-1]), offsetOf(ss[i]), offsetOf(ss[i+1])
		if prev != cur || cur != next || ss[i].IsReferenced() {
			i++
			continue
		}
		if err := ss[i].Remove(); err != nil {
			return err
		}
		ss = append(ss[:i], ss[i+1:]...)
	}
	return nil
}

func offsetOf(s *svg.Node) float64 {
	v, _ := s.AttrValue(svg.AttrOffset)
	return parseOffset(v)
}

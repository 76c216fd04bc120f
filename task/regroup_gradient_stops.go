package task

import (
	"fmt"
	"slices"

	"github.com/signadot/svgclean/svg"
)

// RegroupGradientStops shares equal stop lists between gradients, whatever
// their other attributes. Each gradient keeps its attributes and links to
// a new gradient holding the stops.
func RegroupGradientStops(doc *svg.Document) error {
	m := &merger{
		candidate: func(n *svg.Node) bool {
			return n.IsGradient() && mergeCandidate(n)
		},
		equal:  equalStops,
		verify: verifyPartition,
	}
	changed, err := m.apply(doc)
	if err != nil {
		return err
	}
	if changed {
		return ResolveGradientAttributes(doc)
	}
	return nil
}

// prefixOf returns the id prefix of shared nodes made from n.
func prefixOf(n *svg.Node) string {
	if n.Is(svg.TagRadialGradient) {
		return "rg"
	}
	return "lg"
}

// equalStops compares only the ordered stop children of a and b. Nodes
// with other children never match, since joins lose all their children.
func equalStops(a, b *svg.Node) bool {
	sa, sb := stops(a), stops(b)
	if len(sa) == 0 || len(sa) != len(sb) {
		return false
	}
	if a.ChildCount() != len(sa) || b.ChildCount() != len(sb) {
		return false
	}
	for i := range sa {
		if !svg.Equal(sa[i], sb[i]) {
			return false
		}
	}
	return true
}

// stopPartition splits the attributes of a regrouped gradient between the
// stub and the shared node. The shared node only ever gets the stops:
// geometry and paint server attributes differ between the members of a
// group and must keep applying to each of them.
func stopPartition(head *svg.Node) (stub, shared []string) {
	for _, a := range head.Attrs() {
		stub = append(stub, a.Name)
	}
	return stub, nil
}

// verifyPartition checks that the move of the stops to shared followed
// stopPartition.
func verifyPartition(head, shared *svg.Node) error {
	stub, sharedAttrs := stopPartition(head)
	for _, a := range shared.Attrs() {
		if !slices.Contains(sharedAttrs, a.Name) {
			return fmt.Errorf("%w: %s got attribute %s of %s", svg.ErrInvariant, shared, a.Name, head)
		}
	}
	positional := append(slices.Clone(svg.GradientAttrs), svg.GeometryAttrs(head.Tag())...)
	for _, name := range positional {
		if head.HasAttr(name) && !slices.Contains(stub, name) {
			return fmt.Errorf("%w: %s lost attribute %s", svg.ErrInvariant, head, name)
		}
	}
	if head.HasChildren() {
		return fmt.Errorf("%w: %s kept children", svg.ErrInvariant, head)
	}
	return nil
}

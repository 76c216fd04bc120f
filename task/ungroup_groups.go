package task

import (
	"github.com/signadot/svgclean/svg"
)

// UngroupGroups replaces groups without attributes by their children and
// removes empty groups. Groups directly under a switch are kept, their
// presence decides what the switch renders.
func UngroupGroups(doc *svg.Document) error {
	for _, g := range collect(doc, func(n *svg.Node) bool { return n.Is(svg.TagG) }) {
		p := g.Parent()
		if p == nil || p.Is(svg.TagSwitch) || g.IsReferenced() {
			continue
		}
		if !g.HasChildren() {
			if err := g.Remove(); err != nil {
				return err
			}
			continue
		}
		if g.AttrCount() > 0 || g.ID() != "" {
			continue
		}
		for _, c := range g.Children() {
			g.InsertBefore(c)
		}
		if err := g.Remove(); err != nil {
			return err
		}
	}
	return nil
}

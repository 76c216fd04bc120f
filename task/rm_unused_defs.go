package task

import (
	"github.com/signadot/svgclean/svg"
)

// RemoveUnusedDefs removes definitions nothing links to, and unused
// children of defs other than style and script. Removing a definition can
// leave the ones it linked to unused, so it runs until nothing changes.
func RemoveUnusedDefs(doc *svg.Document) error {
	keep := styleIDs(doc)
	for {
		removed := false
		for _, n := range collect(doc, unusedDef) {
			if keep[n.ID()] {
				continue
			}
			if !n.Alive() || linkedFromOutside(n) {
				continue
			}
			if err := n.Remove(); err != nil {
				return err
			}
			removed = true
		}
		if !removed {
			return nil
		}
	}
}

func unusedDef(n *svg.Node) bool {
	if n.IsReferenced() {
		return false
	}
	if n.Tag().IsDefinition() {
		return true
	}
	p := n.Parent()
	if p == nil || !p.Is(svg.TagDefs) {
		return false
	}
	return !n.Is(svg.TagStyle) && !n.Is(svg.TagScript)
}

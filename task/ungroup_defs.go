package task

import (
	"github.com/signadot/svgclean/svg"
)

// UngroupDefs removes defs elements whose children are all referenced
// definitions, hoisting the children to where the defs was. A defs with
// any other child is left as is.
func UngroupDefs(doc *svg.Document) error {
	for _, defs := range collect(doc, func(n *svg.Node) bool { return n.Is(svg.TagDefs) }) {
		if !defs.Alive() || defs.IsReferenced() || defs.Parent() == nil {
			continue
		}
		if !hoistable(defs) {
			continue
		}
		for _, c := range defs.Children() {
			defs.InsertBefore(c)
		}
		if err := defs.Remove(); err != nil {
			return err
		}
	}
	return nil
}

// hoistable reports whether every child of defs stays unrendered and used
// once moved out of it.
func hoistable(defs *svg.Node) bool {
	for _, c := range defs.Children() {
		if !c.IsElement() || !c.Tag().IsDefinition() || !c.IsReferenced() {
			return false
		}
	}
	return true
}

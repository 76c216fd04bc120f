package task

import (
	"github.com/signadot/svgclean/svg"
)

// RemoveElements returns a pass removing every element of kind t that
// nothing links into.
func RemoveElements(t svg.Tag) func(*svg.Document) error {
	return func(doc *svg.Document) error {
		for _, n := range collect(doc, func(n *svg.Node) bool { return n.Is(t) }) {
			if !n.Alive() || linkedFromOutside(n) {
				continue
			}
			if err := n.Remove(); err != nil {
				return err
			}
		}
		return nil
	}
}

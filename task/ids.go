package task

import (
	"github.com/signadot/svgclean/debug"
	"github.com/signadot/svgclean/svg"
)

// RemoveUnreferencedIDs clears the ids nothing links to. Style sheets and
// scripts may select by id, so documents holding either are left alone.
// Ids named by url(#id) in style attributes are kept.
func RemoveUnreferencedIDs(doc *svg.Document) error {
	if hasElement(doc, svg.TagStyle, svg.TagScript) {
		return nil
	}
	keep := styleIDs(doc)
	for _, n := range collect(doc, func(n *svg.Node) bool { return n.ID() != "" && !n.IsReferenced() && !keep[n.ID()] }) {
		if err := n.SetID(""); err != nil {
			return err
		}
	}
	return nil
}

// TrimIDs renames referenced nodes, in document order, to the shortest
// names not used by the nodes it leaves alone: "a" to "z", then "aa"...
// Nodes named from style attributes keep their ids.
func TrimIDs(doc *svg.Document) error {
	if hasElement(doc, svg.TagStyle, svg.TagScript) {
		return nil
	}
	keep := styleIDs(doc)
	nodes := collect(doc, func(n *svg.Node) bool { return n.ID() != "" && n.IsReferenced() && !keep[n.ID()] })
	names := make([]string, len(nodes))
	k := 0
	for i, n := range nodes {
		for {
			name := shortName(k)
			k++
			if keep[name] {
				continue
			}
			if other := doc.ByID(name); other != nil && !other.IsReferenced() {
				continue
			}
			names[i] = name
			break
		}
		if debug.IDs() {
			debug.Logf("trim %s -> %s\n", n.ID(), names[i])
		}
	}
	// clear first: new names may be current names of later nodes
	for _, n := range nodes {
		if err := n.SetID(""); err != nil {
			return err
		}
	}
	for i, n := range nodes {
		if err := n.SetID(names[i]); err != nil {
			return err
		}
	}
	return nil
}

// shortName returns the k-th name of the sequence a..z, aa..zz, aaa...
func shortName(k int) string {
	var b []byte
	for k++; k > 0; k = (k - 1) / 26 {
		b = append([]byte{byte('a' + (k-1)%26)}, b...)
	}
	return string(b)
}

package task

import (
	"fmt"
	"slices"

	"github.com/signadot/svgclean/debug"
	"github.com/signadot/svgclean/svg"
)

// merger collapses groups of equal nodes into one shared node linked from
// every member of the group.
type merger struct {
	// prefix of the ids of shared nodes, by default the one of the kind
	// of the head
	prefix    string
	candidate func(*svg.Node) bool
	equal     func(a, b *svg.Node) bool

	// verify, when set, checks the head and the shared node after the
	// children moved and before anything is linked.
	verify func(head, shared *svg.Node) error
}

// apply scans the candidates of doc, which are in document order. The
// first node of each group of equal nodes is its head; later members are
// joins and are dropped from the scan as soon as they match.
func (m *merger) apply(doc *svg.Document) (bool, error) {
	nodes := collect(doc, m.candidate)
	var created []*svg.Node
	changed := false
	for i1 := 0; i1 < len(nodes); i1++ {
		head := nodes[i1]
		var joins []*svg.Node
		for i2 := i1 + 1; i2 < len(nodes); {
			if m.equal(head, nodes[i2]) {
				joins = append(joins, nodes[i2])
				nodes = slices.Delete(nodes, i2, i2+1)
				continue
			}
			i2++
		}
		if len(joins) == 0 {
			continue
		}
		shared := reusable(head, created, nodes)
		if shared == nil {
			var err error
			if shared, err = m.create(doc, head); err != nil {
				return changed, err
			}
			created = append(created, shared)
		}
		if err := m.share(head, joins, shared); err != nil {
			return changed, err
		}
		changed = true
	}
	return changed, nil
}

// reusable returns a node which can stand for the shared node of the group
// of head: one created earlier in the scan or a candidate with an id and no
// attributes, with the same content as head. Creating another node would
// make it equal to that one and a second scan would merge them.
func reusable(head *svg.Node, created, nodes []*svg.Node) *svg.Node {
	for _, pool := range [][]*svg.Node{created, nodes} {
		for _, n := range pool {
			if n == head || n.ID() == "" || n.AttrCount() > 0 || n.Tag() != head.Tag() || !n.HasChildren() {
				continue
			}
			if svg.EqualChildren(n, head) {
				return n
			}
		}
	}
	return nil
}

// create inserts a new node with a fresh id before head and moves the
// children of head to it.
func (m *merger) create(doc *svg.Document, head *svg.Node) (*svg.Node, error) {
	prefix := m.prefix
	if prefix == "" {
		prefix = prefixOf(head)
	}
	shared := doc.CreateNamedElement(head.Name())
	if err := shared.SetID(GenID(doc, prefix)); err != nil {
		return nil, fmt.Errorf("%w: %w", svg.ErrInvariant, err)
	}
	head.InsertBefore(shared)
	for _, c := range head.Children() {
		shared.Append(c)
	}
	return shared, nil
}

// share turns head and joins into stubs of shared.
func (m *merger) share(head *svg.Node, joins []*svg.Node, shared *svg.Node) error {
	if err := head.RemoveChildren(); err != nil {
		return err
	}
	if m.verify != nil {
		if err := m.verify(head, shared); err != nil {
			return err
		}
	}
	if err := head.SetLink(svg.AttrHref, shared); err != nil {
		return fmt.Errorf("sharing %s: %w", head, err)
	}
	for _, j := range joins {
		if err := j.RemoveChildren(); err != nil {
			return err
		}
		if err := j.SetLink(svg.AttrHref, shared); err != nil {
			return fmt.Errorf("sharing %s: %w", j, err)
		}
	}
	if debug.Merge() {
		debug.Logf("merged %s and %d more into %s\n", head, len(joins), debug.Node{Node: shared})
	}
	return nil
}

// mergeCandidate reports whether n holds content that may move to a
// shared node: it has children, does not already get its content through
// xlink:href, and nothing links into its children.
func mergeCandidate(n *svg.Node) bool {
	return n.HasChildren() && !n.HasAttr(svg.AttrHref) && !childReferenced(n)
}

// equalDefs is full equality: same kind, same attributes and equal
// children, ids aside.
func equalDefs(a, b *svg.Node) bool {
	return a.Tag() == b.Tag() && svg.EqualAttrs(a, b) && svg.EqualChildren(a, b)
}

func removeDuplGradients(doc *svg.Document, t svg.Tag, prefix string) error {
	m := &merger{
		prefix: prefix,
		candidate: func(n *svg.Node) bool {
			return n.Is(t) && mergeCandidate(n)
		},
		equal: equalDefs,
	}
	changed, err := m.apply(doc)
	if err != nil {
		return err
	}
	if changed {
		return resolveGradientAttributes(doc, t)
	}
	return nil
}

func RemoveDuplLinearGradients(doc *svg.Document) error {
	return removeDuplGradients(doc, svg.TagLinearGradient, "lg")
}

func RemoveDuplRadialGradients(doc *svg.Document) error {
	return removeDuplGradients(doc, svg.TagRadialGradient, "rg")
}

// isBlurFilter reports whether n is a filter made only of gaussian blurs.
func isBlurFilter(n *svg.Node) bool {
	if !n.Is(svg.TagFilter) {
		return false
	}
	children := n.Children()
	if len(children) == 0 {
		return false
	}
	for _, c := range children {
		if !c.Is(svg.TagFeGaussianBlur) {
			return false
		}
	}
	return true
}

func RemoveDuplFeGaussianBlur(doc *svg.Document) error {
	m := &merger{
		prefix: "fe",
		candidate: func(n *svg.Node) bool {
			return isBlurFilter(n) && mergeCandidate(n)
		},
		equal: equalDefs,
	}
	_, err := m.apply(doc)
	return err
}

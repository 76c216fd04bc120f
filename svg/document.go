package svg

import (
	"iter"
)

// Document owns a tree of nodes together with its id index and its
// reference index. The reference index maps each linked node to the link
// attributes pointing at it and is updated by every mutation, so that
// IsReferenced always agrees with a full scan of the tree.
type Document struct {
	container *Node
	ids       map[string]*Node
	backlinks map[*Node][]Ref

	// OnLink and OnUnlink, when set, observe link changes.
	OnLink   func(n *Node, attr string, target *Node)
	OnUnlink func(n *Node, attr string, target *Node)
}

// New returns an empty document.
func New() *Document {
	d := &Document{
		ids:       map[string]*Node{},
		backlinks: map[*Node][]Ref{},
	}
	d.container = &Node{kind: RootNode, doc: d}
	return d
}

// Container returns the document node holding the top level nodes:
// declarations, comments and the root element.
func (d *Document) Container() *Node { return d.container }

// Root returns the root element, or nil if there is none.
func (d *Document) Root() *Node {
	for _, c := range d.container.children {
		if c.kind == ElementNode {
			return c
		}
	}
	return nil
}

// CreateElement returns a new, unattached element of kind t.
func (d *Document) CreateElement(t Tag) *Node {
	return &Node{kind: ElementNode, tag: t, name: t.String(), doc: d}
}

// CreateNamedElement returns a new, unattached element named name, which
// may be unknown.
func (d *Document) CreateNamedElement(name string) *Node {
	return &Node{kind: ElementNode, tag: TagFromName(name), name: name, doc: d}
}

// CreateNode returns a new, unattached non element node. For declarations
// name is the target, e.g. "xml".
func (d *Document) CreateNode(k Kind, name, text string) *Node {
	if k == ElementNode {
		return d.CreateNamedElement(name)
	}
	return &Node{kind: k, name: name, text: text, doc: d}
}

// ByID looks id up in the live id index.
func (d *Document) ByID(id string) *Node {
	return d.ids[id]
}

// HasID reports whether id is currently used by a node of d.
func (d *Document) HasID(id string) bool {
	_, ok := d.ids[id]
	return ok
}

// Descendants yields every node of the document in document order,
// starting with the container.
func (d *Document) Descendants() iter.Seq[*Node] {
	return d.container.Descendants()
}

// Elements yields every element in document order.
func (d *Document) Elements() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := range d.container.Descendants() {
			if n.kind != ElementNode {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// ElementsOf yields the elements of kind t in document order.
func (d *Document) ElementsOf(t Tag) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := range d.Elements() {
			if n.tag != t {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

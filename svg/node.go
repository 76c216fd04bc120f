package svg

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Kind is the kind of a Node.
type Kind uint8

const (
	RootNode Kind = iota
	ElementNode
	TextNode
	CDataNode
	CommentNode
	DeclarationNode
	DoctypeNode
)

func (k Kind) String() string {
	switch k {
	case RootNode:
		return "root"
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CDataNode:
		return "cdata"
	case CommentNode:
		return "comment"
	case DeclarationNode:
		return "declaration"
	case DoctypeNode:
		return "doctype"
	}
	return "unknown"
}

// Attr is a single attribute. When Link is non-nil the attribute is a link
// attribute and its written value is derived from the target's current id;
// Value then only holds a fallback for FuncLink attributes.
type Attr struct {
	Name  string
	Value string
	Link  *Node
	Func  bool
}

// String returns the attribute value as it is written.
func (a *Attr) String() string {
	if a.Link == nil {
		return a.Value
	}
	if !a.Func {
		return "#" + a.Link.id
	}
	s := "url(#" + a.Link.id + ")"
	if a.Value != "" {
		s += " " + a.Value
	}
	return s
}

// Node is a node of a Document. Nodes are only created by their Document
// and only ever belong to it.
type Node struct {
	kind     Kind
	tag      Tag
	name     string
	id       string
	attrs    []*Attr
	text     string
	parent   *Node
	children []*Node
	doc      *Document
}

func (n *Node) Kind() Kind          { return n.kind }
func (n *Node) Tag() Tag            { return n.tag }
func (n *Node) Name() string        { return n.name }
func (n *Node) ID() string          { return n.id }
func (n *Node) Text() string        { return n.text }
func (n *Node) Parent() *Node       { return n.parent }
func (n *Node) Document() *Document { return n.doc }

// Alive reports whether n still belongs to a document, that is whether it
// has not been removed.
func (n *Node) Alive() bool { return n.doc != nil }

func (n *Node) IsElement() bool { return n.kind == ElementNode }

// Is reports whether n is an element of kind t.
func (n *Node) Is(t Tag) bool {
	return n.kind == ElementNode && n.tag == t
}

func (n *Node) IsGradient() bool {
	return n.kind == ElementNode && n.tag.IsGradient()
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

func (n *Node) HasChildren() bool { return len(n.children) > 0 }

func (n *Node) ChildCount() int { return len(n.children) }

func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// ElementChildren returns the element children of n in order.
func (n *Node) ElementChildren() []*Node {
	var res []*Node
	for _, c := range n.children {
		if c.kind == ElementNode {
			res = append(res, c)
		}
	}
	return res
}

// Descendants yields n and every node below it in document order.
// The tree must not be mutated while iterating; collect first.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Ancestors yields the parents of n from the closest outwards, stopping
// before the document container.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n.parent; p != nil && p.kind != RootNode; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// IsAncestorOf reports whether n contains m, or is m.
func (n *Node) IsAncestorOf(m *Node) bool {
	for x := m; x != nil; x = x.parent {
		if x == n {
			return true
		}
	}
	return false
}

// Attrs returns a copy of the attribute list in document order.
func (n *Node) Attrs() []*Attr {
	return slices.Clone(n.attrs)
}

func (n *Node) AttrCount() int { return len(n.attrs) }

func (n *Node) Attr(name string) *Attr {
	for _, a := range n.attrs {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func (n *Node) HasAttr(name string) bool {
	return n.Attr(name) != nil
}

// AttrValue returns the written value of the attribute name.
func (n *Node) AttrValue(name string) (string, bool) {
	a := n.Attr(name)
	if a == nil {
		return "", false
	}
	return a.String(), true
}

// Link returns the node the attribute name links to, if any.
func (n *Node) Link(name string) *Node {
	a := n.Attr(name)
	if a == nil {
		return nil
	}
	return a.Link
}

// HasLinks reports whether any attribute of n is a link attribute.
func (n *Node) HasLinks() bool {
	for _, a := range n.attrs {
		if a.Link != nil {
			return true
		}
	}
	return false
}

// SetAttr sets name to a plain value, dropping any link it held. New
// attributes are appended, existing ones keep their position.
func (n *Node) SetAttr(name, value string) {
	if a := n.Attr(name); a != nil {
		n.unlinkAttr(a)
		a.Value = value
		a.Func = false
		return
	}
	n.attrs = append(n.attrs, &Attr{Name: name, Value: value})
}

// RemoveAttr removes the attribute name, dropping any link it held.
func (n *Node) RemoveAttr(name string) bool {
	for i, a := range n.attrs {
		if a.Name != name {
			continue
		}
		n.unlinkAttr(a)
		n.attrs = slices.Delete(n.attrs, i, i+1)
		return true
	}
	return false
}

// CopyAttr copies the attribute name from src, keeping it a link when it
// is one.
func (n *Node) CopyAttr(name string, src *Node) error {
	a := src.Attr(name)
	if a == nil {
		return nil
	}
	if a.Link == nil {
		n.SetAttr(name, a.Value)
		return nil
	}
	if err := n.SetLink(name, a.Link); err != nil {
		return err
	}
	n.Attr(name).Value = a.Value
	return nil
}

// IsReferenced reports whether at least one live link attribute points at n.
func (n *Node) IsReferenced() bool {
	if n.doc == nil {
		return false
	}
	return len(n.doc.backlinks[n]) > 0
}

// References returns the link attributes pointing at n, in the order they
// were linked.
func (n *Node) References() []Ref {
	if n.doc == nil {
		return nil
	}
	return slices.Clone(n.doc.backlinks[n])
}

// SetID assigns id to n and updates the document's id index. An empty id
// clears it. It fails with ErrDuplicateID when another node owns id.
func (n *Node) SetID(id string) error {
	if id == n.id {
		return nil
	}
	d := n.doc
	if id != "" {
		if other := d.ids[id]; other != nil && other != n {
			return errorf(ErrDuplicateID, "%q", id)
		}
	}
	if n.id != "" && d.ids[n.id] == n {
		delete(d.ids, n.id)
	}
	n.id = id
	if id != "" {
		d.ids[id] = n
	}
	return nil
}

// Detach removes n from its parent. n stays alive: its id, its links and
// the links pointing at it are kept, ready for reinsertion.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	i := slices.Index(p.children, n)
	p.children = slices.Delete(p.children, i, i+1)
	n.parent = nil
}

// Append adds c as the last child of n, detaching it first.
func (n *Node) Append(c *Node) {
	n.checkAttach(c)
	c.Detach()
	c.parent = n
	n.children = append(n.children, c)
}

// Prepend adds c as the first child of n, detaching it first.
func (n *Node) Prepend(c *Node) {
	n.checkAttach(c)
	c.Detach()
	c.parent = n
	n.children = slices.Insert(n.children, 0, c)
}

// InsertBefore inserts c immediately before n in n's parent, detaching it
// first.
func (n *Node) InsertBefore(c *Node) {
	p := n.parent
	if p == nil {
		panic("svg: InsertBefore on a node without parent")
	}
	p.checkAttach(c)
	c.Detach()
	i := slices.Index(p.children, n)
	c.parent = p
	p.children = slices.Insert(p.children, i, c)
}

func (n *Node) checkAttach(c *Node) {
	if c.doc != n.doc || c.doc == nil {
		panic("svg: node belongs to another document")
	}
	if c.IsAncestorOf(n) {
		panic("svg: attaching a node below itself")
	}
}

// Remove detaches n and discards its subtree, unregistering every id and
// link it holds. It fails with ErrStillReferenced if a node of the subtree
// is linked from outside of it.
func (n *Node) Remove() error {
	if n.doc == nil {
		return nil
	}
	d := n.doc
	for s := range n.Descendants() {
		for _, ref := range d.backlinks[s] {
			if !n.IsAncestorOf(ref.Node) {
				return errorf(ErrStillReferenced, "%s is linked from %s", s, ref.Node)
			}
		}
	}
	nodes := slices.Collect(n.Descendants())
	for _, s := range nodes {
		for _, a := range s.attrs {
			s.unlinkAttr(a)
		}
	}
	for _, s := range nodes {
		if s.id != "" && d.ids[s.id] == s {
			delete(d.ids, s.id)
		}
		delete(d.backlinks, s)
	}
	n.Detach()
	for _, s := range nodes {
		s.doc = nil
	}
	return nil
}

// RemoveChildren removes every child of n.
func (n *Node) RemoveChildren() error {
	for n.HasChildren() {
		if err := n.children[0].Remove(); err != nil {
			return err
		}
	}
	return nil
}

// Path returns a location for n usable in diagnostics, like
// "/svg/defs[0]/linearGradient[2]".
func (n *Node) Path() string {
	if n.parent == nil || n.parent.kind == RootNode {
		return "/" + n.label()
	}
	i := 0
	for _, c := range n.parent.children {
		if c == n {
			break
		}
		if c.kind == ElementNode {
			i++
		}
	}
	return n.parent.Path() + "/" + n.label() + "[" + strconv.Itoa(i) + "]"
}

func (n *Node) label() string {
	if n.kind == ElementNode {
		return n.name
	}
	return n.kind.String()
}

func (n *Node) String() string {
	var b strings.Builder
	b.WriteString(n.label())
	if n.id != "" {
		b.WriteByte('#')
		b.WriteString(n.id)
	}
	return b.String()
}

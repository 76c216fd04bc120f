package svg

import (
	"fmt"
	"slices"
)

// Ref is one link attribute pointing at a node.
type Ref struct {
	Node *Node
	Attr string
}

// SetLink makes the attribute name of n a link to target, creating the
// attribute if needed. It fails with ErrLink if target cannot be linked:
// nil, removed, from another document, not an element, without an id, n
// itself, or already linking back to n through the same attribute.
func (n *Node) SetLink(name string, target *Node) error {
	switch {
	case target == nil:
		return errorf(ErrLink, "%s: nil target for %s", n, name)
	case target.doc == nil || n.doc == nil:
		return errorf(ErrLink, "%s: removed node in %s", n, name)
	case target.doc != n.doc:
		return errorf(ErrLink, "%s: %s belongs to another document", n, target)
	case target.kind != ElementNode:
		return errorf(ErrLink, "%s: %s target is not an element", n, name)
	case target == n:
		return errorf(ErrLink, "%s: %s links to itself", n, name)
	case target.id == "":
		return errorf(ErrLink, "%s: %s target %s has no id", n, name, target)
	case target.Link(name) == n:
		return errorf(ErrLink, "%s: %s would crosslink with %s", n, name, target)
	}
	form := LinkFormOf(name)
	if form == NoLink {
		form = IRILink
	}
	a := n.Attr(name)
	if a == nil {
		a = &Attr{Name: name}
		n.attrs = append(n.attrs, a)
	} else {
		n.unlinkAttr(a)
	}
	a.Value = ""
	a.Func = form == FuncLink
	a.Link = target
	d := n.doc
	d.backlinks[target] = append(d.backlinks[target], Ref{Node: n, Attr: name})
	if d.OnLink != nil {
		d.OnLink(n, name, target)
	}
	return nil
}

// Unlink turns a link attribute back into a plain attribute holding its
// written value.
func (n *Node) Unlink(name string) {
	a := n.Attr(name)
	if a == nil || a.Link == nil {
		return
	}
	v := a.String()
	n.unlinkAttr(a)
	a.Value = v
	a.Func = false
}

func (n *Node) unlinkAttr(a *Attr) {
	if a.Link == nil {
		return
	}
	target := a.Link
	a.Link = nil
	d := target.doc
	if d == nil {
		return
	}
	refs := d.backlinks[target]
	i := slices.IndexFunc(refs, func(r Ref) bool {
		return r.Node == n && r.Attr == a.Name
	})
	if i >= 0 {
		refs = slices.Delete(refs, i, i+1)
	}
	if len(refs) == 0 {
		delete(d.backlinks, target)
	} else {
		d.backlinks[target] = refs
	}
	if d.OnUnlink != nil {
		d.OnUnlink(n, a.Name, target)
	}
}

func errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

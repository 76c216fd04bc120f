package svg

// Check verifies the document invariants by a full scan: ids are unique
// and indexed, every link resolves to a live attached node with an id, and
// the reference index holds exactly the link attributes found in the tree.
func (d *Document) Check() error {
	attached := map[*Node]bool{}
	var nodes []*Node
	for n := range d.Descendants() {
		attached[n] = true
		nodes = append(nodes, n)
	}
	seen := map[string]*Node{}
	refCount := map[*Node]int{}
	for _, n := range nodes {
		if n.doc != d {
			return errorf(ErrInvariant, "%s is attached but not owned", n.Path())
		}
		if n.id != "" {
			if prev := seen[n.id]; prev != nil {
				return errorf(ErrDuplicateID, "%q on %s and %s", n.id, prev.Path(), n.Path())
			}
			seen[n.id] = n
			if d.ids[n.id] != n {
				return errorf(ErrInvariant, "id %q of %s is not indexed", n.id, n.Path())
			}
		}
		for _, a := range n.attrs {
			if a.Link == nil {
				continue
			}
			t := a.Link
			if !attached[t] || t.doc != d {
				return errorf(ErrLink, "%s %s points outside the document", n.Path(), a.Name)
			}
			if t.id == "" {
				return errorf(ErrLink, "%s %s points at %s which has no id", n.Path(), a.Name, t.Path())
			}
			if !hasRef(d.backlinks[t], n, a.Name) {
				return errorf(ErrInvariant, "%s %s is missing from the reference index", n.Path(), a.Name)
			}
			refCount[t]++
		}
	}
	for _, n := range nodes {
		if got, want := len(d.backlinks[n]), refCount[n]; got != want {
			return errorf(ErrInvariant, "%s has %d indexed references, %d in tree", n.Path(), got, want)
		}
	}
	for id, n := range d.ids {
		if seen[id] != n {
			return errorf(ErrInvariant, "stale id %q", id)
		}
	}
	return nil
}

func hasRef(refs []Ref, n *Node, attr string) bool {
	for _, r := range refs {
		if r.Node == n && r.Attr == attr {
			return true
		}
	}
	return false
}

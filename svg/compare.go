package svg

// EqualAttrs reports whether a and b carry the same attribute set with
// equal values, ignoring ids and attribute order. Links are equal when
// they point at the same node.
func EqualAttrs(a, b *Node) bool {
	if len(a.attrs) != len(b.attrs) {
		return false
	}
	for _, x := range a.attrs {
		y := b.Attr(x.Name)
		if y == nil || !EqualAttr(x, y) {
			return false
		}
	}
	return true
}

// EqualAttr compares two attributes of the same name.
func EqualAttr(x, y *Attr) bool {
	if (x.Link == nil) != (y.Link == nil) {
		return false
	}
	if x.Link != nil {
		return x.Link == y.Link && x.Value == y.Value
	}
	return NormalizeValue(x.Name, x.Value) == NormalizeValue(y.Name, y.Value)
}

// Equal reports whether a and b are structurally identical: same kind,
// same attributes and recursively equal children. Ids are ignored at
// every level.
func Equal(a, b *Node) bool {
	if a.kind != b.kind || a.name != b.name {
		return false
	}
	if a.kind != ElementNode {
		return a.text == b.text
	}
	return EqualAttrs(a, b) && EqualChildren(a, b)
}

// EqualChildren reports whether a and b have pairwise Equal children.
func EqualChildren(a, b *Node) bool {
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

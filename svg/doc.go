// Package svg provides the document tree the cleaner works on.
//
// # Overview
//
// A Document owns a tree of Nodes. Elements carry a Tag, an ordered list
// of attributes and an optional id. Containment is the usual parent/child
// relation and stays acyclic; on top of it, link attributes (xlink:href,
// fill="url(#id)", ...) form a reference graph which may point anywhere in
// the document.
//
// # Links
//
// A link attribute stores the target Node itself rather than its id, so
// renaming an id never leaves a stale reference behind. The Document keeps
// a reference index from each target to the attributes linking to it; it
// is updated synchronously by SetLink, SetAttr, RemoveAttr and Remove:
//
//	stub.SetLink(svg.AttrHref, shared)
//	shared.IsReferenced() // true
//
// # Invariants
//
// After every mutation through this package's API the following hold, and
// Document.Check verifies them with a full scan:
//
//   - ids are unique and indexed
//   - every link resolves to a live node with an id
//   - the reference index matches the link attributes of the tree
//
// # Iteration
//
// Document.Descendants and Node.Descendants are lazy pre-order walks.
// Collect them with slices.Collect before mutating the tree.
package svg

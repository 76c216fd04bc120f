// Package task holds the passes rewriting a document.
//
// Each pass is a func(*svg.Document) error registered under the name of
// the option enabling it, see [Lookup] and [Passes]. Passes only talk to
// each other through the tree: they keep the id and link indexes of the
// document consistent and never leave a link dangling.
//
// # Shared definitions
//
// The duplicate passes (remove_dupl_*) and regroup_gradient_stops find
// groups of equal nodes in document order. The first node of a group is
// its head. A new node, named by [GenID], is inserted before the head and
// receives the head's children; the head and every other member of the
// group become stubs keeping their ids and attributes and linking to the
// new node through xlink:href.
//
// The duplicate passes require full equality. regroup_gradient_stops only
// compares the stops, the other attributes stay on the stubs.
//
// # Ordering
//
// Passes do not depend on each other for correctness, but the cleaner runs
// them in a fixed order. Notably join_style_attributes turns links into
// plain text and must come last.
package task

// Package encode writes documents as SVG markup.
//
// By default output is compact, with double quoted attribute values. Use
// [Indent] to put each element on its own line. Elements holding text or
// CDATA are always written on one line, since whitespace inside them is
// content.
//
// An element's id is always written as its first attribute, followed by
// the other attributes in document order. Link attributes are written from
// the current id of their target, so renaming a node never leaves a stale
// reference in the output.
package encode

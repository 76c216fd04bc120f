// Package parse parses SVG markup into an svg.Document.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// keep comments
//	doc, err := parse.Parse(data, parse.ParseComments(true))
//
// Attributes naming an existing id, such as xlink:href="#a" or
// fill="url(#a)", become link attributes. References to ids which do not
// exist stay plain text. Style attributes are split into presentation
// attributes unless SplitStyle(false) is given.
//
// Whitespace-only text is dropped except inside text content elements.
//
// # Related Packages
//
//   - github.com/signadot/svgclean/svg - the document tree
//   - github.com/signadot/svgclean/encode - write a document back out
package parse

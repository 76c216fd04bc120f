// Package svgclean removes redundant structure and attributes from SVG
// documents without changing what they render.
//
// Clean runs a fixed pipeline of passes from package task over a parsed
// document, each optional pass gated by a field of Options. Options may be
// loaded from YAML, TOML or JSON files applied to the defaults as a merge
// patch. Write serializes the result.
package svgclean

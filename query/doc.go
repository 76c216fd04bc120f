// Package query selects elements of a document with expr-lang predicates.
//
// A predicate is a boolean expression over the fields of Env, for example
//
//	tag == "linearGradient" && !referenced
//	has("xlink:href") && target("xlink:href") startsWith "lg"
//	depth > 2 && attr("fill") == "none"
package query

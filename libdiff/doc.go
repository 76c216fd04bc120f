// Package libdiff compares SVG documents before and after cleaning.
//
// # Usage
//
//	// line diff of two serializations
//	ls := libdiff.Lines(before, after)
//	libdiff.Write(os.Stdout, ls, 3, true)
//
//	// elements removed or added by cleaning
//	for _, c := range libdiff.Elements(orig, cleaned) {
//		fmt.Println(c.Op.Prefix(), libdiff.Signature(c.Node))
//	}
package libdiff

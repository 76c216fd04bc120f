package task

import (
	"strconv"

	"github.com/signadot/svgclean/debug"
	"github.com/signadot/svgclean/svg"
)

// GenID returns prefix followed by the smallest positive number giving an
// id no node of doc currently has. The result must be assigned before the
// next call, otherwise both calls return the same id.
func GenID(doc *svg.Document, prefix string) string {
	for n := 1; ; n++ {
		id := prefix + strconv.Itoa(n)
		if doc.HasID(id) {
			continue
		}
		if debug.IDs() {
			debug.Logf("genid %s\n", id)
		}
		return id
	}
}

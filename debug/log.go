package debug

import (
	"fmt"
	"os"

	"github.com/signadot/svgclean/encode"
	"github.com/signadot/svgclean/svg"
)

// Node formats a node subtree as markup when printed.
type Node struct{ *svg.Node }

func (n Node) String() string {
	if n.Node == nil {
		return "<nil>"
	}
	return encode.NodeString(n.Node)
}

// Logf writes to stderr, printing *svg.Node arguments as their path. Wrap a
// node in Node to print its markup instead.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		if x, ok := a.(*svg.Node); ok {
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = x.Path()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

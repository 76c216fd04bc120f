package task

import (
	"slices"
	"testing"

	"github.com/signadot/svgclean/svg"
)

func TestUngroupDefs(t *testing.T) {
	tests := []passTest{
		{
			In: `
<svg>
    <rect/>
    <defs>
        <linearGradient id='a' x1='1'/>
    </defs>
    <rect fill='url(#a)'/>
</svg>`,
			Out: `
<svg>
    <rect/>
    <linearGradient id='a' x1='1'/>
    <rect fill='url(#a)'/>
</svg>
`,
		},
		{
			In: `
<svg>
    <defs>
        <linearGradient id='a'/>
        <radialGradient id='b'/>
    </defs>
    <defs>
        <filter id='c'/>
    </defs>
    <rect fill='url(#a)' stroke='url(#b)' filter='url(#c)'/>
</svg>`,
			Out: `
<svg>
    <linearGradient id='a'/>
    <radialGradient id='b'/>
    <filter id='c'/>
    <rect fill='url(#a)' stroke='url(#b)' filter='url(#c)'/>
</svg>
`,
		},
		// one child is not referenced
		{
			In: `
<svg>
    <defs>
        <linearGradient id='a'/>
        <linearGradient id='b'/>
    </defs>
    <rect fill='url(#a)'/>
</svg>`,
		},
		// a referenced shape would start rendering
		{
			In: `
<svg>
    <defs>
        <rect id='r'/>
    </defs>
    <use xlink:href='#r'/>
</svg>`,
		},
	}
	testPasses(t, tests, UngroupDefs)
}

func TestUngroupDefsIdempotent(t *testing.T) {
	idempotent(t, `
<svg>
    <defs><linearGradient id='a'/></defs>
    <defs><linearGradient id='b'/><rect/></defs>
    <rect fill='url(#a)' stroke='url(#b)'/>
</svg>`, UngroupDefs)
}

// rendered returns the elements drawn in place: those reachable from the
// root without entering a defs or a definition.
func rendered(doc *svg.Document) []*svg.Node {
	var res []*svg.Node
	var walk func(n *svg.Node)
	walk = func(n *svg.Node) {
		if n.Is(svg.TagDefs) || n.Tag().IsDefinition() {
			return
		}
		res = append(res, n)
		for _, c := range n.ElementChildren() {
			walk(c)
		}
	}
	walk(doc.Root())
	return res
}

func TestUngroupDefsRenderNeutral(t *testing.T) {
	ins := []string{
		`<svg><defs><linearGradient id='a'/><rect/></defs><rect fill='url(#a)'/></svg>`,
		`<svg><defs><rect id='r'/></defs><use xlink:href='#r'/></svg>`,
		`<svg><g><defs><clipPath id='c'><rect/></clipPath></defs></g><rect clip-path='url(#c)'/></svg>`,
		`<svg><defs><symbol id='s'><rect/></symbol><marker id='m'/></defs><use xlink:href='#s' marker-end='url(#m)'/></svg>`,
	}
	for i, in := range ins {
		doc := mustParse(t, in)
		before := rendered(doc)
		if err := UngroupDefs(doc); err != nil {
			t.Fatal(err)
		}
		if after := rendered(doc); !slices.Equal(before, after) {
			t.Errorf("test %d: rendered %v, then %v", i, before, after)
		}
	}
}

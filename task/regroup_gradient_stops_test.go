package task

import (
	"errors"
	"testing"

	"github.com/signadot/svgclean/svg"
)

func TestRegroupGradientStops(t *testing.T) {
	tests := []passTest{
		{
			In: `
<svg>
    <linearGradient id='lg1' x1='50'>
        <stop offset='0'/>
        <stop offset='1'/>
    </linearGradient>
    <linearGradient id='lg2' x1='100'>
        <stop offset='0'/>
        <stop offset='1'/>
    </linearGradient>
</svg>`,
			Out: `
<svg>
    <linearGradient id='lg3'>
        <stop offset='0'/>
        <stop offset='1'/>
    </linearGradient>
    <linearGradient id='lg1' x1='50' xlink:href='#lg3'/>
    <linearGradient id='lg2' x1='100' xlink:href='#lg3'/>
</svg>
`,
		},
		{
			In: `
<svg>
    <linearGradient id='lg1' x1='50'>
        <stop offset='0'/>
        <stop offset='1'/>
    </linearGradient>
    <linearGradient id='lg3' x1='50'>
        <stop offset='0.5'/>
        <stop offset='1'/>
    </linearGradient>
    <linearGradient id='lg2' x1='100'>
        <stop offset='0'/>
        <stop offset='1'/>
    </linearGradient>
    <linearGradient id='lg4' x1='100'>
        <stop offset='0.5'/>
        <stop offset='1'/>
    </linearGradient>
</svg>`,
			Out: `
<svg>
    <linearGradient id='lg5'>
        <stop offset='0'/>
        <stop offset='1'/>
    </linearGradient>
    <linearGradient id='lg1' x1='50' xlink:href='#lg5'/>
    <linearGradient id='lg6'>
        <stop offset='0.5'/>
        <stop offset='1'/>
    </linearGradient>
    <linearGradient id='lg3' x1='50' xlink:href='#lg6'/>
    <linearGradient id='lg2' x1='100' xlink:href='#lg5'/>
    <linearGradient id='lg4' x1='100' xlink:href='#lg6'/>
</svg>
`,
		},
		{
			In: `
<svg>
    <radialGradient id='a' r='5'>
        <stop offset='0'/>
    </radialGradient>
    <linearGradient id='b' x2='1'>
        <stop offset='0'/>
    </linearGradient>
</svg>`,
			Out: `
<svg>
    <radialGradient id='rg1'>
        <stop offset='0'/>
    </radialGradient>
    <radialGradient id='a' r='5' xlink:href='#rg1'/>
    <linearGradient id='b' x2='1' xlink:href='#rg1'/>
</svg>
`,
		},
		// already linked gradients are no candidates
		{
			In: `
<svg>
    <linearGradient id='a'>
        <stop offset='0'/>
    </linearGradient>
    <linearGradient id='b' xlink:href='#a'>
        <stop offset='0'/>
    </linearGradient>
</svg>`,
		},
		// other children than stops
		{
			In: `
<svg>
    <linearGradient id='a'>
        <stop offset='0'/>
        <animate/>
    </linearGradient>
    <linearGradient id='b'>
        <stop offset='0'/>
        <animate/>
    </linearGradient>
</svg>`,
		},
	}
	testPasses(t, tests, RegroupGradientStops)
}

func TestRegroupIdempotent(t *testing.T) {
	idempotent(t, `
<svg>
    <linearGradient id='a' x1='1'><stop offset='0'/></linearGradient>
    <linearGradient id='b' x1='2'><stop offset='0'/></linearGradient>
    <linearGradient id='c' x1='3'><stop offset='1'/></linearGradient>
    <radialGradient id='d' r='3'><stop offset='1'/></radialGradient>
</svg>`, RegroupGradientStops)
}

func TestVerifyPartition(t *testing.T) {
	doc := mustParse(t, `<svg><linearGradient id='a' x1='1'/><linearGradient id='s'/></svg>`)
	head, shared := doc.ByID("a"), doc.ByID("s")
	if err := verifyPartition(head, shared); err != nil {
		t.Fatal(err)
	}
	shared.SetAttr(svg.AttrX1, "1")
	if err := verifyPartition(head, shared); !errors.Is(err, svg.ErrInvariant) {
		t.Errorf("expected ErrInvariant, got %v", err)
	}
}

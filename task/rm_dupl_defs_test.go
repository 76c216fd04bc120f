package task

import (
	"testing"
)

func TestRemoveDuplLinearGradients(t *testing.T) {
	tests := []passTest{
		{
			In: `
<svg>
    <linearGradient id='a' x1='50'>
        <stop offset='0' stop-color='red'/>
        <stop offset='1'/>
    </linearGradient>
    <linearGradient id='b' x1='50'>
        <stop offset='0' stop-color='#f00'/>
        <stop offset='1'/>
    </linearGradient>
    <rect fill='url(#a)'/>
    <rect fill='url(#b)'/>
</svg>`,
			Out: `
<svg>
    <linearGradient id='lg1'>
        <stop offset='0' stop-color='red'/>
        <stop offset='1'/>
    </linearGradient>
    <linearGradient id='a' x1='50' xlink:href='#lg1'/>
    <linearGradient id='b' x1='50' xlink:href='#lg1'/>
    <rect fill='url(#a)'/>
    <rect fill='url(#b)'/>
</svg>
`,
		},
		// different attributes
		{
			In: `
<svg>
    <linearGradient id='a' x1='50'>
        <stop offset='0'/>
    </linearGradient>
    <linearGradient id='b' x1='51'>
        <stop offset='0'/>
    </linearGradient>
</svg>`,
		},
		// the shared node of the first group serves the second one
		{
			In: `
<svg>
    <linearGradient id='a' x1='1'><stop offset='0'/></linearGradient>
    <linearGradient id='b' x1='1'><stop offset='0'/></linearGradient>
    <linearGradient id='c' x1='2'><stop offset='0'/></linearGradient>
    <linearGradient id='d' x1='2'><stop offset='0'/></linearGradient>
</svg>`,
			Out: `
<svg>
    <linearGradient id='lg1'>
        <stop offset='0'/>
    </linearGradient>
    <linearGradient id='a' x1='1' xlink:href='#lg1'/>
    <linearGradient id='b' x1='1' xlink:href='#lg1'/>
    <linearGradient id='c' x1='2' xlink:href='#lg1'/>
    <linearGradient id='d' x1='2' xlink:href='#lg1'/>
</svg>
`,
		},
		// radial gradients are left to their own pass
		{
			In: `
<svg>
    <radialGradient id='a'><stop offset='0'/></radialGradient>
    <radialGradient id='b'><stop offset='0'/></radialGradient>
</svg>`,
		},
	}
	testPasses(t, tests, RemoveDuplLinearGradients)
}

func TestRemoveDuplRadialGradients(t *testing.T) {
	tests := []passTest{
		{
			In: `
<svg>
    <radialGradient id='a' r='2'><stop offset='0'/></radialGradient>
    <radialGradient id='b' r='2.0'><stop offset='0'/></radialGradient>
</svg>`,
			Out: `
<svg>
    <radialGradient id='rg1'>
        <stop offset='0'/>
    </radialGradient>
    <radialGradient id='a' r='2' xlink:href='#rg1'/>
    <radialGradient id='b' r='2.0' xlink:href='#rg1'/>
</svg>
`,
		},
	}
	testPasses(t, tests, RemoveDuplRadialGradients)
}

func TestRemoveDuplFeGaussianBlur(t *testing.T) {
	tests := []passTest{
		{
			In: `
<svg>
    <filter id='f1'><feGaussianBlur stdDeviation='2'/></filter>
    <filter id='f2'><feGaussianBlur stdDeviation='2'/></filter>
    <filter id='f3'><feGaussianBlur stdDeviation='3'/></filter>
</svg>`,
			Out: `
<svg>
    <filter id='fe1'>
        <feGaussianBlur stdDeviation='2'/>
    </filter>
    <filter id='f1' xlink:href='#fe1'/>
    <filter id='f2' xlink:href='#fe1'/>
    <filter id='f3'>
        <feGaussianBlur stdDeviation='3'/>
    </filter>
</svg>
`,
		},
		// not a blur filter
		{
			In: `
<svg>
    <filter id='f1'><feGaussianBlur/><feOffset/></filter>
    <filter id='f2'><feGaussianBlur/><feOffset/></filter>
</svg>`,
		},
	}
	testPasses(t, tests, RemoveDuplFeGaussianBlur)
}

func TestMergerIdempotent(t *testing.T) {
	in := `
<svg>
    <linearGradient id='p'><stop offset='0'/></linearGradient>
    <linearGradient id='a' x1='1'><stop offset='0'/></linearGradient>
    <linearGradient id='b' x1='1'><stop offset='0'/></linearGradient>
    <linearGradient id='c'><stop offset='1'/></linearGradient>
    <linearGradient id='d'><stop offset='1'/></linearGradient>
</svg>`
	idempotent(t, in, RemoveDuplLinearGradients)
	idempotent(t, in, RegroupGradientStops)
}

// TestMergeChildrenReferenced checks that nodes whose children are linked
// from elsewhere are left alone, since joins lose their children.
func TestMergeChildrenReferenced(t *testing.T) {
	testPasses(t, []passTest{{
		In: `
<svg>
    <linearGradient id='a'><stop id='s' offset='0'/></linearGradient>
    <linearGradient id='b'><stop offset='0'/></linearGradient>
    <use xlink:href='#s'/>
</svg>`,
	}}, RemoveDuplLinearGradients)
}

package parse

import (
	"errors"
	"testing"

	"github.com/signadot/svgclean/encode"
	"github.com/signadot/svgclean/svg"
)

type parseTest struct {
	in   string
	opts []ParseOption
	out  string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:  `<svg/>`,
			out: `<svg/>`,
		},
		{
			in:  "<svg>\n  <g>\n    <rect/>\n  </g>\n</svg>\n",
			out: `<svg><g><rect/></g></svg>`,
		},
		{
			in:  `<svg><!--c--><rect/></svg>`,
			out: `<svg><rect/></svg>`,
		},
		{
			in:   `<svg><!--c--><rect/></svg>`,
			opts: []ParseOption{ParseComments(true)},
			out:  `<svg><!--c--><rect/></svg>`,
		},
		{
			in:  `<?xml version="1.0"?><svg/>`,
			out: `<?xml version="1.0"?><svg/>`,
		},
		{
			in:   `<?xml version="1.0"?><svg/>`,
			opts: []ParseOption{ParseDeclarations(false)},
			out:  `<svg/>`,
		},
		{
			in:  `<svg><rect style="fill:red; foo:bar"/></svg>`,
			out: `<svg><rect fill="red" style="foo:bar"/></svg>`,
		},
		{
			in:  `<svg><rect fill="blue" style="fill:red"/></svg>`,
			out: `<svg><rect fill="red"/></svg>`,
		},
		{
			in:  `<svg><rect style="stroke:blue !important"/></svg>`,
			out: `<svg><rect style="stroke:blue !important"/></svg>`,
		},
		{
			in:   `<svg><rect style="fill:red"/></svg>`,
			opts: []ParseOption{SplitStyle(false)},
			out:  `<svg><rect style="fill:red"/></svg>`,
		},
		{
			in:  `<svg><text>a &amp; b</text></svg>`,
			out: `<svg><text>a &amp; b</text></svg>`,
		},
		{
			in:  `<svg><rect id=""/></svg>`,
			out: `<svg><rect/></svg>`,
		},
	}
	for i, pt := range pts {
		doc, err := ParseString(pt.in, pt.opts...)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if got := encode.EncodeString(doc); got != pt.out {
			t.Errorf("test %d: got %s want %s", i, got, pt.out)
		}
		if err := doc.Check(); err != nil {
			t.Errorf("test %d: check: %v", i, err)
		}
	}
}

func TestParseLinks(t *testing.T) {
	doc, err := ParseString(`<svg xmlns:xlink="http://www.w3.org/1999/xlink">` +
		`<rect id="r" fill="url(#a) red" stroke="url(#nope)"/>` +
		`<linearGradient id="a"/>` +
		`<linearGradient id="b" xlink:href="#a"/>` +
		`</svg>`)
	if err != nil {
		t.Fatal(err)
	}
	a, b, r := doc.ByID("a"), doc.ByID("b"), doc.ByID("r")
	if r.Link("fill") != a {
		t.Errorf("forward fill link not resolved")
	}
	if b.Link(svg.AttrHref) != a {
		t.Errorf("href not resolved")
	}
	if r.Link("stroke") != nil {
		t.Errorf("dangling reference resolved")
	}
	if v, _ := r.AttrValue("stroke"); v != "url(#nope)" {
		t.Errorf("dangling reference rewritten to %q", v)
	}
	if n := len(a.References()); n != 2 {
		t.Errorf("got %d references to a, want 2", n)
	}
	if got, want := encode.NodeString(r), `<rect id="r" fill="url(#a) red" stroke="url(#nope)"/>`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	ins := []string{
		`<svg><g></svg>`,
		`<svg>`,
		`<svg/><svg/>`,
		`text<svg/>`,
		`<svg><g id="a"/><g id="a"/></svg>`,
		`</svg>`,
	}
	for _, in := range ins {
		_, err := ParseString(in)
		if err == nil {
			t.Errorf("%s: expected error", in)
			continue
		}
		if !errors.Is(err, svg.ErrParse) {
			t.Errorf("%s: %v is not a parse error", in, err)
		}
	}
}

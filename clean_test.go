package svgclean

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/svgclean/encode"
	"github.com/signadot/svgclean/parse"
	"github.com/signadot/svgclean/svg"
	"github.com/signadot/svgclean/task"

	"github.com/google/go-cmp/cmp"
)

type cleanTest struct {
	In   string
	Opts *Options
	Out  string
}

func mustParse(t *testing.T, in string) *svg.Document {
	t.Helper()
	doc, err := parse.ParseString(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func write(doc *svg.Document) string {
	return encode.EncodeString(doc, encode.Indent(4), encode.Quote('\''))
}

const gradients = `
<?xml version='1.0'?>
<svg version='1.1' xmlns='http://www.w3.org/2000/svg' xmlns:xlink='http://www.w3.org/1999/xlink'>
    <title>x</title>
    <defs>
        <linearGradient id='gradA' x1='0' x2='10' gradientUnits='userSpaceOnUse'>
            <stop offset='0' stop-color='red'/>
            <stop offset='1' stop-color='blue'/>
        </linearGradient>
        <linearGradient id='gradB' x1='0' x2='10' gradientUnits='userSpaceOnUse'>
            <stop offset='0' stop-color='#f00'/>
            <stop offset='1' stop-color='#0000ff'/>
        </linearGradient>
        <linearGradient id='unused'/>
    </defs>
    <rect width='10' height='10' fill='url(#gradA)'/>
    <rect width='10' height='10' fill='url(#gradB)'/>
</svg>`

func TestClean(t *testing.T) {
	tests := []cleanTest{
		{
			In: gradients,
			Out: `
<?xml version='1.0'?>
<svg xmlns='http://www.w3.org/2000/svg' xmlns:xlink='http://www.w3.org/1999/xlink'>
    <linearGradient id='a'>
        <stop stop-color='red'/>
        <stop offset='1' stop-color='blue'/>
    </linearGradient>
    <linearGradient id='b' x1='0' x2='10' gradientUnits='userSpaceOnUse' xlink:href='#a'/>
    <linearGradient id='c' x1='0' x2='10' gradientUnits='userSpaceOnUse' xlink:href='#a'/>
    <rect width='10' height='10' fill='url(#b)'/>
    <rect width='10' height='10' fill='url(#c)'/>
</svg>
`,
		},
		// two gradients sharing their stops, only the regrouper enabled
		{
			In: `
<svg>
    <linearGradient id='lg1' x1='50'><stop offset='0'/><stop offset='1'/></linearGradient>
    <linearGradient id='lg2' x1='100'><stop offset='0'/><stop offset='1'/></linearGradient>
    <rect fill='url(#lg1)'/>
    <rect fill='url(#lg2)'/>
</svg>`,
			Opts: &Options{RegroupGradientStops: true},
			Out: `
<svg xmlns:xlink='http://www.w3.org/1999/xlink'>
    <defs>
        <linearGradient id='lg3'>
            <stop offset='0'/>
            <stop offset='1'/>
        </linearGradient>
        <linearGradient id='lg1' x1='50' xlink:href='#lg3'/>
        <linearGradient id='lg2' x1='100' xlink:href='#lg3'/>
    </defs>
    <rect fill='url(#lg1)'/>
    <rect fill='url(#lg2)'/>
</svg>
`,
		},
		// nothing optional
		{
			In:   `<svg version='1.1'><title>t</title><g><rect/></g></svg>`,
			Opts: &Options{},
			Out: `
<svg version='1.1'>
    <title>t</title>
    <g>
        <rect/>
    </g>
</svg>
`,
		},
	}
	for i, tc := range tests {
		doc := mustParse(t, tc.In)
		if err := Clean(doc, tc.Opts); err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if err := doc.Check(); err != nil {
			t.Errorf("test %d: check: %v", i, err)
		}
		want := strings.TrimPrefix(tc.Out, "\n")
		if diff := cmp.Diff(want, write(doc)); diff != "" {
			t.Errorf("test %d (-want +got):\n%s", i, diff)
		}
	}
}

const regrouped = `
<svg xmlns='http://www.w3.org/2000/svg' xmlns:xlink='http://www.w3.org/1999/xlink'>
    <defs>
        <linearGradient id='g1' x1='1'>
            <stop offset='0' stop-color='red'/>
            <stop offset='1' stop-color='blue'/>
        </linearGradient>
        <linearGradient id='g2' x1='1'>
            <stop offset='0' stop-color='red'/>
            <stop offset='1' stop-color='blue'/>
        </linearGradient>
        <linearGradient id='g3' x1='2'>
            <stop offset='0' stop-color='red'/>
            <stop offset='1' stop-color='blue'/>
        </linearGradient>
    </defs>
    <rect width='10' height='10' fill='url(#g1)'/>
    <rect width='10' height='10' fill='url(#g2)'/>
    <rect width='10' height='10' fill='url(#g3)'/>
</svg>`

// TestCleanNoUnusedGradients regroups the stops of a node made by the
// duplicate merge: the node it leaves behind must not stay in the output.
func TestCleanNoUnusedGradients(t *testing.T) {
	doc := mustParse(t, regrouped)
	if err := Clean(doc, nil); err != nil {
		t.Fatal(err)
	}
	n := 0
	for g := range doc.ElementsOf(svg.TagLinearGradient) {
		n++
		if !g.IsReferenced() {
			t.Errorf("unreferenced %s in\n%s", encode.NodeString(g), write(doc))
		}
	}
	// three stubs and the stops
	if n != 4 {
		t.Errorf("got %d gradients, want 4:\n%s", n, write(doc))
	}
}

func TestCleanStyleNamedGradient(t *testing.T) {
	doc := mustParse(t, `
<svg xmlns='http://www.w3.org/2000/svg'>
    <defs>
        <linearGradient id='g'>
            <stop offset='0' stop-color='red'/>
            <stop offset='1' stop-color='blue'/>
        </linearGradient>
    </defs>
    <rect width='10' height='10' style='fill:url(#g) !important'/>
</svg>`)
	if err := Clean(doc, nil); err != nil {
		t.Fatal(err)
	}
	g := doc.ByID("g")
	if g == nil || !g.Is(svg.TagLinearGradient) || g.ChildCount() != 2 {
		t.Errorf("gradient named from style lost:\n%s", write(doc))
	}
}

func TestCleanDeterministic(t *testing.T) {
	var outs []string
	for range 3 {
		doc := mustParse(t, gradients)
		if err := Clean(doc, nil); err != nil {
			t.Fatal(err)
		}
		outs = append(outs, encode.EncodeString(doc))
	}
	for i := 1; i < len(outs); i++ {
		if outs[i] != outs[0] {
			t.Errorf("run %d differs:\n%s\n%s", i, outs[0], outs[i])
		}
	}
}

func TestCleanValidation(t *testing.T) {
	for i, in := range []string{
		``,
		`<!-- only a comment -->`,
		`<g><rect/></g>`,
	} {
		doc := mustParse(t, in)
		before := encode.EncodeString(doc)
		err := Clean(doc, nil)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("test %d: expected ErrValidation, got %v", i, err)
		}
		if after := encode.EncodeString(doc); after != before {
			t.Errorf("test %d: document changed from %q to %q", i, before, after)
		}
	}
}

// TestCleanIntegrity checks the document invariants after every single
// pass, each run alone on top of the unconditional ones.
func TestCleanIntegrity(t *testing.T) {
	for _, f := range (&Options{}).Flags() {
		opts := &Options{}
		fs := opts.Flags()
		for i := range fs {
			if fs[i].Name == f.Name {
				*fs[i].V = true
			}
		}
		doc := mustParse(t, gradients)
		if err := Clean(doc, opts); err != nil {
			t.Errorf("%s: %v", f.Name, err)
			continue
		}
		if err := doc.Check(); err != nil {
			t.Errorf("%s: %v", f.Name, err)
		}
	}
}

func TestFlagsNamePasses(t *testing.T) {
	for _, f := range DefaultOptions().Flags() {
		if f.Name == "remove_xmlns_xlink_attribute" {
			continue
		}
		if task.Lookup(f.Name) == nil {
			t.Errorf("no pass for option %s", f.Name)
		}
		if !*f.V {
			t.Errorf("%s is off by default", f.Name)
		}
	}
}

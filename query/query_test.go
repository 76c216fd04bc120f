package query_test

import (
	"errors"
	"testing"

	"github.com/signadot/svgclean/parse"
	"github.com/signadot/svgclean/query"

	"github.com/google/go-cmp/cmp"
)

const doc = `
<svg>
    <defs>
        <linearGradient id='lg1'><stop offset='0'/></linearGradient>
        <linearGradient id='a' x1='2' xlink:href='#lg1'/>
        <radialGradient id='unused'/>
    </defs>
    <g fill='none'>
        <rect fill='url(#a)' width='1'/>
    </g>
</svg>`

func TestSelect(t *testing.T) {
	tests := []struct {
		Where string
		Want  []string
	}{
		{`tag == "linearGradient"`, []string{"linearGradient#lg1", "linearGradient#a"}},
		{`id != "" && !referenced`, []string{"radialGradient#unused"}},
		{`refs > 0`, []string{"linearGradient#lg1", "linearGradient#a"}},
		{`has("xlink:href") && target("xlink:href") startsWith "lg"`, []string{"linearGradient#a"}},
		{`attr("fill") == "none"`, []string{"g"}},
		{`attrs["fill"] == "url(#a)"`, []string{"rect"}},
		{`depth == 2 && children == 0`, []string{"linearGradient#a", "radialGradient#unused", "rect"}},
		{`path == "/svg"`, []string{"svg"}},
		{`false`, nil},
	}
	d, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	for i, tc := range tests {
		q, err := query.Compile(tc.Where)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		ns, err := query.Select(d, q)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		var got []string
		for _, n := range ns {
			got = append(got, n.String())
		}
		if diff := cmp.Diff(tc.Want, got); diff != "" {
			t.Errorf("test %d %s (-want +got):\n%s", i, tc.Where, diff)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`tag ==`, `tag`, `nosuch > 1`} {
		if _, err := query.Compile(src); !errors.Is(err, query.ErrQuery) {
			t.Errorf("%s: expected ErrQuery, got %v", src, err)
		}
	}
}

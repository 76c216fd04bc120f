package task

import (
	"strings"
	"testing"

	"github.com/signadot/svgclean/encode"
	"github.com/signadot/svgclean/parse"
	"github.com/signadot/svgclean/svg"

	"github.com/google/go-cmp/cmp"
)

type passTest struct {
	In  string
	Out string
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

// runPass applies the passes in order to in and returns the indented
// result, checking the document indexes after each pass.
func runPass(t *testing.T, in string, passes ...func(*svg.Document) error) string {
	t.Helper()
	doc := mustParse(t, in)
	for _, p := range passes {
		if err := p(doc); err != nil {
			t.Fatalf("pass: %v", err)
		}
		if err := doc.Check(); err != nil {
			t.Fatalf("check: %v", err)
		}
	}
	return write(doc)
}

// testPasses runs each test, an empty Out meaning the input is unchanged.
func testPasses(t *testing.T, tests []passTest, passes ...func(*svg.Document) error) {
	t.Helper()
	for i, tc := range tests {
		want := strings.TrimPrefix(tc.Out, "\n")
		if tc.Out == "" {
			want = write(mustParse(t, tc.In))
		}
		got := runPass(t, tc.In, passes...)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("test %d (-want +got):\n%s", i, diff)
		}
	}
}

// idempotent checks that applying pass to its own output changes nothing.
func idempotent(t *testing.T, in string, pass func(*svg.Document) error) {
	t.Helper()
	doc := mustParse(t, in)
	if err := pass(doc); err != nil {
		t.Fatal(err)
	}
	once := write(doc)
	if err := pass(doc); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(once, write(doc)); diff != "" {
		t.Errorf("second run changed the document (-first +second):\n%s", diff)
	}
}

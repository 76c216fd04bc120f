package svg

import (
	"testing"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		eq   bool
	}{
		{AttrOffset, "0.5", ".5", true},
		{AttrOffset, "0", "0.0", true},
		{AttrX1, "50%", "0.5", false},
		{AttrX1, "10px", "10", false},
		{AttrStopColor, "#FFF", "#ffffff", true},
		{AttrStopColor, "white", "#fff", true},
		{AttrStopColor, "red", "#f00", true},
		{AttrStopColor, "red", "blue", false},
		{AttrSpreadMethod, "pad", " pad", true},
	}
	for _, tt := range tests {
		got := NormalizeValue(tt.name, tt.a) == NormalizeValue(tt.name, tt.b)
		if got != tt.eq {
			t.Errorf("%s: %q vs %q: got equal=%v", tt.name, tt.a, tt.b, got)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		0:               "0",
		1:               "1",
		0.5:             "0.5",
		-2.25:           "-2.25",
		0.1 + 0.2:       "0.3",
		100.00000000001: "100",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		in   string
		want Transform
	}{
		{"translate(10)", Transform{A: 1, D: 1, E: 10}},
		{"translate(10, 20)", Transform{A: 1, D: 1, E: 10, F: 20}},
		{"scale(2)", Transform{A: 2, D: 2}},
		{"translate(10 20) scale(2 3)", Transform{A: 2, D: 3, E: 10, F: 20}},
		{"matrix(1 0 0 1 5 6)", Transform{A: 1, D: 1, E: 5, F: 6}},
	}
	for _, tt := range tests {
		got, err := ParseTransform(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v want %v", tt.in, got, tt.want)
		}
	}
	rot, err := ParseTransform("rotate(90)")
	if err != nil {
		t.Fatal(err)
	}
	if rot.IsScaleTranslate() {
		t.Errorf("rotate(90) reported as scale/translate")
	}
	for _, bad := range []string{"translate(", "foo(1)", "scale(1 2 3)", "matrix(1 2)"} {
		if _, err := ParseTransform(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestEqualIgnoresIDs(t *testing.T) {
	d, root := testDoc(t)
	mk := func(id, offset string) *Node {
		g := newGradient(t, d, root, id)
		s := d.CreateElement(TagStop)
		s.SetAttr(AttrOffset, offset)
		g.Append(s)
		return g
	}
	a := mk("a", "0")
	b := mk("b", "0.0")
	c := mk("c", "1")
	if !Equal(a, b) {
		t.Errorf("a and b should be equal")
	}
	if Equal(a, c) {
		t.Errorf("a and c should differ")
	}
	if err := a.FirstChild().SetID("s1"); err != nil {
		t.Fatal(err)
	}
	if !EqualChildren(a, b) {
		t.Errorf("child ids should be ignored")
	}
}

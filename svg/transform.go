package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Transform is the affine matrix
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity is the transform that changes nothing.
var Identity = Transform{A: 1, D: 1}

// Mul returns t × u, which applies u first.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.C*u.B,
		B: t.B*u.A + t.D*u.B,
		C: t.A*u.C + t.C*u.D,
		D: t.B*u.C + t.D*u.D,
		E: t.A*u.E + t.C*u.F + t.E,
		F: t.B*u.E + t.D*u.F + t.F,
	}
}

// Apply maps the point (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// IsScaleTranslate reports whether t has no rotation or skew.
func (t Transform) IsScaleTranslate() bool {
	return t.B == 0 && t.C == 0
}

// IsIdentity reports whether t leaves every point in place.
func (t Transform) IsIdentity() bool {
	return t == Identity
}

func (t Transform) String() string {
	nums := []float64{t.A, t.B, t.C, t.D, t.E, t.F}
	parts := make([]string, len(nums))
	for i, f := range nums {
		parts[i] = FormatNumber(f)
	}
	return "matrix(" + strings.Join(parts, " ") + ")"
}

// ParseTransform parses an SVG transform list such as
// "translate(10 20) scale(2)".
func ParseTransform(s string) (Transform, error) {
	res := Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return Identity, fmt.Errorf("bad transform %q", s)
		}
		closing := strings.IndexByte(rest, ')')
		if closing < open {
			return Identity, fmt.Errorf("bad transform %q", s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseNumbers(rest[open+1 : closing])
		if err != nil {
			return Identity, fmt.Errorf("bad transform %q: %w", s, err)
		}
		t, err := transformOf(name, args)
		if err != nil {
			return Identity, fmt.Errorf("bad transform %q: %w", s, err)
		}
		res = res.Mul(t)
		rest = strings.TrimLeft(rest[closing+1:], " \t\r\n,")
	}
	return res, nil
}

func transformOf(name string, a []float64) (Transform, error) {
	arity := func(ns ...int) error {
		for _, n := range ns {
			if len(a) == n {
				return nil
			}
		}
		return fmt.Errorf("%s takes %v arguments, got %d", name, ns, len(a))
	}
	switch name {
	case "matrix":
		if err := arity(6); err != nil {
			return Identity, err
		}
		return Transform{a[0], a[1], a[2], a[3], a[4], a[5]}, nil
	case "translate":
		if err := arity(1, 2); err != nil {
			return Identity, err
		}
		t := Identity
		t.E = a[0]
		if len(a) == 2 {
			t.F = a[1]
		}
		return t, nil
	case "scale":
		if err := arity(1, 2); err != nil {
			return Identity, err
		}
		sy := a[0]
		if len(a) == 2 {
			sy = a[1]
		}
		return Transform{A: a[0], D: sy}, nil
	case "rotate":
		if err := arity(1, 3); err != nil {
			return Identity, err
		}
		rad := a[0] * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		r := Transform{A: cos, B: sin, C: -sin, D: cos}
		if len(a) == 3 {
			r = Transform{A: 1, D: 1, E: a[1], F: a[2]}.Mul(r).Mul(Transform{A: 1, D: 1, E: -a[1], F: -a[2]})
		}
		return r, nil
	case "skewX":
		if err := arity(1); err != nil {
			return Identity, err
		}
		return Transform{A: 1, C: math.Tan(a[0] * math.Pi / 180), D: 1}, nil
	case "skewY":
		if err := arity(1); err != nil {
			return Identity, err
		}
		return Transform{A: 1, B: math.Tan(a[0] * math.Pi / 180), D: 1}, nil
	}
	return Identity, fmt.Errorf("unknown transform %q", name)
}

func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	res := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

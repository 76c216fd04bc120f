package svg

import (
	"strconv"
	"strings"
)

// Length is a number with an optional unit, e.g. "50%" or "1.5px".
type Length struct {
	Num  float64
	Unit string
}

var units = []string{"%", "px", "pt", "pc", "mm", "cm", "in", "em", "ex"}

// ParseLength parses s as a number followed by an optional unit.
func ParseLength(s string) (Length, bool) {
	s = strings.TrimSpace(s)
	unit := ""
	for _, u := range units {
		if strings.HasSuffix(s, u) {
			unit = u
			s = s[:len(s)-len(u)]
			break
		}
	}
	if s == "" {
		return Length{}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Length{}, false
	}
	return Length{Num: f, Unit: unit}, true
}

func (l Length) String() string {
	return FormatNumber(l.Num) + l.Unit
}

// FormatNumber writes f in its shortest form, without exponent.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	// round away float noise from transform arithmetic
	f, _ = strconv.ParseFloat(strconv.FormatFloat(f, 'g', 12, 64), 64)
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"aqua":    "#00ffff",
	"magenta": "#ff00ff",
	"fuchsia": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"maroon":  "#800000",
	"olive":   "#808000",
	"navy":    "#000080",
	"purple":  "#800080",
	"teal":    "#008080",
	"orange":  "#ffa500",
}

// NormalizeColor returns the canonical "#rrggbb" form of a color value, or
// the value unchanged if it is not a plain color.
func NormalizeColor(v string) string {
	s := strings.ToLower(strings.TrimSpace(v))
	if c, ok := namedColors[s]; ok {
		return c
	}
	if !strings.HasPrefix(s, "#") {
		return v
	}
	h := s[1:]
	for _, c := range h {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return v
		}
	}
	switch len(h) {
	case 3:
		return "#" + string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
		return s
	}
	return v
}

var colorAttrs = map[string]bool{
	AttrFill:       true,
	AttrStroke:     true,
	AttrStopColor:  true,
	AttrFloodColor: true,
	AttrColor:      true,
}

// NormalizeValue returns the form of the value of attribute name used for
// comparisons: colors in canonical form and numbers reformatted.
func NormalizeValue(name, v string) string {
	if colorAttrs[name] {
		return NormalizeColor(v)
	}
	if l, ok := ParseLength(v); ok {
		return l.String()
	}
	return strings.TrimSpace(v)
}

// ParseFuncIRI splits a value of the form "url(#id) fallback".
func ParseFuncIRI(v string) (id, fallback string, ok bool) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "url(") {
		return "", "", false
	}
	end := strings.IndexByte(v, ')')
	if end < 0 {
		return "", "", false
	}
	inner := strings.Trim(strings.TrimSpace(v[4:end]), `"'`)
	if !strings.HasPrefix(inner, "#") || len(inner) == 1 {
		return "", "", false
	}
	return inner[1:], strings.TrimSpace(v[end+1:]), true
}

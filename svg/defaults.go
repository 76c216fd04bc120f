package svg

// presentation attribute initial values
var presentationDefaults = map[string]string{
	AttrFill:             "#000000",
	AttrFillOpacity:      "1",
	AttrFillRule:         "nonzero",
	AttrStroke:           "none",
	AttrStrokeWidth:      "1",
	AttrStrokeOpacity:    "1",
	AttrStrokeLinecap:    "butt",
	AttrStrokeLinejoin:   "miter",
	AttrStrokeMiterlimit: "4",
	AttrStrokeDasharray:  "none",
	AttrStrokeDashoffset: "0",
	AttrOpacity:          "1",
	AttrStopColor:        "#000000",
	AttrStopOpacity:      "1",
	AttrDisplay:          "inline",
	AttrVisibility:       "visible",
	AttrClipPath:         "none",
	AttrClipRule:         "nonzero",
	AttrMask:             "none",
	AttrFilter:           "none",
	AttrMarkerStart:      "none",
	AttrMarkerMid:        "none",
	AttrMarkerEnd:        "none",
	AttrFloodColor:       "#000000",
	AttrFloodOpacity:     "1",
	AttrFontStyle:        "normal",
	AttrFontWeight:       "normal",
	AttrTextAnchor:       "start",
}

var elementDefaults = map[Tag]map[string]string{
	TagLinearGradient: {
		AttrX1:            "0%",
		AttrY1:            "0%",
		AttrX2:            "100%",
		AttrY2:            "0%",
		AttrGradientUnits: "objectBoundingBox",
		AttrSpreadMethod:  "pad",
	},
	TagRadialGradient: {
		AttrCx:            "50%",
		AttrCy:            "50%",
		AttrR:             "50%",
		AttrGradientUnits: "objectBoundingBox",
		AttrSpreadMethod:  "pad",
	},
	TagStop:           {AttrOffset: "0"},
	TagRect:           {AttrX: "0", AttrY: "0"},
	TagCircle:         {AttrCx: "0", AttrCy: "0"},
	TagEllipse:        {AttrCx: "0", AttrCy: "0"},
	TagLine:           {AttrX1: "0", AttrY1: "0", AttrX2: "0", AttrY2: "0"},
	TagFeGaussianBlur: {AttrStdDeviation: "0"},
}

// DefaultValue returns the value the attribute name takes on an element of
// kind t when it is not set.
func DefaultValue(t Tag, name string) (string, bool) {
	if v, ok := elementDefaults[t][name]; ok {
		return v, true
	}
	v, ok := presentationDefaults[name]
	return v, ok
}

// IsDefault reports whether value is the default of name on elements of
// kind t.
func IsDefault(t Tag, name, value string) bool {
	def, ok := DefaultValue(t, name)
	if !ok {
		return false
	}
	return NormalizeValue(name, def) == NormalizeValue(name, value)
}

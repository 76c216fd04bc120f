package svg

// Attribute names used by the cleaner. Attributes are keyed by their
// qualified name as written in the document.
const (
	AttrID    = "id"
	AttrHref  = "xlink:href"
	AttrStyle = "style"
	AttrClass = "class"

	AttrXmlns       = "xmlns"
	AttrXmlnsXlink  = "xmlns:xlink"
	AttrVersion     = "version"
	AttrBaseProfile = "baseProfile"

	AttrX      = "x"
	AttrY      = "y"
	AttrWidth  = "width"
	AttrHeight = "height"
	AttrRx     = "rx"
	AttrRy     = "ry"
	AttrX1     = "x1"
	AttrY1     = "y1"
	AttrX2     = "x2"
	AttrY2     = "y2"
	AttrCx     = "cx"
	AttrCy     = "cy"
	AttrR      = "r"
	AttrFx     = "fx"
	AttrFy     = "fy"

	AttrTransform         = "transform"
	AttrGradientUnits     = "gradientUnits"
	AttrGradientTransform = "gradientTransform"
	AttrSpreadMethod      = "spreadMethod"
	AttrOffset            = "offset"
	AttrStdDeviation      = "stdDeviation"

	AttrFill             = "fill"
	AttrFillOpacity      = "fill-opacity"
	AttrFillRule         = "fill-rule"
	AttrStroke           = "stroke"
	AttrStrokeWidth      = "stroke-width"
	AttrStrokeOpacity    = "stroke-opacity"
	AttrStrokeLinecap    = "stroke-linecap"
	AttrStrokeLinejoin   = "stroke-linejoin"
	AttrStrokeMiterlimit = "stroke-miterlimit"
	AttrStrokeDasharray  = "stroke-dasharray"
	AttrStrokeDashoffset = "stroke-dashoffset"
	AttrOpacity          = "opacity"
	AttrStopColor        = "stop-color"
	AttrStopOpacity      = "stop-opacity"
	AttrDisplay          = "display"
	AttrVisibility       = "visibility"
	AttrColor            = "color"
	AttrClipPath         = "clip-path"
	AttrClipRule         = "clip-rule"
	AttrMask             = "mask"
	AttrFilter           = "filter"
	AttrMarkerStart      = "marker-start"
	AttrMarkerMid        = "marker-mid"
	AttrMarkerEnd        = "marker-end"
	AttrFloodColor       = "flood-color"
	AttrFloodOpacity     = "flood-opacity"
	AttrFontFamily       = "font-family"
	AttrFontSize         = "font-size"
	AttrFontStyle        = "font-style"
	AttrFontWeight       = "font-weight"
	AttrTextAnchor       = "text-anchor"
	AttrOverflow         = "overflow"
)

// LinkForm describes how an attribute value may refer to another node.
type LinkForm uint8

const (
	NoLink LinkForm = iota
	// IRILink values are written "#id".
	IRILink
	// FuncLink values are written "url(#id)", optionally followed by a
	// fallback.
	FuncLink
)

type attrInfo struct {
	presentation bool
	inherit      bool
	link         LinkForm
}

var attrTable = map[string]attrInfo{
	AttrHref: {link: IRILink},

	AttrFill:             {presentation: true, inherit: true, link: FuncLink},
	AttrFillOpacity:      {presentation: true, inherit: true},
	AttrFillRule:         {presentation: true, inherit: true},
	AttrStroke:           {presentation: true, inherit: true, link: FuncLink},
	AttrStrokeWidth:      {presentation: true, inherit: true},
	AttrStrokeOpacity:    {presentation: true, inherit: true},
	AttrStrokeLinecap:    {presentation: true, inherit: true},
	AttrStrokeLinejoin:   {presentation: true, inherit: true},
	AttrStrokeMiterlimit: {presentation: true, inherit: true},
	AttrStrokeDasharray:  {presentation: true, inherit: true},
	AttrStrokeDashoffset: {presentation: true, inherit: true},
	AttrOpacity:          {presentation: true},
	AttrStopColor:        {presentation: true},
	AttrStopOpacity:      {presentation: true},
	AttrDisplay:          {presentation: true},
	AttrVisibility:       {presentation: true, inherit: true},
	AttrColor:            {presentation: true, inherit: true},
	AttrClipPath:         {presentation: true, link: FuncLink},
	AttrClipRule:         {presentation: true, inherit: true},
	AttrMask:             {presentation: true, link: FuncLink},
	AttrFilter:           {presentation: true, link: FuncLink},
	AttrMarkerStart:      {presentation: true, inherit: true, link: FuncLink},
	AttrMarkerMid:        {presentation: true, inherit: true, link: FuncLink},
	AttrMarkerEnd:        {presentation: true, inherit: true, link: FuncLink},
	AttrFloodColor:       {presentation: true},
	AttrFloodOpacity:     {presentation: true},
	AttrFontFamily:       {presentation: true, inherit: true},
	AttrFontSize:         {presentation: true, inherit: true},
	AttrFontStyle:        {presentation: true, inherit: true},
	AttrFontWeight:       {presentation: true, inherit: true},
	AttrTextAnchor:       {presentation: true, inherit: true},
	AttrOverflow:         {presentation: true},

	"color-interpolation-filters": {presentation: true, inherit: true},
	"shape-rendering":             {presentation: true, inherit: true},
	"text-rendering":              {presentation: true, inherit: true},
	"image-rendering":             {presentation: true, inherit: true},
	"letter-spacing":              {presentation: true, inherit: true},
	"word-spacing":                {presentation: true, inherit: true},
	"dominant-baseline":           {presentation: true},
	"enable-background":           {presentation: true},
}

// IsPresentation reports whether name is a presentation attribute, which
// may equally be written as a style property.
func IsPresentation(name string) bool {
	return attrTable[name].presentation
}

// IsInheritable reports whether the computed value of name propagates to
// child elements.
func IsInheritable(name string) bool {
	return attrTable[name].inherit
}

// LinkFormOf returns how values of the attribute name may reference
// another node.
func LinkFormOf(name string) LinkForm {
	if name == "href" {
		return IRILink
	}
	return attrTable[name].link
}

// GradientAttrs are the attributes a gradient inherits through its href
// chain regardless of the referenced gradient's kind.
var GradientAttrs = []string{AttrGradientUnits, AttrSpreadMethod, AttrGradientTransform}

// LinearGeometryAttrs and RadialGeometryAttrs are inherited only from a
// gradient of the same kind.
var (
	LinearGeometryAttrs = []string{AttrX1, AttrY1, AttrX2, AttrY2}
	RadialGeometryAttrs = []string{AttrCx, AttrCy, AttrR, AttrFx, AttrFy}
)

// GeometryAttrs returns the same-kind inheritable attributes of t.
func GeometryAttrs(t Tag) []string {
	switch t {
	case TagLinearGradient:
		return LinearGeometryAttrs
	case TagRadialGradient:
		return RadialGeometryAttrs
	}
	return nil
}

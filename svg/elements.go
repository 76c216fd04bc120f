package svg

// Tag identifies an element kind.
type Tag uint8

const (
	TagUnknown Tag = iota
	TagA
	TagCircle
	TagClipPath
	TagDefs
	TagDesc
	TagEllipse
	TagFeGaussianBlur
	TagFilter
	TagG
	TagImage
	TagLine
	TagLinearGradient
	TagMarker
	TagMask
	TagMetadata
	TagPath
	TagPattern
	TagPolygon
	TagPolyline
	TagRadialGradient
	TagRect
	TagScript
	TagStop
	TagStyle
	TagSvg
	TagSwitch
	TagSymbol
	TagText
	TagTextPath
	TagTitle
	TagTspan
	TagUse
)

var tagNames = [...]string{
	TagUnknown:        "",
	TagA:              "a",
	TagCircle:         "circle",
	TagClipPath:       "clipPath",
	TagDefs:           "defs",
	TagDesc:           "desc",
	TagEllipse:        "ellipse",
	TagFeGaussianBlur: "feGaussianBlur",
	TagFilter:         "filter",
	TagG:              "g",
	TagImage:          "image",
	TagLine:           "line",
	TagLinearGradient: "linearGradient",
	TagMarker:         "marker",
	TagMask:           "mask",
	TagMetadata:       "metadata",
	TagPath:           "path",
	TagPattern:        "pattern",
	TagPolygon:        "polygon",
	TagPolyline:       "polyline",
	TagRadialGradient: "radialGradient",
	TagRect:           "rect",
	TagScript:         "script",
	TagStop:           "stop",
	TagStyle:          "style",
	TagSvg:            "svg",
	TagSwitch:         "switch",
	TagSymbol:         "symbol",
	TagText:           "text",
	TagTextPath:       "textPath",
	TagTitle:          "title",
	TagTspan:          "tspan",
	TagUse:            "use",
}

var tagsByName map[string]Tag

func init() {
	tagsByName = make(map[string]Tag, len(tagNames))
	for i, name := range tagNames {
		if name == "" {
			continue
		}
		tagsByName[name] = Tag(i)
	}
}

func (t Tag) String() string {
	if int(t) >= len(tagNames) {
		return "unknown"
	}
	return tagNames[t]
}

// TagFromName maps a qualified element name to its Tag. Names with a
// namespace prefix other than "svg:" are unknown.
func TagFromName(name string) Tag {
	if len(name) > 4 && name[:4] == "svg:" {
		name = name[4:]
	}
	return tagsByName[name]
}

// IsGradient reports whether t is a linear or radial gradient.
func (t Tag) IsGradient() bool {
	return t == TagLinearGradient || t == TagRadialGradient
}

// IsDefinition reports whether t is never rendered in place and is only
// used through a reference.
func (t Tag) IsDefinition() bool {
	switch t {
	case TagLinearGradient, TagRadialGradient, TagPattern, TagFilter,
		TagClipPath, TagMask, TagMarker, TagSymbol:
		return true
	}
	return false
}

// HasTextContent reports whether whitespace inside an element of kind t is
// significant.
func (t Tag) HasTextContent() bool {
	switch t {
	case TagText, TagTextPath, TagTspan, TagTitle, TagDesc, TagStyle, TagScript:
		return true
	}
	return false
}

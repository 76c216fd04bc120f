package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level. A negative value
// writes the whole document on one line, which is the default.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Quote sets the attribute quote character, a single or double quote,
// double by default.
func Quote(q byte) EncodeOption {
	return func(es *EncState) {
		if q == '\'' || q == '"' {
			es.quote = q
		}
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// TrailingNewline ends the output with a newline even without indentation.
func TrailingNewline(v bool) EncodeOption {
	return func(es *EncState) { es.trailingNewline = v }
}

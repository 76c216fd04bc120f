package parse

type parseOpts struct {
	comments     bool
	declarations bool
	splitStyle   bool
}

type ParseOption func(*parseOpts)

func defaultOpts() *parseOpts {
	return &parseOpts{
		declarations: true,
		splitStyle:   true,
	}
}

// ParseComments keeps comments in the tree.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParseDeclarations keeps processing instructions and the doctype, which
// is the default.
func ParseDeclarations(v bool) ParseOption {
	return func(o *parseOpts) { o.declarations = v }
}

// SplitStyle turns known properties of style attributes into presentation
// attributes, which is the default.
func SplitStyle(v bool) ParseOption {
	return func(o *parseOpts) { o.splitStyle = v }
}

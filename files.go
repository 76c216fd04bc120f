package svgclean

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/svgclean/encode"
	"github.com/signadot/svgclean/parse"
	"github.com/signadot/svgclean/svg"
)

// LoadFile reads and parses the document at path. Read failures wrap
// ErrInput, malformed documents svg.ErrParse.
func LoadFile(path string, opts ...parse.ParseOption) (*svg.Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// SaveFile writes doc to path. The file is only created once the document
// is serialized.
func SaveFile(doc *svg.Document, path string, opts ...encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := Write(doc, buf, opts...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}
	return nil
}

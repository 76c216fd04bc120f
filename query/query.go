package query

import (
	"errors"
	"fmt"

	"github.com/signadot/svgclean/svg"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

// Env is what a predicate sees of the element it runs on.
type Env struct {
	Tag        string            `expr:"tag"`
	ID         string            `expr:"id"`
	Attrs      map[string]string `expr:"attrs"`
	Referenced bool              `expr:"referenced"`
	Refs       int               `expr:"refs"`
	Children   int               `expr:"children"`
	Depth      int               `expr:"depth"`
	Path       string            `expr:"path"`

	// Attr returns the written value of an attribute, "" when unset.
	Attr func(name string) string `expr:"attr"`
	// Has reports whether an attribute is set.
	Has func(name string) bool `expr:"has"`
	// Target returns the id of the node an attribute links to.
	Target func(name string) string `expr:"target"`
}

// NewEnv returns the environment of the element n.
func NewEnv(n *svg.Node) *Env {
	env := &Env{
		Tag:        n.Name(),
		ID:         n.ID(),
		Attrs:      map[string]string{},
		Referenced: n.IsReferenced(),
		Refs:       len(n.References()),
		Children:   len(n.ElementChildren()),
		Path:       n.Path(),
	}
	for _, a := range n.Attrs() {
		env.Attrs[a.Name] = a.String()
	}
	for range n.Ancestors() {
		env.Depth++
	}
	env.Attr = func(name string) string { return env.Attrs[name] }
	env.Has = func(name string) bool {
		_, ok := env.Attrs[name]
		return ok
	}
	env.Target = func(name string) string {
		if t := n.Link(name); t != nil {
			return t.ID()
		}
		return ""
	}
	return env
}

// Query is a compiled predicate over elements.
type Query struct {
	src string
	prg *vm.Program
}

func (q *Query) String() string { return q.src }

// Compile compiles src, an expr-lang boolean expression over Env.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(&Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

// Match reports whether n satisfies q. Non element nodes never do.
func (q *Query) Match(n *svg.Node) (bool, error) {
	if !n.IsElement() {
		return false, nil
	}
	res, err := expr.Run(q.prg, NewEnv(n))
	if err != nil {
		return false, fmt.Errorf("%w: %s on %s: %w", ErrQuery, q.src, n.Path(), err)
	}
	return res.(bool), nil
}

// Select returns the elements of doc matching q, in document order.
func Select(doc *svg.Document, q *Query) ([]*svg.Node, error) {
	var res []*svg.Node
	for n := range doc.Elements() {
		ok, err := q.Match(n)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, n)
		}
	}
	return res, nil
}

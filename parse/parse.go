package parse

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/signadot/svgclean/svg"

	tdparse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Parse builds a document from SVG markup. Errors wrap svg.ErrParse.
func Parse(data []byte, opts ...ParseOption) (*svg.Document, error) {
	o := defaultOpts()
	for _, f := range opts {
		f(o)
	}
	p := &parser{opts: o, doc: svg.New()}
	if err := p.run(data); err != nil {
		return nil, err
	}
	p.resolveLinks()
	return p.doc, nil
}

func ParseString(s string, opts ...ParseOption) (*svg.Document, error) {
	return Parse([]byte(s), opts...)
}

type pendingLink struct {
	node *svg.Node
	attr string
}

type parser struct {
	opts  *parseOpts
	doc   *svg.Document
	lex   *xml.Lexer
	stack []*svg.Node

	// cur is the element or declaration whose attributes are being read.
	cur   *svg.Node
	style string
	links []pendingLink
}

func (p *parser) top() *svg.Node {
	return p.stack[len(p.stack)-1]
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", svg.ErrParse, fmt.Sprintf(format, args...))
}

func (p *parser) run(data []byte) error {
	// the lexer rewrites whitespace in attribute values in place
	p.lex = xml.NewLexer(tdparse.NewInputBytes(bytes.Clone(data)))
	p.stack = []*svg.Node{p.doc.Container()}
	for {
		tt, raw := p.lex.Next()
		switch tt {
		case xml.ErrorToken:
			if err := p.lex.Err(); !errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: %w", svg.ErrParse, err)
			}
			if len(p.stack) > 1 {
				return p.errorf("unclosed element <%s>", p.top().Name())
			}
			return nil
		case xml.CommentToken:
			if p.opts.comments {
				p.top().Append(p.doc.CreateNode(svg.CommentNode, "", string(p.lex.Text())))
			}
		case xml.DOCTYPEToken:
			if p.opts.declarations && p.top().Kind() == svg.RootNode {
				text := strings.TrimSpace(string(p.lex.Text()))
				p.top().Append(p.doc.CreateNode(svg.DoctypeNode, "", text))
			}
		case xml.CDATAToken:
			p.top().Append(p.doc.CreateNode(svg.CDataNode, "", string(p.lex.Text())))
		case xml.StartTagPIToken:
			n := p.doc.CreateNode(svg.DeclarationNode, string(p.lex.Text()), "")
			if p.opts.declarations && p.top().Kind() == svg.RootNode {
				p.top().Append(n)
			}
			p.cur = n
		case xml.StartTagToken:
			top := p.top()
			if top.Kind() == svg.RootNode && p.doc.Root() != nil {
				return p.errorf("more than one root element")
			}
			n := p.doc.CreateNamedElement(string(p.lex.Text()))
			top.Append(n)
			p.stack = append(p.stack, n)
			p.cur = n
		case xml.AttributeToken:
			if err := p.attr(); err != nil {
				return err
			}
		case xml.StartTagCloseToken, xml.StartTagClosePIToken:
			p.finishTag()
		case xml.StartTagCloseVoidToken:
			p.finishTag()
			p.stack = p.stack[:len(p.stack)-1]
		case xml.EndTagToken:
			name := string(p.lex.Text())
			top := p.top()
			if top.Kind() != svg.ElementNode || top.Name() != name {
				return p.errorf("unexpected </%s>", name)
			}
			p.stack = p.stack[:len(p.stack)-1]
		case xml.TextToken:
			if err := p.text(string(raw)); err != nil {
				return err
			}
		}
	}
}

func (p *parser) text(raw string) error {
	top := p.top()
	blank := strings.TrimSpace(raw) == ""
	if top.Kind() == svg.RootNode {
		if blank {
			return nil
		}
		return p.errorf("text outside of the root element")
	}
	if blank && !top.Tag().HasTextContent() {
		return nil
	}
	top.Append(p.doc.CreateNode(svg.TextNode, "", html.UnescapeString(raw)))
	return nil
}

func (p *parser) attr() error {
	n := p.cur
	if n == nil {
		return nil
	}
	name := string(p.lex.Text())
	value := unquote(p.lex.AttrVal())
	if n.Kind() != svg.ElementNode {
		n.SetAttr(name, value)
		return nil
	}
	switch {
	case name == svg.AttrID:
		if value == "" {
			return nil
		}
		if err := n.SetID(value); err != nil {
			return fmt.Errorf("%w: %w", svg.ErrParse, err)
		}
	case name == svg.AttrStyle && p.opts.splitStyle:
		p.style = value
	default:
		p.setAttr(n, name, value)
	}
	return nil
}

func (p *parser) setAttr(n *svg.Node, name, value string) {
	n.SetAttr(name, value)
	if svg.LinkFormOf(name) != svg.NoLink {
		p.links = append(p.links, pendingLink{node: n, attr: name})
	}
}

// finishTag applies a pending style attribute once all attributes of the
// tag are known, since style properties override presentation attributes.
func (p *parser) finishTag() {
	n := p.cur
	p.cur = nil
	style := p.style
	p.style = ""
	if n == nil || style == "" {
		return
	}
	var rest []string
	for _, decl := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		prop = strings.TrimSpace(prop)
		val = strings.TrimSpace(val)
		if !ok || prop == "" {
			continue
		}
		if svg.IsPresentation(prop) && !strings.Contains(val, "!important") {
			p.setAttr(n, prop, val)
			continue
		}
		rest = append(rest, prop+":"+val)
	}
	if len(rest) > 0 {
		n.SetAttr(svg.AttrStyle, strings.Join(rest, ";"))
	}
}

// resolveLinks turns attribute values naming an existing id into link
// attributes. Values naming no node stay plain text.
func (p *parser) resolveLinks() {
	for _, pl := range p.links {
		a := pl.node.Attr(pl.attr)
		if a == nil || a.Link != nil {
			continue
		}
		switch svg.LinkFormOf(pl.attr) {
		case svg.IRILink:
			id, ok := strings.CutPrefix(strings.TrimSpace(a.Value), "#")
			if !ok {
				continue
			}
			if t := p.doc.ByID(id); t != nil {
				_ = pl.node.SetLink(pl.attr, t)
			}
		case svg.FuncLink:
			id, fallback, ok := svg.ParseFuncIRI(a.Value)
			if !ok {
				continue
			}
			t := p.doc.ByID(id)
			if t == nil {
				continue
			}
			if err := pl.node.SetLink(pl.attr, t); err == nil {
				a.Value = fallback
			}
		}
	}
}

func unquote(v []byte) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = v[1 : len(v)-1]
	}
	return html.UnescapeString(string(v))
}

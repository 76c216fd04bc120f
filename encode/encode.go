package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/svgclean/svg"
)

type EncState struct {
	indent          int
	quote           byte
	trailingNewline bool

	Color func(ColorAttr, string) string

	buf *bytes.Buffer
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent: -1,
		quote:  '"',
		Color:  colorDefault,
		buf:    bytes.NewBuffer(nil),
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes doc to w.
func Encode(doc *svg.Document, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	top := doc.Container().Children()
	for i, n := range top {
		es.node(n, 0, false)
		if es.indent >= 0 || (es.trailingNewline && i == len(top)-1) {
			es.buf.WriteByte('\n')
		}
	}
	_, err := w.Write(es.buf.Bytes())
	return err
}

// EncodeString returns doc as a string.
func EncodeString(doc *svg.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	// writing to a bytes.Buffer does not fail
	_ = Encode(doc, buf, opts...)
	return buf.String()
}

// NodeString returns the markup of the subtree at n.
func NodeString(n *svg.Node, opts ...EncodeOption) string {
	es := newState(opts)
	es.node(n, 0, false)
	return es.buf.String()
}

func (es *EncState) sep(s string) {
	es.buf.WriteString(es.Color(SepColor, s))
}

func (es *EncState) node(n *svg.Node, depth int, inline bool) {
	switch n.Kind() {
	case svg.RootNode:
		for _, c := range n.Children() {
			es.node(c, depth, inline)
		}
	case svg.ElementNode:
		es.element(n, depth, inline)
	case svg.TextNode:
		es.buf.WriteString(es.Color(TextColor, escapeText(n.Text())))
	case svg.CDataNode:
		es.buf.WriteString(es.Color(TextColor, "<![CDATA["+n.Text()+"]]>"))
	case svg.CommentNode:
		es.buf.WriteString(es.Color(CommentColor, "<!--"+n.Text()+"-->"))
	case svg.DoctypeNode:
		es.buf.WriteString(es.Color(CommentColor, "<!DOCTYPE "+n.Text()+">"))
	case svg.DeclarationNode:
		es.sep("<?")
		es.buf.WriteString(es.Color(TagColor, n.Name()))
		es.attrs(n)
		es.sep("?>")
	}
}

func (es *EncState) element(n *svg.Node, depth int, inline bool) {
	es.sep("<")
	es.buf.WriteString(es.Color(TagColor, n.Name()))
	if n.ID() != "" {
		es.attr(svg.AttrID, n.ID(), false)
	}
	es.attrs(n)
	if !n.HasChildren() {
		es.sep("/>")
		return
	}
	es.sep(">")
	children := n.Children()
	// mixed content is written as is, whitespace is significant there
	inline = inline || es.indent < 0 || hasText(children)
	for _, c := range children {
		if !inline {
			es.newline(depth + 1)
		}
		es.node(c, depth+1, inline)
	}
	if !inline {
		es.newline(depth)
	}
	es.sep("</")
	es.buf.WriteString(es.Color(TagColor, n.Name()))
	es.sep(">")
}

func (es *EncState) attrs(n *svg.Node) {
	for _, a := range n.Attrs() {
		es.attr(a.Name, a.String(), a.Link != nil)
	}
}

func (es *EncState) attr(name, value string, link bool) {
	es.buf.WriteByte(' ')
	es.buf.WriteString(es.Color(AttrNameColor, name))
	es.sep("=")
	q := string(es.quote)
	attr := ValueColor
	if link {
		attr = LinkColor
	}
	es.buf.WriteString(es.Color(attr, q+escapeAttr(value, es.quote)+q))
}

func (es *EncState) newline(depth int) {
	es.buf.WriteByte('\n')
	es.buf.WriteString(strings.Repeat(" ", depth*es.indent))
}

func hasText(nodes []*svg.Node) bool {
	for _, n := range nodes {
		if k := n.Kind(); k == svg.TextNode || k == svg.CDataNode {
			return true
		}
	}
	return false
}

var (
	textEscaper        = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	doubleQuoteEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
	singleQuoteEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", "'", "&apos;")
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string, quote byte) string {
	if quote == '\'' {
		return singleQuoteEscaper.Replace(s)
	}
	return doubleQuoteEscaper.Replace(s)
}

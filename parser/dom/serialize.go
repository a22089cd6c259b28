package dom

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Text under these elements is written out verbatim.
var rawTextElements = map[string]bool{
	"style":  true,
	"script": true,
}

// escapeString escapes & < > in text and & " in attribute values.
// Quotes in text and apostrophes anywhere are left alone.
// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

func serializeNode(sb *strings.Builder, n *Node) {
	switch n.NodeType {
	case ElementNode:
		sb.WriteString("<" + n.NodeName)
		for _, a := range n.attrs() {
			sb.WriteString(" " + a.Name + "=\"" + escapeString(a.Value, true) + "\"")
		}
		sb.WriteString(">")
		serializeChildren(sb, n)
		sb.WriteString("</" + n.NodeName + ">")
	case TextNode:
		if n.ParentNode != nil && n.ParentNode.NodeType == ElementNode && rawTextElements[n.ParentNode.NodeName] {
			sb.WriteString(n.Data)
		} else {
			sb.WriteString(escapeString(n.Data, false))
		}
	case DocumentNode:
		serializeChildren(sb, n)
	}
}

func serializeChildren(sb *strings.Builder, n *Node) {
	for _, child := range n.ChildNodes {
		serializeNode(sb, child)
	}
}

// OuterHTML renders n and its subtree. A document renders as its children.
func (n *Node) OuterHTML() string {
	var sb strings.Builder
	serializeNode(&sb, n)
	return sb.String()
}

// InnerHTML renders only the children of n.
func (n *Node) InnerHTML() string {
	var sb strings.Builder
	serializeChildren(&sb, n)
	return sb.String()
}

// String renders elements and documents as markup and text nodes as their
// literal data.
func (n *Node) String() string {
	if n.NodeType == TextNode {
		return n.Data
	}
	return n.OuterHTML()
}

// Render writes the markup for n to w.
func Render(w io.Writer, n *Node) error {
	if _, err := io.WriteString(w, n.OuterHTML()); err != nil {
		return errors.Wrap(err, "render")
	}
	return nil
}

func dumpNode(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<" + node.NodeName + ">"
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		for _, attr := range node.attrs() {
			e += "\n" + spaces + attr.Name + "=\"" + attr.Value + "\""
		}
		return e
	case TextNode:
		return "\"" + node.Data + "\""
	default:
		return "#document"
	}
}

func (node *Node) dump(ident int) string {
	ser := dumpNode(node, ident+1) + "\n"
	if node.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.dump(ident + 1)
	}

	return ser
}

// Dump renders the subtree one node per line, indented by depth:
//
//	#document
//	| <p>
//	|   class="title"
//	|   "text"
func (node *Node) Dump() string {
	return strings.TrimRight(node.dump(0), "\n")
}

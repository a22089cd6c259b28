package dom

import "strings"

// SoleString returns the text of n when it can be reached through a chain of
// nodes that each have exactly one child. A text node is its own sole string;
// a node with zero or several children has none.
//
// The value is derived from the current shape of the tree on every call.
func (n *Node) SoleString() (string, bool) {
	if t := n.SoleStringNode(); t != nil {
		return t.Data, true
	}
	return "", false
}

// SoleStringNode is the text node SoleString reads from, or nil. It is the
// node to pass to Wrap or ReplaceWith when operating on the string itself.
func (n *Node) SoleStringNode() *Node {
	for cur := n; ; cur = cur.ChildNodes[0] {
		if cur.NodeType == TextNode {
			return cur
		}
		if len(cur.ChildNodes) != 1 {
			return nil
		}
	}
}

// SetString drops every child of n and gives it a single text child.
func (n *Node) SetString(s string) error {
	if n.NodeType == TextNode {
		return wrapErr(ErrHierarchyRequest, "SetString", n)
	}

	done := traceMutation("SetString", n)
	defer done()

	for len(n.ChildNodes) > 0 {
		n.removeAt(len(n.ChildNodes) - 1)
	}
	n.insertAt(0, NewTextNode(s))
	return nil
}

// GetText concatenates every descendant text in document order.
func (n *Node) GetText() string {
	if n.NodeType == TextNode {
		return n.Data
	}
	var sb strings.Builder
	it := NewNodeIterator(n)
	for c := it.NextNode(); c != nil; c = it.NextNode() {
		if c.NodeType == TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

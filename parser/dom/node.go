package dom

import (
	"strconv"
)

// NodeType tells which payload of a Node is set. Values follow
// https://dom.spec.whatwg.org/#dom-node-nodetype
type NodeType uint16

const (
	ElementNode  NodeType = 1
	TextNode     NodeType = 3
	DocumentNode NodeType = 9
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case DocumentNode:
		return "document"
	default:
		return "NodeType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Node is a single entry of the tree. Exactly one payload matching NodeType
// is set: *Element for elements, *Text for text. Documents carry neither.
//
// ChildNodes owns the children. ParentNode and the sibling pointers are
// lookups kept in step with ChildNodes by every mutating method, so they
// must never be assigned directly.
//
// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*Text
}

// NewDOMElement creates a detached element with no children, the equivalent
// of new_tag.
func NewDOMElement(name string, attrs ...*Attr) *Node {
	return &Node{
		NodeType: ElementNode,
		NodeName: name,
		Element: &Element{
			LocalName:  name,
			Attributes: NewNamedNodeMap(attrs...),
		},
	}
}

// NewTextNode creates a detached text node.
func NewTextNode(text string) *Node {
	return &Node{
		NodeType: TextNode,
		NodeName: "#text",
		Text:     NewText(text),
	}
}

func newDocumentNode() *Node {
	return &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
	}
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// Index is the position of n among its siblings, or -1 for a detached node.
func (n *Node) Index() int {
	if n.ParentNode == nil {
		return -1
	}
	return n.ParentNode.ChildNodes.Contains(n)
}

// Contents returns a copy of the child list, safe to range over while mutating.
func (n *Node) Contents() NodeList {
	return append(NodeList{}, n.ChildNodes...)
}

// Contains reports whether other is n or one of its descendants.
// https://dom.spec.whatwg.org/#dom-node-contains
func (n *Node) Contains(other *Node) bool {
	for i := other; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// GetRootNode walks parent links up to the topmost ancestor.
func (n *Node) GetRootNode() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}
	return prev
}

// https://dom.spec.whatwg.org/#concept-node-ensure-pre-insertion-validity
func (n *Node) ensurePreInsertionValidity(node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if n.NodeType == TextNode || node.NodeType == DocumentNode {
		return ErrHierarchyRequest
	}
	if node.Contains(n) {
		return ErrCyclicInsertion
	}
	return nil
}

// insertAt links child into position i without any validation.
func (n *Node) insertAt(i int, children ...*Node) {
	if len(children) == 0 {
		return
	}
	n.ChildNodes.WedgeIn(i, children...)
	for _, c := range children {
		c.ParentNode = n
	}
	n.relink(i-1, i+len(children))
}

// removeAt unlinks the child at position i without any validation.
func (n *Node) removeAt(i int) *Node {
	child := n.ChildNodes.Remove(i)
	if child == nil {
		return nil
	}
	child.ParentNode = nil
	child.PreviousSibling = nil
	child.NextSibling = nil
	n.relink(i-1, i)
	return child
}

// relink refreshes sibling pointers for the children in [lo, hi] and the
// first/last child pointers of n.
func (n *Node) relink(lo, hi int) {
	if lo < 0 {
		lo = 0
	}
	if hi >= len(n.ChildNodes) {
		hi = len(n.ChildNodes) - 1
	}
	for i := lo; i <= hi; i++ {
		c := n.ChildNodes[i]
		c.PreviousSibling, c.NextSibling = nil, nil
		if i > 0 {
			c.PreviousSibling = n.ChildNodes[i-1]
		}
		if i < len(n.ChildNodes)-1 {
			c.NextSibling = n.ChildNodes[i+1]
		}
	}
	n.FirstChild, n.LastChild = nil, nil
	if len(n.ChildNodes) > 0 {
		n.FirstChild = n.ChildNodes[0]
		n.LastChild = n.ChildNodes[len(n.ChildNodes)-1]
	}
}

// detach removes n from its current parent, if any.
func (n *Node) detach() {
	if n.ParentNode != nil {
		n.ParentNode.removeAt(n.Index())
	}
}

// InsertBefore inserts node into n's children right before child. A nil
// child appends. node is first removed from wherever it currently lives.
// https://dom.spec.whatwg.org/#dom-node-insertbefore
func (n *Node) InsertBefore(node, child *Node) (*Node, error) {
	if err := n.ensurePreInsertionValidity(node); err != nil {
		return nil, wrapErr(err, "InsertBefore", node)
	}
	if child != nil && child.ParentNode != n {
		return nil, wrapErr(ErrNotFound, "InsertBefore", child)
	}
	if child == node {
		child = node.NextSibling
	}

	done := traceMutation("InsertBefore", n)
	defer done()

	node.detach()
	i := len(n.ChildNodes)
	if child != nil {
		i = child.Index()
	}
	n.insertAt(i, node)
	return node, nil
}

// AppendChild adds node as the last child of n.
// https://dom.spec.whatwg.org/#dom-node-appendchild
func (n *Node) AppendChild(node *Node) (*Node, error) {
	return n.InsertBefore(node, nil)
}

// RemoveChild detaches child from n and returns it.
// https://dom.spec.whatwg.org/#dom-node-removechild
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	if child == nil || child.ParentNode != n {
		return nil, wrapErr(ErrNotFound, "RemoveChild", child)
	}

	done := traceMutation("RemoveChild", n)
	defer done()

	return n.removeAt(child.Index()), nil
}

// ReplaceChild puts node where child is and returns the now detached child.
// https://dom.spec.whatwg.org/#dom-node-replacechild
func (n *Node) ReplaceChild(node, child *Node) (*Node, error) {
	return n.replaceChild("ReplaceChild", node, child)
}

// replaceChild backs ReplaceChild and ReplaceWith; method names the caller
// in errors and traces.
func (n *Node) replaceChild(method string, node, child *Node) (*Node, error) {
	if child == nil || child.ParentNode != n {
		return nil, wrapErr(ErrNotFound, method, child)
	}
	if node == child {
		return child, nil
	}
	if err := n.ensurePreInsertionValidity(node); err != nil {
		return nil, wrapErr(err, method, node)
	}

	done := traceMutation(method, n)
	defer done()

	node.detach()
	i := child.Index()
	n.removeAt(i)
	n.insertAt(i, node)
	return child, nil
}

// CloneNode returns a detached copy of n. Children are copied when deep is set.
// https://dom.spec.whatwg.org/#dom-node-clonenode
func (n *Node) CloneNode(deep bool) *Node {
	var c *Node
	switch n.NodeType {
	case ElementNode:
		c = NewDOMElement(n.LocalName)
		c.Attributes = n.Attributes.clone()
	case TextNode:
		c = NewTextNode(n.Data)
	default:
		c = newDocumentNode()
	}

	if deep {
		kids := make(NodeList, 0, len(n.ChildNodes))
		for _, child := range n.ChildNodes {
			kids = append(kids, child.CloneNode(true))
		}
		c.insertAt(0, kids...)
	}
	return c
}

// IsEqualNode compares type, name, attributes, data and children.
// https://dom.spec.whatwg.org/#concept-node-equals
func (n *Node) IsEqualNode(on *Node) bool {
	if on == nil || n.NodeType != on.NodeType || n.NodeName != on.NodeName {
		return false
	}

	switch n.NodeType {
	case ElementNode:
		if !n.Attributes.equal(on.Attributes) {
			return false
		}
	case TextNode:
		if n.Data != on.Data {
			return false
		}
	}

	if len(n.ChildNodes) != len(on.ChildNodes) {
		return false
	}
	for i := range n.ChildNodes {
		if !n.ChildNodes[i].IsEqualNode(on.ChildNodes[i]) {
			return false
		}
	}
	return true
}

// describe is a short label used in errors and logs.
func (n *Node) describe() string {
	if n == nil {
		return "<nil>"
	}
	switch n.NodeType {
	case ElementNode:
		return "<" + n.NodeName + ">"
	case TextNode:
		return strconv.Quote(n.Data)
	default:
		return n.NodeName
	}
}

package dom

// Document wraps the designated root of a tree. The root node has no tag and
// no parent, renders as its children, and can never be inserted elsewhere.
// https://dom.spec.whatwg.org/#interface-document
type Document struct {
	*Node
}

func NewDocument() *Document {
	return &Document{Node: newDocumentNode()}
}

// CreateElement returns a fresh detached element, ready to be passed to Wrap
// or ReplaceWith.
func (d *Document) CreateElement(localName string, attrs ...*Attr) *Node {
	return NewDOMElement(localName, attrs...)
}

// CreateTextNode returns a fresh detached text node.
func (d *Document) CreateTextNode(data string) *Node {
	return NewTextNode(data)
}

// DocumentElement is the first element child of the root, if any.
func (d *Document) DocumentElement() *Node {
	for _, c := range d.ChildNodes {
		if c.NodeType == ElementNode {
			return c
		}
	}
	return nil
}

package dom

// NodeIterator walks a subtree in document order (pre-order). The root
// itself is not yielded. Mutating the subtree during the walk is not
// supported; collect with FindAll first.
// https://dom.spec.whatwg.org/#nodeiterator
type NodeIterator struct {
	root          *Node
	referenceNode *Node
}

func NewNodeIterator(root *Node) *NodeIterator {
	return &NodeIterator{root: root, referenceNode: root}
}

// NextNode returns the following node in document order, or nil at the end.
func (it *NodeIterator) NextNode() *Node {
	n := it.referenceNode
	if n == nil {
		return nil
	}
	if n.FirstChild != nil {
		it.referenceNode = n.FirstChild
		return it.referenceNode
	}
	for n != it.root {
		if n.NextSibling != nil {
			it.referenceNode = n.NextSibling
			return it.referenceNode
		}
		n = n.ParentNode
	}
	it.referenceNode = nil
	return nil
}

// Find returns the first descendant element called name, or nil.
func (n *Node) Find(name string) *Node {
	it := NewNodeIterator(n)
	for c := it.NextNode(); c != nil; c = it.NextNode() {
		if c.NodeType == ElementNode && c.NodeName == name {
			return c
		}
	}
	return nil
}

// FindAll returns every descendant element called name in document order.
func (n *Node) FindAll(name string) NodeList {
	var found NodeList
	it := NewNodeIterator(n)
	for c := it.NextNode(); c != nil; c = it.NextNode() {
		if c.NodeType == ElementNode && c.NodeName == name {
			found = append(found, c)
		}
	}
	return found
}

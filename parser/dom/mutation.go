package dom

// Wrap puts wrapper where n is and moves n inside it as its only child.
// wrapper must be a fresh element: no parent and no children.
// It returns wrapper.
func (n *Node) Wrap(wrapper *Node) (*Node, error) {
	if n.ParentNode == nil {
		return nil, wrapErr(ErrDetachedNode, "Wrap", n)
	}
	if wrapper == nil {
		return nil, wrapErr(ErrNilNode, "Wrap", n)
	}
	if wrapper.ParentNode != nil || wrapper.HasChildNodes() {
		return nil, wrapErr(ErrNotEmpty, "Wrap", wrapper)
	}
	if wrapper.NodeType != ElementNode {
		return nil, wrapErr(ErrHierarchyRequest, "Wrap", wrapper)
	}

	done := traceMutation("Wrap", n)
	defer done()

	parent := n.ParentNode
	i := n.Index()
	parent.removeAt(i)
	parent.insertAt(i, wrapper)
	wrapper.insertAt(0, n)
	return wrapper, nil
}

// Unwrap replaces n with its children, in order, and returns n fully
// detached and empty so it can be reused.
func (n *Node) Unwrap() (*Node, error) {
	if n.ParentNode == nil {
		return nil, wrapErr(ErrDetachedNode, "Unwrap", n)
	}
	if n.NodeType != ElementNode {
		return nil, wrapErr(ErrHierarchyRequest, "Unwrap", n)
	}

	done := traceMutation("Unwrap", n)
	defer done()

	kids := n.ChildNodes
	n.ChildNodes = nil
	n.relink(0, -1)
	for _, k := range kids {
		k.ParentNode = nil
	}

	parent := n.ParentNode
	i := n.Index()
	parent.removeAt(i)
	parent.insertAt(i, kids...)
	return n, nil
}

// ReplaceWith puts replacement at n's position and returns n, now detached.
// replacement is first removed from wherever it lives. Replacing a node with
// itself changes nothing.
func (n *Node) ReplaceWith(replacement *Node) (*Node, error) {
	if n.ParentNode == nil {
		return nil, wrapErr(ErrDetachedNode, "ReplaceWith", n)
	}
	if replacement == nil {
		return nil, wrapErr(ErrNilNode, "ReplaceWith", n)
	}
	return n.ParentNode.replaceChild("ReplaceWith", replacement, n)
}

// InsertSiblingBefore places node right before n under n's parent.
func (n *Node) InsertSiblingBefore(node *Node) (*Node, error) {
	if n.ParentNode == nil {
		return nil, wrapErr(ErrDetachedNode, "InsertSiblingBefore", n)
	}
	if node == n {
		return nil, wrapErr(ErrHierarchyRequest, "InsertSiblingBefore", n)
	}
	return n.ParentNode.InsertBefore(node, n)
}

// InsertSiblingAfter places node right after n under n's parent.
func (n *Node) InsertSiblingAfter(node *Node) (*Node, error) {
	if n.ParentNode == nil {
		return nil, wrapErr(ErrDetachedNode, "InsertSiblingAfter", n)
	}
	if node == n {
		return nil, wrapErr(ErrHierarchyRequest, "InsertSiblingAfter", n)
	}
	if node == nil {
		return nil, wrapErr(ErrNilNode, "InsertSiblingAfter", n)
	}
	next := n.NextSibling
	if next == node {
		return node, nil
	}
	return n.ParentNode.InsertBefore(node, next)
}

// Extract detaches n from its parent. Detached nodes are returned as is.
func (n *Node) Extract() *Node {
	if n.ParentNode == nil {
		return n
	}

	done := traceMutation("Extract", n)
	defer done()

	n.detach()
	return n
}

// Clear detaches every child of n.
func (n *Node) Clear() {
	if !n.HasChildNodes() {
		return
	}

	done := traceMutation("Clear", n)
	defer done()

	for len(n.ChildNodes) > 0 {
		n.removeAt(len(n.ChildNodes) - 1)
	}
}

package dom

// https://dom.spec.whatwg.org/#nodelist
type NodeList []*Node

// Contains returns the index of n in the list, or -1.
func (h *NodeList) Contains(n *Node) int {
	for i := range *h {
		if n == (*h)[i] {
			return i
		}
	}
	return -1
}

// Remove drops the entry at i and returns it. The vacated slot past the new
// length is cleared so the list holds no reference to the removed node.
// Out of range indexes are a no-op.
func (h *NodeList) Remove(i int) *Node {
	if i < 0 || i >= len(*h) {
		return nil
	}
	node := (*h)[i]
	last := len(*h) - 1
	copy((*h)[i:], (*h)[i+1:])
	(*h)[last] = nil
	*h = (*h)[:last]
	return node
}

// WedgeIn places nodes at index i, shifting everything from i onward to the right.
func (h *NodeList) WedgeIn(i int, nodes ...*Node) {
	if i < 0 {
		return
	}
	if i >= len(*h) {
		*h = append(*h, nodes...)
		return
	}
	tail := append(NodeList{}, (*h)[i:]...)
	*h = append(append((*h)[:i], nodes...), tail...)
}

// Names returns the node name of every entry, mostly useful in tests and logs.
func (h NodeList) Names() []string {
	names := make([]string, 0, len(h))
	for _, n := range h {
		names = append(names, n.NodeName)
	}
	return names
}

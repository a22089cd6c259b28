package dom

// NamedNodeMap keeps an element's attributes in insertion order. Names are
// unique: setting an existing name overwrites its value in place.
// https://dom.spec.whatwg.org/#namednodemap
type NamedNodeMap struct {
	Attrs []*Attr
}

// NewNamedNodeMap builds a map from attrs. Later duplicates overwrite earlier ones.
func NewNamedNodeMap(attrs ...*Attr) *NamedNodeMap {
	m := &NamedNodeMap{Attrs: make([]*Attr, 0, len(attrs))}
	for _, a := range attrs {
		m.SetNamedItem(a)
	}
	return m
}

func (n *NamedNodeMap) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Attrs)
}

func (n *NamedNodeMap) indexOf(qn string) int {
	if n == nil {
		return -1
	}
	for i, a := range n.Attrs {
		if a.Name == qn {
			return i
		}
	}
	return -1
}

func (n *NamedNodeMap) GetNamedItem(qn string) *Attr {
	if i := n.indexOf(qn); i >= 0 {
		return n.Attrs[i]
	}
	return nil
}

// SetNamedItem stores s and returns the attribute it replaced, if any.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	if i := n.indexOf(s.Name); i >= 0 {
		old := n.Attrs[i]
		n.Attrs[i] = s
		return old
	}
	n.Attrs = append(n.Attrs, s)
	return nil
}

// RemoveNamedItem drops the attribute called qn and returns it.
func (n *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	i := n.indexOf(qn)
	if i < 0 {
		return nil
	}
	old := n.Attrs[i]
	n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
	return old
}

func (n *NamedNodeMap) clone() *NamedNodeMap {
	c := NewNamedNodeMap()
	if n == nil {
		return c
	}
	for _, a := range n.Attrs {
		c.Attrs = append(c.Attrs, NewAttr(a.Name, a.Value))
	}
	return c
}

func (n *NamedNodeMap) equal(o *NamedNodeMap) bool {
	if n.Len() != o.Len() {
		return false
	}
	for i := 0; i < n.Len(); i++ {
		if *n.Attrs[i] != *o.Attrs[i] {
			return false
		}
	}
	return true
}

package dom

// Element is the payload of an ElementNode: its tag name and attributes.
// The accessors are safe to call on a nil *Element so that they can be used
// through any *Node.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	LocalName  string
	Attributes *NamedNodeMap
}

func (e *Element) HasAttributes() bool {
	return e != nil && e.Attributes.Len() > 0
}

// GetAttributeNames returns attribute names in insertion order.
func (e *Element) GetAttributeNames() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, e.Attributes.Len())
	for _, a := range e.attrs() {
		names = append(names, a.Name)
	}
	return names
}

func (e *Element) GetAttribute(qualifiedName string) string {
	if e == nil {
		return ""
	}
	if a := e.Attributes.GetNamedItem(qualifiedName); a != nil {
		return a.Value
	}
	return ""
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e != nil && e.Attributes.GetNamedItem(qualifiedName) != nil
}

// SetAttribute updates the value in place when the name exists, otherwise
// appends a new attribute.
func (e *Element) SetAttribute(qualifiedName, value string) {
	if e == nil {
		return
	}
	if e.Attributes == nil {
		e.Attributes = NewNamedNodeMap()
	}
	e.Attributes.SetNamedItem(NewAttr(qualifiedName, value))
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	if e == nil {
		return
	}
	e.Attributes.RemoveNamedItem(qualifiedName)
}

func (e *Element) attrs() []*Attr {
	if e == nil || e.Attributes == nil {
		return nil
	}
	return e.Attributes.Attrs
}

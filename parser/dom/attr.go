package dom

// Attr is a single name/value pair on an element.
// https://dom.spec.whatwg.org/#attr
type Attr struct {
	Name  string
	Value string
}

func NewAttr(name, value string) *Attr {
	return &Attr{Name: name, Value: value}
}

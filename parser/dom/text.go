package dom

// Text is the payload of a TextNode. Text nodes never have children.
// https://dom.spec.whatwg.org/#text
type Text struct {
	*CharacterData
}

func NewText(data string) *Text {
	return &Text{
		CharacterData: &CharacterData{
			Data:   data,
			Length: len(data),
		}}
}

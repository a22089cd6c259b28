package dom

// CharacterData is https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data   string
	Length int
}

// AppendData is https://dom.spec.whatwg.org/#dom-characterdata-appenddata
func (c *CharacterData) AppendData(data string) {
	c.ReplaceData(c.Data + data)
}

// ReplaceData swaps the whole payload.
func (c *CharacterData) ReplaceData(data string) {
	c.Data = data
	c.Length = len(data)
}

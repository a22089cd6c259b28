package parser

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/matilds/gosoup/parser/dom"
)

// Elements that never take children, whether or not the tag was self-closed.
// https://html.spec.whatwg.org/#void-elements
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// HTMLTreeConstructor builds a dom tree from a stream of tokens. It does not
// imply html, head or body elements and does not reorder anything: an end
// tag closes the nearest open element of the same name, stray end tags are
// dropped, and whatever is still open at the end is closed implicitly.
// Comments and doctypes have no place in the node model and are skipped.
type HTMLTreeConstructor struct {
	HTMLDocument        *dom.Document
	stackOfOpenElements dom.NodeList
}

func NewHTMLTreeConstructor() *HTMLTreeConstructor {
	return &HTMLTreeConstructor{
		HTMLDocument: dom.NewDocument(),
	}
}

// getCurrentNode is the bottommost open element, or the document itself.
func (c *HTMLTreeConstructor) getCurrentNode() *dom.Node {
	if len(c.stackOfOpenElements) == 0 {
		return c.HTMLDocument.Node
	}
	return c.stackOfOpenElements[len(c.stackOfOpenElements)-1]
}

// ProcessToken applies one token to the tree.
func (c *HTMLTreeConstructor) ProcessToken(t html.Token) error {
	switch t.Type {
	case html.TextToken:
		return c.insertCharacters(t.Data)
	case html.StartTagToken:
		n, err := c.insertHTMLElement(t)
		if err != nil {
			return err
		}
		if !voidElements[n.NodeName] {
			c.stackOfOpenElements = append(c.stackOfOpenElements, n)
		}
	case html.SelfClosingTagToken:
		_, err := c.insertHTMLElement(t)
		return err
	case html.EndTagToken:
		c.closeElement(t.Data)
	case html.CommentToken, html.DoctypeToken:
		logrus.WithField("token", t.String()).Debug("skipping token")
	}
	return nil
}

// insertCharacters merges data into a trailing text node of the current node
// or starts a new one.
func (c *HTMLTreeConstructor) insertCharacters(data string) error {
	cur := c.getCurrentNode()
	if last := cur.LastChild; last != nil && last.NodeType == dom.TextNode {
		last.AppendData(data)
		return nil
	}
	_, err := cur.AppendChild(dom.NewTextNode(data))
	return errors.Wrap(err, "insert characters")
}

func (c *HTMLTreeConstructor) insertHTMLElement(t html.Token) (*dom.Node, error) {
	n := dom.NewDOMElement(t.Data)
	for _, a := range t.Attr {
		// the first occurrence of a duplicated attribute wins
		if n.HasAttribute(a.Key) {
			continue
		}
		n.SetAttribute(a.Key, a.Val)
	}
	if _, err := c.getCurrentNode().AppendChild(n); err != nil {
		return nil, errors.Wrapf(err, "insert element %q", t.Data)
	}
	return n, nil
}

// closeElement pops open elements up to and including the nearest one called name.
func (c *HTMLTreeConstructor) closeElement(name string) {
	for i := len(c.stackOfOpenElements) - 1; i >= 0; i-- {
		if c.stackOfOpenElements[i].NodeName == name {
			c.stackOfOpenElements = c.stackOfOpenElements[:i]
			return
		}
	}
	logrus.WithField("tag", name).Debug("dropping end tag with no open element")
}

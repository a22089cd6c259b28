package parser

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/matilds/gosoup/parser/dom"
)

// Parser turns markup into a dom tree. Tokenizing is done by x/net/html;
// tree construction is lenient and mirrors the input as written.
type Parser struct {
	Tokenizer       *html.Tokenizer
	TreeConstructor *HTMLTreeConstructor
}

func NewParser(htmlIn io.Reader) *Parser {
	return &Parser{
		Tokenizer:       html.NewTokenizer(htmlIn),
		TreeConstructor: NewHTMLTreeConstructor(),
	}
}

// Only these elements hold raw text. Everything else, title and textarea
// included, is tokenized as markup so that nested tags become elements.
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// Start consumes the whole input and returns the resulting document.
func (p *Parser) Start() (*dom.Document, error) {
	for {
		tt := p.Tokenizer.Next()
		if tt == html.ErrorToken {
			err := p.Tokenizer.Err()
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrap(err, "tokenize")
		}
		tok := p.Tokenizer.Token()
		if tt == html.StartTagToken && !rawTextElements[tok.Data] {
			p.Tokenizer.NextIsNotRawText()
		}
		if err := p.TreeConstructor.ProcessToken(tok); err != nil {
			return nil, err
		}
	}

	return p.TreeConstructor.HTMLDocument, nil
}

// Parse reads all of r into a new document.
func Parse(r io.Reader) (*dom.Document, error) {
	return NewParser(r).Start()
}

// ParseString is Parse for in-memory markup.
func ParseString(s string) (*dom.Document, error) {
	return Parse(strings.NewReader(s))
}

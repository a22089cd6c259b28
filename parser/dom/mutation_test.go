package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapString(t *testing.T) {
	x := NewTextNode("X")
	head := build(t, "head", build(t, "title", x))

	w, err := x.Wrap(NewDOMElement("b"))
	require.NoError(t, err)
	assert.Equal(t, "b", w.NodeName)
	assert.Same(t, w, x.ParentNode)
	assert.Equal(t, "title", w.ParentNode.NodeName)
	assert.Equal(t, "<head><title><b>X</b></title></head>", head.OuterHTML())
	requireConsistent(t, head)
}

func TestWrapTwice(t *testing.T) {
	s := NewTextNode("I wish I was bold.")
	p := build(t, "p", s)
	doc := docWith(t, p)

	_, err := s.Wrap(NewDOMElement("b"))
	require.NoError(t, err)
	_, err = p.Wrap(NewDOMElement("div"))
	require.NoError(t, err)

	assert.Equal(t, "<div><p><b>I wish I was bold.</b></p></div>", doc.OuterHTML())
	requireConsistent(t, doc.Node)
}

func TestWrapKeepsSiblingOrder(t *testing.T) {
	a, b, c := NewTextNode("a"), NewDOMElement("b"), NewTextNode("c")
	p := build(t, "p", a, b, c)

	_, err := b.Wrap(NewDOMElement("i"))
	require.NoError(t, err)
	assert.Equal(t, "a<i><b></b></i>c", p.InnerHTML())
	requireConsistent(t, p)
}

func TestWrapErrors(t *testing.T) {
	x := NewTextNode("x")
	p := build(t, "p", x)
	doc := docWith(t, p)
	busy := build(t, "span", NewTextNode("busy"))
	attached := NewDOMElement("em")
	docWith(t, attached)

	tests := []struct {
		name    string
		target  *Node
		wrapper *Node
		want    error
	}{
		{"root target", doc.Node, NewDOMElement("div"), ErrDetachedNode},
		{"detached target", NewDOMElement("q"), NewDOMElement("div"), ErrDetachedNode},
		{"wrapper with children", x, busy, ErrNotEmpty},
		{"wrapper with parent", x, attached, ErrNotEmpty},
		{"wrapper is target", p, p, ErrNotEmpty},
		{"text wrapper", x, NewTextNode("w"), ErrHierarchyRequest},
		{"nil wrapper", x, nil, ErrNilNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := doc.Dump()
			_, err := tt.target.Wrap(tt.wrapper)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, doc.Dump())
		})
	}
}

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name     string
		build    func(t *testing.T) (*Document, *Node)
		expected string
	}{
		{
			name: "single child",
			build: func(t *testing.T) (*Document, *Node) {
				div := build(t, "div", build(t, "p", NewTextNode("X")))
				return docWith(t, div), div
			},
			expected: "<p>X</p>",
		},
		{
			name: "nested target",
			build: func(t *testing.T) (*Document, *Node) {
				b := build(t, "b", NewTextNode("The Dormouse's story"))
				return docWith(t, build(t, "head", build(t, "title", b))), b
			},
			expected: "<head><title>The Dormouse's story</title></head>",
		},
		{
			name: "several children between siblings",
			build: func(t *testing.T) (*Document, *Node) {
				span := build(t, "span", NewTextNode("1"), NewDOMElement("br"), NewTextNode("2"))
				return docWith(t, build(t, "p", NewTextNode("<"), span, NewTextNode(">"))), span
			},
			expected: "<p>&lt;1<br></br>2&gt;</p>",
		},
		{
			name: "no children",
			build: func(t *testing.T) (*Document, *Node) {
				empty := NewDOMElement("i")
				return docWith(t, build(t, "p", NewTextNode("a"), empty, NewTextNode("b"))), empty
			},
			expected: "<p>ab</p>",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, target := tt.build(t)
			got, err := target.Unwrap()
			require.NoError(t, err)
			assert.Same(t, target, got)
			assert.Nil(t, got.ParentNode)
			assert.Empty(t, got.ChildNodes)
			assert.Nil(t, got.FirstChild)
			assert.Equal(t, tt.expected, doc.OuterHTML())
			requireConsistent(t, doc.Node)
		})
	}
}

func TestUnwrapErrors(t *testing.T) {
	x := NewTextNode("x")
	doc := docWith(t, build(t, "p", x))

	_, err := NewDOMElement("div").Unwrap()
	assert.ErrorIs(t, err, ErrDetachedNode)
	_, err = doc.Unwrap()
	assert.ErrorIs(t, err, ErrDetachedNode)
	_, err = x.Unwrap()
	assert.ErrorIs(t, err, ErrHierarchyRequest)
	assert.Equal(t, "<p>x</p>", doc.OuterHTML())
}

func TestUnwrappedNodeCanBeReused(t *testing.T) {
	b := build(t, "b", NewTextNode("bold"))
	p := build(t, "p", b)
	doc := docWith(t, p)

	got, err := b.Unwrap()
	require.NoError(t, err)
	_, err = p.Wrap(got)
	require.NoError(t, err)
	assert.Equal(t, "<b><p>bold</p></b>", doc.OuterHTML())
	requireConsistent(t, doc.Node)
}

func TestReplaceWith(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		s := NewTextNode("The Dormouse's story")
		b := build(t, "b", s)

		old, err := s.ReplaceWith(NewTextNode("Someone else's story"))
		require.NoError(t, err)
		assert.Same(t, s, old)
		assert.Nil(t, s.ParentNode)
		got, ok := b.SoleString()
		assert.True(t, ok)
		assert.Equal(t, "Someone else's story", got)
		requireConsistent(t, b)
	})

	t.Run("tag keeps position", func(t *testing.T) {
		h1 := build(t, "h1", NewTextNode("My First Heading"))
		p := build(t, "p", NewTextNode("My first paragraph"))
		body := build(t, "body", NewTextNode("\n"), h1, p)

		h2 := NewDOMElement("h2")
		require.NoError(t, h2.SetString("My Second Heading"))
		_, err := h1.ReplaceWith(h2)
		require.NoError(t, err)
		assert.Equal(t, 1, h2.Index())
		assert.Same(t, body, h2.ParentNode)
		assert.Equal(t, "<h2>My Second Heading</h2>", body.Find("h2").OuterHTML())
		assert.Equal(t, "\n<h2>My Second Heading</h2><p>My first paragraph</p>", body.InnerHTML())
		requireConsistent(t, body)
	})

	t.Run("alone at root", func(t *testing.T) {
		i := build(t, "i", NewTextNode("I want to be bold"))
		doc := docWith(t, i)

		b := NewDOMElement("b")
		require.NoError(t, b.SetString("I became Bold"))
		_, err := i.ReplaceWith(b)
		require.NoError(t, err)
		assert.Equal(t, "<b>I became Bold</b>", doc.OuterHTML())

		again := NewDOMElement("b")
		require.NoError(t, again.SetString("I became Bold again"))
		_, err = doc.Find("b").ReplaceWith(again)
		require.NoError(t, err)
		assert.Equal(t, "<b>I became Bold again</b>", doc.OuterHTML())
		requireConsistent(t, doc.Node)
	})

	t.Run("identity", func(t *testing.T) {
		b := build(t, "b", NewTextNode("same"))
		doc := docWith(t, b)

		got, err := b.ReplaceWith(b)
		require.NoError(t, err)
		assert.Same(t, b, got)
		assert.Same(t, doc.Node, b.ParentNode)
		assert.Equal(t, "<b>same</b>", doc.OuterHTML())
	})

	t.Run("replacement moves from another tree", func(t *testing.T) {
		moved := build(t, "em", NewTextNode("m"))
		other := build(t, "div", moved)
		target := NewDOMElement("s")
		p := build(t, "p", target)

		_, err := target.ReplaceWith(moved)
		require.NoError(t, err)
		assert.Empty(t, other.ChildNodes)
		assert.Equal(t, "<p><em>m</em></p>", p.OuterHTML())
		requireConsistent(t, other)
		requireConsistent(t, p)
	})
}

func TestReplaceWithErrors(t *testing.T) {
	x := NewTextNode("x")
	b := build(t, "b", x)
	p := build(t, "p", b)
	doc := docWith(t, p)

	tests := []struct {
		name        string
		target      *Node
		replacement *Node
		want        error
	}{
		{"detached", NewDOMElement("q"), NewDOMElement("i"), ErrDetachedNode},
		{"root", doc.Node, NewDOMElement("i"), ErrDetachedNode},
		{"parent", x, b, ErrCyclicInsertion},
		{"grandparent", x, p, ErrCyclicInsertion},
		{"document", x, NewDocument().Node, ErrHierarchyRequest},
		{"nil", x, nil, ErrNilNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := doc.Dump()
			_, err := tt.target.ReplaceWith(tt.replacement)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, doc.Dump())
		})
	}
}

func TestSiblingInsertion(t *testing.T) {
	b := build(t, "b", NewTextNode("b"))
	p := build(t, "p", b)

	_, err := b.InsertSiblingBefore(NewTextNode("before "))
	require.NoError(t, err)
	_, err = b.InsertSiblingAfter(NewTextNode(" after"))
	require.NoError(t, err)
	assert.Equal(t, "<p>before <b>b</b> after</p>", p.OuterHTML())
	requireConsistent(t, p)

	_, err = b.InsertSiblingAfter(b)
	assert.ErrorIs(t, err, ErrHierarchyRequest)
	_, err = p.InsertSiblingBefore(NewTextNode("x"))
	assert.ErrorIs(t, err, ErrDetachedNode)
	_, err = b.InsertSiblingBefore(nil)
	assert.ErrorIs(t, err, ErrNilNode)
	_, err = p.LastChild.InsertSiblingAfter(nil)
	assert.ErrorIs(t, err, ErrNilNode)
	assert.Equal(t, "<p>before <b>b</b> after</p>", p.OuterHTML())
}

func TestExtractAndClear(t *testing.T) {
	a, b := NewTextNode("a"), NewDOMElement("b")
	p := build(t, "p", a, b)

	assert.Same(t, a, a.Extract())
	assert.Nil(t, a.ParentNode)
	assert.Same(t, a, a.Extract())
	assert.Equal(t, "<p><b></b></p>", p.OuterHTML())

	p.Clear()
	assert.Empty(t, p.ChildNodes)
	assert.Nil(t, b.ParentNode)
	requireConsistent(t, p)
}

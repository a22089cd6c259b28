package dom

import (
	"github.com/pkg/errors"
)

// Every failed mutation wraps one of these. The tree is left untouched when
// an error is returned.
var (
	// ErrDetachedNode means the operation needs a node that has a parent.
	ErrDetachedNode = errors.New("node is not attached to a tree")
	// ErrNotEmpty means the argument had to be a fresh node without parent or children.
	ErrNotEmpty = errors.New("node already has a parent or children")
	// ErrCyclicInsertion means the insertion would make a node its own ancestor.
	ErrCyclicInsertion = errors.New("insertion would create a cycle")
	// ErrHierarchyRequest means the node kind cannot go where it was asked to.
	// https://dom.spec.whatwg.org/#hierarchyrequesterror
	ErrHierarchyRequest = errors.New("node cannot be inserted here")
	// ErrNotFound means a reference node is not a child of the node operated on.
	// https://dom.spec.whatwg.org/#notfounderror
	ErrNotFound = errors.New("reference node is not a child")
	// ErrNilNode means a nil node was passed where a node is required.
	ErrNilNode = errors.New("node is nil")
)

func wrapErr(err error, method string, n *Node) error {
	return errors.Wrapf(err, "%s %s", method, n.describe())
}

package dom

import (
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sirupsen/logrus"
)

func noop() {}

// traceMutation snapshots the tree around n and returns a func that logs how
// the tree changed. It costs nothing unless trace logging is on.
func traceMutation(method string, n *Node) func() {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return noop
	}
	root := n.GetRootNode()
	old := root.Dump()
	return func() {
		PrintDiff(old, root.Dump(), method)
	}
}

// PrintDiff logs a character diff between two tree dumps.
func PrintDiff(a, b, method string) {
	if a == b {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	logrus.WithField("method", method).Tracef("[TREE]: %s\n\n", dmp.DiffPrettyText(diffs))
}

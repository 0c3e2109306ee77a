/*
Package bst implements a persistent (immutable) in-memory binary search tree,
mapping unique keys to values.

Every “modification” of a tree creates a new incarnation, leaving the original
unchanged. Only the nodes on the search path of an insertion are copied; all
other sub-trees are shared between the original and the new tree. Trees are
therefore safe to read from multiple goroutines without locking.

The tree is not balanced. Its shape is a function of insertion order only, so
inserting keys in sorted order will produce a degenerate, list-like tree.
Insertion and lookup are implemented iteratively and do not recurse on the
depth of the tree.

Inserting a key which is already present leaves the tree unchanged: the first
binding of a key wins, later values for the same key are discarded.

	tree := bst.New[int, string]()
	tree = tree.With(8, "eight").With(9, "nine")
	value, found := tree.Find(8)   // returns "eight", true

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.bst'.
func tracer() tracing.Trace {
	return tracing.Select("fp.bst")
}

package bst

import (
	"fmt"

	"github.com/npillmayer/bstree/maybe"
	"golang.org/x/exp/constraints"
)

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used for variables holding clones of nodes.

- A new incarnation of a tree always is reflected by a new tree.root. Nodes, once
  linked into a tree, are never modified.

- An empty tree is represented by a nil root.

*/

// Comparator compares two keys. It returns a negative number if a < b, zero if
// a == b and a positive number if a > b. A comparator has to implement a strict
// total order, consistent over all calls against the same tree.
type Comparator[K any] func(a, b K) int

// Tree is an immutable binary search tree. The zero value is an empty tree without
// a key ordering: it may be inspected, but inserting into it will panic. Use New or
// Immutable to create trees which accept insertions.
type Tree[K any, V any] struct {
	root    *tnode[K, V]
	compare Comparator[K]
}

// New creates an empty tree for keys with a natural order.
//
//     tree := bst.New[string, int]().With("Galaxy", 42)
//
func New[K constraints.Ordered, V any]() Tree[K, V] {
	return Immutable[K, V](Ordering[K](natural[K]))
}

// Immutable constructs an empty tree with options. Keys without a natural order
// need a comparator:
//
//     tree := bst.Immutable[Point, string](bst.Ordering(comparePoints))
//     tree = tree.With(Point{1, 2}, "here")
//
func Immutable[K, V any](opts ...Option[K]) Tree[K, V] {
	var p props[K]
	for _, option := range opts {
		p = option.config(p)
	}
	return Tree[K, V]{compare: p.compare}
}

type props[K any] struct {
	compare Comparator[K]
}

// Option is a type to help initializing trees at creation time.
type Option[K any] struct {
	config func(props[K]) props[K]
}

// Ordering is an option to set the comparator for the keys of a tree.
func Ordering[K any](cmp Comparator[K]) Option[K] {
	assertThat(cmp != nil, "ordering option needs a comparator")
	return Option[K]{config: func(p props[K]) props[K] {
		p.compare = cmp
		return p
	}}
}

func natural[K constraints.Ordered](a, b K) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true if tree holds no bindings.
func (tree Tree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

// Find locates a key in a tree, if present, and returns the value associated with the key.
// If `key` is not found, the zero value for type V will be returned, together with found=false.
func (tree Tree[K, V]) Find(key K) (V, bool) {
	if tree.root == nil {
		var none V
		return none, false
	}
	found, path := tree.findKeyAndPath(key, nil)
	if found {
		return path.last().node.value, true
	}
	var none V
	return none, false
}

// Lookup is like Find, but wraps the result into a Maybe.
func (tree Tree[K, V]) Lookup(key K) maybe.Maybe[V] {
	if value, found := tree.Find(key); found {
		return maybe.Just(value)
	}
	return maybe.Nothing[V]()
}

// With returns a copy of a tree with a new key inserted, which is associated with `value`.
// If an entry for key is already present in tree, tree is returned unchanged and `value`
// is dropped.
//
// The new tree shares every sub-tree off the search path for `key` with the original tree.
func (tree Tree[K, V]) With(key K, value V) Tree[K, V] {
	assertThat(tree.compare != nil, "tree has no key ordering; create it with New or Immutable(Ordering(…))")
	found, path := tree.findKeyAndPath(key, nil)
	if found {
		tracer().Debugf("insert: key %v already bound in %s, keeping it", key, path.last().node)
		return tree
	}
	leaf := &tnode[K, V]{key: key, value: value}
	if tree.root == nil { // virgin tree => new leaf becomes the root
		return tree.withRoot(leaf)
	}
	tracer().Debugf("insert: slot path = %s", path)
	newRoot := path.foldR(cloneSeam[K, V], leaf)
	tracer().Debugf("insert: new root = %s", newRoot)
	return tree.withRoot(newRoot)
}

func (tree Tree[K, V]) String() string {
	if tree.root == nil {
		return "Tree(empty)"
	}
	return fmt.Sprintf("Tree(root=%s)", tree.root)
}

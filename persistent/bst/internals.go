package bst

import (
	"fmt"
	"strings"
)

// tnode is a node of a tree, holding a single binding. A nil *tnode is the empty tree.
type tnode[K any, V any] struct {
	left  *tnode[K, V]
	right *tnode[K, V]
	key   K
	value V
}

func (node *tnode[K, V]) String() string {
	if node == nil {
		return "⟨⟩"
	}
	return fmt.Sprintf("⟨%v:%v⟩", node.key, node.value)
}

func (node *tnode[K, V]) isLeaf() bool {
	return node.left == nil && node.right == nil
}

func (tree Tree[K, V]) withRoot(root *tnode[K, V]) Tree[K, V] {
	return Tree[K, V]{root: root, compare: tree.compare}
}

// findKeyAndPath walks from the root towards `key`, recording every node visited
// together with the direction taken. If `key` is found, the last slot of the path
// holds the node binding it.
func (tree Tree[K, V]) findKeyAndPath(key K, pathBuf slotPath[K, V]) (found bool, path slotPath[K, V]) {
	path = pathBuf[:0] // we track the path to the key's slot
	node := tree.root  // walking nodes, start search at the top
	for node != nil {
		c := tree.compare(key, node.key)
		switch {
		case c == 0:
			path = append(path, slot[K, V]{node: node, dir: atNode})
			tracer().Debugf("slot path for key=%v -> %s", key, path)
			return true, path
		case c < 0:
			path = append(path, slot[K, V]{node: node, dir: toLeft})
			node = node.left
		default:
			path = append(path, slot[K, V]{node: node, dir: toRight})
			node = node.right
		}
	}
	tracer().Debugf("key=%v not in tree, path = %s", key, path)
	return false, path
}

// cloneSeam creates a copy of the parent node in slot s, with the child in direction
// s.dir replaced by `child`. The other child is shared.
func cloneSeam[K, V any](s slot[K, V], child *tnode[K, V]) *tnode[K, V] {
	assertThat(s.dir != atNode, "cannot link child to a slot without direction")
	cow := *s.node
	if s.dir == toLeft {
		cow.left = child
	} else {
		cow.right = child
	}
	return &cow
}

// --- Slot ------------------------------------------------------------------

type direction int8

const (
	atNode direction = iota
	toLeft
	toRight
)

func (d direction) String() string {
	switch d {
	case toLeft:
		return "↙"
	case toRight:
		return "↘"
	}
	return "•"
}

// slot holds a step of a path.
type slot[K, V any] struct {
	node *tnode[K, V]
	dir  direction
}

func (s slot[K, V]) String() string {
	return s.node.String() + s.dir.String()
}

// --- Path ------------------------------------------------------------------

type slotPath[K, V any] []slot[K, V]

func (path slotPath[K, V]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(s.String())
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[K, V]) last() slot[K, V] {
	if len(path) == 0 {
		return slot[K, V]{}
	}
	return path[len(path)-1]
}

func (path slotPath[K, V]) foldR(f func(slot[K, V], *tnode[K, V]) *tnode[K, V], zero *tnode[K, V]) *tnode[K, V] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}

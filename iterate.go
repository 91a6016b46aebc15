package rbtree

import "iter"

// InOrder returns an iterator over all nodes of the tree in ascending
// order. The tree must not be mutated while iterating.
func (t *Tree) InOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := t.First(); n != nil; n = n.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// Reverse returns an iterator over all nodes of the tree in descending
// order. The tree must not be mutated while iterating.
func (t *Tree) Reverse() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := t.Last(); n != nil; n = n.Prev() {
			if !yield(n) {
				return
			}
		}
	}
}

// PostOrder returns an iterator over all nodes of the tree in left-to-right
// post-order: children before their parent, the root last. The successor is
// computed before a node is yielded and a yielded node's subtree is already
// behind the iteration, so the classic teardown loop may reinitialize, or
// even reclaim, each yielded node (clear the tree handle afterwards):
//
//	for n := range tree.PostOrder() {
//		n.Init()          // or free the embedding record
//	}
//	tree = rbtree.Tree{}
func (t *Tree) PostOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n := t.FirstPostorder()
		for n != nil {
			next := n.NextPostorder()
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

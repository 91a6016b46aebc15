package rbtree

// Tree anchors a red-black tree. It holds nothing but the root reference;
// in particular it does not count or own its nodes.
//
// The zero value is an empty tree, ready for use.
type Tree struct {
	root *Node
}

// Root returns the root node of the tree, or nil if the tree is empty.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// First returns the node ordered first in the tree, or nil if the tree is
// empty. O(log n).
func (t *Tree) First() *Node {
	return t.Root().Leftmost()
}

// Last returns the node ordered last in the tree, or nil if the tree is
// empty. O(log n).
func (t *Tree) Last() *Node {
	return t.Root().Rightmost()
}

// FirstPostorder returns the first node of a left-to-right post-order
// traversal, which is the left-deepest leaf. Nil if the tree is empty.
func (t *Tree) FirstPostorder() *Node {
	return t.Root().Leftdeepest()
}

// LastPostorder returns the last node of a left-to-right post-order
// traversal. That is always the root, so this is O(1). Nil if the tree is
// empty.
func (t *Tree) LastPostorder() *Node {
	return t.Root()
}

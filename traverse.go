package rbtree

// The traversal queries below all tolerate a nil receiver, returning nil,
// and treat unlinked nodes gracefully: stepping from an unlinked node
// yields nil, while the descent helpers return the node itself. "Empty" is
// a first-class result, never an error.

// Leftmost returns the leftmost node in the subtree under n, descending
// left children only. If n has no left child, n itself is returned.
// O(log n).
func (n *Node) Leftmost() *Node {
	if n != nil {
		for n.left != nil {
			n = n.left
		}
	}
	return n
}

// Rightmost returns the rightmost node in the subtree under n, descending
// right children only. If n has no right child, n itself is returned.
// O(log n).
func (n *Node) Rightmost() *Node {
	if n != nil {
		for n.right != nil {
			n = n.right
		}
	}
	return n
}

// Leftdeepest returns the left-deepest node in the subtree under n: the
// deepest descendant reached by preferring left children and falling back
// to right ones. If n has no children, n itself is returned. O(log n).
func (n *Node) Leftdeepest() *Node {
	if n != nil {
		for {
			if n.left != nil {
				n = n.left
			} else if n.right != nil {
				n = n.right
			} else {
				break
			}
		}
	}
	return n
}

// Rightdeepest returns the right-deepest node in the subtree under n: the
// deepest descendant reached by preferring right children and falling back
// to left ones. If n has no children, n itself is returned. O(log n).
func (n *Node) Rightdeepest() *Node {
	if n != nil {
		for {
			if n.right != nil {
				n = n.right
			} else if n.left != nil {
				n = n.left
			} else {
				break
			}
		}
	}
	return n
}

// Next returns the in-order successor of n, or nil if n is the last node,
// unlinked, or nil. O(log n).
func (n *Node) Next() *Node {
	if !n.IsLinked() {
		return nil
	}
	if n.right != nil {
		return n.right.Leftmost()
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = n.parent
	}
	return p
}

// Prev returns the in-order predecessor of n, or nil if n is the first
// node, unlinked, or nil. O(log n).
func (n *Node) Prev() *Node {
	if !n.IsLinked() {
		return nil
	}
	if n.left != nil {
		return n.left.Rightmost()
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = n.parent
	}
	return p
}

// NextPostorder returns the node following n in a left-to-right post-order
// traversal: left subtree first, then right subtree, then the node. Nil if
// n is the root, unlinked, or nil. O(log n).
func (n *Node) NextPostorder() *Node {
	if !n.IsLinked() {
		return nil
	}
	p := n.parent
	if p != nil && n == p.left && p.right != nil {
		return p.right.Leftdeepest()
	}
	return p
}

// PrevPostorder returns the node preceding n in a left-to-right post-order
// traversal; it inverts NextPostorder, so for every n with a non-nil
// successor
//
//	n == n.NextPostorder().PrevPostorder()
//
// holds. Nil if n is the left-deepest node, unlinked, or nil.
//
// Since a reversed post-order traversal is a valid pre-order traversal,
// stepping PrevPostorder from Tree.LastPostorder visits the tree in
// right-to-left pre-order: parent first, then the right subtree, then the
// left. O(log n).
func (n *Node) PrevPostorder() *Node {
	if !n.IsLinked() {
		return nil
	}
	if n.right != nil {
		return n.right
	}
	if n.left != nil {
		return n.left
	}
	for p := n.parent; p != nil; p = n.parent {
		if p.left != nil && n != p.left {
			return p.left
		}
		n = p
	}
	return nil
}

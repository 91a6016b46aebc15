package rbtree

import "fmt"

// Check validates the structural invariants of the tree: parent links,
// placement of the root marker and tree back-reference, the red-black
// coloring rules, and equal black counts on all paths. It returns nil for a
// valid (or empty) tree and a wrapped ErrInvalidTree otherwise.
//
// The checker is intentionally strict and walks the whole tree; it is meant
// for tests of embedding code, not for hot paths.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.root == nil {
		return nil
	}
	r := t.root
	if r.flags&flagRoot == 0 {
		return fmt.Errorf("%w: root node lacks the root marker", ErrInvalidTree)
	}
	if r.tree != t {
		return fmt.Errorf("%w: root back-reference does not match the tree", ErrInvalidTree)
	}
	if r.parent != nil {
		return fmt.Errorf("%w: root node has a parent", ErrInvalidTree)
	}
	if r.isRed() {
		return fmt.Errorf("%w: root node is red", ErrInvalidTree)
	}
	_, err := checkNode(r, nil)
	return err
}

// checkNode recursively validates the subtree under n and returns its black
// height, counting n itself but not the terminating absence.
func checkNode(n, parent *Node) (blackHeight int, err error) {
	if n == nil {
		// Absent children count as black.
		return 0, nil
	}
	if n.parent != parent {
		return 0, fmt.Errorf("%w: stale parent link on a node below %v",
			ErrInvalidTree, parent)
	}
	if parent != nil && n.flags&flagRoot != 0 {
		return 0, fmt.Errorf("%w: root marker on an interior node", ErrInvalidTree)
	}
	if parent != nil && n.isRed() && parent.isRed() {
		return 0, fmt.Errorf("%w: red node with a red parent", ErrInvalidTree)
	}
	lh, err := checkNode(n.left, n)
	if err != nil {
		return 0, err
	}
	rh, err := checkNode(n.right, n)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black-height mismatch (%d != %d)",
			ErrInvalidTree, lh, rh)
	}
	if n.isBlack() {
		lh++
	}
	return lh, nil
}

package rbtree

// A CompareFunc positions a search key relative to a linked node: negative
// if the key orders before the node's record, positive if after, zero on a
// match. The function receives tree nodes; converting them back to the
// embedding record is the caller's business.
type CompareFunc func(*Node) int

// Find returns the node matching cmp, or nil if there is none. The search
// assumes the tree was built with an ordering consistent with cmp.
// O(log n).
func (t *Tree) Find(cmp CompareFunc) *Node {
	if t == nil {
		return nil
	}
	i := t.root
	for i != nil {
		switch v := cmp(i); {
		case v < 0:
			i = i.left
		case v > 0:
			i = i.right
		default:
			return i
		}
	}
	return nil
}

// FindSlot locates the insertion slot for a key described by cmp. If the
// key is not in the tree, it returns the parent node and child direction of
// the empty slot where the key belongs, ready to be passed to Tree.Add; on
// an empty tree parent is nil. If the key is already present, existing is
// returned non-nil and parent and d are meaningless. O(log n).
func (t *Tree) FindSlot(cmp CompareFunc) (parent *Node, d Direction, existing *Node) {
	if t == nil {
		return nil, Left, nil
	}
	i := t.root
	for i != nil {
		v := cmp(i)
		if v == 0 {
			return nil, Left, i
		}
		parent = i
		if v < 0 {
			d = Left
			i = i.left
		} else {
			d = Right
			i = i.right
		}
	}
	return parent, d, nil
}

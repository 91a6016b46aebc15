package rbtree

// Link links n into a tree as the d-child of parent. The caller has already
// searched the tree and identified the slot; parent must be linked and its
// d-slot must be empty. For insertions into a possibly empty tree use
// Tree.Add, which accepts a nil parent.
//
// The new node is linked red and the tree is rebalanced.
func Link(parent *Node, d Direction, n *Node) {
	assert(parent != nil, "rbtree: Link needs a parent node")
	assert(n != nil, "rbtree: Link needs a node to insert")
	assert(parent.child(d) == nil, "rbtree: insertion slot is occupied")

	n.setParentAndFlags(parent, flagRed)
	n.setChild(Left, nil)
	n.setChild(Right, nil)
	parent.setChild(d, n)

	paint(n)
}

// Add links n into t as the d-child of parent. The caller has already
// searched the tree and identified the slot, typically via Tree.FindSlot;
// the slot must be empty. A nil parent inserts n as the root of t, which
// requires t to be empty (d is ignored then).
//
// The new node is linked red and the tree is rebalanced. The previous
// memory contents of n do not matter; initialization is not required.
func (t *Tree) Add(parent *Node, d Direction, n *Node) {
	assert(t != nil, "rbtree: Add called on a nil tree")
	assert(n != nil, "rbtree: Add needs a node to insert")
	if parent == nil {
		assert(t.root == nil, "rbtree: nil parent on a non-empty tree")
	} else {
		assert(parent.child(d) == nil, "rbtree: insertion slot is occupied")
	}

	n.setParentAndFlags(parent, flagRed)
	n.setChild(Left, nil)
	n.setChild(Right, nil)

	if parent != nil {
		parent.setChild(d, n)
	} else {
		pushRoot(n, t)
	}

	paint(n)
}

// paint repairs the red-red violation a freshly linked red node may have
// introduced, walking upward until the tree is valid again.
func paint(n *Node) {
	for n != nil {
		n = paintOne(n)
	}
}

// paintOne handles one step of insertion fixup on n, which must be linked
// and red. It returns the next node to repaint, or nil when done. The left
// and right constellations are mirror images, folded into one body by the
// direction d (the side of the grandparent on which n's parent sits).
func paintOne(n *Node) *Node {
	p := n.parent
	if p == nil {
		// Case 1: n is the root. Paint it black; every leaf path runs
		// through the root, so all black counts grow alike.
		n.flags &^= flagRed
		return nil
	}
	if p.isBlack() {
		// Case 2: black parent, red child. Nothing changed for any
		// path's black count, and no red pair was formed.
		return nil
	}

	// The parent is red, so it cannot be the root: a grandparent exists
	// and is black.
	g := p.parent
	gg := g.parent
	d := Left
	if p == g.right {
		d = Right
	}

	if u := g.child(d.other()); u != nil && u.isRed() {
		// Case 3: parent and uncle are red. Repaint both black and the
		// grandparent red; the violation may now sit between the
		// grandparent and its parent, so recurse there.
		p.setParentAndFlags(g, p.flags&^flagRed)
		u.setParentAndFlags(g, u.flags&^flagRed)
		g.flags |= flagRed
		return g
	}

	if n == p.child(d.other()) {
		// Case 4: red parent, black uncle, and n is the inner
		// grandchild. Rotate through the parent so the pair lines up
		// for case 5.
		x := n.child(d)
		p.setChild(d.other(), x)
		n.setChild(d, p)
		if x != nil {
			x.setParentAndFlags(p, x.flags&^flagRed)
		}
		p.setParentAndFlags(n, p.flags|flagRed)
		p = n
	}

	// Case 5: red parent, black uncle, n is the outer grandchild. Rotate
	// through the grandparent and swap its color with the parent's. The
	// black count of every path is preserved and the red pair is gone.
	x := p.child(d.other())
	t := g.popRoot()
	g.setChild(d, x)
	p.setChild(d.other(), g)
	swapChild(g, p)
	if x != nil {
		x.setParentAndFlags(g, x.flags&^flagRed)
	}
	p.setParentAndFlags(gg, p.flags&^flagRed)
	g.setParentAndFlags(p, g.flags|flagRed)
	pushRoot(p, t)
	return nil
}

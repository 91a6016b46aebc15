package rbtree

// Unlink removes n from its tree and rebalances the tree. n must be linked.
//
// Unlink does not reset n to the unlinked state; its link fields simply go
// stale. If the node may be relinked later, or queried with IsLinked, use
// UnlinkInit.
func (n *Node) Unlink() {
	assert(n != nil, "rbtree: Unlink called on a nil node")
	assert(n.IsLinked(), "rbtree: Unlink called on an unlinked node")

	// Removal proper distinguishes the number of children of n. With no
	// children the node simply disappears; with one child, the child
	// (necessarily red, under a necessarily black node) takes its place;
	// with two children, the in-order successor — which has no left
	// child — is swapped into n's position with n's color, reducing the
	// problem to the first two shapes at the successor's old location.
	//
	// Only when a black node vanished from a path does the black count
	// need repair; next is the node to start that repair from.
	var next *Node

	switch {
	case n.left == nil:
		t := n.popRoot()
		swapChild(n, n.right)
		if n.right != nil {
			n.right.setParentAndFlags(n.parent, n.right.flags&^flagRed)
		} else if n.isBlack() {
			next = n.parent
		}
		pushRoot(n.right, t)

	case n.right == nil:
		// Mirror of the case above; a lone left child is always red,
		// so no rebalancing can be needed.
		t := n.popRoot()
		swapChild(n, n.left)
		n.left.setParentAndFlags(n.parent, n.left.flags&^flagRed)
		pushRoot(n.left, t)

	default:
		// Two children: splice the successor s out of its position
		// and into n's. The swap is partial; links that are about to
		// be dropped anyway are never written.
		//	p:  parent of the vacated position
		//	gc: the successor's lone (grand-)child, if any
		s := n.right
		var p, gc *Node
		if s.left == nil {
			// The right child is the successor itself; its
			// subtree stays in place.
			p = s
			gc = s.right
		} else {
			s = s.Leftmost()
			p = s.parent
			gc = s.right
			p.setChild(Left, gc)
			s.setChild(Right, n.right)
			n.right.setParentAndFlags(s, n.right.flags)
		}

		s.setChild(Left, n.left)
		n.left.setParentAndFlags(s, n.left.flags)

		t := n.popRoot()
		swapChild(n, s)
		if gc != nil {
			gc.setParentAndFlags(p, gc.flags&^flagRed)
		} else if s.isBlack() {
			next = p
		}
		if n.isRed() {
			s.setParentAndFlags(n.parent, s.flags|flagRed)
		} else {
			s.setParentAndFlags(n.parent, s.flags&^flagRed)
		}
		pushRoot(s, t)
	}

	if next != nil {
		rebalance(next)
	}
}

// UnlinkInit removes n from its tree, if linked, and resets it to the
// unlinked state. Calling it on a nil or unlinked node is a no-op.
func (n *Node) UnlinkInit() {
	if n.IsLinked() {
		n.Unlink()
		n.Init()
	}
}

// rebalance repairs the black count after the removal of a black node left
// every path through p and the vacated child slot one black node short.
func rebalance(p *Node) {
	var n *Node
	for p != nil {
		n = rebalanceOne(p, n)
		if n == nil {
			return
		}
		p = n.parent
	}
}

// rebalanceOne handles one step of removal fixup. All paths through p and
// its child n carry one black node less than the rest of the tree; n is nil
// on the first step, standing for the vacated (empty) slot. Returns the
// next node to fix up, or nil when done. As with insertion, the mirrored
// constellations share one body via the direction d of the short side.
func rebalanceOne(p, n *Node) *Node {
	d := Right
	if n == p.left {
		d = Left
	}

	s := p.child(d.other())
	if s.isRed() {
		// Case 3: red sibling. Rotate it above p and recolor; the new
		// sibling is one of the old sibling's (black) children, and
		// the short path gains a red parent to work with.
		t := p.popRoot()
		g := p.parent
		x := s.child(d)
		p.setChild(d.other(), x)
		s.setChild(d, p)
		swapChild(p, s)
		x.setParentAndFlags(p, x.flags&^flagRed)
		s.setParentAndFlags(g, s.flags&^flagRed)
		p.setParentAndFlags(s, p.flags|flagRed)
		pushRoot(s, t)
		s = x
	}

	x := s.child(d.other())
	if x == nil || x.isBlack() {
		y := s.child(d)
		if y == nil || y.isBlack() {
			// Case 4: black sibling with two black children. Flip
			// the sibling red, equalizing the black counts below
			// p. If p is red, trading its red for black finishes
			// the repair; if p is black, the whole subtree under p
			// is now one short and the repair moves one level up.
			s.setParentAndFlags(p, s.flags|flagRed)
			if p.isBlack() {
				return p
			}
			p.setParentAndFlags(p.parent, p.flags&^flagRed)
			return nil
		}

		// Case 5: black sibling, red near nephew, black far nephew.
		// Rotate the near nephew above the sibling so the far nephew
		// turns red, falling through to case 6.
		x = y.child(d.other())
		s.setChild(d, x)
		y.setChild(d.other(), s)
		p.setChild(d.other(), y)
		if x != nil {
			x.setParentAndFlags(s, x.flags&^flagRed)
		}
		x = s
		s = y
	}

	// Case 6: black sibling with a red far nephew. Rotate the sibling
	// above p and recolor: the far nephew's red absorbs the missing
	// black on the short path. Done unconditionally.
	t := p.popRoot()
	g := p.parent
	y := s.child(d)
	p.setChild(d.other(), y)
	s.setChild(d, p)
	swapChild(p, s)
	x.setParentAndFlags(s, x.flags&^flagRed)
	if y != nil {
		y.setParentAndFlags(p, y.flags)
	}
	s.setParentAndFlags(g, p.flags)
	p.setParentAndFlags(s, p.flags&^flagRed)
	pushRoot(s, t)
	return nil
}

package rbtree

import (
	"sync/atomic"
	"unsafe"
)

// Direction selects one of the two child slots of a node. Together with a
// parent node it identifies an insertion slot, see Tree.Add and Link.
type Direction int8

const (
	// Left denotes the left child slot.
	Left Direction = iota
	// Right denotes the right child slot.
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// other mirrors a direction.
func (d Direction) other() Direction {
	return d ^ 1
}

type nodeFlags uint8

// The original formulation of this structure packs color and root-marker
// into the low bits of the parent pointer. Go pointers must stay visible to
// the garbage collector, so the flags live in a separate byte and the tree
// back-reference of the root node gets a field of its own. The operations
// on the triple (parent, tree, flags) are the same as on a packed word.
const (
	flagRed  nodeFlags = 1 << 0 // red node; unset means black
	flagRoot nodeFlags = 1 << 1 // tree root; the tree back-reference is set
)

// Node is the linkage record of the tree. Embed it into your own struct and
// pass its address to the operations of this package; Node carries no
// payload and the package never allocates or frees one.
//
// The zero value is a valid, unlinked node.
type Node struct {
	parent *Node // parent node; nil on the root and on unlinked nodes
	tree   *Tree // owning tree; set only while flagRoot is set
	left   *Node
	right  *Node
	flags  nodeFlags
}

// Init resets n to the unlinked state. Idempotent; equivalent to
// overwriting n with its zero value.
//
// Linking does not require initialized nodes, but only an initialized (or
// zero) node answers IsLinked and the traversal queries coherently before
// its first insertion. Note that Unlink does not reinitialize the node it
// removes; use UnlinkInit for that.
func (n *Node) Init() {
	*n = Node{}
}

// IsLinked reports whether n is a member of a tree. A nil node is not
// linked.
func (n *Node) IsLinked() bool {
	return n != nil && (n.parent != nil || n.flags&flagRoot != 0)
}

// IsRoot reports whether n is the root of its tree.
func (n *Node) IsRoot() bool {
	return n != nil && n.flags&flagRoot != 0
}

// Parent returns the parent of n, or nil if n is the root of its tree or
// not linked.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Left returns the left child of n, or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// Child returns the child of n in direction d, or nil.
func (n *Node) Child(d Direction) *Node {
	if n == nil {
		return nil
	}
	return n.child(d)
}

func (n *Node) child(d Direction) *Node {
	if d == Left {
		return n.left
	}
	return n.right
}

func (n *Node) childSlot(d Direction) **Node {
	if d == Left {
		return &n.left
	}
	return &n.right
}

func (n *Node) isRed() bool {
	return n.flags&flagRed != 0
}

func (n *Node) isBlack() bool {
	return n.flags&flagRed == 0
}

// storeNode publishes a single link store. All stores into left, right and
// parent fields, and into the root slot of a tree, go through here. The
// atomic store keeps a lockless concurrent reader from observing a torn
// pointer, and the call sites order their stores such that each individual
// store leaves the tree acyclic and traversable from every reachable node.
func storeNode(slot **Node, n *Node) {
	atomic.StorePointer((*unsafe.Pointer)(unsafe.Pointer(slot)), unsafe.Pointer(n))
}

// setChild performs an ordered store into one of n's child slots.
func (n *Node) setChild(d Direction, c *Node) {
	storeNode(n.childSlot(d), c)
}

// setParentAndFlags assigns the parent link and the flag set of n in one
// step. This is a plain assignment of both fields, nothing else; the
// rebalancing code below leans on it heavily, always passing the complete
// new flag set.
func (n *Node) setParentAndFlags(p *Node, fl nodeFlags) {
	n.flags = fl
	storeNode(&n.parent, p)
}

// Nodes do not store a pointer to their tree; only the root node does, in
// place of its (necessarily nil) parent link. Tree modifications ignore
// this detail wherever they can: whenever a rotation might move the root,
// the mutator first calls popRoot on the candidate, turning it into a plain
// parentless node and extracting the tree handle, and once the new root is
// determined hands the extracted handle to pushRoot. This keeps the tree
// handle out of the signatures of all internal operations.

// popRoot strips the root marker and tree back-reference off n, if present,
// and returns the tree handle. Returns nil if n is not a root.
func (n *Node) popRoot() *Tree {
	var t *Tree
	if n.flags&flagRoot != 0 {
		t = n.tree
		n.tree = nil
		n.flags &^= flagRoot
	}
	return t
}

// pushRoot installs n as the root node of t, marker and back-reference
// included, and stores the tree's root slot. A nil t is ignored, so the
// result of popRoot can be passed back unconditionally; a nil n empties the
// tree.
func pushRoot(n *Node, t *Tree) {
	if t != nil {
		if n != nil {
			n.tree = t
			n.flags |= flagRoot
		}
		storeNode(&t.root, n)
	}
}

// swapChild redirects the parent of old to point at n instead, collapsing
// the usual left-or-right conditional. It touches no parent links and does
// nothing when old is the root; callers handle that case via popRoot and
// pushRoot.
func swapChild(old, n *Node) {
	if p := old.parent; p != nil {
		if p.left == old {
			storeNode(&p.left, n)
		} else {
			storeNode(&p.right, n)
		}
	}
}

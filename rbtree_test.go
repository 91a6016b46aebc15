package rbtree

import (
	"strconv"
	"testing"
	"unsafe"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// keyNode is what an embedding client record looks like: the Node sits as
// the first field, so a *Node handed out by the tree converts back with a
// plain cast.
type keyNode struct {
	Node
	key int
}

func keyOf(n *Node) int {
	return (*keyNode)(unsafe.Pointer(n)).key
}

func byKey(key int) CompareFunc {
	return func(n *Node) int {
		switch k := keyOf(n); {
		case key < k:
			return -1
		case key > k:
			return 1
		}
		return 0
	}
}

func keyLabel(n *Node) string {
	return strconv.Itoa(keyOf(n))
}

// mustInsert links kn into tree via external slot search and validates the
// tree afterwards.
func mustInsert(t *testing.T, tree *Tree, kn *keyNode) {
	t.Helper()
	parent, dir, existing := tree.FindSlot(byKey(kn.key))
	if existing != nil {
		t.Fatalf("key %d unexpectedly found in tree", kn.key)
	}
	tree.Add(parent, dir, &kn.Node)
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after inserting %d: %v", kn.key, err)
	}
}

func makeNodes(keys []int) []*keyNode {
	nodes := make([]*keyNode, len(keys))
	for i, k := range keys {
		nodes[i] = &keyNode{key: k}
	}
	return nodes
}

func inorderKeys(tree *Tree) []int {
	var keys []int
	for n := range tree.InOrder() {
		keys = append(keys, keyOf(n))
	}
	return keys
}

func equalKeys(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInsertOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var tree Tree
	for _, kn := range makeNodes([]int{5, 3, 8, 1, 4, 7, 9}) {
		mustInsert(t, &tree, kn)
	}
	if got := inorderKeys(&tree); !equalKeys(got, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Errorf("in-order sequence = %v, expected sorted keys", got)
	}
	if tree.Root().isRed() {
		t.Errorf("root is red, should be black")
	}
}

func TestRemoveInterior(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tree Tree
	for _, kn := range makeNodes([]int{5, 3, 8, 1, 4, 7, 9}) {
		mustInsert(t, &tree, kn)
	}
	n := tree.Find(byKey(5))
	if n == nil {
		t.Fatalf("key 5 not found")
	}
	if n.Left() == nil || n.Right() == nil {
		t.Fatalf("expected key 5 to have two children in this tree")
	}
	n.Unlink()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after removing 5: %v", err)
	}
	if got := inorderKeys(&tree); !equalKeys(got, []int{1, 3, 4, 7, 8, 9}) {
		t.Errorf("in-order sequence after removal = %v", got)
	}
	if tree.Find(byKey(5)) != nil {
		t.Errorf("key 5 still found after removal")
	}
}

func TestRemoveRootOfTwo(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tree Tree
	a := &keyNode{key: 1}
	b := &keyNode{key: 2}
	tree.Add(nil, Left, &a.Node)
	tree.Add(&a.Node, Right, &b.Node)
	if err := tree.Check(); err != nil {
		t.Fatalf("two-node tree invalid: %v", err)
	}
	a.Node.Unlink()
	if tree.Root() != &b.Node {
		t.Fatalf("surviving node did not become root")
	}
	if !b.Node.IsRoot() || b.Node.isRed() {
		t.Errorf("new root must carry the root marker and be black")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("tree invalid after root removal: %v", err)
	}
}

func TestLinkUnderParent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tree Tree
	root := &keyNode{key: 10}
	tree.Add(nil, Left, &root.Node)
	left := &keyNode{key: 5}
	Link(&root.Node, Left, &left.Node) // tree-agnostic variant
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after Link: %v", err)
	}
	if root.Node.Left() != &left.Node || left.Node.Parent() != &root.Node {
		t.Errorf("Link did not attach the node at the requested slot")
	}
}

func TestUnlinkedNodeBehavior(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var n Node
	n.Init()
	n.Init() // idempotent
	if n.IsLinked() {
		t.Errorf("fresh node reports linked")
	}
	if n.IsRoot() {
		t.Errorf("fresh node reports root")
	}
	if n.Leftmost() != &n || n.Rightmost() != &n ||
		n.Leftdeepest() != &n || n.Rightdeepest() != &n {
		t.Errorf("descent on an unlinked node must return the node itself")
	}
	if n.Next() != nil || n.Prev() != nil ||
		n.NextPostorder() != nil || n.PrevPostorder() != nil {
		t.Errorf("stepping from an unlinked node must return nil")
	}
	if n.Parent() != nil || n.Left() != nil || n.Right() != nil {
		t.Errorf("unlinked node must have no neighbors")
	}
	n.UnlinkInit() // no-op on unlinked nodes
	var nilNode *Node
	if nilNode.IsLinked() || nilNode.Leftmost() != nil || nilNode.Next() != nil {
		t.Errorf("nil node must behave like an empty result")
	}
}

func TestEmptyTreeQueries(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tree Tree
	if !tree.IsEmpty() {
		t.Errorf("zero-value tree is not empty")
	}
	if tree.Root() != nil || tree.First() != nil || tree.Last() != nil ||
		tree.FirstPostorder() != nil || tree.LastPostorder() != nil {
		t.Errorf("queries on an empty tree must return nil")
	}
	if tree.Find(byKey(1)) != nil {
		t.Errorf("Find on an empty tree must return nil")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("empty tree must check out valid: %v", err)
	}
}

func TestUnlinkInitRelink(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tree Tree
	nodes := makeNodes([]int{2, 1, 3})
	for _, kn := range nodes {
		mustInsert(t, &tree, kn)
	}
	nodes[0].Node.UnlinkInit()
	if nodes[0].Node.IsLinked() {
		t.Errorf("node still linked after UnlinkInit")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after UnlinkInit: %v", err)
	}
	mustInsert(t, &tree, nodes[0]) // relink the same record
	if got := inorderKeys(&tree); !equalKeys(got, []int{1, 2, 3}) {
		t.Errorf("in-order sequence after relink = %v", got)
	}
}

func TestMisuseIsCaught(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tree Tree
	a := &keyNode{key: 1}
	b := &keyNode{key: 2}
	tree.Add(nil, Left, &a.Node)
	tree.Add(&a.Node, Right, &b.Node)
	expectPanic(t, "occupied slot", func() {
		kn := &keyNode{key: 3}
		tree.Add(&a.Node, Right, &kn.Node)
	})
	expectPanic(t, "nil parent on non-empty tree", func() {
		kn := &keyNode{key: 3}
		tree.Add(nil, Left, &kn.Node)
	})
	expectPanic(t, "unlink of unlinked node", func() {
		var n Node
		n.Unlink()
	})
}

func expectPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic, got none", what)
		}
	}()
	f()
}

package rbtree

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// A Labeler produces a short textual label for a node, usually by looking
// at the embedding record. Debug output falls back to the node's address if
// no labeler is given.
type Labeler func(*Node) string

func labelOrAddr(label Labeler, n *Node) string {
	if label == nil {
		return fmt.Sprintf("%p", n)
	}
	return label(n)
}

var (
	redInk   = color.New(color.FgRed)
	blackInk = color.New(color.Bold)
)

// Fprint writes an indented sideways rendering of the tree to w, right
// subtree first, one node per line (for debugging purposes). Red nodes are
// printed in red, black nodes in bold.
func (t *Tree) Fprint(w io.Writer, label Labeler) {
	if t.IsEmpty() {
		io.WriteString(w, "·\n")
		return
	}
	fprintNode(w, t.root, label, 0)
}

func fprintNode(w io.Writer, n *Node, label Labeler, depth int) {
	if n == nil {
		return
	}
	fprintNode(w, n.right, label, depth+1)
	for i := 0; i < depth; i++ {
		io.WriteString(w, "    ")
	}
	ink := blackInk
	if n.isRed() {
		ink = redInk
	}
	ink.Fprintln(w, labelOrAddr(label, n))
	fprintNode(w, n.left, label, depth+1)
}

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids *nodeids) alloc(n *Node) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Red nodes are filled red, black nodes black;
// absent children show up as small empty circles.
func Tree2Dot(t *Tree, label Labeler, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	count := 0
	for n := range t.InOrder() {
		ID := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n",
			ID, labelOrAddr(label, n), nodeDotStyles(n))
		for side, c := range []*Node{n.left, n.right} {
			if c == nil {
				nilid := ID*2 + 10000 + side // two possible absences per node
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(c))
		}
		count++
	}
	T().Debugf("tree DOT: %d nodes dumped", count)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(n *Node) string {
	s := ",style=filled,fontcolor=white"
	if n.isRed() {
		s += ",fillcolor=red3"
	} else {
		s += ",fillcolor=black"
	}
	return s
}

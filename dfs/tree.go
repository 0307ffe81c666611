package dfs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/Excalibur888/PotooMaps/core"
)

// Tree is a node of a DFS spanning tree. Children are ordered by discovery.
type Tree struct {
	ID       int
	Children []*Tree
}

// SpanningTree returns the DFS tree of g rooted at start, marking reached
// nodes in visited. It returns (nil, nil) when start is already marked.
func SpanningTree(g core.Graph, start int, visited []bool) (*Tree, error) {
	res, err := DFS(g, start, visited)
	if err != nil {
		return nil, err
	}
	if len(res.PreOrder) == 0 {
		return nil, nil
	}

	// Pre-order guarantees a parent is built before any of its children.
	nodes := make(map[int]*Tree, len(res.PreOrder))
	for _, id := range res.PreOrder {
		t := &Tree{ID: id}
		nodes[id] = t
		if p := res.Parent[id]; p != None {
			nodes[p].Children = append(nodes[p].Children, t)
		}
	}

	return nodes[start], nil
}

// Walk calls fn for every node in pre-order with its depth below t.
func (t *Tree) Walk(fn func(id, depth int)) {
	type item struct {
		node  *Tree
		depth int
	}
	stack := []item{{t, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(it.node.ID, it.depth)
		for i := len(it.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{it.node.Children[i], it.depth + 1})
		}
	}
}

// Len returns the number of nodes in t.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(int, int) { n++ })

	return n
}

// Fprint writes one id per line, indented two spaces per level.
func (t *Tree) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.Walk(func(id, depth int) {
		bw.WriteString(strings.Repeat("  ", depth))
		bw.WriteString(strconv.Itoa(id))
		bw.WriteByte('\n')
	})

	return bw.Flush()
}

package dict

import (
	"bufio"
	"io"
	"strings"
)

// WriteTree renders the tree sideways for debugging: the right subtree is
// printed above its parent and the left subtree below, each level indented
// by four spaces. An empty Dict writes nothing.
func (d *Dict[V]) WriteTree(w io.Writer) error {
	if d.size == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	d.writeNode(bw, d.root, 0)

	return bw.Flush()
}

// writeNode recurses at most tree-height deep, which is O(log n) for AVL.
func (d *Dict[V]) writeNode(w *bufio.Writer, i int32, depth int) {
	if i == nilNode {
		return
	}
	d.writeNode(w, d.nodes[i].right, depth+1)
	w.WriteString(strings.Repeat("    ", depth))
	w.WriteString(d.nodes[i].key)
	w.WriteByte('\n')
	d.writeNode(w, d.nodes[i].left, depth+1)
}

package dict

import "strings"

// nilNode encodes an absent child or parent link.
const nilNode int32 = -1

type node[V any] struct {
	key    string
	value  V
	height int
	left   int32
	right  int32
	parent int32
}

// Dict is an AVL-balanced ordered index from string keys to values of type V.
// The zero value is an empty Dict ready to use.
type Dict[V any] struct {
	nodes []node[V] // arena; slots listed in free are unused
	free  []int32
	root  int32
	size  int
}

// New returns an empty Dict.
func New[V any]() *Dict[V] {
	return &Dict[V]{root: nilNode}
}

// Len returns the number of entries stored.
func (d *Dict[V]) Len() int { return d.size }

// Clear removes every entry, releasing the node arena in one step.
func (d *Dict[V]) Clear() {
	d.nodes = nil
	d.free = nil
	d.root = nilNode
	d.size = 0
}

// Insert stores value under key.
//
// If key is already present its value is replaced in place, the previous
// value is returned with replaced == true, and the tree shape is untouched.
// Otherwise a new leaf is attached and the tree is rebalanced on the way up.
//
// Complexity: O(log n).
func (d *Dict[V]) Insert(key string, value V) (prev V, replaced bool) {
	if d.size == 0 {
		d.root = d.alloc(key, value, nilNode)
		d.size = 1

		return prev, false
	}

	cur := d.root
	for {
		c := strings.Compare(key, d.nodes[cur].key)
		if c == 0 {
			prev = d.nodes[cur].value
			d.nodes[cur].value = value

			return prev, true
		}

		next := d.nodes[cur].right
		if c < 0 {
			next = d.nodes[cur].left
		}
		if next != nilNode {
			cur = next
			continue
		}

		// alloc may grow the arena, so link by index afterwards.
		leaf := d.alloc(key, value, cur)
		if c < 0 {
			d.nodes[cur].left = leaf
		} else {
			d.nodes[cur].right = leaf
		}
		d.size++
		d.rebalance(cur)

		return prev, false
	}
}

// Get returns the value stored under key and whether it was found.
//
// Complexity: O(log n).
func (d *Dict[V]) Get(key string) (V, bool) {
	if i := d.find(key); i != nilNode {
		return d.nodes[i].value, true
	}
	var zero V

	return zero, false
}

// Contains reports whether key is present.
func (d *Dict[V]) Contains(key string) bool { return d.find(key) != nilNode }

// Remove deletes key and returns its value. An absent key is not an error:
// Remove reports (zero, false) and leaves the tree unchanged.
//
// A node with two children takes over the entry of the greatest key in its
// left subtree, and that node is unlinked instead. Rebalancing starts from
// the parent of whichever node was physically unlinked.
//
// Complexity: O(log n).
func (d *Dict[V]) Remove(key string) (V, bool) {
	var zero V
	z := d.find(key)
	if z == nilNode {
		return zero, false
	}
	removed := d.nodes[z].value

	target := z
	if d.nodes[z].left != nilNode && d.nodes[z].right != nilNode {
		target = d.maximum(d.nodes[z].left)
		d.nodes[z].key = d.nodes[target].key
		d.nodes[z].value = d.nodes[target].value
	}

	// target has at most one child here.
	child := d.nodes[target].left
	if child == nilNode {
		child = d.nodes[target].right
	}
	parent := d.nodes[target].parent
	d.replaceChild(parent, target, child)
	if child != nilNode {
		d.nodes[child].parent = parent
	}

	d.release(target)
	d.size--
	if d.size == 0 {
		d.Clear()

		return removed, true
	}
	d.rebalance(parent)

	return removed, true
}

// Keys returns a snapshot of all keys in ascending order.
func (d *Dict[V]) Keys() []string {
	keys := make([]string, 0, d.size)
	for it := d.Iter(); it.HasNext(); {
		k, _, _ := it.Next()
		keys = append(keys, k)
	}

	return keys
}

func (d *Dict[V]) find(key string) int32 {
	if d.size == 0 {
		return nilNode
	}
	cur := d.root
	for cur != nilNode {
		switch c := strings.Compare(key, d.nodes[cur].key); {
		case c == 0:
			return cur
		case c < 0:
			cur = d.nodes[cur].left
		default:
			cur = d.nodes[cur].right
		}
	}

	return nilNode
}

func (d *Dict[V]) alloc(key string, value V, parent int32) int32 {
	n := node[V]{key: key, value: value, left: nilNode, right: nilNode, parent: parent}
	if last := len(d.free) - 1; last >= 0 {
		i := d.free[last]
		d.free = d.free[:last]
		d.nodes[i] = n

		return i
	}
	d.nodes = append(d.nodes, n)

	return int32(len(d.nodes) - 1)
}

// release zeroes the slot so the arena does not pin the old value.
func (d *Dict[V]) release(i int32) {
	d.nodes[i] = node[V]{left: nilNode, right: nilNode, parent: nilNode}
	d.free = append(d.free, i)
}

func (d *Dict[V]) minimum(i int32) int32 {
	for d.nodes[i].left != nilNode {
		i = d.nodes[i].left
	}

	return i
}

func (d *Dict[V]) maximum(i int32) int32 {
	for d.nodes[i].right != nilNode {
		i = d.nodes[i].right
	}

	return i
}

// successor returns the in-order successor of i, or nilNode.
func (d *Dict[V]) successor(i int32) int32 {
	if r := d.nodes[i].right; r != nilNode {
		return d.minimum(r)
	}
	p := d.nodes[i].parent
	for p != nilNode && d.nodes[p].right == i {
		i = p
		p = d.nodes[p].parent
	}

	return p
}

// replaceChild points parent's link that referenced old at repl instead.
// A nilNode parent means old was the root.
func (d *Dict[V]) replaceChild(parent, old, repl int32) {
	switch {
	case parent == nilNode:
		d.root = repl
	case d.nodes[parent].left == old:
		d.nodes[parent].left = repl
	default:
		d.nodes[parent].right = repl
	}
}

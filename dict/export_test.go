package dict

import (
	"fmt"
	"strings"
)

// CheckInvariants verifies ordering, heights, AVL balance, parent links and
// the entry count of d. It is compiled into the test binary only.
func CheckInvariants[V any](d *Dict[V]) error {
	if d.size == 0 {
		return nil
	}
	if d.nodes[d.root].parent != nilNode {
		return fmt.Errorf("root %q has a parent", d.nodes[d.root].key)
	}
	count, _, err := check(d, d.root)
	if err != nil {
		return err
	}
	if count != d.size {
		return fmt.Errorf("size %d, counted %d nodes", d.size, count)
	}
	if live := len(d.nodes) - len(d.free); live != d.size {
		return fmt.Errorf("arena holds %d live slots for size %d", live, d.size)
	}

	prev := ""
	for i, k := range d.Keys() {
		if i > 0 && strings.Compare(prev, k) >= 0 {
			return fmt.Errorf("keys out of order: %q before %q", prev, k)
		}
		prev = k
	}

	return nil
}

// Height exposes the stored height of the root, -1 when empty.
func Height[V any](d *Dict[V]) int {
	if d.size == 0 {
		return -1
	}

	return d.nodes[d.root].height
}

func check[V any](d *Dict[V], i int32) (count, height int, err error) {
	if i == nilNode {
		return 0, -1, nil
	}
	n := d.nodes[i]
	for _, c := range []int32{n.left, n.right} {
		if c != nilNode && d.nodes[c].parent != i {
			return 0, 0, fmt.Errorf("child %q of %q has wrong parent", d.nodes[c].key, n.key)
		}
	}
	if n.left != nilNode && d.nodes[n.left].key >= n.key {
		return 0, 0, fmt.Errorf("left child %q not below %q", d.nodes[n.left].key, n.key)
	}
	if n.right != nilNode && d.nodes[n.right].key <= n.key {
		return 0, 0, fmt.Errorf("right child %q not above %q", d.nodes[n.right].key, n.key)
	}

	lc, lh, err := check(d, n.left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := check(d, n.right)
	if err != nil {
		return 0, 0, err
	}
	h := 1 + max(lh, rh)
	if h != n.height {
		return 0, 0, fmt.Errorf("node %q stores height %d, actual %d", n.key, n.height, h)
	}
	if b := rh - lh; b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("node %q balance %d", n.key, b)
	}

	return lc + rc + 1, h, nil
}

package dict

func (d *Dict[V]) height(i int32) int {
	if i == nilNode {
		return -1
	}

	return d.nodes[i].height
}

func (d *Dict[V]) updateHeight(i int32) {
	n := &d.nodes[i]
	n.height = 1 + max(d.height(n.left), d.height(n.right))
}

// balanceOf returns height(right) - height(left).
func (d *Dict[V]) balanceOf(i int32) int {
	return d.height(d.nodes[i].right) - d.height(d.nodes[i].left)
}

// rebalance walks from i towards the root, restoring heights and the AVL
// balance. It stops as soon as a node keeps its height and is balanced,
// since no ancestor can be affected past that point.
func (d *Dict[V]) rebalance(i int32) {
	for i != nilNode {
		before := d.nodes[i].height
		d.updateHeight(i)
		bal := d.balanceOf(i)
		if d.nodes[i].height == before && bal >= -1 && bal <= 1 {
			return
		}

		parent := d.nodes[i].parent
		switch bal {
		case 2:
			if r := d.nodes[i].right; d.balanceOf(r) == -1 {
				d.rotateRight(r)
			}
			d.rotateLeft(i)
		case -2:
			if l := d.nodes[i].left; d.balanceOf(l) == 1 {
				d.rotateLeft(l)
			}
			d.rotateRight(i)
		}
		i = parent
	}
}

//	  x              y
//	 / \            / \
//	a   y    =>    x   c
//	   / \        / \
//	  b   c      a   b
func (d *Dict[V]) rotateLeft(x int32) {
	y := d.nodes[x].right
	b := d.nodes[y].left

	d.nodes[x].right = b
	if b != nilNode {
		d.nodes[b].parent = x
	}

	p := d.nodes[x].parent
	d.nodes[y].parent = p
	d.replaceChild(p, x, y)

	d.nodes[y].left = x
	d.nodes[x].parent = y

	d.updateHeight(x)
	d.updateHeight(y)
}

// rotateRight mirrors rotateLeft.
func (d *Dict[V]) rotateRight(x int32) {
	y := d.nodes[x].left
	b := d.nodes[y].right

	d.nodes[x].left = b
	if b != nilNode {
		d.nodes[b].parent = x
	}

	p := d.nodes[x].parent
	d.nodes[y].parent = p
	d.replaceChild(p, x, y)

	d.nodes[y].right = x
	d.nodes[x].parent = y

	d.updateHeight(x)
	d.updateHeight(y)
}

package dict

import "iter"

// Iterator walks a Dict in ascending key order without recursion.
// It is invalidated by any Insert, Remove or Clear on the Dict.
type Iterator[V any] struct {
	d   *Dict[V]
	cur int32
}

// Iter returns an iterator positioned on the smallest key.
func (d *Dict[V]) Iter() *Iterator[V] {
	it := &Iterator[V]{d: d, cur: nilNode}
	if d.size > 0 {
		it.cur = d.minimum(d.root)
	}

	return it
}

// HasNext reports whether Next will yield another entry.
func (it *Iterator[V]) HasNext() bool { return it.cur != nilNode }

// Next returns the current entry and advances to its in-order successor.
// Once exhausted it returns ok == false.
func (it *Iterator[V]) Next() (key string, value V, ok bool) {
	if it.cur == nilNode {
		return "", value, false
	}
	n := &it.d.nodes[it.cur]
	key, value = n.key, n.value
	it.cur = it.d.successor(it.cur)

	return key, value, true
}

// All returns a range-over-func sequence of entries in ascending key order.
func (d *Dict[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for it := d.Iter(); it.HasNext(); {
			k, v, _ := it.Next()
			if !yield(k, v) {
				return
			}
		}
	}
}

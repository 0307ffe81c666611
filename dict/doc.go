// Package dict implements an ordered string-keyed index backed by a
// height-balanced (AVL) binary search tree.
//
// A Dict maps unique string keys to values of any type and keeps them in
// ascending byte-wise order (strings.Compare). Insert, Get and Remove run in
// O(log n) worst case; a full in-order iteration costs O(n) with O(1) extra
// space, because nodes carry parent links and the iterator walks them
// without recursion.
//
// Nodes live in a single arena slice and refer to each other by index.
// Removed slots are recycled by later inserts, and Clear releases the whole
// arena at once, so no teardown ever recurses.
//
// Height convention: a leaf has height 0, an absent child has height -1.
// The balance factor of a node is height(right) - height(left) and stays in
// {-1, 0, +1} for every node after each public operation returns.
//
// Concurrency: a Dict is not safe for concurrent use. Callers serialise.
// Mutating a Dict while an Iterator is live invalidates the iterator.
//
// Example:
//
//	d := dict.New[int]()
//	d.Insert("lyon", 69123)
//	d.Insert("paris", 75056)
//	for key, code := range d.All() {
//		fmt.Println(key, code)
//	}
package dict

package dfs

import (
	"fmt"

	"github.com/Excalibur888/PotooMaps/core"
)

// TopologicalSort orders every node of g so that each edge u→v has u before
// v. Roots are tried in ascending id. A self-loop or any other back edge
// yields ErrCycleDetected, wrapped with the node where it was found.
//
// Complexity: O(V + E) with BackingList, O(V²) with BackingMatrix.
func TopologicalSort(g core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Size()
	state := make([]int, n)
	order := make([]int, 0, n)
	var stack []frame

	push := func(id int) error {
		succ, err := g.Successors(id)
		if err != nil {
			return fmt.Errorf("dfs: successors of %d: %w", id, err)
		}
		state[id] = Gray
		stack = append(stack, frame{id: id, succ: succ})

		return nil
	}

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		if err := push(root); err != nil {
			return nil, err
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.succ) {
				state[top.id] = Black
				order = append(order, top.id)
				stack = stack[:len(stack)-1]
				continue
			}
			v := top.succ[top.next].Target
			top.next++
			switch state[v] {
			case Gray:
				return nil, fmt.Errorf("%w: back edge %d→%d", ErrCycleDetected, top.id, v)
			case White:
				if err := push(v); err != nil {
					return nil, err
				}
			}
		}
	}

	// reverse post-order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

package depsort

// OrderByWeight adjusts a topologically ordered sequence in place so that
// negative weights float toward the front and positive weights toward the
// back, without ever crossing a dependency boundary. It returns the same
// slice for convenience.
//
// The input must already be in dependency order (see [OrderByDependency]);
// the boundary checks assume it and are undefined otherwise.
//
// Each pass is a bounded insertion sort. A moving node first crawls as far
// as its dependencies allow, then backs off past any node it crossed whose
// weight entitles it to the closer position. The element already at the
// front never initiates a move in the negative pass, and the element at the
// back never initiates one in the positive pass; both can still be displaced
// by a crossing node.
func OrderByWeight(nodes []*Node) []*Node {
	if len(nodes) < 2 {
		return nodes
	}

	// Negative pass: forward scan, crawl left until blocked by a dependency,
	// then back off while the displaced node is more negative.
	rangeScan(nodes, 1, len(nodes), func(i int) bool {
		n := nodes[i]
		if n.Weight >= 0 {
			return true
		}
		j := boundedSwap(nodes, i, 0, func(prev *Node) bool {
			return !n.DependsOn(prev.ID)
		})
		boundedSwap(nodes, j, i, func(next *Node) bool {
			return next.Weight < n.Weight
		})
		return true
	})

	// Positive pass: backward scan, crawl right until blocked by a
	// dependent, then back off while the displaced node is heavier.
	rangeScan(nodes, len(nodes)-2, -1, func(i int) bool {
		n := nodes[i]
		if n.Weight <= 0 {
			return true
		}
		j := boundedSwap(nodes, i, len(nodes)-1, func(next *Node) bool {
			return !next.DependsOn(n.ID)
		})
		boundedSwap(nodes, j, i, func(prev *Node) bool {
			return prev.Weight > n.Weight
		})
		return true
	})

	return nodes
}

// rangeScan calls fn for each index in the half-open range from..to, walking
// backward when to < from. fn returning false stops the scan early.
func rangeScan[T any](s []T, from, to int, fn func(i int) bool) {
	step := 1
	if to < from {
		step = -1
	}
	for i := from; i != to; i += step {
		if !fn(i) {
			return
		}
	}
}

// boundedSwap repeatedly swaps s[i] with its neighbor in the direction of
// to while pred accepts the neighbor, and returns the final index. from == to
// is a no-op.
func boundedSwap[T any](s []T, from, to int, pred func(neighbor T) bool) int {
	step := 1
	if to < from {
		step = -1
	}
	i := from
	for i != to && pred(s[i+step]) {
		s[i], s[i+step] = s[i+step], s[i]
		i += step
	}
	return i
}

package depsort

import "slices"

// OrderByDependency produces a topologically valid ordering of nodes: for
// every node N and every node M whose depends set contains N's id, N appears
// before M. Nodes with no dependency relationship keep their input order.
//
// The input slice is not modified; a new slice is returned. The transient
// traversal mark on each node is reset and mutated in place.
//
// A dependency id that matches no node is inert: it neither blocks nor
// reorders anything. A cycle (including a self-dependency) aborts the sort
// with a [CycleError] identifying the node at which it was detected.
func OrderByDependency(nodes []*Node) ([]*Node, error) {
	for _, n := range nodes {
		n.mark = unvisited
	}

	// Finished nodes are appended and the slice reversed once at the end,
	// which is equivalent to prepending each node ahead of its dependents.
	// Both traversal loops run over the input back to front; after the
	// final reverse, nodes with no dependency relationship come out in
	// input order.
	out := make([]*Node, 0, len(nodes))

	var visit func(n *Node) error
	visit = func(n *Node) error {
		switch n.mark {
		case visited:
			return nil
		case inProgress:
			return &CycleError{ID: n.ID}
		}
		n.mark = inProgress
		for i := len(nodes) - 1; i >= 0; i-- {
			if m := nodes[i]; m.DependsOn(n.ID) {
				if err := visit(m); err != nil {
					return err
				}
			}
		}
		n.mark = visited
		out = append(out, n)
		return nil
	}

	for i := len(nodes) - 1; i >= 0; i-- {
		if n := nodes[i]; n.mark == unvisited {
			if err := visit(n); err != nil {
				return nil, err
			}
		}
	}

	slices.Reverse(out)
	return out, nil
}

package depsort

import "fmt"

// CycleError is returned by [Sorter.Sort] and [OrderByDependency] when the
// dependency graph contains a cycle. ID is the identity of the node at which
// the cycle was detected, not necessarily every node on the cycle.
type CycleError struct {
	ID ID
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected at %q", e.ID.String())
}

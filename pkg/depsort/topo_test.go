package depsort

import (
	"errors"
	"testing"
)

func nodesOf(records ...map[string]any) []*Node {
	s := New(Options{})
	nodes := make([]*Node, len(records))
	for i, r := range records {
		nodes[i] = s.Normalize(r)
	}
	return nodes
}

func orderOf(t *testing.T, nodes []*Node) []string {
	t.Helper()
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID.String()
	}
	return out
}

func indexOf(nodes []*Node, id string) int {
	for i, n := range nodes {
		if n.ID.Value() == id {
			return i
		}
	}
	return -1
}

func TestOrderByDependency_DependenciesFirst(t *testing.T) {
	nodes := nodesOf(
		map[string]any{"id": "app", "depends": []any{"lib", "cfg"}},
		map[string]any{"id": "lib", "depends": "core"},
		map[string]any{"id": "cfg"},
		map[string]any{"id": "core"},
	)

	ordered, err := OrderByDependency(nodes)
	if err != nil {
		t.Fatalf("OrderByDependency() error = %v", err)
	}
	if len(ordered) != len(nodes) {
		t.Fatalf("got %d nodes, want %d", len(ordered), len(nodes))
	}

	for _, dep := range []struct{ before, after string }{
		{"lib", "app"},
		{"cfg", "app"},
		{"core", "lib"},
		{"core", "app"},
	} {
		if indexOf(ordered, dep.before) >= indexOf(ordered, dep.after) {
			t.Errorf("%s should come before %s: order %v", dep.before, dep.after, orderOf(t, ordered))
		}
	}
}

func TestOrderByDependency_StableForIndependentNodes(t *testing.T) {
	nodes := nodesOf(
		map[string]any{"id": "a"},
		map[string]any{"id": "b"},
		map[string]any{"id": "c"},
	)

	ordered, err := OrderByDependency(nodes)
	if err != nil {
		t.Fatalf("OrderByDependency() error = %v", err)
	}

	want := []string{"a", "b", "c"}
	got := orderOf(t, ordered)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestOrderByDependency_InputSliceUntouched(t *testing.T) {
	nodes := nodesOf(
		map[string]any{"id": "b", "depends": "a"},
		map[string]any{"id": "a"},
	)

	if _, err := OrderByDependency(nodes); err != nil {
		t.Fatalf("OrderByDependency() error = %v", err)
	}
	if nodes[0].ID.Value() != "b" || nodes[1].ID.Value() != "a" {
		t.Errorf("input slice reordered: %v", orderOf(t, nodes))
	}
}

func TestOrderByDependency_Cycle(t *testing.T) {
	tests := []struct {
		name    string
		records []map[string]any
	}{
		{
			name: "two node cycle",
			records: []map[string]any{
				{"id": "a", "depends": "b"},
				{"id": "b", "depends": "a"},
			},
		},
		{
			name: "self dependency",
			records: []map[string]any{
				{"id": "a", "depends": "a"},
			},
		},
		{
			name: "triangle",
			records: []map[string]any{
				{"id": "a", "depends": "c"},
				{"id": "b", "depends": "a"},
				{"id": "c", "depends": "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ordered, err := OrderByDependency(nodesOf(tt.records...))
			if ordered != nil {
				t.Errorf("got partial output %v, want nil", orderOf(t, ordered))
			}
			var cycErr *CycleError
			if !errors.As(err, &cycErr) {
				t.Fatalf("error = %v, want *CycleError", err)
			}
		})
	}
}

func TestOrderByDependency_MissingDependencyInert(t *testing.T) {
	nodes := nodesOf(
		map[string]any{"id": "a", "depends": "ghost"},
		map[string]any{"id": "b"},
	)

	ordered, err := OrderByDependency(nodes)
	if err != nil {
		t.Fatalf("OrderByDependency() error = %v", err)
	}
	got := orderOf(t, ordered)
	if got[0] != "a" || got[1] != "b" {
		t.Errorf("order = %v, want [a b]", got)
	}
}

func TestOrderByDependency_ResetsMarks(t *testing.T) {
	nodes := nodesOf(
		map[string]any{"id": "a"},
		map[string]any{"id": "b", "depends": "a"},
	)

	if _, err := OrderByDependency(nodes); err != nil {
		t.Fatalf("first run error = %v", err)
	}
	// Marks left over from the first run must not poison a second run.
	if _, err := OrderByDependency(nodes); err != nil {
		t.Fatalf("second run error = %v", err)
	}
}

package dot

import (
	"strings"
	"testing"

	"github.com/matzehuels/depsort/pkg/depsort"
)

func testNodes(t *testing.T, records ...map[string]any) []*depsort.Node {
	t.Helper()
	s := depsort.New(depsort.Options{})
	nodes := make([]*depsort.Node, len(records))
	for i, r := range records {
		nodes[i] = s.Normalize(r)
	}
	return nodes
}

func TestToDOT_NodesAndEdges(t *testing.T) {
	nodes := testNodes(t,
		map[string]any{"id": "lib"},
		map[string]any{"id": "app", "depends": "lib"},
	)

	got := ToDOT(nodes, Options{})

	if !strings.Contains(got, `n0 [label="lib"]`) {
		t.Errorf("missing lib node:\n%s", got)
	}
	if !strings.Contains(got, `n1 [label="app"]`) {
		t.Errorf("missing app node:\n%s", got)
	}
	if !strings.Contains(got, "n0 -> n1;") {
		t.Errorf("missing dependency edge:\n%s", got)
	}
}

func TestToDOT_WeightLabels(t *testing.T) {
	nodes := testNodes(t, map[string]any{"id": "a", "weight": -5.0})

	got := ToDOT(nodes, Options{Weights: true})
	if !strings.Contains(got, "weight: -5") {
		t.Errorf("missing weight label:\n%s", got)
	}
}

func TestToDOT_DanglingDependencyOmitted(t *testing.T) {
	nodes := testNodes(t, map[string]any{"id": "a", "depends": "ghost"})

	got := ToDOT(nodes, Options{})
	if strings.Contains(got, "->") {
		t.Errorf("dangling dependency produced an edge:\n%s", got)
	}
}

func TestToDOT_AnonymousNode(t *testing.T) {
	nodes := testNodes(t, map[string]any{"weight": 1.0})

	got := ToDOT(nodes, Options{})
	if !strings.Contains(got, `label="(anonymous)"`) {
		t.Errorf("missing anonymous label:\n%s", got)
	}
	if !strings.Contains(got, "dashed") {
		t.Errorf("anonymous node should be dashed:\n%s", got)
	}
}

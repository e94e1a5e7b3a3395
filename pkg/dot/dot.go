// Package dot exports the dependency graph of a node sequence to Graphviz
// DOT and renders it to SVG or PNG.
//
// Edges point from a dependency to its dependent, matching the final sort
// order top to bottom in the rendered graph. Dangling dependency ids are
// omitted, mirroring their inertness during sorting.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/depsort/pkg/depsort"
)

// Options configures DOT generation.
type Options struct {
	// Weights includes each node's weight in its label.
	Weights bool
}

// ToDOT converts a node sequence to Graphviz DOT format.
// Node order in the output matches the input sequence, so a sorted sequence
// produces a DOT file whose declaration order is the sort order.
func ToDOT(nodes []*depsort.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph deps {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontsize=12];\n")
	buf.WriteString("\n")

	for i, n := range nodes {
		attrs := []string{fmt.Sprintf("label=%q", label(n, opts))}
		if n.ID.Anonymous() {
			attrs = append(attrs, "style=\"rounded,dashed\"")
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeName(i), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, n := range nodes {
		for _, dep := range n.Depends {
			if j := find(nodes, dep); j >= 0 {
				fmt.Fprintf(&buf, "  %s -> %s;\n", nodeName(j), nodeName(i))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeName returns a stable DOT identifier for the node at index i.
// Positional names keep the output valid for arbitrary id values.
func nodeName(i int) string { return fmt.Sprintf("n%d", i) }

func label(n *depsort.Node, opts Options) string {
	if !opts.Weights {
		return n.ID.String()
	}
	return fmt.Sprintf("%s\nweight: %v", n.ID.String(), n.Weight)
}

// find locates the node carrying the given named id, or -1 for a dangling
// reference. Anonymous nodes never match; named ids from depends lists are
// always comparable values.
func find(nodes []*depsort.Node, id depsort.ID) int {
	for i, n := range nodes {
		if !n.ID.Anonymous() && n.ID == id {
			return i
		}
	}
	return -1
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

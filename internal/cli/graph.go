package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depsort/pkg/depsort"
	"github.com/matzehuels/depsort/pkg/dot"
	"github.com/matzehuels/depsort/pkg/records"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	fields  fieldFlags
	output  string
	format  string // dot, svg or png
	weights bool
	raw     bool // skip sorting, keep input order
}

func newGraphCmd() *cobra.Command {
	opts := graphOpts{format: "dot"}

	cmd := &cobra.Command{
		Use:   "graph <records.(json|toml)>",
		Short: "Export the dependency graph as DOT, SVG or PNG",
		Long: `Export the dependency graph of a record collection.

The records are sorted first so the DOT declaration order matches the sort
order; use --raw to keep the input order instead. SVG and PNG output require
--output since the result is binary or large.

Examples:
  depsort graph tasks.json
  depsort graph tasks.json --weights -f svg -o tasks.svg
  depsort graph tasks.toml --raw -f png -o tasks.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd.Context(), cmd, &opts, args[0])
		},
	}

	opts.fields.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout for dot if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, png")
	cmd.Flags().BoolVar(&opts.weights, "weights", false, "include weights in node labels")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "keep input order instead of sorting")

	return cmd
}

func runGraph(ctx context.Context, cmd *cobra.Command, opts *graphOpts, path string) error {
	logger := loggerFromContext(ctx)

	sorterOpts, err := opts.fields.sorterOptions(cmd)
	if err != nil {
		return err
	}
	recs, err := records.Load(path)
	if err != nil {
		return err
	}

	nodes, err := graphNodes(depsort.New(sorterOpts), recs, opts.raw)
	if err != nil {
		return err
	}
	logger.Debugf("Built graph with %d nodes", len(nodes))

	dotSrc := dot.ToDOT(nodes, dot.Options{Weights: opts.weights})

	switch opts.format {
	case "dot":
		return writeGraph([]byte(dotSrc), opts.output)
	case "svg":
		return renderGraph(dotSrc, opts.output, dot.RenderSVG)
	case "png":
		return renderGraph(dotSrc, opts.output, dot.RenderPNG)
	}
	return fmt.Errorf("unknown graph format %q", opts.format)
}

// graphNodes normalizes records and, unless raw is set, runs both ordering
// phases so the exported graph lists nodes in final sort order.
func graphNodes(sorter *depsort.Sorter, recs []any, raw bool) ([]*depsort.Node, error) {
	nodes := make([]*depsort.Node, len(recs))
	for i, r := range recs {
		nodes[i] = sorter.Normalize(r)
	}
	if raw {
		return nodes, nil
	}

	ordered, err := depsort.OrderByDependency(nodes)
	if err != nil {
		return nil, err
	}
	return depsort.OrderByWeight(ordered), nil
}

func writeGraph(data []byte, output string) error {
	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printFile(output)
	return nil
}

func renderGraph(dotSrc, output string, render func(string) ([]byte, error)) error {
	if output == "" {
		return fmt.Errorf("svg and png output require --output")
	}
	data, err := render(dotSrc)
	if err != nil {
		return err
	}
	return writeGraph(data, output)
}

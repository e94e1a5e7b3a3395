// Package cli implements the depsort command-line interface.
//
// The CLI wraps the pkg/depsort library for file-based use: it loads record
// collections from JSON or TOML files, orders them by dependency and weight,
// and writes the result as JSON, a styled table, or plain ids. Additional
// commands export the dependency graph via Graphviz and browse the sorted
// sequence interactively.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depsort/pkg/buildinfo"
)

// Execute runs the depsort CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "depsort",
		Short:        "depsort orders records by dependencies and weight",
		Long: `depsort orders a collection of interdependent records into a single
sequence that never places a record before one it depends on, while letting
signed weights bias records toward the front (negative) or back (positive)
of the sequence within those constraints.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSortCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depsort/pkg/depsort"
	"github.com/matzehuels/depsort/pkg/records"
)

// sortOpts holds the command-line flags for the sort command.
type sortOpts struct {
	fields fieldFlags
	output string // output file path (stdout if empty)
	format string // json, table or plain
}

func newSortCmd() *cobra.Command {
	opts := sortOpts{format: "plain"}

	cmd := &cobra.Command{
		Use:   "sort <records.(json|toml)>",
		Short: "Order records by dependencies and weight",
		Long: `Order records by dependencies and weight.

Records are loaded from a JSON array of objects or a TOML [[records]] file.
Each record may carry an id, a signed weight, and a list of ids it depends
on; the field names are configurable via flags or a TOML config file.

Examples:
  depsort sort tasks.json
  depsort sort tasks.toml --format table
  depsort sort tasks.json --id-field name --depends-field after
  depsort sort tasks.json --config depsort.toml -o sorted.json --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd.Context(), cmd, &opts, args[0])
		},
	}

	opts.fields.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: plain (default), table, json")

	return cmd
}

func runSort(ctx context.Context, cmd *cobra.Command, opts *sortOpts, path string) error {
	logger := loggerFromContext(ctx)

	sorterOpts, err := opts.fields.sorterOptions(cmd)
	if err != nil {
		return err
	}

	recs, err := records.Load(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d records from %s", len(recs), path)

	prog := newProgress(logger)
	sorter := depsort.New(sorterOpts)
	sorted, err := sorter.Sort(recs)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Sorted %d records", len(sorted)))

	return writeSorted(sorter, sorted, opts)
}

func writeSorted(sorter *depsort.Sorter, sorted []any, opts *sortOpts) error {
	switch opts.format {
	case "json":
		if opts.output != "" {
			if err := records.Save(sorted, opts.output); err != nil {
				return err
			}
			printFile(opts.output)
			return nil
		}
		return records.Write(sorted, os.Stdout)
	case "table":
		fmt.Println(sortedTable(sorter, sorted))
		return nil
	case "plain":
		for _, r := range sorted {
			fmt.Println(sorter.Normalize(r).ID)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", opts.format)
}

// sortedTable renders the sorted sequence as a lipgloss table with one row
// per record showing position, id, weight and dependencies.
func sortedTable(sorter *depsort.Sorter, sorted []any) string {
	t := table.New().
		Headers("#", "ID", "WEIGHT", "DEPENDS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleTitle.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})

	for i, r := range sorted {
		n := sorter.Normalize(r)
		t.Row(strconv.Itoa(i), n.ID.String(), formatWeight(n.Weight), formatDepends(n.Depends))
	}
	return t.Render()
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

func formatDepends(deps []depsort.ID) string {
	out := ""
	for i, d := range deps {
		if i > 0 {
			out += ", "
		}
		out += d.String()
	}
	return out
}

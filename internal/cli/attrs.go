package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwiz/pkg/attrs"
)

const attrColumns = 4

// attrsCommand creates the attrs command.
func (c *CLI) attrsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "attrs [filter]",
		Short: "List known DOT attribute names",
		Long: `Attrs lists the attribute names Graphviz understands, optionally only those
containing filter (case-insensitive). Use them as keys in defaults and attrs
tables of a manifest.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			names := attrs.Match(filter)
			if len(names) == 0 {
				printInfo(c.out, "No attribute matches %q", filter)
				return nil
			}
			if plain {
				for _, n := range names {
					fmt.Fprintln(c.out, n)
				}
				return nil
			}
			printNameTable(c.out, names, attrColumns)
			printDetail(c.out, "%d of %d attributes", len(names), len(attrs.All()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "one name per line, no table")
	return cmd
}

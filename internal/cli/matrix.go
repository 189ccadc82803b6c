package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dr-livesey/treemat/pkg/matrix"
)

// matrixCommand creates the matrix command: derive and print the
// incidence matrix of a tree document.
func (c *CLI) matrixCommand() *cobra.Command {
	var (
		input string
		from  string
		table bool
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Derive the incidence matrix of a tree",
		Long: `Derive the edge incidence matrix of a tree document. Columns are
parent→child edges in depth-first order; rows are vertex occurrences in
pre-order. By default the fixed debug dump is printed; --table renders a
colored table instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.decodeInput(input, from)
			if err != nil {
				return err
			}

			m := matrix.Build(root)
			c.Logger.Debug("matrix built", "edges", m.EdgeCount(), "vertices", m.VertexCount())

			if table {
				fmt.Print(renderMatrixTable(m, root.Values()))
				printDetail("%d vertices, %d edges", m.VertexCount(), m.EdgeCount())
				return nil
			}
			fmt.Println(m)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (default: stdin)")
	cmd.Flags().StringVarP(&from, "from", "f", "", "input format: json, yaml, toml (default: by extension)")
	cmd.Flags().BoolVar(&table, "table", false, "render as a colored table")

	return cmd
}

// showCommand creates the show command: print the diagnostic nested form
// of a tree document.
func (c *CLI) showCommand() *cobra.Command {
	var (
		input string
		from  string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the diagnostic nested form of a tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.decodeInput(input, from)
			if err != nil {
				return err
			}
			fmt.Println(root)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (default: stdin)")
	cmd.Flags().StringVarP(&from, "from", "f", "", "input format: json, yaml, toml (default: by extension)")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
)

// convertCommand creates the convert command: decode a tree document with
// one codec and encode it with another. The "matrix" format is available
// as an output, so deriving the incidence matrix goes through the same
// write path as any other encoding.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		input  string
		output string
		from   string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a tree document between formats",
		Example: `  treemat convert -i tree.json -t yaml
  treemat convert -i tree.yaml -t matrix
  cat tree.json | treemat convert -t toml -o tree.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.decodeInput(input, from)
			if err != nil {
				return err
			}

			if to == "" {
				to = formatFromPath(output)
			}
			encoder, err := c.Registry.Encoder(to)
			if err != nil {
				return err
			}

			out, err := encoder.Encode(root)
			if err != nil {
				return err
			}
			c.Logger.Debug("encoded", "format", to, "bytes", len(out))

			if err := writeOutput(output, out); err != nil {
				return err
			}
			if output != "" && output != "-" {
				printSuccess("Converted %d nodes to %s", root.Count(), to)
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (default: stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&from, "from", "f", "", "input format: json, yaml, toml (default: by extension)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "output format: json, yaml, toml, matrix (default: by extension)")

	return cmd
}

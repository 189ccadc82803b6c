package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dr-livesey/treemat/pkg/store"
)

// storeCommand creates the store command group for named-tree persistence.
func (c *CLI) storeCommand() *cobra.Command {
	var mongoURI string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage trees stored in MongoDB",
		Long: `Persist trees under names in MongoDB so they can be shared between
runs and machines. The connection URI comes from --mongo-uri or the
mongo_uri key in the config file.`,
	}

	cmd.PersistentFlags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection URI (e.g. mongodb://localhost:27017)")

	cmd.AddCommand(c.storePushCommand(&mongoURI))
	cmd.AddCommand(c.storePullCommand(&mongoURI))
	cmd.AddCommand(c.storeListCommand(&mongoURI))
	cmd.AddCommand(c.storeRemoveCommand(&mongoURI))

	return cmd
}

// newStore opens the configured store backend.
func (c *CLI) newStore(ctx context.Context, mongoURI string) (store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if mongoURI == "" {
		mongoURI = cfg.MongoURI
	}
	if mongoURI == "" {
		return nil, fmt.Errorf("no store configured: pass --mongo-uri or set mongo_uri in the config file")
	}
	c.Logger.Debug("connecting to store", "uri", mongoURI, "database", cfg.MongoDatabase)
	return store.NewMongoStore(ctx, mongoURI, cfg.MongoDatabase)
}

// storePushCommand creates "store push": save a tree under a name.
func (c *CLI) storePushCommand(mongoURI *string) *cobra.Command {
	var (
		input string
		from  string
	)

	cmd := &cobra.Command{
		Use:   "push <name>",
		Short: "Save a tree under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.decodeInput(input, from)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := c.newStore(ctx, *mongoURI)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			rec, err := s.Save(ctx, args[0], root)
			if err != nil {
				return err
			}
			printSuccess("Saved %q (%d nodes)", rec.Name, root.Count())
			printDetail("id: %s", rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (default: stdin)")
	cmd.Flags().StringVarP(&from, "from", "f", "", "input format: json, yaml, toml (default: by extension)")

	return cmd
}

// storePullCommand creates "store pull": load a tree and encode it.
func (c *CLI) storePullCommand(mongoURI *string) *cobra.Command {
	var (
		output string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "pull <name>",
		Short: "Load a stored tree and print or write it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.newStore(ctx, *mongoURI)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			rec, err := s.Load(ctx, args[0])
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
			out, err := encoder.Encode(rec.Tree)
			if err != nil {
				return err
			}
			return writeOutput(output, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "output format: json, yaml, toml, matrix (default: by extension)")

	return cmd
}

// storeListCommand creates "store ls": list stored trees.
func (c *CLI) storeListCommand(mongoURI *string) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List stored trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.newStore(ctx, *mongoURI)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			records, err := s.List(ctx)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				printInfo("No trees stored")
				return nil
			}
			for _, rec := range records {
				nodes := 0
				if rec.Tree != nil {
					nodes = rec.Tree.Count()
				}
				fmt.Println(StyleValue.Render(rec.Name) + " " + StyleDim.Render(
					fmt.Sprintf("(%d nodes, updated %s)", nodes, rec.UpdatedAt.Format("2006-01-02 15:04"))))
			}
			return nil
		},
	}
}

// storeRemoveCommand creates "store rm": delete a stored tree.
func (c *CLI) storeRemoveCommand(mongoURI *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a stored tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.newStore(ctx, *mongoURI)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			if err := s.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %q", args[0])
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swaplab/swapplan/pkg/archive"
	"github.com/swaplab/swapplan/pkg/plan"
	"github.com/swaplab/swapplan/pkg/render"
)

// newArchive opens the plan history store. MongoDB when configured,
// otherwise JSON files under ~/.config/swapplan/history/.
func (c *CLI) newArchive(ctx context.Context) (archive.Store, error) {
	if c.Config.MongoURI != "" {
		return archive.NewMongoStore(ctx, archive.MongoOptions{URI: c.Config.MongoURI})
	}
	return archive.NewFileStore(c.Config.HistoryDir)
}

// historyCommand creates the history management command.
func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and manage archived plans",
	}

	cmd.AddCommand(c.historyListCommand())
	cmd.AddCommand(c.historyShowCommand())
	cmd.AddCommand(c.historyDeleteCommand())

	return cmd
}

// historyListCommand creates the "history list" subcommand.
func (c *CLI) historyListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List archived plans, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newArchive(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())

			summaries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				printInfo("No archived plans")
				return nil
			}

			for _, s := range summaries {
				mode := ""
				if s.Subset {
					mode = StyleDim.Render(" subset")
				}
				fmt.Printf("%s  %s  %s%s\n",
					StyleHighlight.Render(s.ID),
					StyleDim.Render(s.CreatedAt.Local().Format("2006-01-02 15:04")),
					StyleValue.Render(fmt.Sprintf("%d slots, %d swaps", s.Slots, s.Swaps)),
					mode)
			}
			return nil
		},
	}
}

// historyShowCommand creates the "history show" subcommand.
func (c *CLI) historyShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an archived plan with its wire diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newArchive(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())

			doc, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printKeyValue("Plan", doc.ID)
			printKeyValue("Created", doc.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			printKeyValue("Working", formatLabels(doc.Labels))
			printKeyValue("Target", formatLabels(doc.Target))
			if doc.Subset {
				printKeyValue("Mode", "subset")
			}
			printNewline()
			fmt.Print(render.Text(doc.Labels, doc.Swaps()))
			printStats(doc.Stats.Slots, doc.Stats.Swaps, doc.Stats.Cycles, false)
			return nil
		},
	}
}

// historyDeleteCommand creates the "history delete" subcommand.
func (c *CLI) historyDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an archived plan",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newArchive(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted plan %s", args[0])
			return nil
		},
	}
}

// loadPlan fetches a plan either from a JSON file or from the archive by ID.
// File paths win: anything containing a path separator or .json suffix is
// read from disk.
func (c *CLI) loadPlan(ctx context.Context, ref string) (*plan.Document, error) {
	if looksLikeFile(ref) {
		return plan.ReadFile(ref)
	}

	store, err := c.newArchive(ctx)
	if err != nil {
		return nil, err
	}
	defer store.Close(ctx)
	return store.Get(ctx, ref)
}

func looksLikeFile(ref string) bool {
	for _, r := range ref {
		if r == '/' || r == '\\' {
			return true
		}
	}
	return len(ref) > 5 && ref[len(ref)-5:] == ".json"
}

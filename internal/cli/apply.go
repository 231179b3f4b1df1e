package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swaplab/swapplan/pkg/perm"
)

// applyCommand creates the apply command, which replays a saved plan.
func (c *CLI) applyCommand() *cobra.Command {
	var labelsFlag string

	cmd := &cobra.Command{
		Use:   "apply <plan-file-or-id>",
		Short: "Replay a saved plan and print the resulting arrangement",
		Long: `Replay the swap sequence of a saved plan. By default the plan's own
working labels are used as the starting arrangement; pass --labels to apply
the same swaps to a different arrangement of the same slots.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadPlan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			order := doc.Labels
			if labelsFlag != "" {
				order, err = parseLabels(labelsFlag)
				if err != nil {
					return err
				}
			}

			final, err := perm.Apply(order, doc.Swaps())
			if err != nil {
				return err
			}

			for i, s := range doc.Steps {
				printDetail("%2d. swap %s ↔ %s", i+1, s.A.String(), s.B.String())
			}
			printNewline()
			printSuccess("Result: %s", formatLabels(final))

			if labelsFlag == "" {
				ok, err := perm.Verify(doc.Target, order, doc.Swaps())
				if err != nil {
					return err
				}
				if !ok {
					printError("Replay does not reach the recorded target")
					return fmt.Errorf("plan %s does not reach its recorded target", doc.ID)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&labelsFlag, "labels", "l", "", "starting arrangement (defaults to the plan's working labels)")
	return cmd
}

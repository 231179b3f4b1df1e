package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swaplab/swapplan/pkg/plan"
)

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	labels  string // comma-separated working arrangement
	target  string // comma-separated target arrangement
	subset  bool   // target covers only the leading slots
	formats string // comma-separated output formats
	output  string // output file base path (stdout if empty)
	noCache bool   // disable the plan cache
	refresh bool   // bypass cached plans
	save    bool   // archive the plan in history
}

// planCommand creates the plan command.
//
// Examples:
//
//	swapplan plan --labels 0,1,2,3,4 --target 4,2,0,1,3
//	swapplan plan --labels a,b,c,d,e --target e,c,a,b,d -f text,svg -o shuffle
//	swapplan plan --labels 0,1,2,3 --target 2,0 --subset
func (c *CLI) planCommand() *cobra.Command {
	var opts planOpts

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the minimal swap sequence for a target arrangement",
		Long: `Compute the minimal ordered sequence of pairwise swaps that rearranges the
working labels into the target arrangement. Each swap names the two original
slot labels to exchange; applying them in order yields the target.

With --subset the target may cover only the first k slots; the remaining
slots end up holding the leftover labels in some order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.labels, "labels", "l", "", "working arrangement, comma-separated (required)")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "target arrangement, comma-separated (required)")
	cmd.Flags().BoolVar(&opts.subset, "subset", false, "target covers only the leading slots")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): text (default), json, dot, svg, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file base path (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plan cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().BoolVar(&opts.save, "save", false, "archive the plan in history")
	_ = cmd.MarkFlagRequired("labels")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func (c *CLI) runPlan(cmd *cobra.Command, opts *planOpts) error {
	labels, err := parseLabels(opts.labels)
	if err != nil {
		return err
	}
	target, err := parseLabels(opts.target)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	prog := newProgress(loggerFromContext(cmd.Context()))
	res, err := runner.Execute(cmd.Context(), plan.Options{
		Labels:  labels,
		Target:  target,
		Subset:  opts.subset,
		Formats: parseFormats(opts.formats),
		Refresh: opts.refresh,
	})
	if err != nil {
		return err
	}
	doc := res.Document
	prog.done(fmt.Sprintf("Planned %d swaps", doc.Stats.Swaps))

	if err := c.writeArtifacts(res, opts.output); err != nil {
		return err
	}
	printStats(doc.Stats.Slots, doc.Stats.Swaps, doc.Stats.Cycles, res.PlanHit)

	if opts.save {
		store, err := c.newArchive(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close(cmd.Context())
		if err := store.Put(cmd.Context(), doc); err != nil {
			return err
		}
		printSuccess("Saved plan %s", doc.ID)
		printNextStep("Replay it", fmt.Sprintf("%s play %s", appName, doc.ID))
	}
	return nil
}

// writeArtifacts prints or writes the rendered outputs. Without an output
// path the artifacts go to stdout in the requested order; with one, each
// format becomes base.format.
func (c *CLI) writeArtifacts(res *plan.Result, output string) error {
	if output == "" {
		for _, format := range orderedFormats(res) {
			os.Stdout.Write(res.Artifacts[format])
			if !strings.HasSuffix(string(res.Artifacts[format]), "\n") {
				fmt.Println()
			}
		}
		return nil
	}

	// Strip a known format extension so "plan.svg" and "plan" both work
	// as base paths.
	base := output
	if ext := filepath.Ext(output); plan.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(output, ext)
	}
	for _, format := range orderedFormats(res) {
		path := base + "." + format
		if err := os.WriteFile(path, res.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// orderedFormats lists artifact formats in a stable display order: textual
// outputs first, binary ones after.
func orderedFormats(res *plan.Result) []string {
	order := []string{plan.FormatText, plan.FormatJSON, plan.FormatDOT, plan.FormatSVG, plan.FormatPNG}
	var out []string
	for _, f := range order {
		if _, ok := res.Artifacts[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

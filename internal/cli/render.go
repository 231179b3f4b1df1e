package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swaplab/swapplan/pkg/plan"
	"github.com/swaplab/swapplan/pkg/render"
)

const formatPDF = "pdf"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path or base path
	formats string // comma-separated output formats
}

// renderCommand creates the render command for generating diagrams from a
// saved plan.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <plan-file-or-id>",
		Short: "Render diagrams from a saved plan",
		Long: `Render a saved plan as a wire diagram (text), Graphviz source (dot), or an
image (svg, png, pdf). PDF output converts the SVG with rsvg-convert and
requires librsvg to be installed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(opts.formats)
			if err := validateRenderFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], formats, opts.output)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (stdout for text/dot)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): text (default), json, dot, svg, png, pdf (comma-separated)")

	return cmd
}

// validateRenderFormats accepts the runner formats plus pdf.
func validateRenderFormats(formats []string) error {
	for _, f := range formats {
		if f != formatPDF && !plan.ValidFormats[f] {
			return fmt.Errorf("invalid format: %s (must be text, json, dot, svg, png, or pdf)", f)
		}
	}
	return nil
}

func (c *CLI) runRender(cmd *cobra.Command, ref string, formats []string, output string) error {
	logger := loggerFromContext(cmd.Context())

	doc, err := c.loadPlan(cmd.Context(), ref)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded plan %s: %d swaps", doc.ID, doc.Stats.Swaps)

	for _, format := range formats {
		data, err := renderPlan(doc, format)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}

		if output == "" && (format == plan.FormatText || format == plan.FormatDOT || format == plan.FormatJSON) {
			os.Stdout.Write(data)
			continue
		}

		path := outputPath(output, ref, format, len(formats) > 1)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Infof("Generated %s", path)
		printFile(path)
	}
	return nil
}

// renderPlan produces one artifact from a plan document.
func renderPlan(doc *plan.Document, format string) ([]byte, error) {
	switch format {
	case plan.FormatText:
		return []byte(render.Text(doc.Labels, doc.Swaps())), nil
	case plan.FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case plan.FormatDOT:
		return []byte(render.ToDOT(doc.Labels, doc.Swaps())), nil
	case plan.FormatSVG:
		return render.SVG(render.ToDOT(doc.Labels, doc.Swaps()))
	case plan.FormatPNG:
		return render.PNG(render.ToDOT(doc.Labels, doc.Swaps()))
	case formatPDF:
		svg, err := render.SVG(render.ToDOT(doc.Labels, doc.Swaps()))
		if err != nil {
			return nil, err
		}
		return render.PDF(svg)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// outputPath derives the file path for one rendered format. With multiple
// formats the extension is replaced per format; a bare plan ID falls back to
// the ID as base name.
func outputPath(output, ref, format string, multi bool) string {
	base := output
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
	}
	ext := filepath.Ext(base)
	if plan.ValidFormats[strings.TrimPrefix(ext, ".")] || strings.TrimPrefix(ext, ".") == formatPDF {
		base = strings.TrimSuffix(base, ext)
	} else if !multi && output != "" && ext != "" {
		// Respect an explicit unrelated extension for single-format output.
		return output
	}
	return base + "." + format
}

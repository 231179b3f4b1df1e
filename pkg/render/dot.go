package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/swaplab/swapplan/pkg/perm"
)

// ToDOT converts a swap plan to Graphviz DOT format. Slots become nodes
// laid out left to right, and every swap becomes an undirected edge labeled
// with its step number. The resulting DOT string can be rendered with [SVG]
// or [PNG].
func ToDOT(labels []perm.Label, swaps []perm.Swap[perm.Label]) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18, fixedsize=true, width=0.6];\n")
	buf.WriteString("  edge [fontsize=12];\n")
	buf.WriteString("\n")

	for _, l := range labels {
		fmt.Fprintf(&buf, "  %q;\n", l.String())
	}

	buf.WriteString("\n")
	for i, s := range swaps {
		fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n", s.A.String(), s.B.String(), fmt.Sprintf("%d", i+1))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using Graphviz.
func PNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

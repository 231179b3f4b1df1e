package render

import (
	"fmt"
	"strings"

	"github.com/swaplab/swapplan/pkg/perm"
)

// Text draws a wire diagram of the swap sequence. Each slot gets one
// horizontal wire, labeled on the left, and each swap appears as a SWAP
// gate column connecting its two slots:
//
//	0: ──╭SWAP────────┤
//	1: ──│─────╭SWAP──┤
//	2: ──╰SWAP─╰SWAP──┤
//
// Swaps referencing labels not present in labels are drawn as plain wire,
// so Text never fails; validate with the planner first.
func Text(labels []perm.Label, swaps []perm.Swap[perm.Label]) string {
	n := len(labels)
	if n == 0 {
		return ""
	}

	pos := make(map[perm.Label]int, n)
	names := make([]string, n)
	nameWidth := 0
	for i, l := range labels {
		pos[l] = i
		names[i] = l.String()
		if len(names[i]) > nameWidth {
			nameWidth = len(names[i])
		}
	}

	rows := make([]strings.Builder, n)
	for i := range rows {
		fmt.Fprintf(&rows[i], "%*s: ──", nameWidth, names[i])
	}

	const gate = "SWAP"
	for _, s := range swaps {
		a, okA := pos[s.A]
		b, okB := pos[s.B]
		if !okA || !okB || a == b {
			continue
		}
		top, bot := a, b
		if top > bot {
			top, bot = bot, top
		}
		for i := range rows {
			switch {
			case i == top:
				rows[i].WriteString("╭" + gate + "─")
			case i == bot:
				rows[i].WriteString("╰" + gate + "─")
			case i > top && i < bot:
				rows[i].WriteString("│" + strings.Repeat("─", len(gate)+1))
			default:
				rows[i].WriteString(strings.Repeat("─", len(gate)+2))
			}
		}
	}

	var out strings.Builder
	for i := range rows {
		out.WriteString(rows[i].String())
		out.WriteString("─┤\n")
	}
	return out.String()
}

package cli

import (
	"strings"

	"github.com/swaplab/swapplan/pkg/errors"
	"github.com/swaplab/swapplan/pkg/perm"
)

// parseLabels splits a comma-separated label list and parses each token.
// Tokens that read as base-10 integers become integer labels, everything
// else is a string label, so "0,1,2" and "a,b,c" both work and can mix.
func parseLabels(s string) ([]perm.Label, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty label list")
	}

	toks := strings.Split(s, ",")
	for i, tok := range toks {
		toks[i] = strings.TrimSpace(tok)
		if toks[i] == "" {
			return nil, errors.New(errors.ErrCodeInvalidLabel, "empty label at position %d", i)
		}
	}
	return perm.ParseAll(toks), nil
}

// formatLabels renders labels as a comma-separated list for display.
func formatLabels(labels []perm.Label) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l.String()
	}
	return strings.Join(parts, ", ")
}

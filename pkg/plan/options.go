package plan

import (
	"strings"

	"github.com/swaplab/swapplan/pkg/errors"
	"github.com/swaplab/swapplan/pkg/perm"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatText: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// Options describes one planning request. The struct serializes to JSON so
// the HTTP API can accept it directly.
type Options struct {
	Labels  []perm.Label `json:"labels"`
	Target  []perm.Label `json:"target"`
	Subset  bool         `json:"subset,omitempty"`
	Formats []string     `json:"formats,omitempty"`
	Refresh bool         `json:"refresh,omitempty"` // bypass the plan cache
}

// ValidateAndSetDefaults checks request shape and applies defaults.
// Planner preconditions (label existence, duplicates, lengths) are left to
// the planner itself, which reports them with precise codes.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Labels) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "labels are required")
	}
	if len(o.Target) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "target permutation is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	return ValidateFormats(o.Formats)
}

// ValidateFormats checks that every requested format is supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"unknown format %q (supported: %s)", f, strings.Join(formatNames(), ", "))
		}
	}
	return nil
}

func formatNames() []string {
	return []string{FormatText, FormatJSON, FormatDOT, FormatSVG, FormatPNG}
}

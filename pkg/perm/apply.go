package perm

import (
	"slices"

	"github.com/swaplab/swapplan/pkg/errors"
)

// Apply executes a swap sequence against an ordering and returns the result.
//
// The slots are named by the labels of order itself: swap {A, B} exchanges
// the contents of the position where A started and the position where B
// started, regardless of what occupies them at that point in the sequence.
// The input slice is not modified.
//
// Apply returns DUPLICATE_LABEL if order names a slot twice and
// UNKNOWN_LABEL if a swap references a slot that does not exist.
func Apply[L comparable](order []L, swaps []Swap[L]) ([]L, error) {
	slot := make(map[L]int, len(order))
	for i, l := range order {
		if _, dup := slot[l]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateLabel,
				"ordering contains duplicate label %v", l)
		}
		slot[l] = i
	}

	out := slices.Clone(order)
	for _, s := range swaps {
		i, ok := slot[s.A]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownLabel,
				"swap references unknown slot %v", s.A)
		}
		j, ok := slot[s.B]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownLabel,
				"swap references unknown slot %v", s.B)
		}
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Verify reports whether applying swaps to working yields exactly target.
// It returns false with a nil error when the swaps are well-formed but land
// on a different ordering, and a non-nil error when they cannot be applied
// at all.
func Verify[L comparable](target, working []L, swaps []Swap[L]) (bool, error) {
	got, err := Apply(working, swaps)
	if err != nil {
		return false, err
	}
	if len(got) < len(target) {
		return false, nil
	}
	// Subset plans only pin down the leading positions.
	return slices.Equal(got[:len(target)], target), nil
}

package perm

import (
	"slices"

	"github.com/swaplab/swapplan/pkg/errors"
)

// Swap is an unordered pair of slot labels. Applying it exchanges the
// contents of the two named slots.
type Swap[L comparable] struct {
	A L
	B L
}

// Plan computes the swap sequence that reorders working into target.
//
// The target must be a full permutation of working: same length, same label
// set, no duplicates on either side. Applying the returned swaps in order to
// working (see [Apply]) yields exactly target.
//
// Plan validates its inputs before emitting anything:
//   - fewer than 2 working labels: INSUFFICIENT_LABELS
//   - length mismatch between target and working: LENGTH_MISMATCH
//   - duplicate label in either sequence: DUPLICATE_LABEL
//   - target label absent from working: UNKNOWN_LABEL
//
// The input slices are never mutated; planning runs on a private copy.
// For a fixed input pair the output is deterministic.
func Plan[L comparable](target, working []L) ([]Swap[L], error) {
	pos, err := validate(target, working, false)
	if err != nil {
		return nil, err
	}
	return follow(target, working, pos), nil
}

// PlanSubset computes swaps for a partial permutation naming only the first
// len(target) positions of the working set.
//
// Only the named positions are guaranteed to hold their target labels
// afterwards; labels not mentioned by the target end up wherever the swap
// sequence leaves them. Callers that need a guarantee for every slot should
// use [Plan]. Validation matches Plan except that the target may be shorter
// than the working set (it must still name at least one label).
func PlanSubset[L comparable](target, working []L) ([]Swap[L], error) {
	pos, err := validate(target, working, true)
	if err != nil {
		return nil, err
	}
	return follow(target, working, pos), nil
}

// validate checks the planning preconditions and builds the label-to-position
// index for the working ordering. All violations are detected here, before
// any swap is produced.
func validate[L comparable](target, working []L, subset bool) (map[L]int, error) {
	if len(working) < 2 {
		return nil, errors.New(errors.ErrCodeInsufficientLabels,
			"permutations must involve at least 2 labels, got %d", len(working))
	}

	if subset {
		if len(target) == 0 {
			return nil, errors.New(errors.ErrCodeLengthMismatch,
				"subset permutation must name at least one label")
		}
		if len(target) > len(working) {
			return nil, errors.New(errors.ErrCodeLengthMismatch,
				"subset permutation names %d labels but only %d exist", len(target), len(working))
		}
	} else if len(target) != len(working) {
		return nil, errors.New(errors.ErrCodeLengthMismatch,
			"permutation must specify the outcome of all %d labels, got %d", len(working), len(target))
	}

	pos := make(map[L]int, len(working))
	for i, l := range working {
		if _, dup := pos[l]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateLabel,
				"working labels contain duplicate %v", l)
		}
		pos[l] = i
	}

	seen := make(map[L]struct{}, len(target))
	for _, l := range target {
		if _, dup := seen[l]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateLabel,
				"target permutation names label %v twice", l)
		}
		seen[l] = struct{}{}
		if _, ok := pos[l]; !ok {
			return nil, errors.New(errors.ErrCodeUnknownLabel,
				"cannot permute label %v not present in label set", l)
		}
	}

	return pos, nil
}

// follow runs the cycle-following simulation. pos is the label-to-position
// index for working and is consumed as the mutable reverse index.
func follow[L comparable](target, working []L, pos map[L]int) []Swap[L] {
	cur := slices.Clone(working)
	var swaps []Swap[L]

	for i, want := range target {
		if cur[i] == want {
			continue
		}
		j := pos[want]

		// Swaps are identified by slot name: the original labels at
		// positions i and j, not the labels passing through them.
		swaps = append(swaps, Swap[L]{A: working[i], B: working[j]})

		pos[cur[i]], pos[cur[j]] = j, i
		cur[i], cur[j] = cur[j], cur[i]
	}

	return swaps
}

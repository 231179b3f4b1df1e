package perm

// Cycles decomposes the permutation that reorders working into target.
//
// Each cycle is reported as the labels it moves through, starting from the
// lowest working position it touches. Fixed points appear as singleton
// cycles, so the cycles always cover every label exactly once. Validation is
// identical to [Plan].
//
// The swap sequence returned by Plan for the same inputs has exactly
// [MinSwaps] entries: cycles of length one contribute nothing, a cycle of
// length m costs m-1 exchanges.
func Cycles[L comparable](target, working []L) ([][]L, error) {
	pos, err := validate(target, working, false)
	if err != nil {
		return nil, err
	}

	n := len(working)

	// dest[p] is the position the label at working position p must move to.
	dest := make([]int, n)
	for t, l := range target {
		dest[pos[l]] = t
	}

	seen := make([]bool, n)
	var cycles [][]L
	for p := 0; p < n; p++ {
		if seen[p] {
			continue
		}
		var cyc []L
		for q := p; !seen[q]; q = dest[q] {
			seen[q] = true
			cyc = append(cyc, working[q])
		}
		cycles = append(cycles, cyc)
	}
	return cycles, nil
}

// MinSwaps returns the number of exchanges needed to realize a permutation
// with the given cycle decomposition.
func MinSwaps[L comparable](cycles [][]L) int {
	total := 0
	for _, c := range cycles {
		if len(c) > 1 {
			total += len(c) - 1
		}
	}
	return total
}

// FixedPoints counts the labels left untouched by the permutation.
func FixedPoints[L comparable](cycles [][]L) int {
	count := 0
	for _, c := range cycles {
		if len(c) == 1 {
			count++
		}
	}
	return count
}

package perm

import "slices"

// Seq returns the identity ordering [0, 1, ..., n-1].
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n!, the size of the permutation space over n labels.
// For n <= 1, Factorial returns 1. Note that 13! already exceeds 32-bit int.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Permutations returns permutations of [0, 1, ..., n-1] in lexicographic
// order, starting with the identity.
//
// If limit > 0, at most limit permutations are returned; otherwise all n!
// are generated. Each returned slice is a separate allocation. For n >= 13
// the full space exceeds billions of entries, so always pass a limit for
// large n.
func Permutations(n, limit int) [][]int {
	if n <= 0 {
		return [][]int{{}}
	}

	capacity := limit
	if capacity <= 0 || n <= 12 {
		capacity = Factorial(min(n, 12))
	}
	if limit > 0 && capacity > limit {
		capacity = limit
	}

	p := Seq(n)
	result := make([][]int, 0, capacity)
	result = append(result, slices.Clone(p))

	for (limit <= 0 || len(result) < limit) && nextPermutation(p) {
		result = append(result, slices.Clone(p))
	}
	return result
}

// nextPermutation advances p to its lexicographic successor in place.
// It returns false when p is already the last permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}

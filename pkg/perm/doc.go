// Package perm computes minimal swap sequences that realize permutations of
// labeled slots.
//
// The model is a row of slots, each named by a unique label. An ordering
// describes which label occupies each slot position. Given a target ordering,
// [Plan] returns the pairwise exchanges that transform the current ordering
// into the target when applied in sequence.
//
// # Slot semantics
//
// A [Swap] names two slots, not two occupants: applying {A, B} exchanges
// whatever currently sits in the slot named A with whatever sits in the slot
// named B. Slot names are fixed by the working ordering passed to [Plan];
// they never move, only contents do. This matches how downstream executors
// implement a two-slot exchange primitive.
//
// # Algorithm
//
// Plan follows permutation cycles via in-place simulation: it scans target
// positions left to right, and whenever a position holds the wrong label it
// exchanges that slot with the slot currently holding the needed label.
// Positions that are already correct cost zero swaps, so the sequence length
// equals the sum over permutation cycles of (cycle length - 1) and never
// exceeds n-1. A label-to-position index keeps the whole computation O(n).
//
// Labels are any comparable Go type. The [Label] type is provided for
// boundaries where labels must round-trip through JSON while keeping their
// integer-or-string identity.
package perm

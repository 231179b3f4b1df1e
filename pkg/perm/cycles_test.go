package perm

import (
	"slices"
	"testing"

	"github.com/swaplab/swapplan/pkg/errors"
)

func TestCycles(t *testing.T) {
	tests := []struct {
		name    string
		working []int
		target  []int
		want    [][]int
	}{
		{
			name:    "identity",
			working: []int{0, 1, 2},
			target:  []int{0, 1, 2},
			want:    [][]int{{0}, {1}, {2}},
		},
		{
			name:    "single transposition",
			working: []int{0, 1},
			target:  []int{1, 0},
			want:    [][]int{{0, 1}},
		},
		{
			name:    "three cycle with fixed point",
			working: []int{0, 1, 2, 3},
			target:  []int{1, 2, 0, 3},
			// Label 0 must reach position 2, 1 position 0, 2 position 1.
			want: [][]int{{0, 2, 1}, {3}},
		},
		{
			name:    "full five cycle",
			working: []int{0, 1, 2, 3, 4},
			target:  []int{4, 2, 0, 1, 3},
			want:    [][]int{{0, 2, 1, 3, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cycles(tt.target, tt.working)
			if err != nil {
				t.Fatalf("Cycles() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Cycles() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("cycle %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCyclesValidation(t *testing.T) {
	if _, err := Cycles([]int{0}, []int{0}); !errors.Is(err, errors.ErrCodeInsufficientLabels) {
		t.Errorf("code = %v, want INSUFFICIENT_LABELS", errors.GetCode(err))
	}
	if _, err := Cycles([]int{0, 5}, []int{0, 1}); !errors.Is(err, errors.ErrCodeUnknownLabel) {
		t.Errorf("code = %v, want UNKNOWN_LABEL", errors.GetCode(err))
	}
}

func TestMinSwapsAndFixedPoints(t *testing.T) {
	cycles := [][]int{{0, 2, 1}, {3}, {4, 5}}

	if got := MinSwaps(cycles); got != 3 {
		t.Errorf("MinSwaps() = %d, want 3", got)
	}
	if got := FixedPoints(cycles); got != 1 {
		t.Errorf("FixedPoints() = %d, want 1", got)
	}

	if got := MinSwaps[int](nil); got != 0 {
		t.Errorf("MinSwaps(nil) = %d, want 0", got)
	}
}

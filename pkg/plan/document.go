package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/swaplab/swapplan/pkg/perm"
)

// Step is one swap of a plan: exchange the contents of slots A and B.
type Step struct {
	A perm.Label `json:"a"`
	B perm.Label `json:"b"`
}

// Stats summarizes a computed plan.
type Stats struct {
	Slots       int `json:"slots"`
	Swaps       int `json:"swaps"`
	Cycles      int `json:"cycles"`
	FixedPoints int `json:"fixed_points"`
}

// Document is a computed swap plan.
type Document struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Labels    []perm.Label `json:"labels"`
	Target    []perm.Label `json:"target"`
	Subset    bool         `json:"subset,omitempty"`
	Steps     []Step       `json:"swaps"`
	Stats     Stats        `json:"stats"`
}

// New plans the permutation and wraps the result in a document with a fresh
// UUID. Validation errors from the planner pass through unchanged.
func New(labels, target []perm.Label, subset bool) (*Document, error) {
	var (
		swaps []perm.Swap[perm.Label]
		err   error
	)
	if subset {
		swaps, err = perm.PlanSubset(target, labels)
	} else {
		swaps, err = perm.Plan(target, labels)
	}
	if err != nil {
		return nil, err
	}

	// The cycle structure is read off the final simulated ordering, which
	// is well-defined in both modes (in full mode it equals the target).
	final, err := perm.Apply(labels, swaps)
	if err != nil {
		return nil, err
	}
	cycles, err := perm.Cycles(final, labels)
	if err != nil {
		return nil, err
	}

	steps := make([]Step, len(swaps))
	for i, s := range swaps {
		steps[i] = Step{A: s.A, B: s.B}
	}

	return &Document{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Labels:    labels,
		Target:    target,
		Subset:    subset,
		Steps:     steps,
		Stats: Stats{
			Slots:       len(labels),
			Swaps:       len(steps),
			Cycles:      len(cycles),
			FixedPoints: perm.FixedPoints(cycles),
		},
	}, nil
}

// Swaps converts the document's steps back into planner swaps.
func (d *Document) Swaps() []perm.Swap[perm.Label] {
	swaps := make([]perm.Swap[perm.Label], len(d.Steps))
	for i, s := range d.Steps {
		swaps[i] = perm.Swap[perm.Label]{A: s.A, B: s.B}
	}
	return swaps
}

// Final returns the ordering produced by applying the document's swaps to
// its working labels.
func (d *Document) Final() ([]perm.Label, error) {
	return perm.Apply(d.Labels, d.Swaps())
}

package archive

import (
	"context"
	"time"

	"github.com/swaplab/swapplan/pkg/plan"
)

// Summary is a lightweight listing entry for one archived plan.
type Summary struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Slots     int       `json:"slots" bson:"slots"`
	Swaps     int       `json:"swaps" bson:"swaps"`
	Subset    bool      `json:"subset,omitempty" bson:"subset,omitempty"`
}

// Store is the interface for plan archives.
type Store interface {
	// Put stores a document under its ID, replacing any previous version.
	Put(ctx context.Context, doc *plan.Document) error

	// Get retrieves a document by ID. A missing document is reported with
	// a PLAN_NOT_FOUND error code.
	Get(ctx context.Context, id string) (*plan.Document, error)

	// List returns summaries of all archived plans, newest first.
	List(ctx context.Context) ([]Summary, error)

	// Delete removes a document. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

func summarize(doc *plan.Document) Summary {
	return Summary{
		ID:        doc.ID,
		CreatedAt: doc.CreatedAt,
		Slots:     doc.Stats.Slots,
		Swaps:     doc.Stats.Swaps,
		Subset:    doc.Subset,
	}
}

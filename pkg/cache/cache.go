// Package cache provides plan and artifact caching for swapplan.
//
// Planning is deterministic, so cache keys are content-addressed: the same
// labels, target and mode always map to the same key. Three backends are
// provided: a file cache for CLI use, a Redis cache for shared deployments,
// and a null cache that disables caching entirely.
package cache

import (
	"context"
	"time"

	"github.com/swaplab/swapplan/pkg/perm"
)

// DefaultTTL is the default lifetime for cache entries. Plan keys are
// content-addressed and never go stale, so entries live long and the TTL
// mostly bounds disk usage.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys for the planning pipeline.
type Keyer interface {
	// PlanKey identifies a planning request: labels, target and mode.
	PlanKey(labels, target []perm.Label, subset bool) string

	// ArtifactKey identifies a rendered artifact of a plan.
	ArtifactKey(planHash, format string) string
}

// DefaultKeyer hashes request content into stable keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PlanKey implements Keyer. Integer and string labels hash differently
// because they serialize differently.
func (k *DefaultKeyer) PlanKey(labels, target []perm.Label, subset bool) string {
	return hashKey("plan", labels, target, subset)
}

// ArtifactKey implements Keyer.
func (k *DefaultKeyer) ArtifactKey(planHash, format string) string {
	return hashKey("artifact", planHash, format)
}

package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/swaplab/swapplan/pkg/cache"
	"github.com/swaplab/swapplan/pkg/render"
)

// Runner computes plan documents with caching.
//
// The Runner is stateless except for the cache and logger; it holds no
// pipeline results. Multiple goroutines can safely share one Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Result holds a computed document, its rendered artifacts, and cache
// information.
type Result struct {
	Document  *Document
	Artifacts map[string][]byte
	PlanHit   bool
}

// Execute plans the permutation and renders the requested formats.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	doc, hit, err := r.PlanWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Document:  doc,
		Artifacts: make(map[string][]byte),
		PlanHit:   hit,
	}

	renderStart := time.Now()
	for _, format := range opts.Formats {
		data, err := r.renderFormat(ctx, doc, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
	}
	r.Logger.Debug("rendered artifacts",
		"formats", opts.Formats,
		"duration", time.Since(renderStart).Round(time.Millisecond))

	return result, nil
}

// PlanWithCacheInfo computes the plan document, consulting the cache first
// unless a refresh was requested. The boolean reports a cache hit.
func (r *Runner) PlanWithCacheInfo(ctx context.Context, opts Options) (*Document, bool, error) {
	key := r.Keyer.PlanKey(opts.Labels, opts.Target, opts.Subset)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var doc Document
			if err := json.Unmarshal(data, &doc); err == nil {
				r.Logger.Debug("plan cache hit", "id", doc.ID)
				return &doc, true, nil
			}
		}
	}

	start := time.Now()
	doc, err := New(opts.Labels, opts.Target, opts.Subset)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Info("planned swaps",
		"slots", doc.Stats.Slots,
		"swaps", doc.Stats.Swaps,
		"cycles", doc.Stats.Cycles,
		"duration", time.Since(start).Round(time.Millisecond))

	if data, err := json.Marshal(doc); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			r.Logger.Warn("plan cache write failed", "err", err)
		}
	}

	return doc, false, nil
}

// renderFormat produces one artifact. Graphviz-backed formats are cached
// because rendering them is far more expensive than planning.
func (r *Runner) renderFormat(ctx context.Context, doc *Document, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatText:
		return []byte(render.Text(doc.Labels, doc.Swaps())), nil
	case FormatDOT:
		return []byte(render.ToDOT(doc.Labels, doc.Swaps())), nil
	case FormatSVG, FormatPNG:
		return r.renderGraphviz(ctx, doc, format)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func (r *Runner) renderGraphviz(ctx context.Context, doc *Document, format string) ([]byte, error) {
	planData, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	key := r.Keyer.ArtifactKey(cache.Hash(planData), format)

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		r.Logger.Debug("artifact cache hit", "format", format)
		return data, nil
	}

	dot := render.ToDOT(doc.Labels, doc.Swaps())

	var data []byte
	switch format {
	case FormatSVG:
		data, err = render.SVG(dot)
	case FormatPNG:
		data, err = render.PNG(dot)
	}
	if err != nil {
		return nil, err
	}

	if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		r.Logger.Warn("artifact cache write failed", "err", err)
	}
	return data, nil
}

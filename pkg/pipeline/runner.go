package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/schematic/pkg/cache"
	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/netlist"
	"github.com/matzehuels/schematic/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Every CLI command uses it so that cache keys stay in one place.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
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
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		NetlistHash: cache.Hash(opts.Netlist),
		Artifacts:   make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	n, err := Parse(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Netlist = n
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.ElementCount = n.Len()
	result.Stats.Warnings = len(n.Warnings())

	r.Logger.Info("parsed netlist",
		"source", opts.Source,
		"elements", n.Len(),
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	p, layoutHit, err := r.LayoutWithCacheInfo(ctx, n, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Placement = p
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.NodeCount = len(p.Nodes)
	result.Stats.WireCount = len(p.Wires)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed placement",
		"nodes", len(p.Nodes),
		"wires", len(p.Wires),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, p, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo solves the placement of n with caching and reports
// whether the result came from the cache. The cache key is derived from the
// netlist text, so n must have been parsed from opts.Netlist.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, n *netlist.Netlist, opts Options) (graph.Placement, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Placement{}, false, err
	}

	// The key covers the raw text, so a cached placement reflects the same
	// duplicate-name resolution as a fresh one.
	cacheKey := r.Keyer.PlacementKey(cache.Hash(opts.Netlist), opts.PlacementKeyOpts())
	hooks := observability.Cache()

	if !opts.Refresh && opts.Netlist != nil {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := graph.Unmarshal(data, graph.FormatJSON)
			if err == nil {
				hooks.OnCacheHit(ctx, "placement")
				return cached, true, nil
			}
			r.Logger.Debug("discarding unreadable cached placement", "error", err)
		} else if err != nil {
			r.Logger.Debug("cache read failed", "error", err)
		}
		hooks.OnCacheMiss(ctx, "placement")
	}

	p, err := GenerateLayout(ctx, n, opts)
	if err != nil {
		return graph.Placement{}, false, err
	}

	if opts.Netlist != nil {
		if data, err := graph.Marshal(p, graph.FormatJSON); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLPlacement); err != nil {
				r.Logger.Debug("cache write failed", "error", err)
			} else {
				hooks.OnCacheSet(ctx, "placement", len(data))
			}
		}
	}

	return p, false, nil
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, n *netlist.Netlist, opts Options) (graph.Placement, error) {
	p, _, err := r.LayoutWithCacheInfo(ctx, n, opts)
	return p, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p graph.Placement, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	// Compute cache key from placement data
	placementData, err := graph.Marshal(p, graph.FormatJSON)
	if err != nil {
		return nil, false, fmt.Errorf("serialize placement for cache key: %w", err)
	}
	placementHash := cache.Hash(placementData)
	hooks := observability.Cache()

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(placementHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
	} else {
		allCached = false
	}

	if allCached && len(artifacts) > 0 {
		hooks.OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	hooks.OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered, err := RenderFromPlacement(ctx, p, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(placementHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			hooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, p graph.Placement, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, p, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

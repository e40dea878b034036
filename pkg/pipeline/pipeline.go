// Package pipeline provides the parse → layout → render pipeline.
//
// This package implements the complete pipeline used by every CLI command.
// By centralizing this logic, caching, hooks and logging behave the same no
// matter which command drives them.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read the netlist text into a [netlist.Netlist]
//  2. Layout: Solve the placement and convert it to a [graph.Placement]
//  3. Render: Generate output in various formats (TikZ, SVG, DOT, PDF, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:  "amp.sch",
//	    Netlist: data,
//	    Formats: []string{"tikz"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tikz := result.Artifacts["tikz"]
//
// Run individual stages:
//
//	n, err := pipeline.Parse(ctx, opts)
//	p, hit, err := runner.LayoutWithCacheInfo(ctx, opts)
//	artifacts, err := runner.Render(ctx, p, opts)
//
// [netlist.Netlist]: github.com/matzehuels/schematic/pkg/netlist#Netlist
// [graph.Placement]: github.com/matzehuels/schematic/pkg/graph#Placement
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/schematic/pkg/cache"
	"github.com/matzehuels/schematic/pkg/errors"
	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/layout"
	"github.com/matzehuels/schematic/pkg/netlist"
	"github.com/matzehuels/schematic/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI
// =============================================================================

const (
	// DefaultFormat is the default output format.
	DefaultFormat = render.FormatTikZ

	// DefaultEngine is the default SVG engine.
	DefaultEngine = render.EngineNative

	// DefaultPNGScale is the default rsvg-convert zoom for PNG output.
	DefaultPNGScale = 2.0
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Parse options
	Source  string `json:"source,omitempty"` // Name shown in logs and errors
	Netlist []byte `json:"-"`
	Strict  bool   `json:"strict,omitempty"` // Reject duplicate element names

	// Layout options
	Scale   float64 `json:"scale,omitempty"`
	Refresh bool    `json:"refresh,omitempty"` // Ignore cached placements

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Engine      string   `json:"engine,omitempty"` // SVG engine for svg, pdf and png
	DrawLabels  bool     `json:"draw_labels,omitempty"`
	DrawNodes   bool     `json:"draw_nodes,omitempty"`
	LabelNodes  bool     `json:"label_nodes,omitempty"`
	PictureArgs string   `json:"picture_args,omitempty"`
	PNGScale    float64  `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Netlist is the parsed netlist.
	Netlist *netlist.Netlist

	// NetlistHash is the content hash of the netlist text.
	NetlistHash string

	// Placement is the solved placement.
	Placement graph.Placement

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	NodeCount    int
	WireCount    int
	Warnings     int
	ParseTime    time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the placement came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := render.ValidateFormat(f); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid format")
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.Netlist == nil {
		return errors.New(errors.ErrCodeInvalidInput, "netlist is required")
	}
	if o.Source == "" {
		o.Source = "<stdin>"
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	if o.Scale == 0 {
		o.Scale = layout.DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return errors.ValidateScale(o.Scale)
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := render.ValidateEngine(o.Engine); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid engine")
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// NetlistOptions returns the netlist builder options.
func (o *Options) NetlistOptions() []netlist.Option {
	policy := netlist.DuplicateReplace
	if o.Strict {
		policy = netlist.DuplicateReject
	}
	opts := []netlist.Option{netlist.WithDuplicatePolicy(policy)}
	if o.Logger != nil {
		opts = append(opts, netlist.WithLogger(o.Logger))
	}
	return opts
}

// RenderOptions returns the shared renderer options.
func (o *Options) RenderOptions() render.Options {
	return render.Options{
		DrawLabels:  o.DrawLabels,
		DrawNodes:   o.DrawNodes,
		LabelNodes:  o.LabelNodes,
		PictureArgs: o.PictureArgs,
	}
}

// PlacementKeyOpts returns cache key options for layout computation.
func (o *Options) PlacementKeyOpts() cache.PlacementKeyOpts {
	return cache.PlacementKeyOpts{
		Scale:  o.Scale,
		Strict: o.Strict,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:      format,
		DrawLabels:  o.DrawLabels,
		DrawNodes:   o.DrawNodes,
		LabelNodes:  o.LabelNodes,
		PictureArgs: o.PictureArgs,
	}
	switch format {
	case render.FormatSVG, render.FormatPDF, render.FormatPNG:
		opts.Engine = o.Engine
	}
	if format == render.FormatPNG {
		opts.PNGScale = o.PNGScale
	}
	return opts
}

// String describes the options for debug logging.
func (o *Options) String() string {
	return fmt.Sprintf("source=%s scale=%g formats=%v engine=%s", o.Source, o.Scale, o.Formats, o.Engine)
}

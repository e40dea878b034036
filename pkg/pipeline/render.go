package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/observability"
	"github.com/matzehuels/schematic/pkg/render"
	"github.com/matzehuels/schematic/pkg/render/dot"
	"github.com/matzehuels/schematic/pkg/render/svg"
	"github.com/matzehuels/schematic/pkg/render/tikz"
)

// RenderFromPlacement renders a placement to every format in opts.Formats.
// SVG is produced once and shared by the pdf and png conversions.
func RenderFromPlacement(ctx context.Context, p graph.Placement, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var svgData []byte

	for _, format := range opts.Formats {
		if _, done := artifacts[format]; done {
			continue
		}
		data, err := renderFormat(ctx, p, format, opts, &svgData)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, p graph.Placement, format string, opts Options, svgData *[]byte) (data []byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	ctx, end := observability.StartSpan(ctx, "pipeline.render",
		attribute.String("render.format", format),
		attribute.String("render.engine", opts.Engine))
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		end(err)
	}()

	ropts := opts.RenderOptions()
	switch format {
	case render.FormatTikZ:
		return tikz.Render(p, ropts), nil
	case render.FormatDOT:
		return []byte(dot.ToDOT(p, dot.Options{Options: ropts})), nil
	case render.FormatSVG:
		return renderSVG(ctx, p, opts, svgData)
	case render.FormatPDF:
		doc, err := renderSVG(ctx, p, opts, svgData)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, doc)
	case render.FormatPNG:
		doc, err := renderSVG(ctx, p, opts, svgData)
		if err != nil {
			return nil, err
		}
		return render.ToPNG(ctx, doc, opts.PNGScale)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// renderSVG returns the SVG drawing, rendering it on first use.
func renderSVG(ctx context.Context, p graph.Placement, opts Options, memo *[]byte) ([]byte, error) {
	if *memo != nil {
		return *memo, nil
	}
	var (
		doc []byte
		err error
	)
	switch opts.Engine {
	case render.EngineGraphviz:
		doc, err = dot.RenderSVG(ctx, dot.ToDOT(p, dot.Options{Options: opts.RenderOptions()}))
	default:
		doc = svg.Render(p, opts.RenderOptions())
	}
	if err != nil {
		return nil, err
	}
	*memo = doc
	return doc, nil
}

// SortedFormats returns the formats of an artifact map in render order.
func SortedFormats(artifacts map[string][]byte) []string {
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	slices.SortFunc(formats, func(a, b string) int {
		return slices.Index(render.Formats, a) - slices.Index(render.Formats, b)
	})
	return formats
}

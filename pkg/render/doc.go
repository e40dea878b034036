// Package render provides drawing backends for solved placements.
//
// # Overview
//
// Renderers are read-only consumers of a [graph.Placement]; none of them
// moves a node. This package holds what they share:
//
//   - [Options]: label and node-marker switches
//   - Generic format conversion (SVG to PDF/PNG)
//
// The backends live in subpackages:
//
//   - [tikz]: circuitikz picture for LaTeX documents
//   - [svg]: standalone SVG drawn natively
//   - [dot]: Graphviz DOT with pinned positions, rendered by go-graphviz
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := svg.Render(placement, render.DefaultOptions())
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [graph.Placement]: github.com/matzehuels/schematic/pkg/graph#Placement
// [tikz]: github.com/matzehuels/schematic/pkg/render/tikz
// [svg]: github.com/matzehuels/schematic/pkg/render/svg
// [dot]: github.com/matzehuels/schematic/pkg/render/dot
package render

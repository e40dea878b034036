package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/pipeline"
	"github.com/matzehuels/schematic/pkg/render"
)

// renderFlags holds the command-line flags for the render command. Flags
// left unset keep the configured value.
type renderFlags struct {
	output      string  // output file (single format) or base path; "-" for stdout
	formats     string  // comma-separated output formats
	engine      string  // SVG engine: native or graphviz
	scale       float64 // placement scale
	labels      bool    // draw element labels
	nodes       bool    // draw node dots
	nodeLabels  bool    // label primary nodes
	pictureArgs string  // tikzpicture options
	pngScale    float64 // rsvg-convert zoom
}

// renderCommand creates the render command for drawing a netlist or placement.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [netlist | placement.json]",
		Short: "Draw a netlist or a saved placement",
		Long: `Draw a netlist or a saved placement.

The input is a netlist (use - for stdin) or a placement written by 'layout'
(.json, .yaml or .yml). Output formats are tikz (circuitikz markup), svg, dot,
pdf and png; pdf and png are converted from SVG with rsvg-convert.

With a single format, -o names the output file and "-o -" writes to stdout.
With several formats, -o is the base path and each format adds its extension.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeInputFile(slices.Concat(netlistExtensions, placementExtensions)...),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			flags.apply(cmd, &opts)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts, flags.output)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): tikz, svg, dot, pdf, png (comma-separated, default from config)")
	cmd.Flags().StringVar(&flags.engine, "engine", "", "SVG engine: native, graphviz (default from config)")
	cmd.Flags().Float64Var(&flags.scale, "scale", 0, "distance between terminals one size unit apart")
	cmd.Flags().BoolVar(&flags.labels, "labels", true, "draw element labels")
	cmd.Flags().BoolVar(&flags.nodes, "nodes", true, "draw dots on primary nodes")
	cmd.Flags().BoolVar(&flags.nodeLabels, "node-labels", true, "label primary nodes")
	cmd.Flags().StringVar(&flags.pictureArgs, "picture-args", "", "options for the tikzpicture environment")
	cmd.Flags().Float64Var(&flags.pngScale, "png-scale", pipeline.DefaultPNGScale, "zoom factor for png output")

	return cmd
}

// apply overrides configured options with the flags the user set.
func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	changed := cmd.Flags().Changed
	if formats := parseFormats(f.formats); len(formats) > 0 {
		opts.Formats = formats
	}
	if changed("engine") {
		opts.Engine = f.engine
	}
	if changed("scale") {
		opts.Scale = f.scale
	}
	if changed("labels") {
		opts.DrawLabels = f.labels
	}
	if changed("nodes") {
		opts.DrawNodes = f.nodes
	}
	if changed("node-labels") {
		opts.LabelNodes = f.nodeLabels
	}
	if changed("picture-args") {
		opts.PictureArgs = f.pictureArgs
	}
	opts.PNGScale = f.pngScale
}

// isPlacementFile reports whether path names a saved placement rather than
// a netlist.
func isPlacementFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// runRender draws the input and writes one file per format.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts pipeline.Options, output string) error {
	ctx := cmd.Context()
	runner, err := c.newRunner(ctx)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var (
		p         graph.Placement
		stats     pipeline.Stats
		layoutHit bool
		spinner   = newSpinnerWithContext(ctx, "")
	)
	if isPlacementFile(input) {
		if p, err = graph.ReadFile(input); err != nil {
			return fmt.Errorf("load placement %s: %w", input, err)
		}
		stats.ElementCount = len(p.Elements)
		stats.NodeCount = len(p.Nodes)
		stats.WireCount = len(p.Wires)
		layoutHit = true
	} else {
		data, source, err := readInput(cmd, input)
		if err != nil {
			return fmt.Errorf("read netlist: %w", err)
		}
		opts.Source = source
		opts.Netlist = data

		result, err := c.solve(ctx, runner, opts, spinner)
		if err != nil {
			spinner.StopWithError("Layout failed")
			return err
		}
		p, stats, layoutHit = result.Placement, result.Stats, result.CacheInfo.LayoutHit
	}

	spinner.Update(fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	artifacts, renderHit, err := runner.RenderWithCacheInfo(ctx, p, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		stats:     stats,
		cacheHit:  layoutHit && renderHit,
	})
}

// solve parses and lays out a netlist, printing duplicate-name warnings. A
// non-nil spinner is started once the netlist parses.
func (c *CLI) solve(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, spinner *Spinner) (*pipeline.Result, error) {
	n, err := pipeline.Parse(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", opts.Source, err)
	}
	for _, w := range n.Warnings() {
		printWarning("%v", w)
	}
	if spinner != nil {
		spinner.Update(fmt.Sprintf("Solving placement of %d elements...", n.Len()))
		spinner.Start()
	}

	p, hit, err := runner.LayoutWithCacheInfo(ctx, n, opts)
	if err != nil {
		return nil, fmt.Errorf("compute layout: %w", err)
	}
	return &pipeline.Result{
		Netlist:   n,
		Placement: p,
		Stats: pipeline.Stats{
			ElementCount: n.Len(),
			NodeCount:    len(p.Nodes),
			WireCount:    len(p.Wires),
			Warnings:     len(n.Warnings()),
		},
		CacheInfo: pipeline.CacheInfo{LayoutHit: hit},
	}, nil
}

// =============================================================================
// Output
// =============================================================================

// extensions maps formats to file extensions.
var extensions = map[string]string{
	render.FormatTikZ: ".tex",
	render.FormatSVG:  ".svg",
	render.FormatDOT:  ".dot",
	render.FormatPDF:  ".pdf",
	render.FormatPNG:  ".png",
}

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	stats     pipeline.Stats
	cacheHit  bool
}

// writeArtifacts writes each rendered format and prints a summary.
func writeArtifacts(p artifactWriteParams) error {
	if p.output == "-" {
		if len(p.formats) != 1 {
			return fmt.Errorf("stdout output needs exactly one format, got %d", len(p.formats))
		}
		_, err := os.Stdout.Write(p.artifacts[p.formats[0]])
		return err
	}

	paths := outputPaths(p.formats, p.input, p.output)
	for _, format := range pipeline.SortedFormats(p.artifacts) {
		path := paths[format]
		if err := os.WriteFile(path, p.artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	printSuccess("Render complete")
	for _, format := range pipeline.SortedFormats(p.artifacts) {
		printFile(paths[format])
	}
	printStats(p.stats.ElementCount, p.stats.NodeCount, p.stats.WireCount, p.cacheHit)
	return nil
}

// outputPaths returns the file written for each format. A single format
// with an explicit output uses it verbatim; otherwise the output (or the
// input without its extension) is a base path.
func outputPaths(formats []string, input, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	for _, f := range formats {
		paths[f] = basePath(output, input) + extensions[f]
	}
	return paths
}

// basePath returns the path outputs are derived from.
func basePath(output, input string) string {
	if output != "" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	if input == "-" {
		return appName
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return strings.TrimSuffix(base, ".layout")
}

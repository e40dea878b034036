package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/pipeline"
)

// layoutCommand creates the layout command for solving a netlist.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		scale  float64
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "layout [netlist]",
		Short: "Compute terminal coordinates for a netlist",
		Long: `Compute terminal coordinates for a netlist.

The layout command reads a netlist (use - for stdin), places every terminal
and writes the placement to <input>.layout.json. Use an output path ending in
.yaml or .yml for YAML. The placement can be drawn later with 'render'.

Results are cached locally for faster subsequent runs.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeInputFile(netlistExtensions...),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, source, err := readInput(cmd, args[0])
			if err != nil {
				return fmt.Errorf("read netlist: %w", err)
			}
			opts := c.pipelineOptions()
			opts.Source = source
			opts.Netlist = data
			if cmd.Flags().Changed("scale") {
				opts.Scale = scale
			}
			return c.runLayout(cmd.Context(), opts, layoutOutputPath(args[0], output), quiet)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().Float64Var(&scale, "scale", 0, "distance between terminals one size unit apart (default from config)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the coordinate table")

	return cmd
}

// runLayout solves the netlist and writes the placement.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, outputPath string, quiet bool) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	n, err := pipeline.Parse(ctx, opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", opts.Source, err)
	}
	for _, w := range n.Warnings() {
		printWarning("%v", w)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving placement of %d elements...", n.Len()))
	spinner.Start()

	p, cacheHit, err := runner.LayoutWithCacheInfo(ctx, n, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := graph.WriteFile(p, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(p.Elements), len(p.Nodes), len(p.Wires), cacheHit)
	if !quiet {
		fmt.Println(coordinateTable(p))
	}
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}

// layoutOutputPath returns the placement file written for input.
func layoutOutputPath(input, output string) string {
	if output != "" {
		return output
	}
	if input == "-" {
		return "schematic.layout.json"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
}

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/schematic/pkg/errors"
	"github.com/matzehuels/schematic/pkg/layout"
	"github.com/matzehuels/schematic/pkg/netlist"
	"github.com/matzehuels/schematic/pkg/pipeline"
)

// checkCommand creates the check command for validating a netlist.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [netlist]",
		Short: "Validate a netlist without writing output",
		Long: `Validate a netlist without writing output.

The check command parses the netlist, solves both axes independently and
reports conflicts, inconsistent directions and duplicate names. For each axis
it prints the number of collective nodes, the critical length and how many
nodes have slack. It exits non-zero when either axis cannot be solved.`,
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
			return c.runCheck(cmd.Context(), opts)
		},
	}
}

// axisReport summarises one solved axis.
type axisReport struct {
	Axis      string
	Nodes     int     // Collective nodes
	Length    float64 // Critical length, unscaled
	WithSlack int     // Collective nodes off the critical path
	Err       error
}

// checkAxes solves each axis independently so that both are reported even
// when one fails.
func checkAxes(n *netlist.Netlist) []axisReport {
	elements := n.Elements()
	var reports []axisReport
	for _, axis := range []layout.Axis{layout.XAxis, layout.YAxis} {
		r := axisReport{Axis: axis.Name}
		s, err := layout.SolveAxis(axis, elements)
		if err != nil {
			r.Err = err
		} else {
			r.Nodes = s.Partition.Len()
			r.Length = s.Length()
			for c := 1; c <= r.Nodes; c++ {
				if s.Slack(c) > 0 {
					r.WithSlack++
				}
			}
		}
		reports = append(reports, r)
	}
	return reports
}

func (c *CLI) runCheck(ctx context.Context, opts pipeline.Options) error {
	prog := newProgress(c.Logger)

	n, err := pipeline.Parse(ctx, opts)
	if err != nil {
		var malformed *errors.MalformedElementError
		if stderrors.As(err, &malformed) {
			printError("Malformed element %q: %s", malformed.Line, malformed.Reason)
		}
		return fmt.Errorf("parse %s: %w", opts.Source, err)
	}

	printInfo("%s", StyleTitle.Render(opts.Source))
	printKeyValue("elements", strconv.Itoa(n.Len()))
	printKeyValue("terminals", strconv.Itoa(len(n.Nodes())))
	printKeyValue("wires", strconv.Itoa(len(netlist.InferWires(n))))
	for _, w := range n.Warnings() {
		printWarning("%v", w)
	}

	failed := 0
	for _, r := range checkAxes(n) {
		if r.Err != nil {
			failed++
			printError("%s axis: %s", r.Axis, describeLayoutError(r.Err))
			continue
		}
		printSuccess("%s axis: %d nodes, length %s, %d with slack",
			r.Axis, r.Nodes, formatCoord(r.Length), r.WithSlack)
	}

	prog.done(fmt.Sprintf("Checked %d elements", n.Len()))
	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s: %d of 2 axes failed", opts.Source, failed)
	}
	return nil
}

// describeLayoutError renders a layout error for the user.
func describeLayoutError(err error) string {
	var (
		conflict     *errors.ConflictError
		inconsistent *errors.InconsistentLayoutError
	)
	switch {
	case stderrors.As(err, &conflict):
		return fmt.Sprintf("element %s joins %s and %s, which are already placed apart",
			conflict.Element, conflict.Nodes[0], conflict.Nodes[1])
	case stderrors.As(err, &inconsistent):
		return fmt.Sprintf("directions form a cycle through %v", inconsistent.Nodes)
	}
	return err.Error()
}

package pipeline

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/layout"
	"github.com/matzehuels/schematic/pkg/netlist"
	"github.com/matzehuels/schematic/pkg/observability"
)

// GenerateLayout solves the placement of a netlist and converts it into the
// serialisable form consumed by renderers. Layout failures return no
// placement.
func GenerateLayout(ctx context.Context, n *netlist.Netlist, opts Options) (graph.Placement, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Placement{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, n.Len())
	ctx, end := observability.StartSpan(ctx, "pipeline.layout",
		attribute.Int("netlist.elements", n.Len()),
		attribute.Float64("layout.scale", opts.Scale))

	start := time.Now()
	solved, err := layout.Solve(n, layout.Options{Scale: opts.Scale})
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, time.Since(start), err)
		end(err)
		return graph.Placement{}, err
	}
	p := graph.FromLayout(solved)
	hooks.OnLayoutComplete(ctx, len(p.Nodes), time.Since(start), nil)
	end(nil)

	opts.Logger.Debug("solved placement",
		"nodes", len(p.Nodes),
		"wires", len(p.Wires),
		"width", p.Width,
		"height", p.Height)
	return p, nil
}

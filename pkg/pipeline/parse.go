package pipeline

import (
	"bytes"
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/matzehuels/schematic/pkg/netlist"
	"github.com/matzehuels/schematic/pkg/observability"
)

// Parse reads the netlist text in opts.Netlist.
//
// Duplicate element names are logged and replace the earlier element unless
// opts.Strict is set, in which case the first duplicate fails the parse.
func Parse(ctx context.Context, opts Options) (*netlist.Netlist, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.Source)
	ctx, end := observability.StartSpan(ctx, "pipeline.parse",
		attribute.String("netlist.source", opts.Source),
		attribute.Int("netlist.bytes", len(opts.Netlist)))

	start := time.Now()
	n, err := netlist.Read(bytes.NewReader(opts.Netlist), opts.NetlistOptions()...)
	count := 0
	if n != nil {
		count = n.Len()
	}
	hooks.OnParseComplete(ctx, opts.Source, count, time.Since(start), err)
	end(err)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Package pkg provides the core libraries for schematic placement.
//
// # Overview
//
// Schematic turns a netlist of two-terminal circuit elements (resistors,
// capacitors, sources, ports, wires) into 2-D coordinates for every terminal,
// then draws the result. Each element names its two terminals, a compass
// direction and a minimum size; the placement keeps every element at least
// that long along its axis, centres elements that have slack and joins the
// aliases of one net (3, 3_1, 3.2) with inferred wires.
//
// # Architecture
//
// The typical data flow:
//
//	netlist text
//	     ↓
//	[netlist] package (parse elements, collect nodes and nets)
//	     ↓
//	[layout] package (unify axes, longest paths, centring)
//	     ↓
//	[graph] package (serialisable placement: JSON / YAML)
//	     ↓
//	[render] packages (circuitikz, SVG, Graphviz DOT, PDF, PNG)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/schematic/pkg/graph"
//	    "github.com/matzehuels/schematic/pkg/layout"
//	    "github.com/matzehuels/schematic/pkg/netlist"
//	    "github.com/matzehuels/schematic/pkg/render"
//	    "github.com/matzehuels/schematic/pkg/render/tikz"
//	)
//
//	n, _ := netlist.ReadFile("divider.sch")
//	p, err := layout.Solve(n, layout.Options{Scale: 2})
//	if err != nil {
//	    // *errors.ConflictError or *errors.InconsistentLayoutError
//	}
//	tex := tikz.Render(graph.FromLayout(p), render.DefaultOptions())
//
// # Main Packages
//
// [netlist] - Element model, netlist text parser and wire inference.
//
// [layout] - The placement engine: axis unifier, directed graph builder,
// longest-path scheduler and position synthesizer.
//
// [errors] - Coded errors and the typed layout errors (malformed element,
// conflict, inconsistent layout, duplicate name).
//
// [graph] - The placement contract consumed by renderers and the cache.
//
// [render] - Output formats: [render/tikz], [render/svg] and [render/dot],
// plus PDF/PNG conversion.
//
// ## Infrastructure
//
// [pipeline] - The parse → layout → render pipeline used by the CLI, with
// caching and hooks.
//
// [cache] - Placement and artifact cache with file, Redis and null backends.
//
// [config] - TOML configuration file.
//
// [observability] - Pipeline and cache hooks with OpenTelemetry tracing.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layout/...             # Specific package
//	go test -run Example                 # Examples only
//	SCHEMATIC_TEST_REDIS=localhost:6379 go test ./pkg/cache/...
//
// [netlist]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/netlist
// [layout]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/layout
// [errors]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/errors
// [graph]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/render
// [render/tikz]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/render/tikz
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/render/svg
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/render/dot
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/schematic/pkg/observability
package pkg

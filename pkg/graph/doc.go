// Package graph provides the serialization types for schematic placements.
//
// This package defines the canonical wire format between the layout engine
// and everything downstream of it: renderers, the placement cache, and the
// JSON/YAML files written by `schematic layout`.
//
// # Architecture
//
// The package sits at the serialization boundary:
//
//   - pkg/layout.Placement: internal result of a layout pass
//   - [Placement]: serialization type (this package)
//   - pkg/render/...: read-only consumers of [Placement]
//
// Use [FromLayout] to convert a layout result.
//
// # Core Types
//
//   - [Placement]: positioned nodes, elements and inferred wires
//   - [Node]: a terminal with its coordinates and marker flags
//   - [Element]: an element with its endpoints and render hints
//
// # Constants
//
// This package is the single source of truth for drawing symbols:
//
//	graph.Symbol(netlist.VoltageSourceAC) // "sV"
//	graph.SymbolOpen                      // "open" (ports)
//	graph.SymbolShort                     // "short" (wires)
//
// # Serialization
//
// Placements are written as indented JSON or YAML:
//
//	{
//	  "version": 1,
//	  "scale": 2,
//	  "width": 4,
//	  "height": 2,
//	  "nodes": [{"name": "1", "x": 0, "y": 2, "primary": true}],
//	  "elements": [{"name": "R1", "kind": "resistor", "symbol": "R", ...}]
//	}
//
// Common operations:
//
//	p := graph.FromLayout(placement)
//	graph.WriteFile(p, "out.json")          // format from the extension
//	data, _ := graph.Marshal(p, graph.FormatYAML)
//	p, _ = graph.ReadFile("out.yaml")
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph

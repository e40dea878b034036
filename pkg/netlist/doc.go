// Package netlist provides the entity model of a schematic: elements,
// terminals (nodes) and nets.
//
// # Overview
//
// A schematic is an ordered list of two-terminal [Element] values. Each
// element names two terminals, a compass [Direction] and a minimum size.
// Terminals are created lazily as [Node] values the first time an element
// references them. Terminal identifiers with a suffix after '_' (for example
// "0_1") are aliases of the net named by their prefix ("0"); aliases of one
// net are joined by wires produced with [InferWires].
//
// # Basic Usage
//
// Build a netlist line by line:
//
//	nl := netlist.New()
//	nl.Add("V1 1 0; down")
//	nl.Add("R1 1 2; right")
//	nl.Add("C1 2 0_2; down")
//	nl.Add("W 0 0_2; right")
//
// or read a whole file with [ReadFile]. Lines starting with '#' or '%' are
// comments.
//
// # Line Format
//
// Each line has the form
//
//	Name N1 N2 [args...] [; option, option, key=value]
//
// Name starts with a kind prefix from [ParseKind] (R, C, L, V, I, Vac, Vdc,
// Iac, Idc, TF, P, port, W, wire) followed by an optional identifier. A bare
// prefix (for example "W") gets an anonymous identifier "#n" from the
// netlist's [Counter]. Options are split by [ParseOptions].
//
// # Ordering
//
// Element order, terminal discovery order and net alias order are all
// insertion order. The placement engine depends on this to be a pure,
// deterministic function of the input.
package netlist

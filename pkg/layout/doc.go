// Package layout computes terminal coordinates for a schematic netlist.
//
// # Overview
//
// The x and y coordinates of every terminal are solved independently. Each
// element has a minimum size but the wires joining elements can stretch, so
// one axis is a longest-path scheduling problem:
//
//  1. [Unify]: elements running across the axis (up/down when solving x)
//     force their terminals to share a coordinate. Their terminals are merged
//     into collective nodes. Two collective nodes that are both already
//     formed cannot be merged; that is a [errors.ConflictError].
//  2. [BuildGraphs]: elements running along the axis become weighted edges
//     between collective nodes, once in a start graph (edges point in the
//     axis' forward direction) and once in an end graph (edges reversed).
//     Collective nodes without incoming edges hang off a virtual root.
//  3. [LongestPaths]: a topological order (Kahn's algorithm) gives every
//     vertex its longest distance from the root. A vertex that never enters
//     the order lies on a cycle; that is an [errors.InconsistentLayoutError].
//  4. [SolveAxis]: a node's coordinate is the mean of its earliest position
//     measured from the start and its latest position measured back from the
//     end. Nodes on the critical path have no slack and both agree; other
//     nodes are centred in the interval they are free to move in.
//
// [Solve] runs the x axis (right/left) and the y axis (up/down), scales the
// result and attaches element endpoints and inferred wires. The x axis grows
// to the right and the y axis grows upward.
//
// # Determinism
//
// Every structure is kept in insertion order: collective nodes are numbered
// in the order elements create them, edges are added in element order and
// orphans are chained to the root in collective-node order. Solve is a pure
// function of the ordered netlist.
//
// # Errors
//
// Solve fails as a whole. It never returns a partial placement.
package layout

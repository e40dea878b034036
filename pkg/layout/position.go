package layout

import (
	stderrors "errors"

	"github.com/matzehuels/schematic/pkg/errors"
	"github.com/matzehuels/schematic/pkg/netlist"
)

// AxisSolution is the unscaled result of solving one axis.
type AxisSolution struct {
	Axis      Axis
	Partition *Partition
	Start     Schedule // Longest distance from the axis origin
	End       Schedule // Longest distance back from the far end
	Coords    map[string]float64
}

// Length returns the critical length of the axis.
func (s *AxisSolution) Length() float64 { return s.Start.Length }

// Slack returns how far collective node c could move along the axis.
// Nodes on the critical path have zero slack.
func (s *AxisSolution) Slack(c int) float64 {
	return (s.Length() - s.End.Dist[c]) - s.Start.Dist[c]
}

// SolveAxis computes the coordinate of every terminal along axis.
//
// With S the start-graph distance of a collective node, E its end-graph
// distance and L the critical length, the node sits at ((L - E) + S) / 2:
// halfway between the earliest position it can take and the latest one.
func SolveAxis(axis Axis, elements []*netlist.Element) (*AxisSolution, error) {
	p, err := Unify(axis, elements)
	if err != nil {
		return nil, err
	}

	startGraph, endGraph := BuildGraphs(axis, p, elements)

	start, err := LongestPaths(startGraph)
	if err != nil {
		return nil, inconsistent(axis, p, err)
	}
	end, err := LongestPaths(endGraph)
	if err != nil {
		return nil, inconsistent(axis, p, err)
	}

	coords := make(map[string]float64, len(p.of))
	for c := 1; c <= p.Len(); c++ {
		pos := 0.5 * ((start.Length - end.Dist[c]) + start.Dist[c])
		for _, t := range p.members[c] {
			coords[t] = pos
		}
	}

	return &AxisSolution{
		Axis:      axis,
		Partition: p,
		Start:     start,
		End:       end,
		Coords:    coords,
	}, nil
}

// inconsistent converts a cycle in an axis graph into an
// *errors.InconsistentLayoutError naming the terminals involved.
func inconsistent(axis Axis, p *Partition, err error) error {
	var cycle *CycleError
	if !stderrors.As(err, &cycle) {
		return err
	}
	var terminals []string
	for _, c := range cycle.Vertices {
		terminals = append(terminals, p.Members(c)...)
	}
	return &errors.InconsistentLayoutError{Axis: axis.Name, Nodes: terminals}
}

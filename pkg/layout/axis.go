package layout

import "github.com/matzehuels/schematic/pkg/netlist"

// Axis is one of the two dimensions, described by its pair of opposite
// directions.
type Axis struct {
	Name    string
	Forward netlist.Direction
	Reverse netlist.Direction
}

var (
	// XAxis grows to the right.
	XAxis = Axis{Name: "x", Forward: netlist.Right, Reverse: netlist.Left}

	// YAxis grows upward.
	YAxis = Axis{Name: "y", Forward: netlist.Up, Reverse: netlist.Down}
)

// Aligned reports whether an element with direction d runs along the axis.
func (a Axis) Aligned(d netlist.Direction) bool {
	return d == a.Forward || d == a.Reverse
}

func (a Axis) String() string { return a.Name }

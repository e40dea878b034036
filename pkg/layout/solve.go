package layout

import (
	"github.com/matzehuels/schematic/pkg/errors"
	"github.com/matzehuels/schematic/pkg/netlist"
)

// DefaultScale is the distance between terminals one size unit apart.
const DefaultScale = 2.0

// Options configures Solve.
type Options struct {
	// Scale multiplies every coordinate. Zero means DefaultScale.
	Scale float64
}

// Point is a 2-D coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Placement is the result of a layout pass.
type Placement struct {
	Scale float64

	// Terminals lists terminal identifiers in discovery order.
	Terminals []string

	// Coords maps every terminal to its position.
	Coords map[string]Point

	// Elements are the netlist elements in order; Endpoints holds the
	// positions of their two terminals by element name.
	Elements  []*netlist.Element
	Endpoints map[string][2]Point

	// Wires are the inferred wires joining net aliases.
	Wires []*netlist.Element

	// Nodes carries the port and primary flags used by renderers.
	Nodes []*netlist.Node

	// Width and Height are the scaled critical lengths of the two axes.
	Width, Height float64
}

// Endpoint returns the positions of an element's terminals. It also
// resolves inferred wires.
func (p *Placement) Endpoint(e *netlist.Element) (from, to Point) {
	return p.Coords[e.Terminals[0]], p.Coords[e.Terminals[1]]
}

// Solve lays out a netlist. It fails with *errors.ConflictError or
// *errors.InconsistentLayoutError without producing any placement.
func Solve(n *netlist.Netlist, opts Options) (*Placement, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	if err := errors.ValidateScale(scale); err != nil {
		return nil, err
	}

	elements := n.Elements()

	xs, err := SolveAxis(XAxis, elements)
	if err != nil {
		return nil, err
	}
	ys, err := SolveAxis(YAxis, elements)
	if err != nil {
		return nil, err
	}

	nodes := n.Nodes()
	p := &Placement{
		Scale:     scale,
		Terminals: make([]string, 0, len(nodes)),
		Coords:    make(map[string]Point, len(nodes)),
		Elements:  elements,
		Endpoints: make(map[string][2]Point, len(elements)),
		Wires:     netlist.InferWires(n),
		Nodes:     nodes,
		Width:     xs.Length() * scale,
		Height:    ys.Length() * scale,
	}

	for _, node := range nodes {
		p.Terminals = append(p.Terminals, node.Name)
		p.Coords[node.Name] = Point{
			X: xs.Coords[node.Name] * scale,
			Y: ys.Coords[node.Name] * scale,
		}
	}
	for _, e := range elements {
		from, to := p.Endpoint(e)
		p.Endpoints[e.Name] = [2]Point{from, to}
	}

	return p, nil
}

package graph

import (
	"maps"
	"slices"

	"github.com/matzehuels/schematic/pkg/layout"
	"github.com/matzehuels/schematic/pkg/netlist"
)

// =============================================================================
// layout.Placement → Placement Conversion
// =============================================================================

// FromLayout converts a layout result to its serialization format.
// Nodes keep discovery order and elements keep netlist order.
func FromLayout(p *layout.Placement) Placement {
	out := Placement{
		Version:  Version,
		Scale:    p.Scale,
		Width:    p.Width,
		Height:   p.Height,
		Nodes:    make([]Node, 0, len(p.Nodes)),
		Elements: make([]Element, 0, len(p.Elements)),
	}

	for _, n := range p.Nodes {
		c := p.Coords[n.Name]
		out.Nodes = append(out.Nodes, Node{
			Name:    n.Name,
			X:       c.X,
			Y:       c.Y,
			Port:    n.Port,
			Primary: n.Primary,
		})
	}
	for _, e := range p.Elements {
		out.Elements = append(out.Elements, fromElement(p, e))
	}
	for _, w := range p.Wires {
		out.Wires = append(out.Wires, fromElement(p, w))
	}
	return out
}

func fromElement(p *layout.Placement, e *netlist.Element) Element {
	from, to := p.Endpoint(e)
	var args []string
	if len(e.Args) > 0 {
		args = slices.Clone(e.Args)
	}
	return Element{
		Name:        e.Name,
		Kind:        e.Kind.String(),
		Symbol:      Symbol(e.Kind),
		Terminals:   e.Terminals,
		From:        Point{X: from.X, Y: from.Y},
		To:          Point{X: to.X, Y: to.Y},
		Direction:   e.Direction().String(),
		Size:        e.Size(),
		Label:       e.AutoLabel(),
		Args:        args,
		Annotations: cloneMap(e.Options.Annotations),
		Extra:       cloneMap(e.Options.Extra),
		Implicit:    e.Implicit,
	}
}

// cloneMap copies m, returning nil for an empty map so that placements
// compare equal after a serialization round trip.
func cloneMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}

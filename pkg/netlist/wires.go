package netlist

import "fmt"

// InferWires returns the implicit wires that join the aliases of each net.
//
// A net with k aliases yields k-1 wires joining consecutive aliases in
// discovery order; a net with one alias yields none. The wires are named
// "W_<net>_<n>", have zero size and no direction, and are not added to the
// netlist, so the placement never sees them.
func InferWires(n *Netlist) []*Element {
	var wires []*Element
	for _, net := range n.nets {
		for i := 1; i < len(net.Aliases); i++ {
			wires = append(wires, &Element{
				Name:      fmt.Sprintf("W_%s_%d", net.Root, i),
				Kind:      Wire,
				Prefix:    "W",
				ID:        fmt.Sprintf("_%s_%d", net.Root, i),
				Terminals: [2]string{net.Aliases[i-1], net.Aliases[i]},
				Implicit:  true,
			})
		}
	}
	return wires
}

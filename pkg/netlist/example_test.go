package netlist_test

import (
	"fmt"

	"github.com/matzehuels/schematic/pkg/netlist"
)

func Example() {
	nl := netlist.New()
	_ = nl.Add("V1 1 0 dc; up")
	_ = nl.Add("R1 1 2; right")
	_ = nl.Add("C1 2 0.2; down")

	for _, e := range nl.Elements() {
		fmt.Println(e.Name, e.Kind, e.Direction())
	}
	for _, w := range netlist.InferWires(nl) {
		fmt.Println(w.Name, w.Terminals[0], w.Terminals[1])
	}
	// Output:
	// V1 voltage-source-dc up
	// R1 resistor right
	// C1 capacitor down
	// W_0_1 0 0_2
}

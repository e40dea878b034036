package layout_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/schematic/pkg/layout"
	"github.com/matzehuels/schematic/pkg/netlist"
)

func ExampleSolve() {
	n, _ := netlist.Read(strings.NewReader(`
V1 1 0; down
R1 1 2; right
C1 2 0_1; down
`))
	p, err := layout.Solve(n, layout.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, t := range p.Terminals {
		c := p.Coords[t]
		fmt.Printf("%s (%g, %g)\n", t, c.X, c.Y)
	}
	// Output:
	// 1 (0, 2)
	// 0 (0, 0)
	// 2 (2, 2)
	// 0_1 (2, 0)
}

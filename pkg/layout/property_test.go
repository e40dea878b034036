package layout

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/matzehuels/schematic/pkg/netlist"
)

const eps = 1e-9

// treeNetlist grows a tree of resistors from a list of random seeds. Each
// seed attaches a new terminal to an existing one, so no two constraints can
// ever contradict each other.
func treeNetlist(seeds []uint32) *netlist.Netlist {
	return buildTree(seeds, false)
}

// mirroredTreeNetlist is treeNetlist with every element written the other
// way round: terminals swapped and the opposite direction.
func mirroredTreeNetlist(seeds []uint32) *netlist.Netlist {
	return buildTree(seeds, true)
}

func buildTree(seeds []uint32, mirrored bool) *netlist.Netlist {
	dirs := []string{"right", "left", "up", "down"}
	opposite := map[string]string{"right": "left", "left": "right", "up": "down", "down": "up"}
	var b strings.Builder
	for i, s := range seeds {
		parent := int(s % uint32(i+1))
		dir := dirs[(s>>8)%4]
		size := 1 + (s>>12)%3
		from, to := fmt.Sprintf("n%d", parent), fmt.Sprintf("n%d", i+1)
		if mirrored {
			from, to, dir = to, from, opposite[dir]
		}
		fmt.Fprintf(&b, "R%d %s %s; %s, size=%d\n", i+1, from, to, dir, size)
	}
	n, err := netlist.Read(strings.NewReader(b.String()))
	if err != nil {
		panic(err)
	}
	return n
}

// span returns the signed extent of an element along its direction and the
// offset across it.
func span(p *Placement, e *netlist.Element) (along, across float64) {
	from, to := p.Endpoint(e)
	switch e.Direction() {
	case netlist.Right:
		return to.X - from.X, to.Y - from.Y
	case netlist.Left:
		return from.X - to.X, to.Y - from.Y
	case netlist.Up:
		return to.Y - from.Y, to.X - from.X
	default:
		return from.Y - to.Y, to.X - from.X
	}
}

func TestPlacementProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("every element spans at least its size", prop.ForAll(
		func(seeds []uint32) bool {
			p, err := Solve(treeNetlist(seeds), Options{})
			if err != nil {
				return false
			}
			for _, e := range p.Elements {
				along, across := span(p, e)
				if along < e.Size()*p.Scale-eps || math.Abs(across) > eps {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt32()),
	))

	properties.Property("coordinates stay inside the bounding box", prop.ForAll(
		func(seeds []uint32) bool {
			p, err := Solve(treeNetlist(seeds), Options{})
			if err != nil {
				return false
			}
			for _, c := range p.Coords {
				if c.X < -eps || c.X > p.Width+eps || c.Y < -eps || c.Y > p.Height+eps {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt32()),
	))

	properties.Property("layout is deterministic", prop.ForAll(
		func(seeds []uint32) bool {
			a, errA := Solve(treeNetlist(seeds), Options{})
			b, errB := Solve(treeNetlist(seeds), Options{})
			return errA == nil && errB == nil &&
				reflect.DeepEqual(a.Coords, b.Coords) &&
				reflect.DeepEqual(a.Terminals, b.Terminals)
		},
		gen.SliceOf(gen.UInt32()),
	))

	properties.Property("opposite directions with swapped terminals place alike", prop.ForAll(
		func(seeds []uint32) bool {
			a, errA := Solve(treeNetlist(seeds), Options{})
			b, errB := Solve(mirroredTreeNetlist(seeds), Options{})
			if errA != nil || errB != nil {
				return false
			}
			for name, c := range a.Coords {
				if d, ok := b.Coords[name]; !ok || math.Abs(c.X-d.X) > eps || math.Abs(c.Y-d.Y) > eps {
					return false
				}
			}
			return len(a.Coords) == len(b.Coords)
		},
		gen.SliceOf(gen.UInt32()),
	))

	properties.Property("nodes with slack sit midway between their extremes", prop.ForAll(
		func(seeds []uint32) bool {
			elements := treeNetlist(seeds).Elements()
			for _, axis := range []Axis{XAxis, YAxis} {
				s, err := SolveAxis(axis, elements)
				if err != nil {
					return false
				}
				for c := 1; c <= s.Partition.Len(); c++ {
					slack := s.Slack(c)
					earliest := s.Start.Dist[c]
					latest := s.Length() - s.End.Dist[c]
					if slack < -eps || math.Abs(latest-earliest-slack) > eps {
						return false
					}
					for _, t := range s.Partition.Members(c) {
						if math.Abs(s.Coords[t]-(earliest+slack/2)) > eps {
							return false
						}
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt32()),
	))

	properties.TestingRun(t)
}

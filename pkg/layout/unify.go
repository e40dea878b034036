package layout

import (
	"slices"

	"github.com/matzehuels/schematic/pkg/errors"
	"github.com/matzehuels/schematic/pkg/netlist"
)

// Partition assigns every terminal to a collective node for one axis.
// Collective nodes are numbered from 1 in creation order; 0 is reserved for
// the virtual root of the axis graphs.
type Partition struct {
	members [][]string
	of      map[string]int
}

func newPartition() *Partition {
	return &Partition{
		members: [][]string{nil},
		of:      make(map[string]int),
	}
}

// Len returns the number of collective nodes.
func (p *Partition) Len() int { return len(p.members) - 1 }

// Of returns the collective node of a terminal.
func (p *Partition) Of(terminal string) (int, bool) {
	c, ok := p.of[terminal]
	return c, ok
}

// Members returns the terminals of collective node c in insertion order.
func (p *Partition) Members(c int) []string {
	if c <= 0 || c >= len(p.members) {
		return nil
	}
	return slices.Clone(p.members[c])
}

func (p *Partition) create(terminals ...string) int {
	c := len(p.members)
	p.members = append(p.members, terminals)
	for _, t := range terminals {
		p.of[t] = c
	}
	return c
}

func (p *Partition) join(c int, terminal string) {
	p.of[terminal] = c
	p.members[c] = append(p.members[c], terminal)
}

// Unify merges the terminals of every element that runs across axis into
// collective nodes, then gives each remaining terminal of an element along
// the axis its own collective node.
//
// Elements are processed in order. If an element joins two terminals that
// already belong to different collective nodes, Unify fails with
// *errors.ConflictError naming that element.
func Unify(axis Axis, elements []*netlist.Element) (*Partition, error) {
	p := newPartition()

	for _, e := range elements {
		if axis.Aligned(e.Direction()) {
			continue
		}
		n1, n2 := e.Terminals[0], e.Terminals[1]
		c1, ok1 := p.of[n1]
		c2, ok2 := p.of[n2]

		switch {
		case ok1 && ok2:
			if c1 != c2 {
				return nil, &errors.ConflictError{Axis: axis.Name, Element: e.Name, Nodes: e.Terminals}
			}
		case !ok1 && !ok2:
			p.create(n1, n2)
		case !ok1:
			p.join(c2, n1)
		default:
			p.join(c1, n2)
		}
	}

	for _, e := range elements {
		if !axis.Aligned(e.Direction()) {
			continue
		}
		for _, t := range e.Terminals {
			if _, ok := p.of[t]; !ok {
				p.create(t)
			}
		}
	}

	return p, nil
}

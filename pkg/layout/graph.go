package layout

import "github.com/matzehuels/schematic/pkg/netlist"

// Root is the virtual root vertex of every axis graph.
const Root = 0

// Edge is a weighted edge between collective nodes.
type Edge struct {
	From, To int
	Weight   float64
}

// Graph is a weighted directed graph over the vertices 0..n, where 0 is
// [Root]. Adjacency lists keep insertion order.
type Graph struct {
	out      [][]Edge
	inDegree []int
}

// NewGraph creates a graph with the root and n further vertices.
func NewGraph(n int) *Graph {
	return &Graph{
		out:      make([][]Edge, n+1),
		inDegree: make([]int, n+1),
	}
}

// Len returns the number of vertices, root included.
func (g *Graph) Len() int { return len(g.out) }

// AddEdge adds a directed edge.
func (g *Graph) AddEdge(from, to int, weight float64) {
	g.out[from] = append(g.out[from], Edge{From: from, To: to, Weight: weight})
	g.inDegree[to]++
}

// Out returns the edges leaving v.
func (g *Graph) Out(v int) []Edge { return g.out[v] }

// InDegree returns the number of edges entering v.
func (g *Graph) InDegree(v int) int { return g.inDegree[v] }

// anchor chains every vertex without incoming edges to the root.
func (g *Graph) anchor() {
	for v := 1; v < len(g.out); v++ {
		if g.inDegree[v] == 0 {
			g.AddEdge(Root, v, 0)
		}
	}
}

// BuildGraphs turns the elements running along axis into the start graph
// and the end graph over the collective nodes of p.
//
// In the start graph an element points from the collective node nearer the
// axis origin to the one further along: an element in axis.Forward adds
// c(t1) -> c(t2), one in axis.Reverse adds c(t2) -> c(t1). The end graph is
// the transpose. Both graphs have every source chained to [Root] with
// weight 0.
func BuildGraphs(axis Axis, p *Partition, elements []*netlist.Element) (start, end *Graph) {
	start = NewGraph(p.Len())
	end = NewGraph(p.Len())

	for _, e := range elements {
		if !axis.Aligned(e.Direction()) {
			continue
		}
		near, far := p.of[e.Terminals[0]], p.of[e.Terminals[1]]
		if e.Direction() == axis.Reverse {
			near, far = far, near
		}
		start.AddEdge(near, far, e.Size())
		end.AddEdge(far, near, e.Size())
	}

	start.anchor()
	end.anchor()
	return start, end
}

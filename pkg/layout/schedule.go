package layout

import "fmt"

// Schedule holds the longest distance from the root to every vertex.
type Schedule struct {
	Dist   []float64
	Length float64 // Critical length: the largest distance
}

// CycleError reports vertices that could not be ordered because they lie on
// or behind a cycle.
type CycleError struct {
	Vertices []int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("graph contains a cycle through %d vertices", len(e.Vertices))
}

// LongestPaths computes the longest distance from [Root] to every vertex.
//
// It walks the graph in topological order using Kahn's algorithm: the root
// starts the queue, each dequeued vertex relaxes its outgoing edges, and a
// vertex joins the queue once all its incoming edges are relaxed. Vertices
// without incoming edges other than their root edge end up at distance 0.
//
// If the walk cannot place every vertex the graph has a cycle and
// LongestPaths returns a *CycleError listing the unplaced vertices in
// ascending order.
//
// Time complexity is O(V + E).
func LongestPaths(g *Graph) (Schedule, error) {
	n := g.Len()
	dist := make([]float64, n)
	inDegree := make([]int, n)
	copy(inDegree, g.inDegree)

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if inDegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	placed := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		placed++

		for _, e := range g.out[curr] {
			if d := dist[curr] + e.Weight; d > dist[e.To] {
				dist[e.To] = d
			}
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if placed < n {
		var stuck []int
		for v := 0; v < n; v++ {
			if inDegree[v] > 0 {
				stuck = append(stuck, v)
			}
		}
		return Schedule{}, &CycleError{Vertices: stuck}
	}

	var length float64
	for _, d := range dist {
		length = max(length, d)
	}
	return Schedule{Dist: dist, Length: length}, nil
}

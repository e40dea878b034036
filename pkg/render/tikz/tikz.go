// Package tikz renders placements as circuitikz pictures.
//
// The output is a tikzpicture environment meant to be \input into a LaTeX
// document that loads the circuitikz package:
//
//	\begin{tikzpicture}[]
//	    \coordinate (1) at (0.0, 2.0);
//	    \draw (1) to [R=$R_{1}$, *-*] (2);
//	    \draw {[anchor=south east] (1) node {1}};
//	\end{tikzpicture}
package tikz

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/netlist"
	"github.com/matzehuels/schematic/pkg/render"
)

// leftFlips maps annotations of leftward elements to the anchors that keep
// them pointing the drawn way once the nodes are swapped.
var leftFlips = map[string]string{
	"i": "i<^",
	"v": "v_>",
}

// Render returns the circuitikz picture for p.
func Render(p graph.Placement, opts render.Options) []byte {
	var buf bytes.Buffer
	Write(&buf, p, opts)
	return buf.Bytes()
}

// Write writes the circuitikz picture for p to w.
func Write(w io.Writer, p graph.Placement, opts render.Options) {
	nodes := make(map[string]graph.Node, len(p.Nodes))
	for _, n := range p.Nodes {
		nodes[n.Name] = n
	}

	fmt.Fprintf(w, "\\begin{tikzpicture}[%s]\n", opts.PictureArgs)

	for _, n := range p.Nodes {
		fmt.Fprintf(w, "    \\coordinate (%s) at (%.1f, %.1f);\n", n.Name, n.X, n.Y)
	}

	for _, e := range p.Elements {
		n1, n2, annotations := orient(e)

		parts := []string{e.Symbol + label(e, opts)}
		for _, key := range netlist.AnnotationKeys {
			if v, ok := annotations[key]; ok {
				parts = append(parts, fmt.Sprintf("%s=$%s$", key, v))
			}
		}
		if m := markers(nodes, n1, n2, opts); m != "" {
			parts = append(parts, m)
		}
		fmt.Fprintf(w, "    \\draw (%s) to [%s] (%s);\n", n1, strings.Join(parts, ", "), n2)
	}

	for _, wire := range p.Wires {
		n1, n2 := wire.Terminals[0], wire.Terminals[1]
		parts := []string{graph.SymbolShort}
		if m := markers(nodes, n1, n2, opts); m != "" {
			parts = append(parts, m)
		}
		fmt.Fprintf(w, "    \\draw (%s) to [%s] (%s);\n", n1, strings.Join(parts, ", "), n2)
	}

	if opts.LabelNodes {
		for _, n := range p.Nodes {
			if !n.Primary {
				continue
			}
			fmt.Fprintf(w, "    \\draw {[anchor=south east] (%s) node {%s}};\n", n.Name, n.Name)
		}
	}

	fmt.Fprintln(w, "\\end{tikzpicture}")
}

// orient returns the nodes in the order circuitikz should draw them.
//
// Sources expect the positive node first, so a source pointing down is drawn
// from its second node. A leftward element is drawn left to right so its
// label stays on top; its current and voltage arrows are flipped to match.
func orient(e graph.Element) (n1, n2 string, annotations map[string]string) {
	n1, n2 = e.Terminals[0], e.Terminals[1]
	annotations = e.Annotations

	if e.Direction == netlist.Down.String() && e.IsSource() {
		n1, n2 = n2, n1
	}

	if e.Direction == netlist.Left.String() {
		n1, n2 = n2, n1
		flipped := make(map[string]string, len(annotations))
		for _, k := range netlist.AnnotationKeys {
			if v, ok := annotations[k]; ok && leftFlips[k] == "" {
				flipped[k] = v
			}
		}
		// An explicit anchor beats one produced by flipping.
		for _, k := range netlist.AnnotationKeys {
			to := leftFlips[k]
			if v, ok := annotations[k]; ok && to != "" {
				if _, taken := flipped[to]; !taken {
					flipped[to] = v
				}
			}
		}
		annotations = flipped
	}
	return n1, n2, annotations
}

func label(e graph.Element, opts render.Options) string {
	if !opts.DrawLabels || e.HasLabel() || e.Label == "" {
		return ""
	}
	if e.Symbol == graph.SymbolOpen || e.Symbol == graph.SymbolShort {
		return ""
	}
	return "=" + e.Label
}

func markers(nodes map[string]graph.Node, n1, n2 string, opts render.Options) string {
	a, b := nodes[n1], nodes[n2]
	return render.NodeMarkers(a.Port, a.Primary, b.Port, b.Primary, opts.DrawNodes)
}

// Package dot renders placements through Graphviz.
//
// [ToDOT] emits an undirected graph whose nodes carry pinned positions
// (pos="x,y!"), so the neato engine keeps the computed placement instead of
// running its own layout. [RenderSVG] lays the graph out with go-graphviz.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/render"
)

// DefaultInches is the drawing size of one unscaled placement unit.
const DefaultInches = 0.75

// Options configures DOT output.
type Options struct {
	render.Options

	// Inches is the size of one unscaled placement unit. Zero means
	// DefaultInches.
	Inches float64
}

// ToDOT converts a placement to Graphviz DOT with pinned node positions.
// Ports are drawn as open circles, primary nodes as dots when DrawNodes is
// set, and aliases as invisible points.
func ToDOT(p graph.Placement, opts Options) string {
	inches := opts.Inches
	if inches == 0 {
		inches = DefaultInches
	}
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	unit := inches / scale

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  node [shape=point, width=0.01, fontsize=10];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range p.Nodes {
		attrs := []string{fmt.Sprintf("pos=\"%s,%s!\"", num(n.X*unit), num(n.Y*unit))}
		switch {
		case n.Port:
			attrs = append(attrs, "shape=circle", "width=0.08", "fixedsize=true", "label=\"\"")
		case opts.DrawNodes && n.Primary:
			attrs = append(attrs, "width=0.08")
		}
		if opts.LabelNodes && n.Primary {
			attrs = append(attrs, fmt.Sprintf("xlabel=%q", n.Name))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range p.Elements {
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.Terminals[0], e.Terminals[1], strings.Join(edgeAttrs(e, opts.Options), ", "))
	}
	for _, w := range p.Wires {
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", w.Terminals[0], w.Terminals[1], strings.Join(edgeAttrs(w, opts.Options), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeAttrs(e graph.Element, opts render.Options) []string {
	attrs := []string{fmt.Sprintf("id=%q", e.Name)}
	switch e.Symbol {
	case graph.SymbolOpen:
		attrs = append(attrs, "style=dotted")
	case graph.SymbolShort:
	default:
		attrs = append(attrs, "penwidth=2")
		if opts.DrawLabels && e.Label != "" && !e.HasLabel() {
			attrs = append(attrs, fmt.Sprintf("label=%q", strings.Trim(e.Label, "$")))
		}
	}
	if _, v, ok := labelAnnotation(e); ok {
		attrs = append(attrs, fmt.Sprintf("label=%q", v))
	}
	return attrs
}

func labelAnnotation(e graph.Element) (string, string, bool) {
	for _, k := range []string{"l", "l^", "l_"} {
		if v, ok := e.Annotations[k]; ok {
			return k, v, true
		}
	}
	return "", "", false
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG with the neato engine.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's svg tag with one that scales cleanly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

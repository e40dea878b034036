// Package svg renders placements as standalone SVG drawings.
//
// Each element is drawn in its own frame: the frame is translated to the
// element's first terminal and rotated so the element runs along +x, then
// the symbol is centred between two leads. Coordinates are flipped so y
// grows upward as in the placement.
package svg

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/render"
)

// Drawing constants in SVG user units.
const (
	Unit       = 40.0 // One unscaled placement unit
	Margin     = 30.0
	BodyLength = 30.0 // Length of a symbol between its leads
	NodeRadius = 3.0
)

const style = `
    .symbol { stroke: black; stroke-width: 1.5; fill: none; }
    .node { stroke: black; stroke-width: 1.2; fill: black; }
    .port { stroke: black; stroke-width: 1.2; fill: white; }
    text { font-family: serif; font-size: 12px; }`

// Render returns an SVG document for p.
func Render(p graph.Placement, opts render.Options) []byte {
	r := newRenderer(p)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", style)

	for _, e := range p.Elements {
		r.element(&buf, e, opts)
	}
	for _, w := range p.Wires {
		r.element(&buf, w, opts)
	}
	for _, n := range p.Nodes {
		r.node(&buf, n, opts)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

type renderer struct {
	unit          float64 // SVG units per placement coordinate
	top           float64 // Largest placement y
	width, height float64
}

func newRenderer(p graph.Placement) *renderer {
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	unit := Unit / scale
	return &renderer{
		unit:   unit,
		top:    p.Height,
		width:  p.Width*unit + 2*Margin,
		height: p.Height*unit + 2*Margin,
	}
}

func (r *renderer) point(pt graph.Point) (x, y float64) {
	return Margin + pt.X*r.unit, Margin + (r.top-pt.Y)*r.unit
}

func (r *renderer) element(buf *bytes.Buffer, e graph.Element, opts render.Options) {
	x1, y1 := r.point(e.From)
	x2, y2 := r.point(e.To)
	length := math.Hypot(x2-x1, y2-y1)
	angle := math.Atan2(y2-y1, x2-x1) * 180 / math.Pi

	fmt.Fprintf(buf, `  <g id="%s" transform="translate(%.1f %.1f) rotate(%.1f)">`+"\n",
		html.EscapeString(e.Name), x1, y1, angle)
	writeSymbol(buf, e.Symbol, length)
	buf.WriteString("  </g>\n")

	text := labelText(e, opts)
	if text == "" {
		return
	}
	mx, my := (x1+x2)/2, (y1+y2)/2
	anchor := "middle"
	dx, dy := 0.0, -BodyLength/2-4
	if math.Abs(x2-x1) < math.Abs(y2-y1) {
		anchor = "start"
		dx, dy = BodyLength/2+4, 4
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="%s">%s</text>`+"\n",
		mx+dx, my+dy, anchor, html.EscapeString(text))
}

func (r *renderer) node(buf *bytes.Buffer, n graph.Node, opts render.Options) {
	x, y := r.point(n.Point())
	switch {
	case n.Port:
		fmt.Fprintf(buf, `  <circle class="port" cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", x, y, NodeRadius)
	case opts.DrawNodes && n.Primary:
		fmt.Fprintf(buf, `  <circle class="node" cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", x, y, NodeRadius)
	}
	if opts.LabelNodes && n.Primary {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="end">%s</text>`+"\n",
			x-NodeRadius-2, y-NodeRadius-2, html.EscapeString(n.Name))
	}
}

func labelText(e graph.Element, opts render.Options) string {
	for _, k := range []string{"l", "l^", "l_"} {
		if v, ok := e.Annotations[k]; ok {
			return plain(v)
		}
	}
	if !opts.DrawLabels || e.Symbol == graph.SymbolOpen || e.Symbol == graph.SymbolShort {
		return ""
	}
	return plain(e.Label)
}

// plain strips TeX markup from a label: "$R_{1}$" becomes "R1".
var plain = strings.NewReplacer("$", "", "{", "", "}", "", "_", "", "^", "", `\`, "").Replace

package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/layout"
	"github.com/matzehuels/schematic/pkg/netlist"
	"github.com/matzehuels/schematic/pkg/render"
)

func place(t *testing.T, src string) graph.Placement {
	t.Helper()
	n, err := netlist.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	p, err := layout.Solve(n, layout.Options{})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	return graph.FromLayout(p)
}

func TestRender(t *testing.T) {
	p := place(t, `
V1 1 0; down
R1 1 2; right
C1 2 0_1; down
`)
	out := string(Render(p, render.DefaultOptions()))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.0 100.0"`) {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("missing closing tag")
	}
	for _, id := range []string{"V1", "R1", "C1", "W_0_1"} {
		if !strings.Contains(out, `<g id="`+id+`"`) {
			t.Errorf("missing group for %s", id)
		}
	}
	// R1 runs from (0, 2) to (2, 2): SVG (30, 30) to (70, 30).
	if !strings.Contains(out, `<g id="R1" transform="translate(30.0 30.0) rotate(0.0)">`) {
		t.Errorf("R1 not placed at node 1:\n%s", out)
	}
	if !strings.Contains(out, `<g id="V1" transform="translate(30.0 30.0) rotate(90.0)">`) {
		t.Errorf("V1 not rotated downward:\n%s", out)
	}
	if !strings.Contains(out, ">R1</text>") {
		t.Error("missing R1 label")
	}
	if got := strings.Count(out, `class="node"`); got != 3 {
		t.Errorf("got %d node dots, want 3 (nodes 1, 0, 2)", got)
	}
}

func TestRenderPortsAndLabels(t *testing.T) {
	p := place(t, "P1 1 0; down\nR1 1 2; right, l=R_{x}")
	out := string(Render(p, render.Options{}))

	if got := strings.Count(out, `class="port"`); got != 2 {
		t.Errorf("got %d port circles, want 2", got)
	}
	if strings.Contains(out, `class="node"`) {
		t.Error("node dots drawn with DrawNodes off")
	}
	if !strings.Contains(out, ">Rx</text>") {
		t.Errorf("explicit label missing:\n%s", out)
	}
}

func TestWriteSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{graph.SymbolResistor, "<polyline"},
		{graph.SymbolCapacitor, "V10 M"},
		{graph.SymbolInductor, " a"},
		{graph.SymbolVoltageAC, "<circle"},
		{graph.SymbolTransformer, "<circle"},
		{graph.SymbolShort, "<line"},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			var buf bytes.Buffer
			writeSymbol(&buf, tt.symbol, 80)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("writeSymbol(%s) = %s, want %q", tt.symbol, buf.String(), tt.want)
			}
		})
	}

	var buf bytes.Buffer
	writeSymbol(&buf, graph.SymbolOpen, 80)
	if buf.Len() != 0 {
		t.Errorf("open symbol drew %q", buf.String())
	}
}

func TestPlain(t *testing.T) {
	if got := plain("$R_{1}$"); got != "R1" {
		t.Errorf("plain() = %q, want R1", got)
	}
}

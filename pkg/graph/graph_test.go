package graph

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/schematic/pkg/layout"
	"github.com/matzehuels/schematic/pkg/netlist"
)

const twoPort = `
P1 1 0.1; down
R1 3 1; right, i=I_1
L1 2 3; right
C1 3 0; down
P2 2 0.2; down
W 0 0.1; right
`

func solve(t *testing.T, src string) Placement {
	t.Helper()
	n, err := netlist.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	p, err := layout.Solve(n, layout.Options{})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	return FromLayout(p)
}

func TestFromLayout(t *testing.T) {
	p := solve(t, twoPort)

	if p.Version != Version {
		t.Errorf("Version = %d, want %d", p.Version, Version)
	}
	if len(p.Nodes) != 6 {
		t.Fatalf("len(Nodes) = %d, want 6", len(p.Nodes))
	}
	if len(p.Elements) != 6 {
		t.Errorf("len(Elements) = %d, want 6", len(p.Elements))
	}
	if len(p.Wires) != 2 {
		t.Errorf("len(Wires) = %d, want 2", len(p.Wires))
	}

	n1, ok := p.Node("1")
	if !ok {
		t.Fatal("node 1 missing")
	}
	if !n1.Port || !n1.Primary {
		t.Errorf("node 1 = %+v, want port and primary", n1)
	}
	if n1.Point() != (Point{X: 4, Y: 2}) {
		t.Errorf("node 1 at %+v, want (4, 2)", n1.Point())
	}
	if n, _ := p.Node("0_1"); n.Primary {
		t.Error("alias 0_1 should not be primary")
	}

	r1, ok := p.Element("R1")
	if !ok {
		t.Fatal("R1 missing")
	}
	if r1.Symbol != SymbolResistor || r1.Kind != "resistor" {
		t.Errorf("R1 symbol/kind = %q/%q", r1.Symbol, r1.Kind)
	}
	if r1.From != (Point{X: 2, Y: 2}) || r1.To != (Point{X: 4, Y: 2}) {
		t.Errorf("R1 endpoints = %+v -> %+v", r1.From, r1.To)
	}
	if r1.Label != "$R_{1}$" {
		t.Errorf("R1 label = %q", r1.Label)
	}
	if r1.Annotations["i"] != "I_1" {
		t.Errorf("R1 annotations = %v", r1.Annotations)
	}

	w, ok := p.Element("W_0_1")
	if !ok {
		t.Fatal("inferred wire W_0_1 missing")
	}
	if !w.Implicit || w.Symbol != SymbolShort || w.Direction != "" {
		t.Errorf("inferred wire = %+v", w)
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		kind netlist.Kind
		want string
	}{
		{netlist.Resistor, "R"},
		{netlist.VoltageSourceAC, "sV"},
		{netlist.VoltageSourceDC, "V"},
		{netlist.CurrentSourceAC, "sI"},
		{netlist.Transformer, "transformer"},
		{netlist.Port, "open"},
		{netlist.Wire, "short"},
	}
	for _, tt := range tests {
		if got := Symbol(tt.kind); got != tt.want {
			t.Errorf("Symbol(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	want := solve(t, twoPort)

	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			data, err := Marshal(want, format)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			got, err := Unmarshal(data, format)
			if err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	want := solve(t, "R1 1 2; right\nC1 2 0; down")
	dir := t.TempDir()

	for _, name := range []string{"p.json", "p.yaml"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(want, path); err != nil {
			t.Fatalf("WriteFile(%s) error: %v", name, err)
		}
		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s) error: %v", name, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: round trip mismatch", name)
		}
	}

	data, _ := os.ReadFile(filepath.Join(dir, "p.yaml"))
	if !strings.Contains(string(data), "symbol: C") {
		t.Errorf("yaml output missing symbol:\n%s", data)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{"nodes": [`},
		{"unknown node", `{"nodes": [{"name": "1"}], "elements": [{"name": "R1", "terminals": ["1", "2"]}]}`},
		{"future version", `{"version": 99}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tt.data), FormatJSON); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Marshal(Placement{}, "xml"); err == nil {
		t.Error("Marshal(xml) should fail")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"a.json": FormatJSON,
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a":      FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

package graph

import (
	"github.com/matzehuels/schematic/pkg/netlist"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Version is the current placement format version.
const Version = 1

// Serialization formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Drawing symbols, named after their circuitikz bipoles.
const (
	SymbolResistor    = "R"
	SymbolCapacitor   = "C"
	SymbolInductor    = "L"
	SymbolVoltage     = "V"
	SymbolVoltageAC   = "sV"
	SymbolCurrent     = "I"
	SymbolCurrentAC   = "sI"
	SymbolTransformer = "transformer"
	SymbolOpen        = "open"
	SymbolShort       = "short"
)

var symbols = map[netlist.Kind]string{
	netlist.Resistor:        SymbolResistor,
	netlist.Capacitor:       SymbolCapacitor,
	netlist.Inductor:        SymbolInductor,
	netlist.VoltageSource:   SymbolVoltage,
	netlist.VoltageSourceAC: SymbolVoltageAC,
	netlist.VoltageSourceDC: SymbolVoltage,
	netlist.CurrentSource:   SymbolCurrent,
	netlist.CurrentSourceAC: SymbolCurrentAC,
	netlist.CurrentSourceDC: SymbolCurrent,
	netlist.Transformer:     SymbolTransformer,
	netlist.Port:            SymbolOpen,
	netlist.Wire:            SymbolShort,
}

// Symbol returns the drawing symbol of an element kind.
func Symbol(k netlist.Kind) string {
	if s, ok := symbols[k]; ok {
		return s
	}
	return SymbolShort
}

// =============================================================================
// Placement - Layout Serialization
// =============================================================================

// Placement is the canonical serialization format for a solved schematic.
// Used for layout files, the placement cache and renderer input.
//
// Nodes and elements keep netlist order, so the same netlist always
// serializes to the same bytes.
type Placement struct {
	Version  int       `json:"version" yaml:"version"`
	Scale    float64   `json:"scale" yaml:"scale"`
	Width    float64   `json:"width" yaml:"width"`
	Height   float64   `json:"height" yaml:"height"`
	Nodes    []Node    `json:"nodes" yaml:"nodes"`
	Elements []Element `json:"elements" yaml:"elements"`
	Wires    []Element `json:"wires,omitempty" yaml:"wires,omitempty"`
}

// Node returns the node with the given name.
func (p *Placement) Node(name string) (Node, bool) {
	for _, n := range p.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Element returns the element with the given name, wires included.
func (p *Placement) Element(name string) (Element, bool) {
	for _, list := range [][]Element{p.Elements, p.Wires} {
		for _, e := range list {
			if e.Name == name {
				return e, true
			}
		}
	}
	return Element{}, false
}

// =============================================================================
// Node - Positioned Terminal
// =============================================================================

// Node is a terminal with its coordinates.
type Node struct {
	Name    string  `json:"name" yaml:"name"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Port    bool    `json:"port,omitempty" yaml:"port,omitempty"`       // Drawn as an open circle
	Primary bool    `json:"primary,omitempty" yaml:"primary,omitempty"` // No alias suffix; labelled and dotted
}

// Point returns the node's coordinates.
func (n Node) Point() Point { return Point{X: n.X, Y: n.Y} }

// Point is a 2-D coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// =============================================================================
// Element - Positioned Two-Terminal Element
// =============================================================================

// Element is an element with the positions of both terminals.
type Element struct {
	Name      string    `json:"name" yaml:"name"`
	Kind      string    `json:"kind" yaml:"kind"`
	Symbol    string    `json:"symbol" yaml:"symbol"`
	Terminals [2]string `json:"terminals" yaml:"terminals,flow"`
	From      Point     `json:"from" yaml:"from,flow"`
	To        Point     `json:"to" yaml:"to,flow"`
	Direction string    `json:"direction,omitempty" yaml:"direction,omitempty"`
	Size      float64   `json:"size,omitempty" yaml:"size,omitempty"`
	Label     string    `json:"label,omitempty" yaml:"label,omitempty"` // Automatic label, e.g. $R_{1}$
	Args      []string  `json:"args,omitempty" yaml:"args,omitempty"`

	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Extra       map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`

	Implicit bool `json:"implicit,omitempty" yaml:"implicit,omitempty"` // Inferred wire
}

// IsSource returns true if the element is a plain voltage or current
// source. Its symbol expects the positive node first.
func (e *Element) IsSource() bool {
	return e.Symbol == SymbolVoltage || e.Symbol == SymbolCurrent
}

// HasLabel returns true if the element carries an explicit label option.
func (e *Element) HasLabel() bool {
	for _, k := range []string{"l", "l^", "l_"} {
		if _, ok := e.Annotations[k]; ok {
			return true
		}
	}
	return false
}

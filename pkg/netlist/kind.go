package netlist

import (
	"fmt"
	"strings"
)

// Kind is the closed set of element kinds.
type Kind int

const (
	Resistor Kind = iota
	Capacitor
	Inductor
	VoltageSource
	VoltageSourceAC
	VoltageSourceDC
	CurrentSource
	CurrentSourceAC
	CurrentSourceDC
	Transformer
	Port
	Wire
)

var kindNames = [...]string{
	Resistor:        "resistor",
	Capacitor:       "capacitor",
	Inductor:        "inductor",
	VoltageSource:   "voltage-source",
	VoltageSourceAC: "voltage-source-ac",
	VoltageSourceDC: "voltage-source-dc",
	CurrentSource:   "current-source",
	CurrentSourceAC: "current-source-ac",
	CurrentSourceDC: "current-source-dc",
	Transformer:     "transformer",
	Port:            "port",
	Wire:            "wire",
}

// String returns the kind's serialized name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown element kind %q", b)
}

// IsPort reports whether the kind is an external connection.
func (k Kind) IsPort() bool { return k == Port }

// IsWire reports whether the kind is a plain conductor.
func (k Kind) IsWire() bool { return k == Wire }

// IsSource reports whether the kind is a voltage or current source.
func (k Kind) IsSource() bool {
	switch k {
	case VoltageSource, VoltageSourceAC, VoltageSourceDC,
		CurrentSource, CurrentSourceAC, CurrentSourceDC:
		return true
	}
	return false
}

// DefaultDirection is Down for ports and Right for everything else.
func (k Kind) DefaultDirection() Direction {
	if k.IsPort() {
		return Down
	}
	return Right
}

// prefixes lists the name prefixes, longest first so that "port1" is not
// read as a "P" named "ort1".
var prefixes = []struct {
	prefix string
	kind   Kind
}{
	{"port", Port},
	{"wire", Wire},
	{"Vac", VoltageSourceAC},
	{"Vdc", VoltageSourceDC},
	{"Iac", CurrentSourceAC},
	{"Idc", CurrentSourceDC},
	{"TF", Transformer},
	{"R", Resistor},
	{"C", Capacitor},
	{"L", Inductor},
	{"V", VoltageSource},
	{"I", CurrentSource},
	{"v", VoltageSource},
	{"i", CurrentSource},
	{"P", Port},
	{"W", Wire},
}

// ParseKind splits an element name into its kind prefix, the kind and the
// identifier that follows the prefix. ok is false when no prefix matches.
func ParseKind(name string) (prefix string, kind Kind, id string, ok bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.prefix, p.kind, name[len(p.prefix):], true
		}
	}
	return "", 0, "", false
}

// promote turns a plain source into its AC or DC variant when the first
// extra argument says so.
func promote(kind Kind, arg string) (Kind, bool) {
	switch {
	case kind == VoltageSource && arg == "ac":
		return VoltageSourceAC, true
	case kind == VoltageSource && arg == "dc":
		return VoltageSourceDC, true
	case kind == CurrentSource && arg == "ac":
		return CurrentSourceAC, true
	case kind == CurrentSource && arg == "dc":
		return CurrentSourceDC, true
	}
	return kind, false
}

package netlist

import "strings"

// Node is a terminal of one or more elements.
type Node struct {
	Name string

	// Root is the net name: the part of Name before the first '_'.
	Root string

	// Port is true if any attached element is a port.
	Port bool

	// Primary is true if Name carries no alias suffix.
	Primary bool

	// Elements lists the attached elements in attach order.
	Elements []*Element
}

func newNode(name string) *Node {
	root, _, aliased := strings.Cut(name, "_")
	return &Node{
		Name:    name,
		Root:    root,
		Primary: !aliased,
	}
}

func (n *Node) attach(e *Element) {
	if e.Kind.IsPort() {
		n.Port = true
	}
	n.Elements = append(n.Elements, e)
}

// NetRoot returns the net name of a terminal identifier.
func NetRoot(terminal string) string {
	root, _, _ := strings.Cut(terminal, "_")
	return root
}

// Net is the set of terminal aliases that form one electrical connection.
type Net struct {
	Root string

	// Aliases are the terminal identifiers of the net in discovery order.
	Aliases []string
}

package netlist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/schematic/pkg/errors"
)

// DuplicatePolicy selects what Add does with a name that is already used.
type DuplicatePolicy int

const (
	// DuplicateReplace overwrites the earlier element in place, logs a
	// warning and re-links every node and net from scratch so no stale
	// back-reference survives.
	DuplicateReplace DuplicatePolicy = iota

	// DuplicateReject refuses the element with a *errors.DuplicateNameWarning.
	DuplicateReject
)

// Option configures a Netlist.
type Option func(*Netlist)

// WithDuplicatePolicy sets the duplicate-name policy.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(n *Netlist) { n.policy = p }
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(l *log.Logger) Option {
	return func(n *Netlist) { n.logger = l }
}

// Netlist is an ordered collection of elements with the terminals and nets
// they define.
//
// The zero value is not usable - use New. A Netlist is not safe for
// concurrent modification.
type Netlist struct {
	elements []*Element
	byName   map[string]int

	nodes  []*Node
	byNode map[string]*Node

	nets  []*Net
	byNet map[string]*Net

	counter  Counter
	policy   DuplicatePolicy
	logger   *log.Logger
	warnings []error
}

// New creates an empty netlist.
func New(opts ...Option) *Netlist {
	n := &Netlist{
		byName: make(map[string]int),
		byNode: make(map[string]*Node),
		byNet:  make(map[string]*Net),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Counter returns the netlist's anonymous-name counter.
func (n *Netlist) Counter() *Counter { return &n.counter }

// Add parses one netlist line and adds the element it describes. Blank and
// comment lines are ignored. A malformed line returns a
// *errors.MalformedElementError and leaves the netlist unchanged.
func (n *Netlist) Add(line string) error {
	e, err := ParseLine(line, &n.counter)
	if err != nil || e == nil {
		return err
	}
	return n.AddElement(e)
}

// AddElement adds a constructed element. Elements built by hand are checked
// with [Element.Validate]; an invalid one returns a
// *errors.MalformedElementError and leaves the netlist unchanged.
func (n *Netlist) AddElement(e *Element) error {
	if err := e.Validate(); err != nil {
		return &errors.MalformedElementError{Line: e.String(), Reason: err.Error()}
	}
	if i, exists := n.byName[e.Name]; exists {
		warning := &errors.DuplicateNameWarning{Name: e.Name}
		if n.policy == DuplicateReject {
			return warning
		}
		n.warnings = append(n.warnings, warning)
		if n.logger != nil {
			n.logger.Warn("overriding component", "name", e.Name)
		}
		n.elements[i] = e
		n.relink()
		return nil
	}

	n.byName[e.Name] = len(n.elements)
	n.elements = append(n.elements, e)
	n.link(e)
	return nil
}

// link attaches e to its terminals and records new net aliases.
func (n *Netlist) link(e *Element) {
	for _, t := range e.Terminals {
		node, ok := n.byNode[t]
		if !ok {
			node = newNode(t)
			n.byNode[t] = node
			n.nodes = append(n.nodes, node)
		}
		node.attach(e)

		net, ok := n.byNet[node.Root]
		if !ok {
			net = &Net{Root: node.Root}
			n.byNet[node.Root] = net
			n.nets = append(n.nets, net)
		}
		if !slices.Contains(net.Aliases, t) {
			net.Aliases = append(net.Aliases, t)
		}
	}
}

// relink rebuilds nodes and nets from the element list.
func (n *Netlist) relink() {
	n.nodes = nil
	n.nets = nil
	clear(n.byNode)
	clear(n.byNet)
	for _, e := range n.elements {
		n.link(e)
	}
}

// Elements returns the elements in insertion order.
func (n *Netlist) Elements() []*Element { return slices.Clone(n.elements) }

// Element looks up an element by name.
func (n *Netlist) Element(name string) (*Element, bool) {
	i, ok := n.byName[name]
	if !ok {
		return nil, false
	}
	return n.elements[i], true
}

// Nodes returns the terminals in discovery order.
func (n *Netlist) Nodes() []*Node { return slices.Clone(n.nodes) }

// Node looks up a terminal by identifier.
func (n *Netlist) Node(name string) (*Node, bool) {
	node, ok := n.byNode[name]
	return node, ok
}

// Nets returns the nets in discovery order.
func (n *Netlist) Nets() []*Net { return slices.Clone(n.nets) }

// Len returns the number of elements.
func (n *Netlist) Len() int { return len(n.elements) }

// Warnings returns the non-fatal conditions reported while building.
func (n *Netlist) Warnings() []error { return slices.Clone(n.warnings) }

// String returns the netlist in text form, one element per line, with
// direction and size options.
func (n *Netlist) String() string {
	var b strings.Builder
	for _, e := range n.elements {
		fmt.Fprintf(&b, "%s; %s", e, e.Direction())
		if e.Size() != DefaultSize {
			fmt.Fprintf(&b, ", size=%g", e.Size())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

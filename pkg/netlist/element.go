package netlist

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/schematic/pkg/errors"
)

// validate is the shared struct validator for elements.
var validate = validator.New()

// Counter hands out identifiers for anonymous elements ("W" becomes "W#1").
// It is owned by a [Netlist]; the zero value starts at 1.
type Counter struct {
	n int
}

// Next returns the next identifier number.
func (c *Counter) Next() int {
	c.n++
	return c.n
}

// Value returns the last number handed out.
func (c *Counter) Value() int { return c.n }

// Element is a two-terminal component of a schematic.
//
// Terminals[0] is the reference (positive) terminal and Terminals[1] the
// negative one. The element is drawn from Terminals[0] towards
// Terminals[1] in Options.Direction.
type Element struct {
	Name      string    `json:"name" yaml:"name" validate:"required"`
	Kind      Kind      `json:"kind" yaml:"kind"`
	Prefix    string    `json:"prefix" yaml:"prefix" validate:"required"`
	ID        string    `json:"id" yaml:"id" validate:"required"`
	Terminals [2]string `json:"terminals" yaml:"terminals" validate:"dive,required"`
	Args      []string  `json:"args,omitempty" yaml:"args,omitempty"`
	Options   Options   `json:"options" yaml:"options"`

	// Implicit marks wires synthesized by InferWires.
	Implicit bool `json:"implicit,omitempty" yaml:"implicit,omitempty"`
}

// NewElement builds and validates an element.
//
// The kind is taken from the name's prefix. A name consisting of the prefix
// only gets an anonymous identifier from counter. Dots in terminal names are
// folded to underscores, so "0.1" is an alias of net "0". A voltage or
// current source whose first argument is "ac" or "dc" becomes the matching
// AC or DC kind and the argument is consumed. An unset direction defaults to
// the kind's [Kind.DefaultDirection].
func NewElement(name, t1, t2 string, args []string, opts Options, counter *Counter) (*Element, error) {
	spec := strings.Join([]string{name, t1, t2}, " ")
	malformed := func(format string, a ...any) error {
		return &errors.MalformedElementError{Line: spec, Reason: fmt.Sprintf(format, a...)}
	}

	if err := errors.ValidateIdentifier("element name", name); err != nil {
		return nil, malformed("%s", errors.UserMessage(err))
	}

	prefix, kind, id, ok := ParseKind(name)
	if !ok {
		return nil, malformed("unknown component kind")
	}
	anonymous := id == ""
	if anonymous {
		id = "#"
	}

	terms := [2]string{foldTerminal(t1), foldTerminal(t2)}
	for _, t := range terms {
		if err := errors.ValidateTerminal(t); err != nil {
			return nil, malformed("%s", errors.UserMessage(err))
		}
	}

	if len(args) > 0 {
		if promoted, ok := promote(kind, args[0]); ok {
			kind = promoted
			args = args[1:]
		}
	}

	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	if opts.Direction == Unset {
		opts.Direction = kind.DefaultDirection()
	}

	e := &Element{
		Name:      name,
		Kind:      kind,
		Prefix:    prefix,
		ID:        id,
		Terminals: terms,
		Args:      args,
		Options:   opts,
	}
	if err := e.Validate(); err != nil {
		return nil, malformed("%s", err)
	}

	// Identifiers are handed out only to elements that made it this far, so
	// rejected lines leave no gaps in the numbering.
	if anonymous {
		if counter == nil {
			counter = &Counter{}
		}
		e.ID = "#" + strconv.Itoa(counter.Next())
		e.Name = prefix + e.ID
	}
	return e, nil
}

// Validate checks the element invariants: distinct non-empty terminals, a
// resolved direction and a finite positive size.
func (e *Element) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%s", formatValidationError(err))
	}
	if e.Terminals[0] == e.Terminals[1] {
		return fmt.Errorf("terminals must differ, both are %s", e.Terminals[0])
	}
	if size := e.Options.Size; math.IsInf(size, 0) || math.IsNaN(size) {
		return fmt.Errorf("size must be finite, got %v", size)
	}
	return nil
}

// foldTerminal rewrites "0.1" to "0_1".
func foldTerminal(t string) string {
	return strings.ReplaceAll(t, ".", "_")
}

// Direction returns the element's resolved direction.
func (e *Element) Direction() Direction { return e.Options.Direction }

// Size returns the element's minimum size.
func (e *Element) Size() float64 { return e.Options.Size }

// Anonymous reports whether the element's identifier was generated.
func (e *Element) Anonymous() bool { return strings.Contains(e.ID, "#") }

// AutoLabel returns the default math-mode label, for example "$R_{1}$".
// Ports, wires and anonymous elements have no automatic label.
func (e *Element) AutoLabel() string {
	if e.Kind.IsPort() || e.Kind.IsWire() || e.Anonymous() || e.Implicit {
		return ""
	}
	return "$" + e.Prefix + "_{" + e.ID + "}$"
}

// String returns the element in netlist form without options.
func (e *Element) String() string {
	return strings.Join(append([]string{e.Name, e.Terminals[0], e.Terminals[1]}, e.Args...), " ")
}

// formatValidationError converts validator errors to a more user-friendly format.
func formatValidationError(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return err.Error()
	}
	e := validationErrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Namespace())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Namespace(), e.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", e.Namespace(), e.Tag())
	}
}

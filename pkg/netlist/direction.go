package netlist

import "fmt"

// Direction is the compass direction an element is drawn in, from its first
// terminal to its second.
type Direction int

const (
	// Unset means no direction was given; the kind's default applies.
	Unset Direction = iota
	Right
	Left
	Up
	Down
)

var directionNames = [...]string{
	Unset: "",
	Right: "right",
	Left:  "left",
	Up:    "up",
	Down:  "down",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	dir, ok := ParseDirection(string(b))
	if !ok && len(b) > 0 {
		return fmt.Errorf("unknown direction %q", b)
	}
	*d = dir
	return nil
}

// ParseDirection parses "right", "left", "up" or "down".
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "right":
		return Right, true
	case "left":
		return Left, true
	case "up":
		return Up, true
	case "down":
		return Down, true
	}
	return Unset, false
}

// Opposite returns the reverse direction. Unset is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	case Down:
		return Up
	}
	return Unset
}

// Horizontal reports whether d lies on the x axis.
func (d Direction) Horizontal() bool { return d == Right || d == Left }

// Vertical reports whether d lies on the y axis.
func (d Direction) Vertical() bool { return d == Up || d == Down }

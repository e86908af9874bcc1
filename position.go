package graliffer

import "fmt"

// Axis is one coordinate of a grid Position, in the range [0, AxisMax].
//
// An axis has two representations: numeric (0..63) and textual, one character
// using the base64 alphabet: 'A'..'Z' is 0..25, 'a'..'z' is 26..51, '0'..'9'
// is 52..61, '+' is 62, and '/' is 63.
type Axis uint8

// AxisMax is the largest numeric Axis value; the grid is AxisMax+1 cells wide
// and tall.
const AxisMax Axis = 63

const axisCount = int(AxisMax) + 1

// ParseAxis converts a textual axis character into its numeric form.
func ParseAxis(c rune) (Axis, error) {
	switch {
	case c >= 'A' && c <= 'Z':
		return Axis(c - 'A'), nil
	case c >= 'a' && c <= 'z':
		return Axis(c-'a') + 26, nil
	case c >= '0' && c <= '9':
		return Axis(c-'0') + 52, nil
	case c == '+':
		return 62, nil
	case c == '/':
		return 63, nil
	}
	return 0, fmt.Errorf("invalid axis character %q, expected [A-Za-z0-9+/]", c)
}

// Textual returns the axis's base64 character.
func (a Axis) Textual() rune {
	switch {
	case a <= 25:
		return rune('A' + a)
	case a <= 51:
		return rune('a' + a - 26)
	case a <= 61:
		return rune('0' + a - 52)
	case a == 62:
		return '+'
	}
	return '/'
}

// Position is a 2-D grid coordinate; X runs right, Y runs down, "AA" is the
// top-left origin.
type Position struct {
	X, Y Axis
}

// ParsePosition parses the two-character textual form, x then y.
func ParsePosition(s string) (Position, error) {
	rs := []rune(s)
	if len(rs) != 2 {
		return Position{}, fmt.Errorf("invalid position %q, expected two axis characters", s)
	}
	x, err := ParseAxis(rs[0])
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	y, err := ParseAxis(rs[1])
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	return Position{x, y}, nil
}

// Pos builds a Position from numeric coordinates, wrapping into grid range.
func Pos(x, y int) Position {
	return Position{
		X: Axis(((x % axisCount) + axisCount) % axisCount),
		Y: Axis(((y % axisCount) + axisCount) % axisCount),
	}
}

func (p Position) String() string {
	return string([]rune{p.X.Textual(), p.Y.Textual()})
}

// MarshalText implements encoding.TextMarshaler with the textual form.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Step returns the next position one cell along dir. Travel carries at the
// grid edge: heading right past x=63 continues at x=0 on the next row, so the
// default rightward order is row major with wrap width 64; the other
// directions carry symmetrically, and stepping off the final cell wraps to
// the opposite corner.
func (p Position) Step(dir Direction) Position {
	switch dir {
	case Right:
		if p.X == AxisMax {
			return Position{0, wrapInc(p.Y)}
		}
		return Position{p.X + 1, p.Y}
	case Left:
		if p.X == 0 {
			return Position{AxisMax, wrapDec(p.Y)}
		}
		return Position{p.X - 1, p.Y}
	case Down:
		if p.Y == AxisMax {
			return Position{wrapInc(p.X), 0}
		}
		return Position{p.X, p.Y + 1}
	case Up:
		if p.Y == 0 {
			return Position{wrapDec(p.X), AxisMax}
		}
		return Position{p.X, p.Y - 1}
	}
	return p
}

func wrapInc(a Axis) Axis {
	if a == AxisMax {
		return 0
	}
	return a + 1
}

func wrapDec(a Axis) Axis {
	if a == 0 {
		return AxisMax
	}
	return a - 1
}

// Direction is a head travel direction.
type Direction int

// The four travel directions; Right is the default.
const (
	Right Direction = iota
	Down
	Left
	Up
)

var directionNames = [...]string{"right", "down", "left", "up"}

// ParseDirection parses a direction name as used by the snapshot format.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("invalid direction %q, expected up, right, down, or left", s)
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= len(directionNames) {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

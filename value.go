package graliffer

import "strconv"

// ValueKind discriminates the three runtime value shapes.
type ValueKind int

// The value kinds: booleans, unsigned numbers, and grid positions.
const (
	ValueBool ValueKind = iota
	ValueNumber
	ValuePosition
)

func (k ValueKind) String() string {
	switch k {
	case ValueBool:
		return "boolean"
	case ValueNumber:
		return "number"
	case ValuePosition:
		return "position"
	}
	return "invalid value kind"
}

// A Value is a fully evaluated operand: classification and contextual
// evaluation are already done by the time one reaches the stack, so a Value
// never carries raw cell text.
type Value struct {
	kind ValueKind
	b    bool
	n    uint32
	p    Position
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// NumberValue wraps an unsigned number.
func NumberValue(n uint32) Value { return Value{kind: ValueNumber, n: n} }

// PositionValue wraps a grid position.
func PositionValue(p Position) Value { return Value{kind: ValuePosition, p: p} }

// Kind returns the value's shape.
func (v Value) Kind() ValueKind { return v.kind }

// Bool unwraps a boolean value.
func (v Value) Bool() (b, ok bool) { return v.b, v.kind == ValueBool }

// Number unwraps a numeric value.
func (v Value) Number() (uint32, bool) { return v.n, v.kind == ValueNumber }

// Position unwraps a position value.
func (v Value) Position() (Position, bool) { return v.p, v.kind == ValuePosition }

// String returns the value's textual encoding: decimal for numbers, "0"/"1"
// for booleans, "@XY" for positions.
func (v Value) String() string {
	switch v.kind {
	case ValueBool:
		if v.b {
			return "1"
		}
		return "0"
	case ValueNumber:
		return strconv.FormatUint(uint64(v.n), 10)
	case ValuePosition:
		return "@" + v.p.String()
	}
	return "?"
}

// cell encodes the value as grid cell text; numbers over three digits fail
// with a CellOverflowError.
func (v Value) cell() (Cell, error) {
	return NewCell(v.String())
}

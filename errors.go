package graliffer

import (
	"errors"
	"fmt"
)

var (
	// ErrStackUnderflow is returned by Stack.Pop on an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrStackOverflow is returned by Stack.Push past a configured ceiling.
	// The ceiling is a safety net, not a language limit; by default there
	// is none.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrDivisionByZero is the div/mod fault on a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrIndirectionDepth signals an address whose target is not a literal,
	// or a pointer chain longer than the engine's configured depth.
	ErrIndirectionDepth = errors.New("indirection depth exceeded")

	// ErrInputUnavailable signals that the injected input provider had
	// nothing to give an inp opcode.
	ErrInputUnavailable = errors.New("input unavailable")
)

// CellOverflowError reports text too long to fit a cell.
type CellOverflowError struct {
	Text string
}

func (e CellOverflowError) Error() string {
	return fmt.Sprintf("cell overflow: %q exceeds %d grapheme clusters", e.Text, CellCapacity)
}

// MalformedWordError reports cell text that starts a reserved address or
// pointer syntax but is structurally invalid.
type MalformedWordError struct {
	Text   string
	Reason error
}

func (e MalformedWordError) Error() string {
	return fmt.Sprintf("malformed word %q: %v", e.Text, e.Reason)
}

func (e MalformedWordError) Unwrap() error { return e.Reason }

// InvalidBoolError reports a literal evaluated as a boolean that is neither
// "0" nor "1".
type InvalidBoolError struct {
	Text string
}

func (e InvalidBoolError) Error() string {
	return fmt.Sprintf("invalid boolean literal %q, expected \"0\" or \"1\"", e.Text)
}

// InvalidNumberError reports a literal that does not parse as an unsigned
// decimal number.
type InvalidNumberError struct {
	Text string
}

func (e InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid numeric literal %q", e.Text)
}

// TypeMismatchError reports a word or value that cannot satisfy the
// interpretation demanded of it.
type TypeMismatchError struct {
	Got  string
	Want string
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: cannot use %v as %v", e.Got, e.Want)
}

// InvalidOpcodeError reports a dispatch position whose cell does not hold a
// usable opcode.
type InvalidOpcodeError struct {
	Pos  Position
	Text string
}

func (e InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode %q at @%v", e.Text, e.Pos)
}

// A Fault is the terminal error state of an engine: the cause plus the grid
// position the dispatch cycle was at when it surfaced.
type Fault struct {
	Pos Position
	Err error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at @%v: %v", f.Pos, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

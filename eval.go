package graliffer

import "strconv"

// Interp is the interpretation an opcode slot demands of its operand.
// Classification is static; the same operand word yields different values
// (or different errors) under different interpretations.
type Interp int

// The four operand interpretations.
const (
	AsBoolean Interp = iota
	AsNumeric
	AsAddress
	AsPointer
)

func (in Interp) String() string {
	switch in {
	case AsBoolean:
		return "boolean"
	case AsNumeric:
		return "numeric"
	case AsAddress:
		return "address"
	case AsPointer:
		return "pointer"
	}
	return "invalid interpretation"
}

// DefaultPointerDepth is how many pointer links a chain may traverse before
// the evaluator gives up with ErrIndirectionDepth.
const DefaultPointerDepth = 3

// evaluator resolves operand words against a grid. It is the only place
// operand meaning is decided, and it is deliberately stateless beyond its
// configuration so external tooling can evaluate words without an engine.
type evaluator struct {
	grid         *Grid
	pointerDepth int
}

// evaluate resolves an operand word under the interpretation its consuming
// slot requires.
func (ev evaluator) evaluate(w Word, in Interp) (Value, error) {
	switch w.Kind {
	case WordLiteral:
		return ev.evaluateLiteral(w.Text, in)

	case WordAddress:
		switch in {
		case AsAddress:
			// Direct use: the position itself.
			return PositionValue(w.Pos), nil
		case AsBoolean, AsNumeric:
			return ev.indirect(w.Pos, in)
		}
		return Value{}, TypeMismatchError{Got: w.String(), Want: in.String()}

	case WordPointer:
		return ev.follow(w.Pos, in)
	}

	// An opcode mnemonic never satisfies an operand slot.
	return Value{}, TypeMismatchError{Got: w.String(), Want: in.String()}
}

func (ev evaluator) evaluateLiteral(text string, in Interp) (Value, error) {
	switch in {
	case AsBoolean:
		switch text {
		case "0":
			return BoolValue(false), nil
		case "1":
			return BoolValue(true), nil
		}
		return Value{}, InvalidBoolError{Text: text}
	case AsNumeric:
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return Value{}, InvalidNumberError{Text: text}
		}
		return NumberValue(uint32(n)), nil
	}
	return Value{}, TypeMismatchError{Got: "literal " + strconv.Quote(text), Want: in.String()}
}

// indirect reads the cell an address designates and evaluates its word as a
// value. Exactly one level is allowed: the target must hold a literal, and
// an address or pointer there overruns the indirection budget.
func (ev evaluator) indirect(p Position, in Interp) (Value, error) {
	w, err := Classify(ev.grid.Get(p).Text())
	if err != nil {
		return Value{}, err
	}
	switch w.Kind {
	case WordLiteral:
		return ev.evaluateLiteral(w.Text, in)
	case WordAddress, WordPointer:
		return Value{}, ErrIndirectionDepth
	}
	return Value{}, TypeMismatchError{Got: w.String(), Want: in.String()}
}

// follow resolves a pointer chain to its first non-pointer word, bounded by
// the configured depth, then evaluates that word in place of the pointer.
func (ev evaluator) follow(p Position, in Interp) (Value, error) {
	depth := ev.pointerDepth
	if depth <= 0 {
		depth = DefaultPointerDepth
	}
	for hops := 0; ; hops++ {
		w, err := Classify(ev.grid.Get(p).Text())
		if err != nil {
			return Value{}, err
		}
		if w.Kind != WordPointer {
			if in == AsPointer {
				return PositionValue(p), nil
			}
			return ev.evaluate(w, in)
		}
		if hops+1 >= depth {
			return Value{}, ErrIndirectionDepth
		}
		p = w.Pos
	}
}

package graliffer

import "strconv"

// An opcodeDef is one opcode table entry: mnemonic, inline operand slots
// (cells read after the opcode in travel order, each with the
// interpretation it demands), and the effect run once the slots are staged
// on the stack.
//
// Effects pop their inline operands in reverse slot order, and the
// value-consuming opcodes (set, prt) pop one further value left behind by an
// earlier instruction. A nil effect means staging the slots is the whole
// job (psh).
type opcodeDef struct {
	name   string
	slots  []Interp
	effect func(e *Engine) error
}

// opcodes is the static opcode table; Classify resolves mnemonics against
// it, so the table is also what makes classification total and stable.
var opcodes = make(map[string]*opcodeDef)

func define(name string, effect func(e *Engine) error, slots ...Interp) {
	opcodes[name] = &opcodeDef{name: name, slots: slots, effect: effect}
}

func init() {
	// Program management.
	define("nop", func(e *Engine) error { return nil })
	define("hlt", func(e *Engine) error { e.haltNow(); return nil })
	define("dbg", func(e *Engine) error { e.dump(); return nil })

	// Stack management.
	define("psh", nil, AsNumeric)
	define("pop", func(e *Engine) error {
		_, err := e.stack.Pop()
		return err
	})
	define("dup", func(e *Engine) error {
		v, ok := e.stack.Peek()
		if !ok {
			return ErrStackUnderflow
		}
		return e.stack.Push(v)
	})
	define("swp", func(e *Engine) error {
		a, err := e.stack.Pop()
		if err != nil {
			return err
		}
		b, err := e.stack.Pop()
		if err != nil {
			return err
		}
		if err := e.stack.Push(a); err != nil {
			return err
		}
		return e.stack.Push(b)
	})

	// Arithmetic. Overflowing add/mul yield zero and sub saturates at
	// zero; only a zero divisor is fatal.
	define("add", arith(func(lhs, rhs uint32) (uint32, error) {
		if sum := lhs + rhs; sum >= lhs {
			return sum, nil
		}
		return 0, nil
	}), AsNumeric, AsNumeric)
	define("sub", arith(func(lhs, rhs uint32) (uint32, error) {
		if lhs < rhs {
			return 0, nil
		}
		return lhs - rhs, nil
	}), AsNumeric, AsNumeric)
	define("mul", arith(func(lhs, rhs uint32) (uint32, error) {
		if prod := uint64(lhs) * uint64(rhs); prod <= 0xffffffff {
			return uint32(prod), nil
		}
		return 0, nil
	}), AsNumeric, AsNumeric)
	define("div", arith(func(lhs, rhs uint32) (uint32, error) {
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		return lhs / rhs, nil
	}), AsNumeric, AsNumeric)
	define("mod", arith(func(lhs, rhs uint32) (uint32, error) {
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		return lhs % rhs, nil
	}), AsNumeric, AsNumeric)

	// Comparison.
	define("equ", compare(func(lhs, rhs uint32) bool { return lhs == rhs }), AsNumeric, AsNumeric)
	define("neq", compare(func(lhs, rhs uint32) bool { return lhs != rhs }), AsNumeric, AsNumeric)
	define("grt", compare(func(lhs, rhs uint32) bool { return lhs > rhs }), AsNumeric, AsNumeric)
	define("lst", compare(func(lhs, rhs uint32) bool { return lhs < rhs }), AsNumeric, AsNumeric)
	define("grq", compare(func(lhs, rhs uint32) bool { return lhs >= rhs }), AsNumeric, AsNumeric)
	define("lsq", compare(func(lhs, rhs uint32) bool { return lhs <= rhs }), AsNumeric, AsNumeric)

	// Boolean logic.
	define("and", logic2(func(lhs, rhs bool) bool { return lhs && rhs }), AsBoolean, AsBoolean)
	define("orr", logic2(func(lhs, rhs bool) bool { return lhs || rhs }), AsBoolean, AsBoolean)
	define("not", func(e *Engine) error {
		b, err := e.popBool()
		if err != nil {
			return err
		}
		return e.stack.Push(BoolValue(!b))
	}, AsBoolean)

	// Flow control: jumps redirect the head position, direction opcodes
	// turn the head so the post-instruction advance travels the new way.
	define("jmp", func(e *Engine) error {
		p, err := e.popPosition()
		if err != nil {
			return err
		}
		e.moveTo(p)
		return nil
	}, AsAddress)
	// Conditional forms pop their boolean from the stack, where an
	// earlier comparison left it; only the target address is inline.
	define("ijp", func(e *Engine) error {
		p, err := e.popPosition()
		if err != nil {
			return err
		}
		b, err := e.popBool()
		if err != nil {
			return err
		}
		if b {
			e.moveTo(p)
		}
		return nil
	}, AsAddress)
	define("gou", turn(Up))
	define("gor", turn(Right))
	define("god", turn(Down))
	define("gol", turn(Left))
	define("igu", turnIf(Up))
	define("igr", turnIf(Right))
	define("igd", turnIf(Down))
	define("igl", turnIf(Left))

	// Memory.
	define("set", func(e *Engine) error {
		p, err := e.popPosition()
		if err != nil {
			return err
		}
		v, err := e.stack.Pop()
		if err != nil {
			return err
		}
		c, err := v.cell()
		if err != nil {
			return err
		}
		e.grid.Set(p, c)
		return nil
	}, AsAddress)

	// I/O, delegated to the injected collaborators.
	define("prt", func(e *Engine) error {
		v, err := e.stack.Pop()
		if err != nil {
			return err
		}
		return e.out.Emit(v)
	})
	define("inp", func(e *Engine) error {
		text, err := e.in.RequestInput()
		if err != nil {
			return err
		}
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return InvalidNumberError{Text: text}
		}
		return e.stack.Push(NumberValue(uint32(n)))
	})
}

func arith(f func(lhs, rhs uint32) (uint32, error)) func(e *Engine) error {
	return func(e *Engine) error {
		rhs, err := e.popNumber()
		if err != nil {
			return err
		}
		lhs, err := e.popNumber()
		if err != nil {
			return err
		}
		n, err := f(lhs, rhs)
		if err != nil {
			return err
		}
		return e.stack.Push(NumberValue(n))
	}
}

func compare(f func(lhs, rhs uint32) bool) func(e *Engine) error {
	return func(e *Engine) error {
		rhs, err := e.popNumber()
		if err != nil {
			return err
		}
		lhs, err := e.popNumber()
		if err != nil {
			return err
		}
		return e.stack.Push(BoolValue(f(lhs, rhs)))
	}
}

func logic2(f func(lhs, rhs bool) bool) func(e *Engine) error {
	return func(e *Engine) error {
		rhs, err := e.popBool()
		if err != nil {
			return err
		}
		lhs, err := e.popBool()
		if err != nil {
			return err
		}
		return e.stack.Push(BoolValue(f(lhs, rhs)))
	}
}

func turn(dir Direction) func(e *Engine) error {
	return func(e *Engine) error {
		e.head.Dir = dir
		return nil
	}
}

func turnIf(dir Direction) func(e *Engine) error {
	return func(e *Engine) error {
		b, err := e.popBool()
		if err != nil {
			return err
		}
		if b {
			e.head.Dir = dir
		}
		return nil
	}
}

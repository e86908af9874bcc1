package graliffer

import (
	"context"
	"fmt"
)

// State is the engine's execution state, returned from every Step. Halted
// and Faulted are terminal; there are no resume semantics.
type State int

// The engine states.
const (
	Running State = iota
	Halted
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return "invalid state"
}

// Head is the program counter: a grid position plus the direction the next
// advance travels.
type Head struct {
	Pos Position
	Dir Direction
}

// Engine owns one grid, one stack, and one head, and drives the dispatch
// loop over them. Build one with New.
type Engine struct {
	grid  *Grid
	stack *Stack
	head  Head

	state State
	fault *Fault
	moved bool

	in  InputProvider
	out OutputSink

	pointerDepth int
	stackLimit   int

	logfn func(mess string, args ...interface{})
}

func (e *Engine) logf(mess string, args ...interface{}) {
	if e.logfn != nil {
		e.logfn(mess, args...)
	}
}

// State returns the current execution state.
func (e *Engine) State() State { return e.state }

// Fault returns the terminal fault, nil unless the engine is Faulted.
func (e *Engine) Fault() *Fault { return e.fault }

// Head returns the current program counter.
func (e *Engine) Head() Head { return e.head }

// StackValues returns a bottom-to-top copy of the stack for inspection.
func (e *Engine) StackValues() []Value { return e.stack.Values() }

// CellAt reads any grid cell without disturbing execution.
func (e *Engine) CellAt(p Position) Cell { return e.grid.Get(p) }

// Grid exposes the engine's grid. The grid is exclusively owned by the
// engine; mutating it mid-run is the editor's business, not the engine's.
func (e *Engine) Grid() *Grid { return e.grid }

// Step executes exactly one dispatch cycle and returns the resulting state.
// A blank cell under the head is a skip: the head advances one step and the
// engine stays Running. Stepping a terminal engine is a no-op.
func (e *Engine) Step() State {
	if e.state != Running {
		return e.state
	}

	at := e.head.Pos
	defer func() {
		if p := recover(); p != nil {
			e.faultAt(at, fmt.Errorf("dispatch panic: %v", p))
		}
	}()

	cell := e.grid.Get(at)
	if cell.IsEmpty() {
		e.head.Pos = at.Step(e.head.Dir)
		return e.state
	}

	word, err := Classify(cell.Text())
	if err != nil {
		return e.faultAt(at, err)
	}
	if word.Kind != WordOpcode {
		return e.faultAt(at, InvalidOpcodeError{Pos: at, Text: cell.Text()})
	}
	def := word.op
	e.logf("exec @%v %v s:%v", at, def.name, e.stack.values)

	// Assemble the instruction: read one cell per slot in travel order,
	// evaluate under the slot's interpretation, stage on the stack.
	ev := evaluator{grid: e.grid, pointerDepth: e.pointerDepth}
	last := at
	for _, in := range def.slots {
		last = last.Step(e.head.Dir)
		opw, err := Classify(e.grid.Get(last).Text())
		if err != nil {
			return e.faultAt(last, err)
		}
		v, err := ev.evaluate(opw, in)
		if err != nil {
			return e.faultAt(last, err)
		}
		if err := e.stack.Push(v); err != nil {
			return e.faultAt(last, err)
		}
	}

	e.moved = false
	if def.effect != nil {
		if err := def.effect(e); err != nil {
			return e.faultAt(at, err)
		}
	}

	if e.state == Running && !e.moved {
		e.head.Pos = last.Step(e.head.Dir)
	}
	return e.state
}

// Run loops Step until the engine leaves Running, checking ctx once per
// cycle boundary so an embedder can interrupt between instructions. It
// returns the fault if the program faulted, the context error if
// interrupted, and nil on a clean halt.
func (e *Engine) Run(ctx context.Context) error {
	for e.state == Running {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.Step()
	}
	if e.state == Faulted {
		return e.fault
	}
	return nil
}

func (e *Engine) faultAt(p Position, err error) State {
	e.state = Faulted
	e.fault = &Fault{Pos: p, Err: err}
	e.logf("fault @%v: %v", p, err)
	return e.state
}

// haltNow transitions to Halted. The stack exists for the duration of a run
// and is cleared on the way out; the grid keeps whatever the program wrote.
func (e *Engine) haltNow() {
	e.state = Halted
	e.stack.clear()
	e.logf("halt @%v", e.head.Pos)
}

// moveTo redirects the head, suppressing the default advance this cycle.
func (e *Engine) moveTo(p Position) {
	e.head.Pos = p
	e.moved = true
}

func (e *Engine) popNumber() (uint32, error) {
	v, err := e.stack.Pop()
	if err != nil {
		return 0, err
	}
	n, ok := v.Number()
	if !ok {
		return 0, TypeMismatchError{Got: v.Kind().String(), Want: "number"}
	}
	return n, nil
}

func (e *Engine) popBool() (bool, error) {
	v, err := e.stack.Pop()
	if err != nil {
		return false, err
	}
	b, ok := v.Bool()
	if !ok {
		return false, TypeMismatchError{Got: v.Kind().String(), Want: "boolean"}
	}
	return b, nil
}

func (e *Engine) popPosition() (Position, error) {
	v, err := e.stack.Pop()
	if err != nil {
		return Position{}, err
	}
	p, ok := v.Position()
	if !ok {
		return Position{}, TypeMismatchError{Got: v.Kind().String(), Want: "position"}
	}
	return p, nil
}

// dump logs the whole frame through the injected logf; this is the dbg
// opcode's entire effect.
func (e *Engine) dump() {
	e.logf("# head @%v %v", e.head.Pos, e.head.Dir)
	e.logf("# stack %v", e.stack.values)
	for _, p := range e.grid.Positions() {
		e.logf("# cell @%v %q", p, e.grid.Get(p).Text())
	}
}

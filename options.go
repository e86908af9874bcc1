package graliffer

import "io"

// Option configures an Engine under construction; see the WithX
// constructors in api.go.
type Option interface{ apply(e *Engine) }

var defaultOptions = options{
	withInput(noInput{}),
	withOutput(discardSink{}),
	withPointerDepth(DefaultPointerDepth),
}

type options []Option

func (os options) apply(e *Engine) {
	for _, o := range os {
		if o != nil {
			o.apply(e)
		}
	}
}

type gridOption struct{ grid *Grid }
type inputOption struct{ in InputProvider }
type outputOption struct{ out OutputSink }
type startOption Position
type directionOption Direction
type stackLimitOption int
type pointerDepthOption int
type logfnOption func(mess string, args ...interface{})

func withGrid(g *Grid) gridOption                   { return gridOption{g} }
func withInput(in InputProvider) inputOption        { return inputOption{in} }
func withInputReader(r io.Reader) inputOption       { return inputOption{ReaderInput(r)} }
func withOutput(out OutputSink) outputOption        { return outputOption{out} }
func withOutputWriter(w io.Writer) outputOption     { return outputOption{WriterSink(w)} }
func withStart(p Position) startOption              { return startOption(p) }
func withDirection(d Direction) directionOption     { return directionOption(d) }
func withStackLimit(limit int) stackLimitOption     { return stackLimitOption(limit) }
func withPointerDepth(depth int) pointerDepthOption { return pointerDepthOption(depth) }

func (o gridOption) apply(e *Engine) {
	if o.grid != nil {
		e.grid = o.grid
	}
}

func (o inputOption) apply(e *Engine)  { e.in = o.in }
func (o outputOption) apply(e *Engine) { e.out = o.out }

func (o startOption) apply(e *Engine) { e.head.Pos = Position(o) }

func (o directionOption) apply(e *Engine) { e.head.Dir = Direction(o) }

func (o stackLimitOption) apply(e *Engine) { e.stackLimit = int(o) }

func (o pointerDepthOption) apply(e *Engine) { e.pointerDepth = int(o) }

func (o logfnOption) apply(e *Engine) { e.logfn = o }

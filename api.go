package graliffer

import "io"

// New builds an Engine in the Running state. With no options it has an
// empty grid, an unbounded stack, a head at the origin traveling right, no
// input, and discarded output.
func New(opts ...Option) *Engine {
	e := &Engine{
		grid:  NewGrid(),
		state: Running,
	}
	defaultOptions.apply(e)
	options(opts).apply(e)
	e.stack = NewStack(e.stackLimit)
	return e
}

// WithGrid loads the engine with a pre-built grid.
func WithGrid(g *Grid) Option { return withGrid(g) }

// WithSnapshot loads the grid and head from a program snapshot.
func WithSnapshot(s *Snapshot) Option { return withSnapshot(s) }

// WithStart places the head's initial position.
func WithStart(p Position) Option { return withStart(p) }

// WithDirection sets the head's initial travel direction.
func WithDirection(d Direction) Option { return withDirection(d) }

// WithInput injects the provider consumed by inp opcodes.
func WithInput(in InputProvider) Option { return withInput(in) }

// WithInputReader injects an io.Reader as the input provider, one
// whitespace-separated token per request.
func WithInputReader(r io.Reader) Option { return withInputReader(r) }

// WithOutput injects the sink fed by prt opcodes.
func WithOutput(out OutputSink) Option { return withOutput(out) }

// WithOutputWriter injects an io.Writer as the output sink, one emitted
// value per line.
func WithOutputWriter(w io.Writer) Option { return withOutputWriter(w) }

// WithStackLimit caps stack depth as a safety ceiling; zero (the default)
// means unbounded.
func WithStackLimit(limit int) Option { return withStackLimit(limit) }

// WithPointerDepth bounds pointer chain resolution.
func WithPointerDepth(depth int) Option { return withPointerDepth(depth) }

// WithLogf injects a trace logging function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }

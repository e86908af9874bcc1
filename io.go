package graliffer

import (
	"bufio"
	"fmt"
	"io"
)

// InputProvider feeds inp opcodes. RequestInput returns the next literal
// text, or an error when no input can be had; the engine surfaces that as
// an ErrInputUnavailable fault, never a retry.
type InputProvider interface {
	RequestInput() (string, error)
}

// OutputSink drains prt opcodes.
type OutputSink interface {
	Emit(v Value) error
}

// ReaderInput adapts an io.Reader into an InputProvider yielding one
// whitespace-separated token per request.
func ReaderInput(r io.Reader) InputProvider {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &readerInput{sc: sc}
}

type readerInput struct {
	sc *bufio.Scanner
}

func (ri *readerInput) RequestInput() (string, error) {
	if ri.sc.Scan() {
		return ri.sc.Text(), nil
	}
	if err := ri.sc.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	return "", ErrInputUnavailable
}

// noInput is the default provider: every request is unavailable.
type noInput struct{}

func (noInput) RequestInput() (string, error) { return "", ErrInputUnavailable }

// WriterSink adapts an io.Writer into an OutputSink, emitting each value's
// textual encoding on its own line and flushing per emit so interleaved
// interactive I/O stays ordered.
func WriterSink(w io.Writer) OutputSink {
	return &writerSink{wf: newWriteFlusher(w)}
}

type writerSink struct {
	wf writeFlusher
}

func (ws *writerSink) Emit(v Value) error {
	if _, err := io.WriteString(ws.wf, v.String()); err != nil {
		return err
	}
	if _, err := ws.wf.Write([]byte{'\n'}); err != nil {
		return err
	}
	return ws.wf.Flush()
}

type discardSink struct{}

func (discardSink) Emit(Value) error { return nil }

type writeFlusher interface {
	io.Writer
	Flush() error
}

func newWriteFlusher(w io.Writer) writeFlusher {
	if wf, is := w.(writeFlusher); is {
		return wf
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

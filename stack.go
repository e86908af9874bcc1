package graliffer

// Stack is the LIFO value store instructions stage operands on and leave
// results in. It holds evaluated Values only, never raw words.
type Stack struct {
	values []Value
	limit  int
}

// NewStack returns an empty stack. A positive limit caps the depth as a
// practical safety ceiling; zero means unbounded.
func NewStack(limit int) *Stack {
	return &Stack{limit: limit}
}

// Push appends a value, failing with ErrStackOverflow past the ceiling.
func (s *Stack) Push(v Value) error {
	if s.limit > 0 && len(s.values) >= s.limit {
		return ErrStackOverflow
	}
	s.values = append(s.values, v)
	return nil
}

// Pop removes and returns the most recent value, failing with
// ErrStackUnderflow when empty.
func (s *Stack) Pop() (Value, error) {
	i := len(s.values) - 1
	if i < 0 {
		return Value{}, ErrStackUnderflow
	}
	v := s.values[i]
	s.values = s.values[:i]
	return v, nil
}

// Peek returns the most recent value without removing it.
func (s *Stack) Peek() (Value, bool) {
	if i := len(s.values) - 1; i >= 0 {
		return s.values[i], true
	}
	return Value{}, false
}

// Len returns the current depth.
func (s *Stack) Len() int { return len(s.values) }

// Values returns a bottom-to-top copy of the stack contents.
func (s *Stack) Values() []Value {
	out := make([]Value, len(s.values))
	copy(out, s.values)
	return out
}

func (s *Stack) clear() { s.values = s.values[:0] }

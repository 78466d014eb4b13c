package session

// Stack is the LIFO of session states. The bottom entry is always a main
// state and the depth never exceeds two.
type Stack struct {
	states []State
}

// NewStack creates a stack holding the given main state.
func NewStack(bottom State) (*Stack, error) {
	if bottom.Kind() != KindMain {
		return nil, ErrBadBottom
	}
	return &Stack{states: []State{bottom}}, nil
}

// Depth returns the number of states on the stack.
func (s *Stack) Depth() int {
	return len(s.states)
}

// Top returns the active state.
func (s *Stack) Top() State {
	return s.states[len(s.states)-1]
}

// Bottom returns the main state at the base of the stack.
func (s *Stack) Bottom() State {
	return s.states[0]
}

// Push makes st the active state. Only a paused state may be pushed, and
// only on top of the main state.
func (s *Stack) Push(st State) error {
	if st.Kind() != KindPaused || s.Top().Kind() != KindMain {
		return ErrInvalidPush
	}
	s.states = append(s.states, st)
	return nil
}

// Pop removes and returns the active state. The bottom main state cannot
// be popped.
func (s *Stack) Pop() (State, error) {
	if len(s.states) <= 1 {
		return State{}, ErrBottomState
	}
	top := s.Top()
	s.states = s.states[:len(s.states)-1]
	return top, nil
}

// Main returns the main state if it is the active state.
func (s *Stack) Main() (*Main, error) {
	top := s.Top()
	if top.Kind() != KindMain {
		return nil, &StateNotFoundError{Want: KindMain, Top: top.Kind()}
	}
	return top.main, nil
}

// Paused returns the paused state if it is the active state.
func (s *Stack) Paused() (*Paused, error) {
	top := s.Top()
	if top.Kind() != KindPaused {
		return nil, &StateNotFoundError{Want: KindPaused, Top: top.Kind()}
	}
	return top.paused, nil
}

// Dump returns the state labels from top to bottom.
func (s *Stack) Dump() []string {
	labels := make([]string, 0, len(s.states))
	for i := len(s.states) - 1; i >= 0; i-- {
		labels = append(labels, s.states[i].Label())
	}
	return labels
}

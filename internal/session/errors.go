package session

import (
	"errors"
	"fmt"
)

// StateNotFoundError is returned when a gated system asks for a state kind
// that is not on top of the stack.
type StateNotFoundError struct {
	Want Kind
	Top  Kind
}

func (e *StateNotFoundError) Error() string {
	return fmt.Sprintf("session: %s state not on top of stack (top is %s)", e.Want, e.Top)
}

// MissingCollaboratorError is returned when a collaborator the frame
// pipeline depends on was never provided.
type MissingCollaboratorError struct {
	Name string
}

func (e *MissingCollaboratorError) Error() string {
	return fmt.Sprintf("session: missing collaborator %q", e.Name)
}

// Stack discipline violations.
var (
	ErrBottomState = errors.New("session: cannot pop the main state")
	ErrBadBottom   = errors.New("session: bottom state must be a main state")
	ErrInvalidPush = errors.New("session: only a paused state may be pushed onto a main state")
)

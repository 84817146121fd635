package fsm

import (
	"errors"
	"fmt"

	"github.com/enetx/g"
)

// ErrNilState is wrapped by ErrConstruction when a factory returns a nil instance
// without reporting an error.
var ErrNilState = errors.New("fsm: factory returned a nil state")

// ErrUnregisteredState is returned by ChangeStateTo when no instance of the requested
// state has been registered. Register one with RegisterState, or use ChangeStateAuto.
type ErrUnregisteredState struct {
	State g.String
}

func (e *ErrUnregisteredState) Error() string {
	return fmt.Sprintf("fsm: state %q is not registered", e.State)
}

// ErrConstruction is returned by ChangeStateAuto when the registered factory for a
// state fails. It wraps the factory's error, so errors.Is and errors.As see through it.
type ErrConstruction struct {
	// State is the name of the state that could not be built.
	State g.String
	// Err is the factory's error, or ErrNilState.
	Err error
}

func (e *ErrConstruction) Error() string {
	return fmt.Sprintf("fsm: cannot construct state %q: %v", e.State, e.Err)
}

// Unwrap provides compatibility with the standard library's errors package.
func (e *ErrConstruction) Unwrap() error { return e.Err }

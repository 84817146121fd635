package fsm

import (
	"time"

	"github.com/enetx/g"
)

// Interface compliance checks.
var (
	_ StateMachine[struct{}] = (*Machine[struct{}])(nil)
	_ StateMachine[struct{}] = (*SyncMachine[struct{}])(nil)
)

// StateMachine is the host-facing surface shared by Machine and SyncMachine.
type StateMachine[C any] interface {
	RegisterState(State[C])
	ChangeState(State[C]) (State[C], error)
	Update(time.Duration) error
	Current() State[C]
	Previous() State[C]
	Context() *C
	States() g.Slice[State[C]]
	ToDOT() g.String
}

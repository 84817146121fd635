package fsm

import "time"

// State is the lifecycle contract every state variant implements.
//
// For a transition from A to B the Machine calls A.End, then B.Initialize and
// B.Begin. On every tick it calls Reason on the current state and, if Reason did
// not switch states, Update.
//
// Errors returned from these hooks reach the caller of the Machine entry point as is.
type State[C any] interface {
	// Initialize binds the state to its machine and shared context.
	// It runs before every Begin, once per activation.
	Initialize(m *Machine[C], ctx *C)
	// Begin is the entry action.
	Begin() error
	// Reason evaluates transition conditions and may call back into the Machine.
	Reason() error
	// Update is the per-tick body. Skipped on ticks where Reason changed state.
	Update(dt time.Duration) error
	// End is the exit action.
	End() error
}

// Base implements State with no-op hooks and remembers the machine and context
// handed to Initialize. Embed it and override the hooks you need:
//
//	type Idle struct {
//		fsm.Base[World]
//	}
//
//	func (s *Idle) Reason() error {
//		if s.Context().Enemies > 0 {
//			_, err := fsm.ChangeStateAuto[Chasing](s.Machine())
//			return err
//		}
//		return nil
//	}
type Base[C any] struct {
	machine *Machine[C]
	ctx     *C
}

// Initialize stores the owning machine and context.
func (b *Base[C]) Initialize(m *Machine[C], ctx *C) {
	b.machine = m
	b.ctx = ctx
}

// Machine returns the machine the state was last initialized by.
func (b *Base[C]) Machine() *Machine[C] { return b.machine }

// Context returns the shared context the state was last initialized with.
func (b *Base[C]) Context() *C { return b.ctx }

func (*Base[C]) Begin() error { return nil }

func (*Base[C]) Reason() error { return nil }

func (*Base[C]) Update(time.Duration) error { return nil }

func (*Base[C]) End() error { return nil }

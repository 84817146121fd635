package fsm

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/enetx/g"
)

type (
	// TransitionHook is a global callback called on every transition, before the
	// outgoing state's End. Returning an error cancels the transition.
	// Either side may be nil.
	TransitionHook[C any] func(from, to State[C], ctx *C) error

	// Factory builds a fresh instance of a state variant for the auto-transition path.
	Factory[C any] func() (State[C], error)

	// Machine drives a set of singleton states over a shared context.
	// It is not safe for concurrent use; see SyncMachine.
	Machine[C any] struct {
		ctx          C
		current      State[C]
		previous     State[C]
		registry     g.Map[reflect.Type, State[C]]
		factories    g.Map[reflect.Type, Factory[C]]
		onTransition g.Slice[TransitionHook[C]]
		logger       *slog.Logger

		// epoch counts completed swaps. Used by Update when the current state
		// is not a pointer.
		epoch uint64
	}

	// SyncMachine is a thread-safe wrapper around a Machine.
	// It protects all host-facing operations with a sync.RWMutex. States keep calling
	// the inner Machine from their callbacks, so reentrant transitions never contend for the lock.
	SyncMachine[C any] struct {
		m  *Machine[C]
		mu sync.RWMutex
	}
)

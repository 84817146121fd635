// Package fsm provides a generic, tick-driven finite state machine. States are
// singleton objects keyed by their concrete type, share one host-supplied context,
// and are driven through a fixed lifecycle: Initialize and Begin on entry, Reason
// and Update every tick, End on exit. It is built with types and utilities from the
// github.com/enetx/g library.
package fsm

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/enetx/g"
)

// New creates a Machine that owns ctx. No state is active until the first transition.
func New[C any](ctx C) *Machine[C] {
	return &Machine[C]{
		ctx:          ctx,
		registry:     g.NewMap[reflect.Type, State[C]](),
		factories:    g.NewMap[reflect.Type, Factory[C]](),
		onTransition: g.NewSlice[TransitionHook[C]](),
		logger:       slog.New(slog.DiscardHandler),
	}
}

// Context returns the shared context. Every state receives the same pointer.
func (m *Machine[C]) Context() *C { return &m.ctx }

// Current returns the active state, or nil if none is active.
func (m *Machine[C]) Current() State[C] { return m.current }

// Previous returns the state that was active before the current one, or nil.
func (m *Machine[C]) Previous() State[C] { return m.previous }

// OnTransition registers a global transition hook.
func (m *Machine[C]) OnTransition(hook TransitionHook[C]) *Machine[C] {
	m.onTransition.Push(hook)
	return m
}

// WithLogger sets the logger used for transition and registry events.
// A nil logger disables logging.
func (m *Machine[C]) WithLogger(l *slog.Logger) *Machine[C] {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	m.logger = l
	return m
}

// ChangeState switches to next, which may be nil to leave the machine with no active state.
// A typed nil pointer counts as nil.
//
// Transition hooks run first, then the outgoing state's End; if either fails the
// machine is left untouched. Then previous and current are swapped, and next is
// registered, initialized and begun. It returns the state that is current once all
// of that is done, which differs from next only if next switched again from within Begin.
//
// A state that calls ChangeState from its own End has no defined ordering.
func (m *Machine[C]) ChangeState(next State[C]) (State[C], error) {
	if isNil(next) {
		next = nil
	}

	from := m.current

	for _, hook := range m.onTransition {
		if err := hook(from, next, &m.ctx); err != nil {
			return m.current, err
		}
	}

	if from != nil {
		if err := from.End(); err != nil {
			return m.current, err
		}
	}

	m.previous = from
	m.current = next
	m.epoch++

	m.logger.Debug("fsm: transition",
		slog.String("from", string(stateName(from))),
		slog.String("to", string(stateName(next))),
	)

	if next == nil {
		return nil, nil
	}

	m.register(next)
	next.Initialize(m, &m.ctx)

	if err := next.Begin(); err != nil {
		return m.current, err
	}

	return m.current, nil
}

// Update runs one tick. The current state reasons first; if it stayed current,
// its Update is called with dt. A state that was entered during Reason is not
// updated until it has reasoned on a later tick. Update is a no-op when no
// state is active.
func (m *Machine[C]) Update(dt time.Duration) error {
	state, epoch := m.current, m.epoch
	if state == nil {
		return nil
	}

	if err := state.Reason(); err != nil {
		return err
	}

	if !m.stillCurrent(state, epoch) {
		return nil
	}

	return state.Update(dt)
}

// stillCurrent reports whether state is the same reference as m.current.
// Only pointer states are compared directly; any other kind may hold
// uncomparable values, so it falls back to the swap counter.
func (m *Machine[C]) stillCurrent(state State[C], epoch uint64) bool {
	if m.current == nil {
		return false
	}

	st, ct := reflect.TypeOf(state), reflect.TypeOf(m.current)
	if st != ct {
		return false
	}

	if st.Kind() != reflect.Pointer {
		return m.epoch == epoch
	}

	return state == m.current
}
